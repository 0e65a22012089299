package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. ROLLBOOK_LEDGER_BACKEND.
const EnvPrefix = "ROLLBOOK"

// Source names where a loaded configuration came from.
type Source string

const (
	SourceFile     Source = "file"
	SourceDefaults Source = "defaults"
)

// LoadResult is a validated configuration plus where it was read from.
type LoadResult struct {
	Config     *Config
	SourcePath string
	Source     Source
}

// Load reads configPath, or the default config file under home when
// configPath is empty. A missing default file is not an error: defaults and
// ROLLBOOK_* environment variables are used instead.
func Load(home, configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// env vars only resolve for keys viper already knows about
	defaults := Defaults(home)
	v.SetDefault("snapshot.path", defaults.Snapshot.Path)
	v.SetDefault("snapshot.sheet", defaults.Snapshot.Sheet)
	v.SetDefault("ledger.backend", defaults.Ledger.Backend)
	v.SetDefault("ledger.dir", defaults.Ledger.Dir)
	v.SetDefault("ledger.redis.addr", defaults.Ledger.Redis.Addr)
	v.SetDefault("ledger.redis.password", defaults.Ledger.Redis.Password)
	v.SetDefault("ledger.redis.db", defaults.Ledger.Redis.DB)
	v.SetDefault("ledger.redis.prefix", defaults.Ledger.Redis.Prefix)
	v.SetDefault("report.weekdays", defaults.Report.Weekdays)
	v.SetDefault("report.daily_periods", defaults.Report.DailyPeriods)
	v.SetDefault("report.timezone", defaults.Report.Timezone)
	v.SetDefault("report.pdf_font", defaults.Report.PDFFont)
	v.SetDefault("server.addr", defaults.Server.Addr)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.destination", defaults.Logging.Destination)

	switch {
	case configPath != "":
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		v.SetConfigFile(configPath)
	default:
		if p := DefaultPath(home); fileExists(p) {
			v.SetConfigFile(p)
		}
	}

	result := &LoadResult{Source: SourceDefaults}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		result.Source = SourceFile
		result.SourcePath = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.mergeDefaults(defaults)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	result.Config = &cfg
	return result, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
