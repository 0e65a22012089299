// Package config holds the rollbook configuration: where the roster snapshot
// lives, which assignment ledger backend to use, and report defaults.
//
// Precedence (highest to lowest): CLI flags > ROLLBOOK_* env vars >
// config.yaml > defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

// Ledger backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config is the complete rollbook configuration.
type Config struct {
	Snapshot Snapshot `mapstructure:"snapshot" yaml:"snapshot"`
	Ledger   Ledger   `mapstructure:"ledger" yaml:"ledger"`
	Report   Report   `mapstructure:"report" yaml:"report"`
	Server   Server   `mapstructure:"server" yaml:"server"`
	Logging  Logging  `mapstructure:"logging" yaml:"logging"`
}

// Snapshot locates the student roster spreadsheet.
type Snapshot struct {
	// Path is an .xlsx or .csv file.
	Path  string `mapstructure:"path" yaml:"path"`
	Sheet string `mapstructure:"sheet" yaml:"sheet"`
}

// Ledger selects and configures the assignment ledger store.
type Ledger struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	Dir     string `mapstructure:"dir" yaml:"dir"`
	Redis   Redis  `mapstructure:"redis" yaml:"redis"`
}

// Redis configures the redis ledger backend.
type Redis struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
	Prefix   string `mapstructure:"prefix" yaml:"prefix"`
}

// Report holds report defaults.
type Report struct {
	// Weekdays are the columns of the weekly class matrix.
	Weekdays     []string `mapstructure:"weekdays" yaml:"weekdays"`
	DailyPeriods []int    `mapstructure:"daily_periods" yaml:"daily_periods"`
	Timezone     string   `mapstructure:"timezone" yaml:"timezone"`
	// PDFFont is an optional TTF used for PDF export so Hangul renders.
	PDFFont string `mapstructure:"pdf_font" yaml:"pdf_font"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// Logging configures the slog handler.
type Logging struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// HomeDir returns ~/.rollbook.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".rollbook"), nil
}

// DefaultPath returns the config file location under home.
func DefaultPath(home string) string {
	return filepath.Join(home, "config.yaml")
}

// Defaults returns a valid configuration rooted at home.
func Defaults(home string) *Config {
	return &Config{
		Snapshot: Snapshot{Sheet: "students"},
		Ledger: Ledger{
			Backend: BackendFile,
			Dir:     filepath.Join(home, "assignments"),
			Redis:   Redis{Addr: "localhost:6379", Prefix: "rollbook"},
		},
		Report: Report{
			Weekdays:     []string{"월", "화", "수", "목"},
			DailyPeriods: []int{1, 2, 3},
			Timezone:     "Asia/Seoul",
		},
		Server: Server{Addr: ":8080"},
		Logging: Logging{
			Level:       "info",
			Format:      "text",
			Destination: "stderr",
		},
	}
}

// Validate checks every enumerated and range-bound field.
func (c *Config) Validate() error {
	switch c.Ledger.Backend {
	case BackendFile:
		if c.Ledger.Dir == "" {
			return fmt.Errorf("ledger.dir is required for the %s backend", BackendFile)
		}
	case BackendRedis:
		if c.Ledger.Redis.Addr == "" {
			return fmt.Errorf("ledger.redis.addr is required for the %s backend", BackendRedis)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid ledger.backend %q (expected file, redis or memory)", c.Ledger.Backend)
	}

	for _, wd := range c.Report.Weekdays {
		if !schedule.IsWeekday(wd) {
			return fmt.Errorf("invalid report.weekdays entry %q (expected one of %s)", wd, strings.Join(schedule.Weekdays, ""))
		}
	}
	for _, p := range c.Report.DailyPeriods {
		if p <= 0 {
			return fmt.Errorf("invalid report.daily_periods entry %d (expected a positive period)", p)
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q (expected debug, info, warn or error)", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid logging.format %q (expected text or json)", c.Logging.Format)
	}
	switch c.Logging.Destination {
	case "", "stderr", "stdout", "file":
	default:
		return fmt.Errorf("invalid logging.destination %q (expected stderr, stdout or file)", c.Logging.Destination)
	}
	return nil
}

// Location resolves Report.Timezone, defaulting to the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Report.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid report.timezone %q: %w", c.Report.Timezone, err)
	}
	return loc, nil
}

// mergeDefaults fills zero values from d.
func (c *Config) mergeDefaults(d *Config) {
	if c.Snapshot.Sheet == "" {
		c.Snapshot.Sheet = d.Snapshot.Sheet
	}
	if c.Ledger.Backend == "" {
		c.Ledger.Backend = d.Ledger.Backend
	}
	if c.Ledger.Dir == "" {
		c.Ledger.Dir = d.Ledger.Dir
	}
	if c.Ledger.Redis.Prefix == "" {
		c.Ledger.Redis.Prefix = d.Ledger.Redis.Prefix
	}
	if len(c.Report.Weekdays) == 0 {
		c.Report.Weekdays = d.Report.Weekdays
	}
	if len(c.Report.DailyPeriods) == 0 {
		c.Report.DailyPeriods = d.Report.DailyPeriods
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	if c.Logging.Destination == "" {
		c.Logging.Destination = d.Logging.Destination
	}
}
