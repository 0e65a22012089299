package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/config"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/logging"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/sheet"
)

// appContext carries the effective configuration plus the resources a
// command opens from it. Callers must Close it.
type appContext struct {
	home       string
	cfg        *config.Config
	source     config.Source
	sourcePath string
	loc        *time.Location
	logs       io.Closer
	client     *redis.Client
}

// resolveContext loads the configuration, applies the persistent flag
// overrides and installs the logger.
func resolveContext(cmd *cobra.Command) (*appContext, error) {
	home, err := config.HomeDir()
	if err != nil {
		return nil, err
	}
	configFlag, _ := cmd.Flags().GetString("config")

	res, err := config.Load(home, configFlag)
	if err != nil {
		return nil, err
	}
	cfg := res.Config

	if v, _ := cmd.Flags().GetString("snapshot"); v != "" {
		cfg.Snapshot.Path = v
	}
	if v, _ := cmd.Flags().GetString("sheet"); v != "" {
		cfg.Snapshot.Sheet = v
	}
	if v, _ := cmd.Flags().GetString("ledger"); v != "" {
		cfg.Ledger.Backend = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration after flag binding: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	logs, err := logging.Init(home, cfg.Logging)
	if err != nil {
		return nil, err
	}
	slog.Debug("configuration loaded", "source", res.Source, "path", res.SourcePath)

	return &appContext{
		home:       home,
		cfg:        cfg,
		source:     res.Source,
		sourcePath: res.SourcePath,
		loc:        loc,
		logs:       logs,
	}, nil
}

// loadSnapshot reads the configured snapshot file.
func (a *appContext) loadSnapshot() (roster.Snapshot, error) {
	if a.cfg.Snapshot.Path == "" {
		return roster.Snapshot{}, fmt.Errorf("no snapshot configured (use --snapshot or set snapshot.path in %s)", config.DefaultPath(a.home))
	}
	snap, err := sheet.Load(a.cfg.Snapshot.Path, a.cfg.Snapshot.Sheet)
	if err != nil {
		return roster.Snapshot{}, err
	}
	slog.Debug("snapshot loaded", "path", a.cfg.Snapshot.Path, "students", len(snap.Students), "version", snap.Version)
	return snap, nil
}

// openLedger opens the configured assignment ledger backend.
func (a *appContext) openLedger(ctx context.Context) (*ledger.Ledger, error) {
	switch a.cfg.Ledger.Backend {
	case config.BackendRedis:
		r := a.cfg.Ledger.Redis
		client, err := ledger.NewRedisClient(ctx, r.Addr, r.Password, r.DB)
		if err != nil {
			return nil, err
		}
		a.client = client
		return ledger.New(ledger.NewRedisStore(client, r.Prefix)), nil
	case config.BackendMemory:
		return ledger.New(ledger.NewMemoryStore()), nil
	default:
		return ledger.New(ledger.NewFileStore(a.cfg.Ledger.Dir)), nil
	}
}

// now returns the current time in the configured report time zone.
func (a *appContext) now() time.Time {
	return time.Now().In(a.loc)
}

func (a *appContext) Close() error {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.logs != nil {
		return a.logs.Close()
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
