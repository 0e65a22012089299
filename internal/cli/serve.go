package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/server"
)

var serveCmd = LeafCommand{
	Use:   "serve",
	Short: "Serve rosters, reports and assignments over HTTP",
	StrFlags: []StringFlag{
		{Name: "addr", Usage: "listen address (default: server.addr)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		if v, _ := cmd.Flags().GetString("addr"); v != "" {
			app.cfg.Server.Addr = v
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		l, err := app.openLedger(ctx)
		if err != nil {
			return err
		}
		return runServe(ctx, app, l)
	},
}.Build()

// snapshotSource watches the configured snapshot file, or serves an empty
// roster until one is imported over HTTP.
func snapshotSource(app *appContext) server.Source {
	if app.cfg.Snapshot.Path == "" {
		return server.NewStaticSource(roster.NewSnapshot(nil))
	}
	return server.NewFileSource(app.cfg.Snapshot.Path, app.cfg.Snapshot.Sheet)
}

func runServe(ctx context.Context, app *appContext, l *ledger.Ledger) error {
	gin.SetMode(gin.ReleaseMode)
	srv := server.New(snapshotSource(app), l, server.Options{
		Weekdays:     app.cfg.Report.Weekdays,
		DailyPeriods: app.cfg.Report.DailyPeriods,
		Location:     app.loc,
	})
	return srv.Run(ctx, app.cfg.Server.Addr)
}
