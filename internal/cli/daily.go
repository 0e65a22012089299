package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

const monthWorkers = 4

var dailyCmd = LeafCommand{
	Use:   "daily",
	Short: "Show or edit the daily attendance sheet",
	Example: `  rollbook daily
  rollbook daily --date 수 --paused
  rollbook daily --month 2025-03 --weekdays 월,수 --export pdf`,
	BoolFlags: []BoolFlag{
		{Name: "paused", Usage: "include paused students, marked (휴)"},
		{Name: "static", Usage: "print the sheet instead of opening the interactive editor"},
	},
	StrFlags: withExportFlags(
		StringFlag{Name: "date", Shorthand: "d", Usage: "sheet date: YYYY-MM-DD, today, yesterday or a weekday (default: today)"},
		StringFlag{Name: "month", Shorthand: "m", Usage: "build one sheet per class day of a month (YYYY-MM)"},
		StringFlag{Name: "periods", Usage: "periods to show, e.g. 1,2,3 (default: report.daily_periods)"},
		StringFlag{Name: "weekdays", Usage: "class weekdays used with --month (default: report.weekdays)"},
	),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		dateFlag, _ := cmd.Flags().GetString("date")
		monthFlag, _ := cmd.Flags().GetString("month")
		if dateFlag != "" && monthFlag != "" {
			return fmt.Errorf("--date and --month cannot be used together")
		}

		opts := report.DailyOptions{Periods: app.cfg.Report.DailyPeriods}
		opts.IncludePaused, _ = cmd.Flags().GetBool("paused")
		if v, _ := cmd.Flags().GetString("periods"); v != "" {
			periods, err := schedule.ParsePeriodList(v)
			if err != nil {
				return fmt.Errorf("invalid --periods value: %w", err)
			}
			opts.Periods = periods
		}

		snap, err := app.loadSnapshot()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		l, err := app.openLedger(ctx)
		if err != nil {
			return err
		}
		exp := exportFlagValues(cmd, app.cfg.Report.PDFFont)
		now := app.now()

		if monthFlag != "" {
			weekdays := app.cfg.Report.Weekdays
			if v, _ := cmd.Flags().GetString("weekdays"); v != "" {
				if weekdays, err = schedule.ParseWeekdayList(v); err != nil {
					return fmt.Errorf("invalid --weekdays value: %w", err)
				}
			}
			year, month, err := schedule.ParseMonth(monthFlag, now)
			if err != nil {
				return err
			}
			from, to := schedule.MonthRange(year, month, app.loc)
			dates, err := schedule.ClassDates(weekdays, from, to)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("daily-%04d-%02d", year, int(month))
			return runDailyMonth(ctx, cmd, snap.Students, l, dates, opts, exp, name)
		}

		date := now
		if dateFlag != "" {
			if date, err = schedule.ParseDate(dateFlag, now); err != nil {
				return err
			}
		}
		static, _ := cmd.Flags().GetBool("static")
		interactive := !static && exp.Format == "" && isTerminal(cmd.OutOrStdout())
		return runDaily(ctx, cmd, snap.Students, l, date, opts, exp, interactive)
	},
}.Build()

// runDaily prints or exports the sheet of one date, or opens the interactive
// editor when interactive is set.
func runDaily(ctx context.Context, cmd *cobra.Command, students []roster.Student, l *ledger.Ledger, date time.Time, opts report.DailyOptions, exp exportOptions, interactive bool) error {
	if interactive {
		return runSheet(ctx, cmd, students, l, date, opts)
	}
	rep, err := report.DailyReport(ctx, students, date, opts, l)
	if err != nil {
		return err
	}
	return writeReports(cmd, []report.Report{rep}, exp, "daily-"+ledger.DateKey(date))
}

// runDailyMonth writes one sheet per date. Sheets load concurrently since each
// reads the ledger; output keeps date order.
func runDailyMonth(ctx context.Context, cmd *cobra.Command, students []roster.Student, l *ledger.Ledger, dates []time.Time, opts report.DailyOptions, exp exportOptions, name string) error {
	if len(dates) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), Warning("no class days in the selected month"))
		return nil
	}

	reps := make([]report.Report, len(dates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(monthWorkers)
	for i, d := range dates {
		i, d := i, d
		g.Go(func() error {
			rep, err := report.DailyReport(gctx, students, d, opts, l)
			if err != nil {
				return err
			}
			reps[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return writeReports(cmd, reps, exp, name)
}
