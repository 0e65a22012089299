package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

var assignFormCmd = LeafCommand{
	Use:   "form",
	Short: "Walk through one period's students and prompt for each letter",
	BoolFlags: []BoolFlag{
		{Name: "paused", Usage: "include paused students"},
	},
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "assignment date (default: today)"},
		{Name: "period", Shorthand: "p", Usage: "period to fill in", Default: "1"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		date, err := dateFlag(cmd, app.now())
		if err != nil {
			return err
		}
		periodFlag, _ := cmd.Flags().GetString("period")
		periods, err := schedule.ParsePeriodList(periodFlag)
		if err != nil || len(periods) != 1 {
			return fmt.Errorf("invalid --period value '%s' (expected one positive number)", periodFlag)
		}
		includePaused, _ := cmd.Flags().GetBool("paused")

		snap, err := app.loadSnapshot()
		if err != nil {
			return err
		}
		l, err := app.openLedger(cmd.Context())
		if err != nil {
			return err
		}
		return runAssignForm(cmd.Context(), cmd, snap.Students, l, date, periods[0], includePaused, NewLetterFunc())
	},
}.Build()

func runAssignForm(ctx context.Context, cmd *cobra.Command, students []roster.Student, l *ledger.Ledger, date time.Time, period int, includePaused bool, letterFn LetterFunc) error {
	dateKey := ledger.DateKey(date)
	weekday := schedule.WeekdayOf(date)
	layout := roster.BuildDailyRoster(students, weekday, []int{period}, includePaused)
	present := layout.Columns[0].Students()

	out := cmd.OutOrStdout()
	if len(present) == 0 {
		_, _ = fmt.Fprintf(out, "no students in %s %d교시\n", weekday, period)
		return nil
	}

	day, err := l.Day(ctx, dateKey)
	if err != nil {
		return fmt.Errorf("load assignments for %s: %w", dateKey, err)
	}

	changed := 0
	for i, s := range present {
		current := day.Get(period, s.Key())
		title := fmt.Sprintf("[%d/%d] %s %d교시 · %s", i+1, len(present), weekday, period, report.StudentLabel(s))
		answer, err := letterFn(title, current)
		if err != nil {
			return err
		}
		if ledger.Sanitize(answer) == current {
			continue
		}
		if _, err := l.Set(ctx, dateKey, period, s.Key(), answer); err != nil {
			return fmt.Errorf("save assignment for %s: %w", s.Name, err)
		}
		changed++
	}

	_, _ = fmt.Fprintf(out, "updated %d of %d assignments for %d교시 on %s\n", changed, len(present), period, dateKey)
	return nil
}
