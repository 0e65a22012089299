package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

var assignSetCmd = LeafCommand{
	Use:   "set STUDENT PERIOD [LETTER]",
	Short: "Assign a letter to a student for one period (omit LETTER to clear)",
	Example: `  rollbook assign set 김민수 1 A
  rollbook assign set id:1024 2 B --date 2025-03-05
  rollbook assign set 3f2a9c1 1`,
	Args: cobra.RangeArgs(2, 3),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "replace an existing letter without asking"},
	},
	StrFlags: []StringFlag{
		{Name: "date", Shorthand: "d", Usage: "assignment date (default: today)"},
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
		snap, err := app.loadSnapshot()
		if err != nil {
			return err
		}
		l, err := app.openLedger(cmd.Context())
		if err != nil {
			return err
		}

		pk := NewPromptKit()
		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			pk.Confirm = AlwaysYes()
		}

		letter := ""
		if len(args) == 3 {
			letter = args[2]
		}
		return runAssignSet(cmd.Context(), cmd, snap.Students, l, date, args[0], args[1], letter, pk)
	},
}.Build()

func runAssignSet(ctx context.Context, cmd *cobra.Command, students []roster.Student, l *ledger.Ledger, date time.Time, ref, periodArg, letter string, pk PromptKit) error {
	period, err := strconv.Atoi(periodArg)
	if err != nil || period < 1 {
		return fmt.Errorf("invalid period '%s' (expected a positive number)", periodArg)
	}
	if err := validateLetter(letter); err != nil {
		return fmt.Errorf("invalid letter '%s': %w", letter, err)
	}

	s, err := ResolveStudent(students, ref, pk.Select)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	dateKey := ledger.DateKey(date)
	weekday := schedule.WeekdayOf(date)
	if !s.Attends(weekday, period) {
		_, _ = fmt.Fprintln(out, Warning(fmt.Sprintf("%s does not attend %s %d교시", s.Name, weekday, period)))
	}

	current, err := l.Get(ctx, dateKey, period, s.Key())
	if err != nil {
		return err
	}
	next := ledger.Sanitize(letter)
	if current == next {
		_, _ = fmt.Fprintf(out, "%s already has %s for %d교시 on %s\n", Primary(s.Name), Letter(current), period, dateKey)
		return nil
	}

	if current != "" {
		prompt := fmt.Sprintf("Replace %s with %s for %s (%d교시, %s)?", current, displayLetter(next), s.Name, period, dateKey)
		if next == "" {
			prompt = fmt.Sprintf("Clear %s for %s (%d교시, %s)?", current, s.Name, period, dateKey)
		}
		confirmed, err := pk.Confirm(prompt)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("aborted")
		}
	}

	stored, err := l.Set(ctx, dateKey, period, s.Key(), next)
	if err != nil {
		return fmt.Errorf("save assignment: %w", err)
	}
	if stored == "" {
		_, _ = fmt.Fprintf(out, "cleared %s for %d교시 on %s\n", Primary(s.Name), period, dateKey)
		return nil
	}
	_, _ = fmt.Fprintf(out, "assigned %s to %s for %d교시 on %s\n", Letter(stored), Primary(s.Name), period, dateKey)
	return nil
}

func displayLetter(l string) string {
	if l == "" {
		return "-"
	}
	return l
}
