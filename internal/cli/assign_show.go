package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/hashutil"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

var assignShowCmd = LeafCommand{
	Use:   "show",
	Short: "List the stored assignments of a day",
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
		return runAssignShow(cmd.Context(), cmd, snap.Students, l, date)
	},
}.Build()

type assignmentLine struct {
	period int
	name   string
	ref    string
	letter string
}

func runAssignShow(ctx context.Context, cmd *cobra.Command, students []roster.Student, l *ledger.Ledger, date time.Time) error {
	dateKey := ledger.DateKey(date)
	day, err := l.Day(ctx, dateKey)
	if err != nil {
		return fmt.Errorf("load assignments for %s: %w", dateKey, err)
	}

	out := cmd.OutOrStdout()
	if len(day) == 0 {
		_, _ = fmt.Fprintf(out, "no assignments for %s\n", dateKey)
		return nil
	}

	lines := make([]assignmentLine, 0, len(day))
	for cell, letter := range day {
		period, key, ok := ledger.SplitCellKey(cell)
		if !ok || letter == "" {
			continue
		}
		line := assignmentLine{period: period, name: key, ref: hashutil.IDFromSeed(key), letter: letter}
		if s, found := roster.FindByKey(students, key); found {
			line.name = report.StudentLabel(s)
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].period != lines[j].period {
			return lines[i].period < lines[j].period
		}
		return lines[i].name < lines[j].name
	})

	t := report.Table{Title: dateKey + " " + schedule.WeekdayOf(date)}
	t.Rows = append(t.Rows, report.Row{Role: report.RoleHeader, Cells: []report.Cell{
		{Text: "교시"}, {Text: "학생"}, {Text: "ref"}, {Text: "배정"},
	}})
	for _, line := range lines {
		t.Rows = append(t.Rows, report.Row{Role: report.RoleData, Cells: []report.Cell{
			{Text: strconv.Itoa(line.period)}, {Text: line.name}, {Text: line.ref}, {Text: line.letter},
		}})
	}
	_, err = fmt.Fprintln(out, renderTable(t, isTerminal(out), nil))
	return err
}
