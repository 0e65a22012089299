package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/ledger"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

// PausedSuffix marks paused students on the daily sheet.
const PausedSuffix = " (휴)"

// DailyOptions controls the daily attendance sheet.
type DailyOptions struct {
	Periods       []int // defaults to roster.DefaultDailyPeriods
	IncludePaused bool
}

// DailyReport loads the assignments of date from l and builds the daily sheet.
func DailyReport(ctx context.Context, students []roster.Student, date time.Time, opts DailyOptions, l *ledger.Ledger) (Report, error) {
	day, err := l.Day(ctx, ledger.DateKey(date))
	if err != nil {
		return Report{}, fmt.Errorf("load assignments for %s: %w", ledger.DateKey(date), err)
	}
	return BuildDaily(students, date, opts, day), nil
}

// BuildDaily lays out the daily sheet for date: a (name, letter) column pair
// per period with blank rows between school levels, a headcount row, and one
// tally row per letter assigned anywhere that day. Tallies only count
// students present in the slot.
func BuildDaily(students []roster.Student, date time.Time, opts DailyOptions, day ledger.Day) Report {
	weekday := schedule.WeekdayOf(date)
	dr := roster.BuildDailyRoster(students, weekday, opts.Periods, opts.IncludePaused)

	t := Table{
		Title:   fmt.Sprintf("%d-%d %s", int(date.Month()), date.Day(), weekday),
		Caption: ledger.DateKey(date),
	}

	header := make([]string, 0, 2*len(dr.Columns))
	for _, col := range dr.Columns {
		header = append(header, strconv.Itoa(col.Period)+"교시", "배정")
	}
	t.Rows = append(t.Rows, newRow(RoleHeader, header...))

	for i := 0; i < dr.Rows; i++ {
		row := Row{Role: RoleBlank, Cells: make([]Cell, 0, 2*len(dr.Columns))}
		for _, col := range dr.Columns {
			slot := col.Slots[i]
			if slot.Blank {
				row.Cells = append(row.Cells, Cell{}, Cell{})
				continue
			}
			row.Role = RoleData
			row.Cells = append(row.Cells,
				Cell{Text: dailyName(slot.Student)},
				Cell{Text: day.Get(col.Period, slot.Student.Key())},
			)
		}
		t.Rows = append(t.Rows, row)
	}

	counts := Row{Role: RoleSummary}
	tallies := make([]map[string]int, len(dr.Columns))
	for i, col := range dr.Columns {
		counts.Cells = append(counts.Cells, Cell{Text: headcount(col.Count), Span: 2})

		present := col.Students()
		keys := make([]string, len(present))
		for j, s := range present {
			keys[j] = s.Key()
		}
		tallies[i] = day.Tally(col.Period, keys)
	}
	t.Rows = append(t.Rows, counts)

	for _, letter := range ledger.Letters(tallies...) {
		row := Row{Role: RoleSummary}
		for _, tally := range tallies {
			text := ""
			if n := tally[letter]; n > 0 {
				text = letter + " : " + headcount(n)
			}
			row.Cells = append(row.Cells, Cell{Text: text, Span: 2})
		}
		t.Rows = append(t.Rows, row)
	}

	return Report{Kind: KindDaily, Title: t.Title, Tables: []Table{t}}
}

func dailyName(s roster.Student) string {
	if s.State() == roster.Paused {
		return StudentLabel(s) + PausedSuffix
	}
	return StudentLabel(s)
}
