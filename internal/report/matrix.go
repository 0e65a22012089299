package report

import (
	"strconv"
	"strings"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

// DefaultMatrixWeekdays are the weekday columns of the weekly class matrix.
var DefaultMatrixWeekdays = []string{"월", "화", "수", "목"}

// MatrixOptions controls the weekday x period matrix.
type MatrixOptions struct {
	Footer   string   // label printed under each block, e.g. "2025-03"
	Weekdays []string // defaults to DefaultMatrixWeekdays
	Periods  []int    // defaults to every period in use by enrolled students
}

// MatrixReport builds one table per period with a column per weekday. Each
// cell lists the attending enrolled students by name followed by a headcount.
func MatrixReport(students []roster.Student, opts MatrixOptions) Report {
	active := roster.Active(students)

	weekdays := opts.Weekdays
	if len(weekdays) == 0 {
		weekdays = DefaultMatrixWeekdays
	}
	periods := opts.Periods
	if len(periods) == 0 {
		periods = roster.PeriodsInUse(active)
	}

	header := []string{"수업시간"}
	header = append(header, weekdays...)
	header = append(header, "비고")

	rep := Report{Kind: KindMatrix, Title: strings.TrimSpace(opts.Footer + " 반편성 내역")}
	for _, block := range roster.BuildPeriodRoster(active, weekdays, periods) {
		label := strconv.Itoa(block.Period) + "교시"
		cells := []string{label}
		for _, slot := range block.Slots {
			lines := make([]string, 0, len(slot.Students)+1)
			for _, s := range slot.Students {
				lines = append(lines, StudentLabel(s))
			}
			if len(slot.Students) > 0 {
				lines = append(lines, headcount(len(slot.Students)))
			}
			cells = append(cells, strings.Join(lines, "\n"))
		}
		cells = append(cells, "")

		rep.Tables = append(rep.Tables, Table{
			Title:   label,
			Caption: opts.Footer,
			Rows:    []Row{newRow(RoleHeader, header...), newRow(RoleData, cells...)},
		})
	}
	return rep
}
