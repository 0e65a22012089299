package report

import (
	"strconv"
	"strings"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

// SchoolOptions controls the school roster report.
type SchoolOptions struct {
	Title     string
	ShowGrade bool // annotate names as "name(grade)"
	// AllStatuses includes paused and withdrawn students.
	AllStatuses bool
}

// SchoolReport lists students per school with per-school and total counts.
func SchoolReport(students []roster.Student, opts SchoolOptions) Report {
	r := roster.BuildSchoolRoster(students, !opts.AllStatuses)

	t := Table{
		Title: titled("학교별 명단", opts.Title),
		Rows:  []Row{newRow(RoleHeader, "학교", "학생 명단", "인원수")},
	}
	for _, g := range r.Schools {
		names := make([]string, len(g.Students))
		for i, s := range g.Students {
			names[i] = s.Name
			if opts.ShowGrade {
				names[i] += "(" + s.Grade + ")"
			}
		}
		t.Rows = append(t.Rows, newRow(RoleData, g.School, strings.Join(names, ", "), strconv.Itoa(len(g.Students))))
	}
	t.Rows = append(t.Rows, newRow(RoleSummary, "합계", "", strconv.Itoa(r.Total)))

	return Report{Kind: KindSchools, Title: t.Title, Tables: []Table{t}}
}
