package report

import (
	"strconv"
	"strings"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

// GradeOptions controls the grade roster report.
type GradeOptions struct {
	Title      string // e.g. "2025.03"
	ShowSchool bool   // prefix each school group with 【school】
	ShowCount  bool   // suffix school groups of four or more with their size
	// AllStatuses includes paused and withdrawn students in the grade rows.
	AllStatuses bool
}

// minShownGroupCount is the smallest school group whose size is printed.
const minShownGroupCount = 4

// GradeReport builds the grade-by-grade roster with the weekly-frequency
// summary row.
func GradeReport(students []roster.Student, opts GradeOptions) Report {
	r := roster.BuildGradeRoster(students, !opts.AllStatuses)

	t := Table{
		Title: titled("학년별 명단", opts.Title),
		Rows:  []Row{newRow(RoleHeader, "학년", "학생 명단", "인원수")},
	}
	for _, g := range r.Grades {
		t.Rows = append(t.Rows, newRow(RoleData, g.Grade, formatGroups(g.Schools, opts), strconv.Itoa(g.Count)))
	}

	var summary []string
	if s := formatGroups(r.OnceAWeek, opts); s != "" {
		summary = append(summary, "주 1회: "+s)
	}
	if s := formatGroups(r.ThriceAWeek, opts); s != "" {
		summary = append(summary, "주 3회: "+s)
	}
	t.Rows = append(t.Rows, newRow(RoleSummary, "합계", strings.Join(summary, "\n"), strconv.Itoa(r.Total)))

	return Report{Kind: KindGrades, Title: t.Title, Tables: []Table{t}}
}

func formatGroups(groups []roster.SchoolGroup, opts GradeOptions) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, formatGroup(g, opts))
	}
	return strings.Join(parts, " ")
}

// formatGroup renders one school group: "【school】name", "【school】[a b]",
// with " N명" appended for large groups when counts are shown.
func formatGroup(g roster.SchoolGroup, opts GradeOptions) string {
	names := make([]string, len(g.Students))
	for i, s := range g.Students {
		names[i] = s.Name
	}
	joined := strings.Join(names, " ")
	if !opts.ShowSchool && !opts.ShowCount {
		return joined
	}

	var b strings.Builder
	if opts.ShowSchool {
		b.WriteString("【" + g.School + "】")
	}
	if len(names) == 1 {
		b.WriteString(joined)
	} else {
		b.WriteString("[" + joined + "]")
	}
	if opts.ShowCount && len(names) >= minShownGroupCount {
		b.WriteString(" " + headcount(len(names)))
	}
	return b.String()
}

func titled(name, label string) string {
	if label == "" {
		return name
	}
	return name + " (" + label + ")"
}
