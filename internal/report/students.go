package report

import "github.com/allykim061/Roadmap-Directory-Manager/internal/roster"

// StudentListReport lists every registered student in snapshot order.
func StudentListReport(students []roster.Student) Report {
	t := Table{
		Title: "등록 학생 목록",
		Rows:  []Row{newRow(RoleHeader, "이름", "학교", "학년", "등원요일", "수업교시", "상태")},
	}
	for _, s := range students {
		t.Rows = append(t.Rows, newRow(RoleData, s.Name, s.School, s.Grade, s.Days, s.Periods, s.Status))
	}
	t.Rows = append(t.Rows, Row{Role: RoleSummary, Cells: []Cell{
		{Text: "합계"},
		{Text: headcount(len(students)), Span: 5},
	}})
	return Report{Kind: KindStudents, Title: t.Title, Tables: []Table{t}}
}
