package report

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

// SchoolGrade joins a school name and a grade label, dropping the grade's
// leading level marker when the school name already ends with it:
// "대치초" + "초3" -> "대치초3", "대치중" + "초3" -> "대치중초3".
func SchoolGrade(school, grade string) string {
	school = strings.TrimSpace(school)
	grade = strings.TrimSpace(grade)
	if school == "" || grade == "" {
		return school + grade
	}
	last, _ := utf8.DecodeLastRuneInString(school)
	first, size := utf8.DecodeRuneInString(grade)
	if last == first {
		return school + grade[size:]
	}
	return school + grade
}

// StudentLabel renders "name (schoolgrade)".
func StudentLabel(s roster.Student) string {
	return s.Name + " (" + SchoolGrade(s.School, s.Grade) + ")"
}

func headcount(n int) string {
	return strconv.Itoa(n) + "명"
}
