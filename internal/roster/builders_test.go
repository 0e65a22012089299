package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGradeRoster(t *testing.T) {
	r := BuildGradeRoster(sampleStudents(), true)

	var grades []string
	for _, g := range r.Grades {
		grades = append(grades, g.Grade)
	}
	assert.Equal(t, []string{"초1", "초3", "중1", "고2"}, grades)
	assert.Equal(t, 5, r.Total)

	cho3 := r.Grades[1]
	assert.Equal(t, 2, cho3.Count)
	require.Len(t, cho3.Schools, 2)
	assert.Equal(t, "대치초", cho3.Schools[0].School)
	assert.Equal(t, []string{"김민수"}, names(cho3.Schools[0].Students))
	assert.Equal(t, "도곡초", cho3.Schools[1].School)

	require.Len(t, r.OnceAWeek, 1)
	assert.Equal(t, []string{"김민수"}, names(r.OnceAWeek[0].Students))

	var thrice []string
	for _, g := range r.ThriceAWeek {
		thrice = append(thrice, names(g.Students)...)
	}
	assert.Equal(t, []string{"최유나", "정하늘"}, thrice)
}

func TestBuildGradeRosterAllStatuses(t *testing.T) {
	r := BuildGradeRoster(sampleStudents(), false)
	assert.Equal(t, 7, r.Total)

	// summaries only count enrolled students
	for _, g := range r.OnceAWeek {
		for _, s := range g.Students {
			assert.Equal(t, Enrolled, s.State())
		}
	}
}

func TestBuildGradeRosterDoesNotMutateInput(t *testing.T) {
	in := sampleStudents()
	before := names(in)
	BuildGradeRoster(in, true)
	BuildSchoolRoster(in, true)
	BuildPeriodRoster(in, []string{"월", "수"}, []int{1, 2})
	BuildDailyRoster(in, "월", nil, true)
	assert.Equal(t, before, names(in))
}

func TestBuildPeriodRoster(t *testing.T) {
	blocks := BuildPeriodRoster(Active(sampleStudents()), []string{"월", "화", "수", "목"}, []int{1, 2})
	require.Len(t, blocks, 2)

	p1 := blocks[0]
	assert.Equal(t, 1, p1.Period)
	require.Len(t, p1.Slots, 4)
	assert.Equal(t, "월", p1.Slots[0].Weekday)
	assert.Equal(t, []string{"강도윤", "김민수", "박지훈", "최유나"}, names(p1.Slots[0].Students))
	assert.Empty(t, p1.Slots[1].Students)
	assert.Equal(t, []string{"강도윤", "최유나"}, names(p1.Slots[2].Students))

	p2 := blocks[1]
	// 박지훈 is day-qualified: 수2 only
	assert.Equal(t, []string{"강도윤", "최유나"}, names(p2.Slots[0].Students))
	assert.Equal(t, []string{"강도윤", "박지훈", "최유나"}, names(p2.Slots[2].Students))
}

func TestBuildDailyRoster(t *testing.T) {
	students := []Student{
		st("정하늘", "숙명여고", "고2", "월", "1", LabelEnrolled),
		st("최유나", "대치중", "중1", "월", "1,2", LabelEnrolled),
		st("김민수", "대치초", "초3", "월", "1", LabelEnrolled),
		st("강도윤", "대치초", "초1", "월", "1", LabelEnrolled),
		st("박지훈", "도곡초", "초3", "월", "월1", LabelEnrolled),
		st("이서연", "대치초", "초3", "월", "1", LabelPaused),
	}

	r := BuildDailyRoster(students, "월", nil, false)
	require.Len(t, r.Columns, 3)

	col := r.Columns[0]
	assert.Equal(t, 1, col.Period)
	assert.Equal(t, 5, col.Count)

	var layout []string
	for _, s := range col.Slots {
		if s.Blank {
			layout = append(layout, "")
			continue
		}
		layout = append(layout, s.Student.Name)
	}
	assert.Equal(t, []string{"강도윤", "김민수", "박지훈", "", "최유나", "", "정하늘"}, layout)
	assert.Equal(t, 7, r.Rows)

	// shorter columns are padded with blanks
	assert.Len(t, r.Columns[1].Slots, 7)
	assert.Equal(t, 1, r.Columns[1].Count)
	assert.False(t, r.Columns[1].Slots[0].Blank)
	assert.True(t, r.Columns[1].Slots[1].Blank)
	assert.Len(t, r.Columns[2].Slots, 7)
	assert.Equal(t, 0, r.Columns[2].Count)
	assert.Equal(t, []string{"최유나"}, names(r.Columns[1].Students()))
}

func TestBuildDailyRosterLiteralStudents(t *testing.T) {
	students := []Student{
		{Name: "고학생", School: "숙명여고", Grade: "고2", Days: "월", Periods: "1", Status: LabelEnrolled},
		{Name: "초학생", School: "대치초", Grade: "초1", Days: "월", Periods: "1", Status: LabelEnrolled},
	}

	r := BuildDailyRoster(students, "월", []int{1}, false)
	require.Len(t, r.Columns, 1)

	slots := r.Columns[0].Slots
	require.Len(t, slots, 3)
	assert.Equal(t, "초학생", slots[0].Student.Name)
	assert.True(t, slots[1].Blank)
	assert.Equal(t, "고학생", slots[2].Student.Name)
}

func TestBuildDailyRosterIncludePaused(t *testing.T) {
	r := BuildDailyRoster(sampleStudents(), "화", []int{2}, true)
	require.Len(t, r.Columns, 1)
	assert.Equal(t, []string{"이서연"}, names(r.Columns[0].Students()))

	r = BuildDailyRoster(sampleStudents(), "화", []int{2}, false)
	assert.Empty(t, r.Columns[0].Students())
	assert.Equal(t, 0, r.Rows)
}

func TestBuildDailyRosterDeterministic(t *testing.T) {
	students := sampleStudents()
	first := BuildDailyRoster(students, "월", []int{1, 2, 3}, true)
	second := BuildDailyRoster(students, "월", []int{1, 2, 3}, true)
	assert.Equal(t, first, second)
}

func TestBuildSchoolRoster(t *testing.T) {
	r := BuildSchoolRoster(sampleStudents(), true)
	var schools []string
	for _, g := range r.Schools {
		schools = append(schools, g.School)
	}
	assert.Equal(t, []string{"대치중", "대치초", "도곡초", "숙명여고"}, schools)
	assert.Equal(t, 5, r.Total)
	assert.Equal(t, []string{"강도윤", "김민수"}, names(r.Schools[1].Students))

	all := BuildSchoolRoster(sampleStudents(), false)
	assert.Equal(t, 7, all.Total)
}
