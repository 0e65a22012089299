package roster

import "sort"

// SchoolGroup is a run of students sharing a school, ordered by name.
type SchoolGroup struct {
	School   string    `json:"school"`
	Students []Student `json:"students"`
}

// GradeGroup holds the students of one grade grouped by school.
type GradeGroup struct {
	Grade   string        `json:"grade"`
	Schools []SchoolGroup `json:"schools"`
	Count   int           `json:"count"`
}

// GradeRoster is the grade-by-grade roster plus the weekly-frequency summaries.
type GradeRoster struct {
	Grades []GradeGroup `json:"grades"`
	Total  int          `json:"total"`
	// OnceAWeek and ThriceAWeek hold the enrolled students that come in on
	// exactly one or exactly three weekdays.
	OnceAWeek   []SchoolGroup `json:"once_a_week"`
	ThriceAWeek []SchoolGroup `json:"thrice_a_week"`
}

// BuildGradeRoster groups students by the fixed grade order, then school,
// then name. Grades outside GradeOrder are left out.
func BuildGradeRoster(students []Student, activeOnly bool) GradeRoster {
	pool := students
	if activeOnly {
		pool = Active(students)
	}

	byGrade := make(map[string][]Student)
	for _, s := range pool {
		byGrade[s.Grade] = append(byGrade[s.Grade], s)
	}

	var r GradeRoster
	for _, grade := range GradeOrder {
		members := byGrade[grade]
		if len(members) == 0 {
			continue
		}
		r.Grades = append(r.Grades, GradeGroup{
			Grade:   grade,
			Schools: groupBySchool(members),
			Count:   len(members),
		})
		r.Total += len(members)
	}

	active := Active(students)
	r.OnceAWeek = groupBySchool(filter(active, func(s Student) bool { return s.DayCount() == 1 }))
	r.ThriceAWeek = groupBySchool(filter(active, func(s Student) bool { return s.DayCount() == 3 }))
	return r
}

// groupBySchool sorts a copy of students by (school, name) and splits it into
// consecutive school runs.
func groupBySchool(students []Student) []SchoolGroup {
	if len(students) == 0 {
		return nil
	}
	sorted := make([]Student, len(students))
	copy(sorted, students)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].School != sorted[j].School {
			return sorted[i].School < sorted[j].School
		}
		return sorted[i].Name < sorted[j].Name
	})

	var groups []SchoolGroup
	for _, s := range sorted {
		if n := len(groups); n > 0 && groups[n-1].School == s.School {
			groups[n-1].Students = append(groups[n-1].Students, s)
			continue
		}
		groups = append(groups, SchoolGroup{School: s.School, Students: []Student{s}})
	}
	return groups
}
