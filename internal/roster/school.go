package roster

import "sort"

// SchoolRoster lists students per distinct school, schools in alphabetical order.
type SchoolRoster struct {
	Schools []SchoolGroup `json:"schools"`
	Total   int           `json:"total"`
}

// BuildSchoolRoster groups students by school. Within a school, students are
// ordered by grade, then name.
func BuildSchoolRoster(students []Student, activeOnly bool) SchoolRoster {
	pool := students
	if activeOnly {
		pool = Active(students)
	}

	bySchool := make(map[string][]Student)
	for _, s := range pool {
		bySchool[s.School] = append(bySchool[s.School], s)
	}

	schools := make([]string, 0, len(bySchool))
	for name := range bySchool {
		schools = append(schools, name)
	}
	sort.Strings(schools)

	r := SchoolRoster{Schools: make([]SchoolGroup, 0, len(schools))}
	for _, name := range schools {
		members := bySchool[name]
		sort.SliceStable(members, func(i, j int) bool {
			gi, gj := GradeRank(members[i].Grade), GradeRank(members[j].Grade)
			if gi != gj {
				return gi < gj
			}
			return members[i].Name < members[j].Name
		})
		r.Schools = append(r.Schools, SchoolGroup{School: name, Students: members})
		r.Total += len(members)
	}
	return r
}
