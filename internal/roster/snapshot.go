package roster

import (
	"sort"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/hashutil"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

// Snapshot is one read-only refresh of the student table. Version identifies
// its content, so anything derived from a snapshot can be cached by Version.
type Snapshot struct {
	Students []Student `json:"students"`
	Version  string    `json:"version"`
}

// NewSnapshot copies students into a Snapshot and fingerprints them.
func NewSnapshot(students []Student) Snapshot {
	rows := make([][]string, len(students))
	copied := make([]Student, len(students))
	for i, s := range students {
		copied[i] = s
		rows[i] = []string{s.ID, s.Name, s.School, s.Grade, s.Days, s.Periods, s.Status}
	}
	return Snapshot{Students: copied, Version: hashutil.Fingerprint(rows)}
}

// Active returns the enrolled students, preserving order.
func Active(students []Student) []Student {
	return filter(students, func(s Student) bool { return s.State() == Enrolled })
}

// PeriodsInUse returns the sorted set of period numbers mentioned by any
// student, or [1 2 3] when none are.
func PeriodsInUse(students []Student) []int {
	seen := make(map[int]bool)
	for _, s := range students {
		for _, n := range schedule.PeriodNumbers(s.Periods) {
			seen[n] = true
		}
	}
	if len(seen) == 0 {
		return []int{1, 2, 3}
	}
	periods := make([]int, 0, len(seen))
	for n := range seen {
		periods = append(periods, n)
	}
	sort.Ints(periods)
	return periods
}

// FindByKey returns the student with the given ledger key.
func FindByKey(students []Student, key string) (Student, bool) {
	for _, s := range students {
		if s.Key() == key {
			return s, true
		}
	}
	return Student{}, false
}

func filter(students []Student, keep func(Student) bool) []Student {
	out := make([]Student, 0, len(students))
	for _, s := range students {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
