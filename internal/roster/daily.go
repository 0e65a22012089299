package roster

import "sort"

// DefaultDailyPeriods are the periods of the daily attendance sheet.
var DefaultDailyPeriods = []int{1, 2, 3}

// Slot is one line of a daily column: a student, or a blank separator.
type Slot struct {
	Student Student `json:"student"`
	Blank   bool    `json:"blank,omitempty"`
}

// DailyColumn is the ordered list of slots for one period.
type DailyColumn struct {
	Period int    `json:"period"`
	Slots  []Slot `json:"slots"`
	Count  int    `json:"count"`
}

// Students returns the non-blank slots' students in order.
func (c DailyColumn) Students() []Student {
	out := make([]Student, 0, c.Count)
	for _, s := range c.Slots {
		if !s.Blank {
			out = append(out, s.Student)
		}
	}
	return out
}

// DailyRoster is the per-period student layout of one weekday. Every column
// has exactly Rows slots.
type DailyRoster struct {
	Weekday string        `json:"weekday"`
	Columns []DailyColumn `json:"columns"`
	Rows    int           `json:"rows"`
}

// BuildDailyRoster lays out the students attending weekday for each period,
// ordered by school level, school and name. A blank slot separates adjacent
// students of different school levels, and all columns are padded with
// blanks to the longest one. Paused students appear only when includePaused
// is set; other statuses never appear.
func BuildDailyRoster(students []Student, weekday string, periods []int, includePaused bool) DailyRoster {
	if len(periods) == 0 {
		periods = DefaultDailyPeriods
	}

	pool := filter(students, func(s Student) bool {
		switch s.State() {
		case Enrolled:
			return true
		case Paused:
			return includePaused
		default:
			return false
		}
	})

	r := DailyRoster{Weekday: weekday, Columns: make([]DailyColumn, 0, len(periods))}
	for _, p := range periods {
		members := Attending(pool, weekday, p)
		sort.SliceStable(members, func(i, j int) bool {
			a, b := members[i], members[j]
			if a.Level() != b.Level() {
				return a.Level() < b.Level()
			}
			if a.School != b.School {
				return a.School < b.School
			}
			return a.Name < b.Name
		})

		col := DailyColumn{Period: p, Count: len(members)}
		for i, s := range members {
			if i > 0 && members[i-1].Level() != s.Level() {
				col.Slots = append(col.Slots, Slot{Blank: true})
			}
			col.Slots = append(col.Slots, Slot{Student: s})
		}
		if len(col.Slots) > r.Rows {
			r.Rows = len(col.Slots)
		}
		r.Columns = append(r.Columns, col)
	}

	for i := range r.Columns {
		for len(r.Columns[i].Slots) < r.Rows {
			r.Columns[i].Slots = append(r.Columns[i].Slots, Slot{Blank: true})
		}
	}
	return r
}
