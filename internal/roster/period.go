package roster

import "sort"

// WeekdaySlot lists the students in one weekday column of a period block.
type WeekdaySlot struct {
	Weekday  string    `json:"weekday"`
	Students []Student `json:"students"`
}

// PeriodBlock is one period of the weekly class matrix.
type PeriodBlock struct {
	Period int           `json:"period"`
	Slots  []WeekdaySlot `json:"slots"`
}

// BuildPeriodRoster returns, for each period and each weekday, the students
// attending that slot sorted by name.
func BuildPeriodRoster(students []Student, weekdays []string, periods []int) []PeriodBlock {
	blocks := make([]PeriodBlock, 0, len(periods))
	for _, p := range periods {
		block := PeriodBlock{Period: p, Slots: make([]WeekdaySlot, 0, len(weekdays))}
		for _, wd := range weekdays {
			block.Slots = append(block.Slots, WeekdaySlot{
				Weekday:  wd,
				Students: sortByName(filter(students, func(s Student) bool { return s.Attends(wd, p) })),
			})
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// Attending returns the students in weekday+period, in input order.
func Attending(students []Student, weekday string, period int) []Student {
	return filter(students, func(s Student) bool { return s.Attends(weekday, period) })
}

func sortByName(students []Student) []Student {
	sort.SliceStable(students, func(i, j int) bool {
		return students[i].Name < students[j].Name
	})
	return students
}
