package schedule

import "time"

// Weekdays lists the seven weekday markers in calendar order, Monday first.
var Weekdays = []string{"월", "화", "수", "목", "금", "토", "일"}

var glyphWeekdays = map[string]time.Weekday{
	"월": time.Monday,
	"화": time.Tuesday,
	"수": time.Wednesday,
	"목": time.Thursday,
	"금": time.Friday,
	"토": time.Saturday,
	"일": time.Sunday,
}

// IsWeekday reports whether s is exactly one weekday marker.
func IsWeekday(s string) bool {
	_, ok := glyphWeekdays[s]
	return ok
}

// WeekdayOf returns the weekday marker for t ("월" for Monday).
func WeekdayOf(t time.Time) string {
	return GlyphFor(t.Weekday())
}

// GlyphFor returns the weekday marker for a time.Weekday.
func GlyphFor(wd time.Weekday) string {
	// Weekdays starts at Monday; time.Weekday starts at Sunday.
	return Weekdays[(int(wd)+6)%7]
}

// WeekdayIndex returns the position of the marker in Weekdays, or -1.
func WeekdayIndex(glyph string) int {
	wd, ok := glyphWeekdays[glyph]
	if !ok {
		return -1
	}
	return (int(wd) + 6) % 7
}
