package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses a date expression relative to now.
// Supports: "today", "yesterday", "tomorrow", "monday", "next tuesday", "on friday",
// weekday markers ("월", "월요일"), and ISO dates ("2025-03-03").
// Weekday forms resolve to the next occurrence after today.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	switch s {
	case "", "today", "오늘":
		return truncateToDay(now), nil
	case "tomorrow", "내일":
		return truncateToDay(now).AddDate(0, 0, 1), nil
	case "yesterday", "어제":
		return truncateToDay(now).AddDate(0, 0, -1), nil
	}

	cleaned := strings.TrimPrefix(s, "next ")
	if wd, ok := parseWeekday(cleaned); ok {
		return nextWeekday(now, wd), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", s, now.Location()); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseMonth parses "3", "2025-03" or "2025.03" into a year and month.
// A bare month number uses the year of now.
func ParseMonth(s string, now time.Time) (int, time.Month, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"2006-01", "2006.01", "2006-1", "2006.1"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), t.Month(), nil
		}
	}
	if m, err := strconv.Atoi(s); err == nil && m >= 1 && m <= 12 {
		return now.Year(), time.Month(m), nil
	}
	return 0, 0, fmt.Errorf("invalid month %q (expected 1-12 or YYYY-MM)", s)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(s string) (time.Weekday, bool) {
	if wd, ok := weekdays[s]; ok {
		return wd, true
	}
	s = strings.TrimSuffix(s, "요일")
	wd, ok := glyphWeekdays[s]
	return wd, ok
}

// nextWeekday returns the next occurrence of the given weekday after now.
// If now is that weekday, it returns the following week.
func nextWeekday(now time.Time, wd time.Weekday) time.Time {
	today := truncateToDay(now)
	daysAhead := int(wd) - int(today.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return today.AddDate(0, 0, daysAhead)
}
