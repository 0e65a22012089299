package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[string]rrule.Weekday{
	"월": rrule.MO,
	"화": rrule.TU,
	"수": rrule.WE,
	"목": rrule.TH,
	"금": rrule.FR,
	"토": rrule.SA,
	"일": rrule.SU,
}

// ClassDates returns every date in [from, to] (inclusive, by calendar day)
// that falls on one of the given weekday markers, in ascending order.
func ClassDates(glyphs []string, from, to time.Time) ([]time.Time, error) {
	if len(glyphs) == 0 {
		return nil, nil
	}
	byDay := make([]rrule.Weekday, 0, len(glyphs))
	for _, g := range glyphs {
		wd, ok := rruleWeekdays[g]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", g)
		}
		byDay = append(byDay, wd)
	}

	start := truncateToDay(from)
	end := truncateToDay(to)
	if end.Before(start) {
		return nil, nil
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byDay,
		Dtstart:   start,
	})
	if err != nil {
		return nil, err
	}
	return r.Between(start, end, true), nil
}

// MonthRange returns the first and last day of a month in loc.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	return first, last
}
