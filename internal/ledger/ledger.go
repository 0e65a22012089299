// Package ledger stores the single-letter teacher assignments of the daily
// attendance sheet, keyed by date, period and student key.
package ledger

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DateKey formats t as the ledger's isoDate key.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Sanitize reduces raw input to a single uppercase letter A-Z, or "" when the
// first non-space character is not a letter.
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return ""
	}
	return string(r)
}

// CellKey is the field name of one (period, student) cell within a day.
func CellKey(period int, studentKey string) string {
	return strconv.Itoa(period) + "|" + studentKey
}

// SplitCellKey is the inverse of CellKey.
func SplitCellKey(cell string) (int, string, bool) {
	p, key, ok := strings.Cut(cell, "|")
	if !ok {
		return 0, "", false
	}
	period, err := strconv.Atoi(p)
	if err != nil {
		return 0, "", false
	}
	return period, key, true
}

// Day holds every assignment of one date, indexed by CellKey.
type Day map[string]string

// Get returns the letter assigned to the student in period, or "".
func (d Day) Get(period int, studentKey string) string {
	return d[CellKey(period, studentKey)]
}

// Tally counts letters in period, considering only the students in present.
// Entries for students no longer in the slot are ignored, not removed.
func (d Day) Tally(period int, present []string) map[string]int {
	counts := make(map[string]int)
	seen := make(map[string]bool, len(present))
	for _, key := range present {
		if seen[key] {
			continue
		}
		seen[key] = true
		if letter := d.Get(period, key); letter != "" {
			counts[letter]++
		}
	}
	return counts
}

// Letters returns the sorted distinct letters in the tallies.
func Letters(tallies ...map[string]int) []string {
	set := make(map[string]bool)
	for _, t := range tallies {
		for letter, n := range t {
			if n > 0 {
				set[letter] = true
			}
		}
	}
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Store persists assignment days. Writes to the same cell are last-write-wins.
type Store interface {
	Put(ctx context.Context, date string, period int, studentKey, letter string) error
	Load(ctx context.Context, date string) (Day, error)
}

// Ledger is the assignment ledger handle passed to report assembly.
type Ledger struct {
	store Store
}

// New returns a Ledger backed by store.
func New(store Store) *Ledger {
	return &Ledger{store: store}
}

// Set sanitizes raw and stores the result, returning the stored letter.
// Malformed input is stored as "" rather than rejected; the error is only
// ever a storage failure.
func (l *Ledger) Set(ctx context.Context, date string, period int, studentKey, raw string) (string, error) {
	letter := Sanitize(raw)
	if err := l.store.Put(ctx, date, period, studentKey, letter); err != nil {
		return "", err
	}
	return letter, nil
}

// Get returns the stored letter for one cell, or "".
func (l *Ledger) Get(ctx context.Context, date string, period int, studentKey string) (string, error) {
	day, err := l.store.Load(ctx, date)
	if err != nil {
		return "", err
	}
	return day.Get(period, studentKey), nil
}

// Day loads every assignment of date.
func (l *Ledger) Day(ctx context.Context, date string) (Day, error) {
	day, err := l.store.Load(ctx, date)
	if err != nil {
		return nil, err
	}
	if day == nil {
		day = Day{}
	}
	return day, nil
}

// Tally counts letters for date and period over the students in present.
func (l *Ledger) Tally(ctx context.Context, date string, period int, present []string) (map[string]int, error) {
	day, err := l.Day(ctx, date)
	if err != nil {
		return nil, err
	}
	return day.Tally(period, present), nil
}
