// Package sheet reads the student table from a spreadsheet export and turns
// it into a roster snapshot.
package sheet

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/stringutil"
)

// Required header names, after normalization.
const (
	FieldID      = "학생ID"
	FieldName    = "이름"
	FieldSchool  = "학교"
	FieldGrade   = "학년"
	FieldDays    = "등원요일"
	FieldPeriods = "수업교시"
	FieldStatus  = "상태"
)

// RequiredFields lists the snapshot contract in its canonical order.
var RequiredFields = []string{FieldID, FieldName, FieldSchool, FieldGrade, FieldDays, FieldPeriods, FieldStatus}

var (
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")
	ErrNoSheet           = errors.New("workbook does not contain any sheets")
)

// ValidationError reports a header row that is missing required fields.
type ValidationError struct {
	Missing []string
	Found   []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("snapshot header does not match: missing %s (found %s)",
		formatList(e.Missing), formatList(e.Found))
}

func formatList(fields []string) string {
	if len(fields) == 0 {
		return "[]"
	}
	return "[" + strings.Join(fields, ", ") + "]"
}

// Parse converts raw rows (header first) into a snapshot. An empty table
// yields an empty snapshot; a header without every required field yields a
// *ValidationError.
func Parse(rows [][]string) (roster.Snapshot, error) {
	if len(rows) == 0 {
		return roster.NewSnapshot(nil), nil
	}

	header := make([]string, len(rows[0]))
	index := make(map[string]int, len(header))
	for i, h := range rows[0] {
		header[i] = stringutil.Normalize(h)
		if _, dup := index[header[i]]; !dup {
			index[header[i]] = i
		}
	}

	var missing []string
	for _, f := range RequiredFields {
		if _, ok := index[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		found := make([]string, 0, len(header))
		for _, h := range header {
			if h != "" {
				found = append(found, h)
			}
		}
		return roster.Snapshot{}, &ValidationError{Missing: missing, Found: found}
	}

	cell := func(row []string, field string) string {
		i := index[field]
		if i < len(row) {
			return row[i]
		}
		return ""
	}

	students := make([]roster.Student, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		if isBlank(row) {
			skipped++
			continue
		}
		students = append(students, roster.NewStudent(
			cell(row, FieldID),
			cell(row, FieldName),
			cell(row, FieldSchool),
			cell(row, FieldGrade),
			cell(row, FieldDays),
			cell(row, FieldPeriods),
			cell(row, FieldStatus),
		))
	}

	snap := roster.NewSnapshot(students)
	slog.Debug("snapshot parsed", "students", len(students), "blank_rows", skipped, "version", snap.Version)
	return snap, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if stringutil.Normalize(c) != "" {
			return false
		}
	}
	return true
}
