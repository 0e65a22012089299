// Package report assembles roster groupings and assignment tallies into
// rendering-agnostic tables of role-tagged rows.
package report

import "strings"

// Kind names a report shape.
type Kind string

const (
	KindStudents Kind = "students"
	KindGrades   Kind = "grades"
	KindMatrix   Kind = "matrix"
	KindDaily    Kind = "daily"
	KindSchools  Kind = "schools"
)

// Role tags the semantic purpose of a row.
type Role string

const (
	RoleHeader  Role = "header"
	RoleGroup   Role = "group"
	RoleData    Role = "data"
	RoleSummary Role = "summary"
	RoleBlank   Role = "blank"
)

// Cell is one table cell. Text may hold several lines separated by "\n".
// Span is the number of columns the cell covers; zero means one.
type Cell struct {
	Text string `json:"text"`
	Span int    `json:"span,omitempty"`
}

// Lines splits the cell text into its display lines.
func (c Cell) Lines() []string {
	if c.Text == "" {
		return nil
	}
	return strings.Split(c.Text, "\n")
}

// Width is the number of columns the cell covers.
func (c Cell) Width() int {
	if c.Span > 1 {
		return c.Span
	}
	return 1
}

// Row is an ordered list of cells with a role.
type Row struct {
	Role  Role   `json:"role"`
	Cells []Cell `json:"cells"`
}

// Table is a titled sequence of rows. The first row is the header.
type Table struct {
	Title   string `json:"title,omitempty"`
	Caption string `json:"caption,omitempty"`
	Rows    []Row  `json:"rows"`
}

// Columns returns the column count implied by the header row.
func (t Table) Columns() int {
	if len(t.Rows) == 0 {
		return 0
	}
	n := 0
	for _, c := range t.Rows[0].Cells {
		n += c.Width()
	}
	return n
}

// RowsWithRole returns the rows tagged with role, in order.
func (t Table) RowsWithRole(role Role) []Row {
	var out []Row
	for _, r := range t.Rows {
		if r.Role == role {
			out = append(out, r)
		}
	}
	return out
}

// Report is one assembled report.
type Report struct {
	Kind    Kind    `json:"kind"`
	Title   string  `json:"title"`
	Version string  `json:"version,omitempty"`
	Tables  []Table `json:"tables"`
}

func newRow(role Role, texts ...string) Row {
	cells := make([]Cell, len(texts))
	for i, t := range texts {
		cells[i] = Cell{Text: t}
	}
	return Row{Role: role, Cells: cells}
}
