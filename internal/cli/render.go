package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	summaryStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8C00")).Padding(0, 1)
	blankStyle    = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	selectedStyle = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	plainStyle    = lipgloss.NewStyle().Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8C00"))
)

// highlightFunc reports whether the cell at (row, col) of a report table is
// selected. Row indexes count the header as row 0.
type highlightFunc func(row, col int) bool

// renderReport writes every table of rep as a bordered text table. Styled
// output uses rounded borders and colors; plain output is ASCII only.
func renderReport(w io.Writer, rep report.Report, styled bool) error {
	for i, t := range rep.Tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, renderTable(t, styled, nil)); err != nil {
			return err
		}
	}
	return nil
}

// renderTable renders one report table. Spanned cells are widened by padding
// the row with empty cells.
func renderTable(t report.Table, styled bool, selected highlightFunc) string {
	var b strings.Builder
	if t.Title != "" {
		if styled {
			b.WriteString(titleStyle.Render(t.Title))
		} else {
			b.WriteString(t.Title)
		}
		b.WriteString("\n")
	}

	var header []string
	body := t.Rows
	if len(body) > 0 && body[0].Role == report.RoleHeader {
		header = flatten(body[0], t.Columns())
		body = body[1:]
	}
	rows := make([][]string, len(body))
	for i, r := range body {
		rows[i] = flatten(r, t.Columns())
	}

	tbl := table.New().Headers(header...).Rows(rows...)
	if styled {
		tbl = tbl.Border(lipgloss.RoundedBorder()).
			BorderStyle(silentStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if selected != nil && selected(row+1, col) {
					return selectedStyle
				}
				switch body[row].Role {
				case report.RoleSummary:
					return summaryStyle
				case report.RoleBlank:
					return blankStyle
				}
				return cellStyle
			})
	} else {
		tbl = tbl.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(row, col int) lipgloss.Style { return plainStyle })
	}
	b.WriteString(tbl.String())

	if t.Caption != "" {
		b.WriteString("\n")
		if styled {
			b.WriteString(Silent(t.Caption))
		} else {
			b.WriteString(t.Caption)
		}
	}
	return b.String()
}

// flatten expands spans into empty trailing cells and pads the row to width.
func flatten(r report.Row, width int) []string {
	out := make([]string, 0, width)
	for _, c := range r.Cells {
		out = append(out, c.Text)
		for i := 1; i < c.Width(); i++ {
			out = append(out, "")
		}
	}
	for len(out) < width {
		out = append(out, "")
	}
	return out
}
