package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
)

const (
	pdfGridSize   = 24
	pdfFontFamily = "rollbook"
	pdfLineHeight = 4.2
	pdfFontSize   = 8
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfHeaderFill  = props.Color{Red: 235, Green: 235, Blue: 235}
	pdfSummaryFill = props.Color{Red: 250, Green: 243, Blue: 230}
)

// exportOptions selects how a report command writes its output.
type exportOptions struct {
	Format string // "", "pdf" or "json"
	Output string
	Font   string
}

// writeReports prints reps to the command output, or exports them when a
// format is set. name is the file stem used when no --output is given.
func writeReports(cmd *cobra.Command, reps []report.Report, exp exportOptions, name string) error {
	out := cmd.OutOrStdout()

	switch exp.Format {
	case "":
		styled := isTerminal(out)
		for i, rep := range reps {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			if err := renderReport(out, rep, styled); err != nil {
				return err
			}
		}
		return nil

	case "json":
		if exp.Output == "" {
			return writeJSON(out, reps)
		}
		f, err := os.Create(exp.Output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exp.Output, err)
		}
		defer func() { _ = f.Close() }()
		if err := writeJSON(f, reps); err != nil {
			return err
		}

	case "pdf":
		if exp.Output == "" {
			exp.Output = name + ".pdf"
		}
		if err := renderPDF(reps, exp.Output, exp.Font); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unsupported export format %q (supported: pdf, json)", exp.Format)
	}

	_, _ = fmt.Fprintf(out, "Exported report to %s\n", Primary(exp.Output))
	return nil
}

func writeJSON(w io.Writer, reps []report.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	var v any = reps
	if len(reps) == 1 {
		v = reps[0]
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// renderPDF lays every report out on A4 pages and saves the document.
// fontPath, when set, is a TTF registered for all text so Hangul renders.
func renderPDF(reps []report.Report, outputPath, fontPath string) error {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithMaxGridSize(pdfGridSize).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12)

	if fontPath != "" {
		fonts, err := repository.New().
			AddUTF8Font(pdfFontFamily, fontstyle.Normal, fontPath).
			AddUTF8Font(pdfFontFamily, fontstyle.Bold, fontPath).
			Load()
		if err != nil {
			return fmt.Errorf("loading PDF font %s: %w", fontPath, err)
		}
		builder = builder.WithCustomFonts(fonts).WithDefaultFont(&props.Font{Family: pdfFontFamily})
	}

	m := maroto.New(builder.Build())
	for i, rep := range reps {
		if i > 0 {
			m.AddRow(8)
		}
		addReport(m, rep)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return doc.Save(outputPath)
}

func addReport(m core.Maroto, rep report.Report) {
	m.AddRow(10,
		text.NewCol(pdfGridSize, rep.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  14,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(3, line.NewCol(pdfGridSize, props.Line{Color: &pdfLineColor}))

	for _, t := range rep.Tables {
		if len(rep.Tables) > 1 && t.Title != "" {
			m.AddRow(7,
				text.NewCol(pdfGridSize, t.Title, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			)
		}
		widths := columnWidths(t, pdfGridSize)
		for _, r := range t.Rows {
			addTableRow(m, r, widths)
		}
		if t.Caption != "" {
			m.AddRow(6,
				text.NewCol(pdfGridSize, t.Caption, props.Text{Size: 7, Top: 1, Align: align.Right, Color: &pdfMutedColor}),
			)
		}
		m.AddRow(4)
	}
}

func addTableRow(m core.Maroto, r report.Row, widths []int) {
	lines := 1
	for _, c := range r.Cells {
		if n := len(c.Lines()); n > lines {
			lines = n
		}
	}

	cellProps := &props.Cell{BorderType: border.Full, BorderColor: &pdfLineColor, BorderThickness: 0.2}
	textProps := props.Text{Size: pdfFontSize, Left: 1}
	switch r.Role {
	case report.RoleHeader:
		cellProps.BackgroundColor = &pdfHeaderFill
		textProps.Style = fontstyle.Bold
		textProps.Align = align.Center
	case report.RoleSummary:
		cellProps.BackgroundColor = &pdfSummaryFill
		textProps.Style = fontstyle.Bold
	}

	cols := make([]core.Col, 0, len(r.Cells))
	pos := 0
	for _, c := range r.Cells {
		size := 0
		for i := 0; i < c.Width() && pos < len(widths); i++ {
			size += widths[pos]
			pos++
		}
		if size == 0 {
			break
		}
		cl := col.New(size).WithStyle(cellProps)
		for i, ln := range c.Lines() {
			p := textProps
			p.Top = 1 + float64(i)*pdfLineHeight
			cl.Add(text.New(ln, p))
		}
		cols = append(cols, cl)
	}
	m.AddRow(2+float64(lines)*pdfLineHeight, cols...)
}

// columnWidths splits grid among the table's columns in proportion to the
// widest single-span text in each, giving every column at least one unit.
func columnWidths(t report.Table, grid int) []int {
	n := t.Columns()
	if n == 0 {
		return nil
	}
	if n >= grid {
		widths := make([]int, n)
		for i := range widths {
			widths[i] = 1
		}
		return widths
	}

	weights := make([]int, n)
	for i := range weights {
		weights[i] = 2
	}
	for _, r := range t.Rows {
		pos := 0
		for _, c := range r.Cells {
			if c.Width() == 1 && pos < n {
				for _, ln := range c.Lines() {
					if w := utf8.RuneCountInString(ln); w > weights[pos] {
						weights[pos] = w
					}
				}
			}
			pos += c.Width()
		}
	}

	total := 0
	for _, w := range weights {
		total += w
	}
	widths := make([]int, n)
	used := 0
	for i, w := range weights {
		widths[i] = 1 + (grid-n)*w/total
		used += widths[i]
	}
	// hand leftover units to the heaviest columns
	for used < grid {
		best := 0
		for i := range weights {
			if weights[i]*widths[best] > weights[best]*widths[i] {
				best = i
			}
		}
		widths[best]++
		used++
	}
	return widths
}

// exportFlagValues reads --export and --output; font comes from config.
func exportFlagValues(cmd *cobra.Command, font string) exportOptions {
	format, _ := cmd.Flags().GetString("export")
	output, _ := cmd.Flags().GetString("output")
	return exportOptions{Format: format, Output: output, Font: font}
}
