package cli

import (
	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

var gradesCmd = LeafCommand{
	Use:   "grades",
	Short: "Show the grade-by-grade roster with weekly frequency summaries",
	BoolFlags: []BoolFlag{
		{Name: "school", Usage: "group names by school"},
		{Name: "count", Usage: "show the size of school groups of four or more"},
		{Name: "all", Usage: "include paused and withdrawn students"},
	},
	StrFlags: withExportFlags(
		StringFlag{Name: "title", Usage: "label appended to the report title (e.g. 2025.03)"},
	),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()

		snap, err := app.loadSnapshot()
		if err != nil {
			return err
		}

		var opts report.GradeOptions
		opts.Title, _ = cmd.Flags().GetString("title")
		opts.ShowSchool, _ = cmd.Flags().GetBool("school")
		opts.ShowCount, _ = cmd.Flags().GetBool("count")
		opts.AllStatuses, _ = cmd.Flags().GetBool("all")

		return runGrades(cmd, snap.Students, opts, exportFlagValues(cmd, app.cfg.Report.PDFFont))
	},
}.Build()

func runGrades(cmd *cobra.Command, students []roster.Student, opts report.GradeOptions, exp exportOptions) error {
	return writeReports(cmd, []report.Report{report.GradeReport(students, opts)}, exp, "grades")
}
