package cli

import (
	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

var schoolsCmd = LeafCommand{
	Use:   "schools",
	Short: "Show students grouped by school",
	BoolFlags: []BoolFlag{
		{Name: "grade", Usage: "annotate names with their grade"},
		{Name: "all", Usage: "include paused and withdrawn students"},
	},
	StrFlags: withExportFlags(
		StringFlag{Name: "title", Usage: "label appended to the report title"},
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

		var opts report.SchoolOptions
		opts.Title, _ = cmd.Flags().GetString("title")
		opts.ShowGrade, _ = cmd.Flags().GetBool("grade")
		opts.AllStatuses, _ = cmd.Flags().GetBool("all")

		return runSchools(cmd, snap.Students, opts, exportFlagValues(cmd, app.cfg.Report.PDFFont))
	},
}.Build()

func runSchools(cmd *cobra.Command, students []roster.Student, opts report.SchoolOptions, exp exportOptions) error {
	return writeReports(cmd, []report.Report{report.SchoolReport(students, opts)}, exp, "schools")
}
