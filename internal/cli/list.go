package cli

import (
	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
)

var listCmd = LeafCommand{
	Use:      "list",
	Aliases:  []string{"students"},
	Short:    "List every registered student",
	StrFlags: withExportFlags(),
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
		return runList(cmd, snap.Students, exportFlagValues(cmd, app.cfg.Report.PDFFont))
	},
}.Build()

func runList(cmd *cobra.Command, students []roster.Student, exp exportOptions) error {
	return writeReports(cmd, []report.Report{report.StudentListReport(students)}, exp, "students")
}
