package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/report"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/roster"
	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

var matrixCmd = LeafCommand{
	Use:   "matrix",
	Short: "Show the weekday x period class matrix",
	StrFlags: withExportFlags(
		StringFlag{Name: "footer", Usage: "label printed under each period block (default: current YYYY-MM)"},
		StringFlag{Name: "weekdays", Usage: "weekday columns, e.g. 월,화,수,목 (default: report.weekdays)"},
		StringFlag{Name: "periods", Usage: "periods to show, e.g. 1,2,3 (default: every period in use)"},
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

		footer, _ := cmd.Flags().GetString("footer")
		if !cmd.Flags().Changed("footer") {
			footer = app.now().Format("2006-01")
		}
		weekdaysFlag, _ := cmd.Flags().GetString("weekdays")
		periodsFlag, _ := cmd.Flags().GetString("periods")

		opts, err := matrixOptions(footer, weekdaysFlag, periodsFlag, app.cfg.Report.Weekdays)
		if err != nil {
			return err
		}
		return runMatrix(cmd, snap.Students, opts, exportFlagValues(cmd, app.cfg.Report.PDFFont))
	},
}.Build()

func matrixOptions(footer, weekdaysFlag, periodsFlag string, defaultWeekdays []string) (report.MatrixOptions, error) {
	opts := report.MatrixOptions{Footer: footer, Weekdays: defaultWeekdays}
	if weekdaysFlag != "" {
		wds, err := schedule.ParseWeekdayList(weekdaysFlag)
		if err != nil {
			return opts, fmt.Errorf("invalid --weekdays value: %w", err)
		}
		opts.Weekdays = wds
	}
	if periodsFlag != "" {
		periods, err := schedule.ParsePeriodList(periodsFlag)
		if err != nil {
			return opts, fmt.Errorf("invalid --periods value: %w", err)
		}
		opts.Periods = periods
	}
	return opts, nil
}

func runMatrix(cmd *cobra.Command, students []roster.Student, opts report.MatrixOptions, exp exportOptions) error {
	name := "matrix"
	if opts.Footer != "" {
		name += "-" + opts.Footer
	}
	return writeReports(cmd, []report.Report{report.MatrixReport(students, opts)}, exp, name)
}
