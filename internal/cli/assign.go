package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/schedule"
)

var assignCmd = GroupCommand{
	Use:   "assign",
	Short: "Record and inspect per-day assignment letters",
	Subcommands: []*cobra.Command{
		assignSetCmd,
		assignShowCmd,
		assignFormCmd,
	},
}.Build()

// dateFlag parses --date, defaulting to now.
func dateFlag(cmd *cobra.Command, now time.Time) (time.Time, error) {
	v, _ := cmd.Flags().GetString("date")
	if v == "" {
		return now, nil
	}
	d, err := schedule.ParseDate(v, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date value: %w", err)
	}
	return d, nil
}
