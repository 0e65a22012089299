package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "rollbook",
	Short:        "Class rosters, daily sheets and assignment tallies for an academy",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default ~/.rollbook/config.yaml)")
	rootCmd.PersistentFlags().String("snapshot", "", "student snapshot file (.xlsx or .csv), overrides snapshot.path")
	rootCmd.PersistentFlags().String("sheet", "", "worksheet name, overrides snapshot.sheet")
	rootCmd.PersistentFlags().String("ledger", "", "assignment ledger backend (file, redis, memory), overrides ledger.backend")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(gradesCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(schoolsCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
