package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/config"
)

var configInitCmd = LeafCommand{
	Use:   "init",
	Short: "Write a documented default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := config.HomeDir()
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("config")
		return runConfigInit(cmd, home, path)
	},
}.Build()

func runConfigInit(cmd *cobra.Command, home, path string) error {
	if path == "" {
		path = config.DefaultPath(home)
	}
	if err := config.Generate(home, path); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote default configuration to %s\n", Primary(path))
	return nil
}
