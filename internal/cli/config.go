package cli

import "github.com/spf13/cobra"

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Manage the rollbook configuration file",
	Subcommands: []*cobra.Command{
		configInitCmd,
		configShowCmd,
	},
}.Build()
