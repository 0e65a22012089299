package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/allykim061/Roadmap-Directory-Manager/internal/config"
)

var configShowCmd = LeafCommand{
	Use:   "show",
	Short: "Print the effective configuration after files, env and flags",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := resolveContext(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = app.Close() }()
		return runConfigShow(cmd, app.cfg, app.source, app.sourcePath)
	},
}.Build()

func runConfigShow(cmd *cobra.Command, cfg *config.Config, source config.Source, sourcePath string) error {
	body, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if source == config.SourceFile {
		_, _ = fmt.Fprintf(out, "# source: %s (%s)\n", source, sourcePath)
	} else {
		_, _ = fmt.Fprintf(out, "# source: %s\n", source)
	}
	_, err = out.Write(body)
	return err
}
