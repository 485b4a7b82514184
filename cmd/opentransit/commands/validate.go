package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/opentransit/engine"
)

func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a run config file",
		Long: `Validate a YAML run config file.

This command checks:
  - YAML syntax and unknown keys
  - Field constraints (window size, tick rate, color ranges)`,
		Example: `  # Validate the file given with --config
  opentransit validate --config run.yaml

  # Validate a specific file
  opentransit validate ./configs/depot.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no config file given")
			}

			log.Info().Str("path", path).Msg("Validating run config")
			cfg, err := engine.LoadRunConfig(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%q %dx%d)\n", path, cfg.Title, cfg.Width, cfg.Height)
			return nil
		},
	}

	return cmd
}
