package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/game2048/internal/config"
	"github.com/vovakirdan/game2048/internal/registry"
)

func newConfigCmd(opts *options) *cobra.Command {
	var (
		gameID   string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the game configuration",
		Long: `Print the configuration in effect after --config and --difficulty are
applied. With --defaults, print the embedded default file instead, which
is a good starting point for a custom t2048.yaml.

Examples:
  game2048 config
  game2048 config --difficulty hard
  game2048 config --defaults > ~/.game2048/configs/t2048.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !registry.Exists(gameID) {
				return fmt.Errorf("unknown game %q (run 'game2048 list' to see available games)", gameID)
			}

			if defaults {
				data := config.GetDefaultYAML(gameID)
				if data == nil {
					return fmt.Errorf("no default config for game %q", gameID)
				}
				_, err := out.Write(data)
				return err
			}

			data, err := yaml.Marshal(opts.cfg)
			if err != nil {
				return fmt.Errorf("cannot encode config: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "2048", "Game mode whose config to print")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Print the embedded defaults")

	return cmd
}
