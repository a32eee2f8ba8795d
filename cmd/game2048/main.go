// game2048 replays and inspects 2048 games from the command line.
//
// Usage:
//
//	game2048 list                    - List available game modes
//	game2048 replay <moves>          - Play a move sequence and print each board
//	game2048 check --board <file>    - Evaluate the terminal state of a saved board
//	game2048 scores [game]           - Show high scores for a game mode
//	game2048 config                  - Print the configuration in effect
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible games
//	--db <path>           - Set database path (default: ~/.game2048/scores.db)
//	--config <path>       - Path to a custom t2048.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/game2048/internal/config"
	"github.com/vovakirdan/game2048/internal/games/t2048"
)

// options holds the global flags shared by all subcommands.
type options struct {
	seed       int64
	dbPath     string
	configPath string
	difficulty string
	logLevel   string

	logger *log.Logger
	cfg    config.T2048Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "game2048",
		Short: "2048 - tilt, merge and replay boards in your terminal",
		Long: `game2048 drives the 2048 board engine from the command line.

Available commands:
  list     - Show all game modes
  replay   - Play a sequence of moves and print every board
  check    - Evaluate a saved board (empty space, max tile, moves left)
  scores   - View high scores
  config   - Print the configuration in effect

Examples:
  game2048 list
  game2048 replay NNEWSW --seed 42
  game2048 replay up,left,left --board ./board.yaml --spawn=false
  game2048 check --board ./board.yaml
  game2048 scores 2048`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", "~/.game2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&opts.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newReplayCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newScoresCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// setup builds the logger and loads the game configuration.
func (o *options) setup(cmd *cobra.Command) error {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}
	o.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "game2048",
		Level:           level,
	})

	cfg, err := config.LoadT2048(o.configPath)
	if err != nil {
		return err
	}
	if o.difficulty != "" {
		preset, err := config.ParsePreset(o.difficulty)
		if err != nil {
			return err
		}
		config.ApplyT2048Preset(&cfg, preset)
	}
	o.cfg = cfg

	t2048.SetSettings(cfg.Settings())
	t2048.SetStartLevel(cfg.Campaign.StartLevel)

	o.logger.Debug("config loaded",
		"size", cfg.Board.Size,
		"max_piece", cfg.Board.MaxPiece,
		"prob_4", cfg.Spawn.Prob4,
		"initial_tiles", cfg.Spawn.InitialTiles,
	)
	return nil
}
