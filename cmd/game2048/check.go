package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game2048/internal/config"
	"github.com/vovakirdan/game2048/internal/games/t2048"
)

func newCheckCmd(opts *options) *cobra.Command {
	var (
		boardPath string
		maxPiece  int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate the terminal state of a saved board",
		Long: `Load a board YAML and report whether an empty cell exists, whether the
max tile is on the board, whether any move is left and whether the game
is over.

Examples:
  game2048 check --board ./board.yaml
  game2048 check --board ./board.yaml --max-piece 4096`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-piece") {
				maxPiece = opts.cfg.Board.MaxPiece
			}
			return runCheck(cmd, opts, boardPath, maxPiece)
		},
	}

	cmd.Flags().StringVar(&boardPath, "board", "", "Board YAML to evaluate")
	cmd.Flags().IntVar(&maxPiece, "max-piece", t2048.MaxPiece, "Winning tile value (0 = none, default from config)")
	_ = cmd.MarkFlagRequired("board")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *options, boardPath string, maxPiece int) error {
	out := cmd.OutOrStdout()

	f, err := config.LoadBoardFile(boardPath)
	if err != nil {
		return err
	}
	m, err := f.Model()
	if err != nil {
		return err
	}
	m.SetMaxPiece(maxPiece)
	b := m.Board()

	fmt.Fprint(out, m)
	fmt.Fprintf(out, "empty space:  %t\n", t2048.EmptySpaceExists(b))
	fmt.Fprintf(out, "max tile:     %t (%d)\n", t2048.MaxTileExists(b, maxPiece), maxPiece)
	fmt.Fprintf(out, "move exists:  %t\n", t2048.AtLeastOneMoveExists(b))
	fmt.Fprintf(out, "game over:    %t\n", m.GameOver())

	opts.logger.Debug("checked board", "path", boardPath, "tiles", b.Count(), "max_value", b.MaxValue())
	return nil
}
