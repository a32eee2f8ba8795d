package main

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game2048/internal/config"
	"github.com/vovakirdan/game2048/internal/core"
	"github.com/vovakirdan/game2048/internal/games/t2048"
	"github.com/vovakirdan/game2048/internal/registry"
	"github.com/vovakirdan/game2048/internal/storage"
)

type replayOptions struct {
	gameID    string
	boardPath string
	outPath   string
	spawn     bool
	save      bool
}

func newReplayCmd(opts *options) *cobra.Command {
	ro := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay <moves>",
		Short: "Play a sequence of moves",
		Long: `Play a sequence of tilts and print the board after every move that
changed it. Moves are either letters (N, E, S, W or U, R, D, L) or a
comma-separated list of words (north, up, left, ...).

Without --board a fresh game is started from --seed; with --board the
game continues from the saved position.

Examples:
  game2048 replay NNEW --seed 7
  game2048 replay up,up,left --game 2048_endless
  game2048 replay WWS --board ./board.yaml --spawn=false
  game2048 replay NESW --save --out ./final.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, opts, ro, args[0])
		},
	}

	cmd.Flags().StringVar(&ro.gameID, "game", "2048", "Game mode to play (see 'game2048 list')")
	cmd.Flags().StringVar(&ro.boardPath, "board", "", "Start from a saved board YAML")
	cmd.Flags().StringVar(&ro.outPath, "out", "", "Write the final board to this YAML file")
	cmd.Flags().BoolVar(&ro.spawn, "spawn", true, "Spawn a new tile after every move that changes the board")
	cmd.Flags().BoolVar(&ro.save, "save", false, "Record the final score in the scores database")

	return cmd
}

func runReplay(cmd *cobra.Command, opts *options, ro *replayOptions, moves string) error {
	out := cmd.OutOrStdout()
	logger := opts.logger

	sides, err := parseMoves(moves)
	if err != nil {
		return err
	}

	g, err := registry.Create(ro.gameID)
	if err != nil {
		return err
	}
	game, ok := g.(*t2048.Game)
	if !ok {
		return fmt.Errorf("game %q cannot be replayed", ro.gameID)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{Seed: seed}

	settings := t2048.GetSettings()
	logger.Debug("game settings",
		"size", settings.Size,
		"max_piece", settings.MaxPiece,
		"spawn_4", settings.Spawn4,
		"start_level", t2048.GetStartLevel(),
	)

	if ro.boardPath != "" {
		f, err := config.LoadBoardFile(ro.boardPath)
		if err != nil {
			return err
		}
		m, err := f.Model()
		if err != nil {
			return err
		}
		game.ResetFrom(rc, m)
	} else {
		game.Reset(rc)
	}
	game.SetSpawning(ro.spawn)

	var store *storage.Store
	if ro.save {
		store, err = storage.Open(opts.dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if high, err := store.HighScore(game.ID()); err == nil {
			game.SetHighScore(high)
		} else {
			logger.Warn("cannot load high score", "err", err)
		}
	}

	logger.Info("replay", "game", game.ID(), "seed", seed, "moves", len(sides))
	fmt.Fprint(out, game.Model())

	for i, side := range sides {
		res := game.Step(core.FrameOf(actionFor(side)))
		if !res.Tilted {
			logger.Info("move did not change the board", "move", i+1, "side", side)
			if res.State.GameOver {
				logger.Info("game over, remaining moves ignored", "move", i+1)
				break
			}
			continue
		}

		fmt.Fprintf(out, "move %d: %s", i+1, side)
		fmt.Fprint(out, game.Model())
		logger.Debug("tilt", "move", i+1, "side", side, "score", res.State.Score)

		if res.State.GameOver {
			logger.Info("game over", "move", i+1, "score", res.State.Score)
			break
		}
	}

	snap := game.Snapshot()
	fmt.Fprintf(out, "Score: %d  Best: %d  Max tile: %d  State: %s\n",
		snap.Score, snap.HighScore, snap.MaxTile, snap.State)

	if ro.outPath != "" {
		if err := config.BoardFileFrom(game.Model()).Save(ro.outPath); err != nil {
			return err
		}
		logger.Info("board written", "path", ro.outPath)
	}

	if store != nil {
		id, err := store.SaveResult(storage.Result{
			GameID:    game.ID(),
			Score:     snap.Score,
			MaxTile:   snap.MaxTile,
			Moves:     snap.Moves,
			BoardHash: game.Model().Hash(),
		})
		if err != nil {
			return err
		}
		logger.Info("score saved", "id", id, "score", snap.Score)
	}

	return nil
}

// parseMoves accepts either a run of single-letter moves ("NNEW") or a
// list of words separated by commas or spaces ("up, left").
func parseMoves(s string) ([]t2048.Side, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("no moves given")
	}

	// A single word such as "left" is one move, not four letters.
	if side, err := t2048.ParseSide(s); err == nil {
		return []t2048.Side{side}, nil
	}

	var tokens []string
	if strings.ContainsAny(s, ", ") {
		tokens = strings.FieldsFunc(s, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	} else {
		for _, r := range s {
			tokens = append(tokens, string(r))
		}
	}

	sides := make([]t2048.Side, 0, len(tokens))
	for i, tok := range tokens {
		side, err := t2048.ParseSide(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		sides = append(sides, side)
	}
	return sides, nil
}

func actionFor(side t2048.Side) core.Action {
	switch side {
	case t2048.North:
		return core.ActionUp
	case t2048.South:
		return core.ActionDown
	case t2048.West:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}
