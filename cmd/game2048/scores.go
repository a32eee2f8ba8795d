package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game2048/internal/registry"
	"github.com/vovakirdan/game2048/internal/storage"
)

type scoresOptions struct {
	clearAll bool
	all      bool
}

func newScoresCmd(opts *options) *cobra.Command {
	so := &scoresOptions{}

	cmd := &cobra.Command{
		Use:   "scores [game]",
		Short: "Show high scores for a game mode",
		Long: `Display the top 10 high scores for the specified game mode. Without a
game mode, show a summary of every mode that has been played.

Examples:
  game2048 scores
  game2048 scores 2048
  game2048 scores 2048_endless --all
  game2048 scores 2048 --clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if so.clearAll || so.all {
					return fmt.Errorf("--clear and --all need a game mode")
				}
				return runScoresSummary(cmd, opts)
			}
			return runScores(cmd, opts, so, args[0])
		},
	}

	cmd.Flags().BoolVar(&so.clearAll, "clear", false, "Delete all recorded scores for the game")
	cmd.Flags().BoolVar(&so.all, "all", false, "List every recorded score instead of the top 10")

	return cmd
}

func runScores(cmd *cobra.Command, opts *options, so *scoresOptions, gameID string) error {
	out := cmd.OutOrStdout()

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'game2048 list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(opts.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if so.clearAll {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		opts.logger.Info("scores cleared", "game", gameID)
		return nil
	}

	var scores []storage.ScoreEntry
	if so.all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Run 'game2048 replay <moves> --game %s --save' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Score", "Max tile", "Moves", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "-----", "--------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Moves, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Best tile: %d  Games: %d  Average: %.1f\n",
		stats.HighScore, stats.BestTile, stats.GamesCount, stats.AvgScore)

	return nil
}

// runScoresSummary prints one line per played game mode.
func runScoresSummary(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()

	store, err := storage.Open(opts.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Fprintln(out, "No games played yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-14s  %-6s  %-10s  %-8s  %s\n", "Game", "Games", "Best", "Max tile", "Last played")
	fmt.Fprintf(out, "  %-14s  %-6s  %-10s  %-8s  %s\n", "----", "-----", "----", "--------", "-----------")

	for _, id := range ids {
		s := all[id]
		fmt.Fprintf(out, "  %-14s  %-6d  %-10d  %-8d  %s\n",
			id, s.GamesCount, s.HighScore, s.BestTile, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
