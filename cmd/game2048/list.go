package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/game2048/internal/games/t2048"
	"github.com/vovakirdan/game2048/internal/registry"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all game modes",
		Long:  `Shows a list of all registered 2048 game modes and the campaign levels.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Campaign levels:")
	fmt.Fprintln(out)
	for i, name := range t2048.LevelNames() {
		fmt.Fprintf(out, "  %2d  %-18s  %d\n", i+1, name, t2048.GetLevel(i).Target)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'game2048 replay <moves> --game <id>' to play a game.")
}
