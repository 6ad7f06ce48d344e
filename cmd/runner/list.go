package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games with their run counts and best scores.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Stats are optional: a missing database just leaves the columns empty.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %6s  %6s\n", maxIDLen, "ID", maxTitleLen, "Title", "Runs", "Best")
	fmt.Printf("  %-*s  %-*s  %6s  %6s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "----")
	for _, g := range games {
		runs, best := "-", "-"
		if s, ok := stats[g.ID]; ok {
			runs = fmt.Sprint(s.GamesCount)
			best = fmt.Sprint(s.HighScore)
		}
		fmt.Printf("  %-*s  %-*s  %6s  %6s\n", maxIDLen, g.ID, maxTitleLen, g.Title, runs, best)
	}

	fmt.Println()
	fmt.Println("Run 'runner play <id>' to play a game.")
}
