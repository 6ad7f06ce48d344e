package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagRecent      bool
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the best runs (or the latest ones) for the specified game.

Examples:
  runner scores
  runner scores --recent --limit 20
  runner scores -i
  runner scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'runner list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs of %s.\n", title)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	return printScores(out, store, gameID, title, flagRecent, flagLimit)
}

// printScores writes the score table of one game followed by its totals.
func printScores(w io.Writer, store *storage.Store, gameID, title string, recent bool, limit int) error {
	var (
		runs []storage.Run
		err  error
	)
	heading := "High Scores"
	if recent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, limit)
	} else {
		runs, err = store.TopScores(gameID, limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "%s - %s\n\n", heading, title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'runner play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-16s  %s\n", "Rank", "Score", "Time", "Date", "Player")
	fmt.Fprintf(w, "  %-4s  %-6s  %-8s  %-16s  %s\n", "----", "-----", "----", "----", "------")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-8s  %-16s  %s\n",
			i+1, r.Score, r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"), r.Player)
	}

	// Show high score
	fmt.Fprintln(w)
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Fprintf(w, "Best: %d", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(w, "   Runs: %d   Average: %.0f   Longest: %s",
			stats.GamesCount, stats.AvgScore, stats.LongestRun.Round(time.Second))
	}
	fmt.Fprintln(w)
	return nil
}
