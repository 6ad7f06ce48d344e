// runner is a T-rex runner for the terminal, playable locally or over SSH.
//
// Usage:
//
//	runner list              - List available games
//	runner play [game]       - Play (default: trex)
//	runner serve             - Start SSH server and HTTP leaderboard
//	runner scores [game]     - Show high scores
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.runner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/trex"
)

const defaultGame = "trex"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "T-Rex Runner - jump the cacti in your terminal",
	Long: `T-Rex Runner is the offline dinosaur game for the terminal.

Available commands:
  list     - Show all available games
  play     - Start a run
  serve    - Start SSH server for remote play, with an HTTP leaderboard
  scores   - View high scores and recent runs
  config   - Print the configuration a run would use

Examples:
  runner play
  runner play --difficulty hard
  runner serve --ssh :2222 --http :8080
  runner scores --recent`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// gameArg returns the game named on the command line, or the default.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultGame
}
