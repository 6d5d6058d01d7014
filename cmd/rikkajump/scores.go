package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rikkajump/internal/registry"
	"github.com/vovakirdan/rikkajump/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best runs for a game (default: jump).

Examples:
  rikkajump scores
  rikkajump scores --limit 25
  rikkajump scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return nil
	}

	runs, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'rikkajump play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Height", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-8d  %s\n", i+1, r.Score, r.Height, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Highest: %d   Runs: %d\n", stats.HighScore, stats.BestHeight, stats.Runs)
	return nil
}
