package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-of-structure/internal/games/island"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show arena high scores",
	Long: `Display the best Arena of Speed runs, from both the journey's final
world and the standalone drill.

Examples:
  island scores
  island scores --limit 25
  island scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded arena run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store == nil {
		return fmt.Errorf("no scores database at %s", flagDBPath)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(island.ArenaBoard); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("Arena scores cleared.")
		return nil
	}

	scores, err := store.TopScores(island.ArenaBoard, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Arena of Speed")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'island play arena' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-14s  %-8d  %s\n", i+1, player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(island.ArenaBoard)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.0f\n", stats.Runs, stats.HighScore, stats.AvgScore)
	}
	return nil
}
