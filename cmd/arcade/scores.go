package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/milkyway-arcade/internal/config"
	"github.com/vovakirdan/milkyway-arcade/internal/registry"
	"github.com/vovakirdan/milkyway-arcade/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores, the best winning time per level and
the most recent rounds for the specified game.

Examples:
  arcade scores maze
  arcade scores memory --recent 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent rounds to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Best times")
	for _, d := range config.Difficulties() {
		secs, err := store.BestTime(gameID, string(d))
		switch {
		case errors.Is(err, storage.ErrNoResult):
			fmt.Printf("  %-7s  -\n", d.Title())
		case err != nil:
			fmt.Printf("  %-7s  error: %v\n", d.Title(), err)
		default:
			fmt.Printf("  %-7s  %ds\n", d.Title(), secs)
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played %d, won %d, average score %.1f\n", stats.Played, stats.Wins, stats.AvgScore)
	}

	results, err := store.RecentResults(gameID, flagRecent)
	if err != nil || len(results) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent rounds")
	fmt.Printf("  %-16s  %-7s  %-9s  %-6s  %s\n", "Date", "Level", "Outcome", "Score", "Time")
	for _, r := range results {
		fmt.Printf("  %-16s  %-7s  %-9s  %-6d  %ds\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Level, r.Outcome, r.Score, r.ElapsedSecs)
	}
}
