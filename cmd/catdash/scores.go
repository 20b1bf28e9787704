package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/feliform/catdash/internal/platform/tui"
	"github.com/feliform/catdash/internal/storage"
)

const gameID = "catdash"

var flagBoard bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top 10 runs.

Examples:
  catdash scores
  catdash scores --board   # interactive scoreboard`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, boardErr := tui.RunScoreboard(store, gameID, width, height); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Cat Dash")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'catdash play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Combo", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  x%-5d  %d:%02d   %s\n",
			i+1, r.Score, r.MaxCombo,
			r.DurationSecs/60, r.DurationSecs%60,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(gameID); err == nil && stats.Runs > 0 {
		fmt.Printf("Best: %d over %d runs (avg %.1f)\n", stats.Best, stats.Runs, stats.Average)
	}
}
