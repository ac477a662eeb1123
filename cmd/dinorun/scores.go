package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dinorun/internal/platform/tui"
	"github.com/vovakirdan/dinorun/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the recorded runs, best first.

By default this opens an interactive table; --plain prints text for
scripting or narrow terminals.

Examples:
  dinorun scores
  dinorun scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Dino Run")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dinorun play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %s\n", "Rank", "Score", "Frames", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-5s  %s\n", "----", "-----", "------", "-----", "----")

	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-5d  %s\n", i+1, entry.Score, entry.Frames, entry.SpeedLevel, dateStr)
	}

	if stats, statsErr := store.Stats(); statsErr == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d over %d runs\n", stats.HighScore, stats.RunsCount)
	}
}
