package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresCSV         bool
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best recorded runs with summary statistics.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --csv > runs.csv
  snake scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresCSV, "csv", false, "Export the full history as CSV to stdout")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole run history")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return

	case flagScoresCSV:
		runs, err := store.AllRuns()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		if err := storage.ExportCSV(os.Stdout, runs); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting runs: %v\n", err)
			os.Exit(1)
		}
		return

	case flagScoresInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Snake - Best Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-18s  %s\n", "Rank", "Score", "Level", "Length", "Cause", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-6s  %-18s  %s\n", "----", "-----", "-----", "------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-5d  %-6d  %-18s  %s\n",
			i+1, r.Score, r.Level, r.Length, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d   Mean: %.1f   Std dev: %.1f   Runs: %d   Sessions: %d\n",
		st.BestScore, st.MeanScore, st.StdDev, st.Runs, st.Sessions)
}
