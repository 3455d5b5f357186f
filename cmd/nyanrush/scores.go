package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/nyan-rush/internal/game"
	"github.com/vovakirdan/nyan-rush/internal/platform/tui"
	"github.com/vovakirdan/nyan-rush/internal/storage"
)

var (
	flagPlain       bool
	flagScoresLimit int
	flagResetScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs. On a terminal this opens a scrollable table;
with --plain (or when output is piped) it prints the top scores as text.

Examples:
  nyanrush scores
  nyanrush scores --plain --limit 5
  nyanrush scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print with --plain")
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	g := game.New(game.Options{})
	gameID, title := g.ID(), g.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagResetScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && xterm.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := xterm.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	return printScores(store, gameID, title)
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'nyanrush play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-9s  %-7s  %s\n", "Rank", "Walls", "End", "Ticks", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-7s  %s\n", "----", "-----", "---", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-9s  %-7d  %s\n", i+1, entry.Score, entry.Reason, entry.Ticks, dateStr)
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Crashes: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Crashes)
	}
	return nil
}
