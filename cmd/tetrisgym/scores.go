package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-gym/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and episode statistics",
	Long: `Display the top 10 high scores from interactive play and the
aggregate statistics of recorded rollout episodes.

Examples:
  tetrisgym scores
  tetrisgym scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetrisgym play' to set the first high score!")
	} else {
		fmt.Println(scoreTable(scores))
		if high, highErr := store.HighScore(); highErr == nil {
			fmt.Printf("\nBest: %d\n", high)
		}
	}

	stats, err := store.Stats()
	if err != nil || stats.Episodes == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Recorded episodes: %d  avg steps: %.1f  avg score: %.2f  best score: %d\n",
		stats.Episodes, stats.AvgSteps, stats.AvgScore, stats.BestScore)
}

// scoreTable renders the score entries as a static bubbles table.
func scoreTable(scores []storage.ScoreEntry) string {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 17},
	}

	rows := make([]table.Row, 0, len(scores))
	for i, entry := range scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(entry.Score),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = lipgloss.NewStyle() // No selection highlight in static output

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
		table.WithStyles(styles),
	)
	return t.View()
}
