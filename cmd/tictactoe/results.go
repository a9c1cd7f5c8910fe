package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show finished games and the tally",
	Long: `Display the win/draw tally and the most recent finished games.

Examples:
  tictactoe results
  tictactoe results --limit 25
  tictactoe results --clear`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent games to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

var (
	headerColor = color.New(color.Bold)
	xColor      = color.New(color.FgHiRed, color.Bold)
	oColor      = color.New(color.FgHiBlue, color.Bold)
	drawColor   = color.New(color.FgYellow)
)

func runResults(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !cfg.Storage.Enabled {
		return fmt.Errorf("results are disabled (storage.enabled is false)")
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Println("All results cleared.")
		return nil
	}

	tally, err := store.Tally()
	if err != nil {
		return err
	}
	recent, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}

	headerColor.Println("Results")
	fmt.Println()
	fmt.Printf("  %s %d   %s %d   %s %d   Games: %d\n",
		xColor.Sprint("X wins:"), tally.XWins,
		oColor.Sprint("O wins:"), tally.OWins,
		drawColor.Sprint("Draws:"), tally.Draws,
		tally.Total(),
	)
	fmt.Println()

	if len(recent) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tictactoe' and finish a game to start the tally!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-20s  %-12s  %-6s  %s\n", "Date", "Session", "Player", "Result", "Moves")
	fmt.Printf("  %-16s  %-20s  %-12s  %-6s  %s\n", "----", "-------", "------", "------", "-----")

	for _, r := range recent {
		fmt.Printf("  %-16s  %-20s  %-12s  %s  %d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Session,
			playerOrDash(r.Player),
			outcomeText(r.Outcome),
			r.Moves,
		)
	}
	return nil
}

// outcomeText colors a stored outcome, padded to the Result column.
func outcomeText(outcome string) string {
	label := fmt.Sprintf("%-6s", outcome)
	switch outcome {
	case storage.OutcomeX:
		return xColor.Sprint(label)
	case storage.OutcomeO:
		return oColor.Sprint(label)
	case storage.OutcomeDraw:
		return drawColor.Sprint(label)
	}
	return label
}

func playerOrDash(p string) string {
	if p == "" {
		return "-"
	}
	return p
}
