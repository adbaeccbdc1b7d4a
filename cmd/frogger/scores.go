package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the round history",
	Long: `Show high scores, recent rounds and totals.

An interactive table is shown on a terminal; --plain prints text instead.

Examples:
  frogger scores
  frogger scores --plain --limit 5
  frogger scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Rows per list in plain mode")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole history")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("cannot open round history: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			store.Close()
			fatalf("%v", err)
		}
		fmt.Println("Round history cleared.")
		return
	}

	width, height, termErr := xterm.GetSize(int(os.Stdout.Fd()))
	if flagPlain || termErr != nil {
		if err := printScores(os.Stdout, store, flagLimit); err != nil {
			store.Close()
			fatalf("%v", err)
		}
		return
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		store.Close()
		fatalf("%v", err)
	}
}

// printScores writes high scores, recent rounds and totals as text.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	top, err := store.TopScores(limit)
	if err != nil {
		return err
	}
	recent, err := store.RecentRounds(limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores")
	fmt.Fprintln(w)
	if len(top) == 0 {
		fmt.Fprintln(w, "  No winning rounds yet. Run 'frogger play' to set the first high score!")
	} else {
		fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %s\n", "Rank", "Score", "Left", "Date")
		fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %s\n", "----", "-----", "----", "----")
		for i, r := range top {
			fmt.Fprintf(w, "  %-4d  %-6d  %-5s  %s\n", i+1, r.Score, fmt.Sprintf("%ds", r.TimeLeft),
				r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent Rounds")
	fmt.Fprintln(w)
	if len(recent) == 0 {
		fmt.Fprintln(w, "  No rounds recorded yet.")
	} else {
		fmt.Fprintf(w, "  %-10s  %-13s  %-6s  %s\n", "Outcome", "Reason", "Score", "Date")
		fmt.Fprintf(w, "  %-10s  %-13s  %-6s  %s\n", "-------", "------", "-----", "----")
		for _, r := range recent {
			fmt.Fprintf(w, "  %-10s  %-13s  %-6d  %s\n", r.Outcome, r.Reason, r.Score,
				r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rounds: %d  Won: %d  Lost: %d  Timed out: %d  Best: %d\n",
		stats.Rounds, stats.Won, stats.Lost, stats.TimedOut, stats.HighScore)
	return nil
}
