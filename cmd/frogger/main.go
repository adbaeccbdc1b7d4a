// frogger is a terminal Frogger variant: cross the road to the goal before
// the timer runs out.
//
// Usage:
//
//	frogger                  - Play a round (same as "frogger play")
//	frogger play             - Play a round
//	frogger scores           - Browse the round history
//	frogger config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (KEY=VALUE, or .yaml)
//	--db <path>      - Round history database (default: ~/.frogger/rounds.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - cross the road in your terminal",
	Long: `Frogger is a terminal arcade game. Guide the frog from the bottom row
to the goal on the top row. Cars drive right and wrap around; some wait
when the frog is just ahead, some are friendly and only bump the frog to a
random free cell. Obstacles never move. Reach the goal before time runs out.

Available commands:
  play     - Play a round (default)
  scores   - Browse the round history
  config   - Print the effective configuration

Examples:
  frogger
  frogger play --seed 42
  frogger play --backend tcell --config ./config.txt
  frogger scores --plain`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (KEY=VALUE or YAML)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frogger/rounds.db", "Path to round history database")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
