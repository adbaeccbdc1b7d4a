package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a round would use, as KEY=VALUE lines.

The output is itself a valid config file:
  frogger config > config.txt`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source := loadConfig()
	if err := cfg.Validate(); err != nil {
		warnf("%s: %v", source, err)
	}

	fmt.Printf("# source: %s\n", source)
	if err := config.Write(os.Stdout, cfg); err != nil {
		fatalf("%v", err)
	}
}
