package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frog"
	"github.com/vovakirdan/tui-frogger/internal/platform/term"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

const endPause = 2 * time.Second

var (
	flagSeed    int64
	flagLogFile string
	flagBackend string
	flagNoSave  bool
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round with the loaded configuration.

Controls:
  Arrows/WASD/HJKL - Move the frog one cell
  Q/Ctrl+C         - Quit

Backends:
  tea    - Bubble Tea frontend with a help line (default)
  tcell  - Plain poll loop on a black background

Examples:
  frogger play
  frogger play --seed 42
  frogger play --backend tcell --log-file frogger.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the round flags on cmd. The root command runs
// play too, so both carry them.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use RANDOM_SEED from config)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	cmd.Flags().StringVar(&flagBackend, "backend", "tea", "Frontend: tea or tcell")
	cmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the round")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Log debug messages")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagBackend != "tea" && flagBackend != "tcell" {
		fatalf("unknown backend %q (want tea or tcell)", flagBackend)
	}

	cfg, source := loadConfig()
	if err := cfg.Validate(); err != nil {
		fatalf("%s: %v", source, err)
	}
	if flagSeed != 0 {
		cfg.RandomSeed = flagSeed
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fatalf("cannot open log file: %v", err)
	}
	defer closeLog()
	logger.Info("config loaded", "source", source)

	game := frog.New(cfg)
	if err := game.Reset(cfg.RandomSeed); err != nil {
		closeLog()
		fatalf("%v", err)
	}
	logger.Info("round start",
		"seed", game.Seed(),
		"width", cfg.Width,
		"height", cfg.Height,
		"cars", cfg.CarCount,
		"obstacles", cfg.ObstacleCount,
	)

	checkTerminalSize(game)

	rc := core.RuntimeConfig{
		Tick:     cfg.Tick(),
		EndPause: endPause,
		Seed:     game.Seed(),
	}

	var st frog.State
	switch flagBackend {
	case "tcell":
		display, derr := term.NewTcellDisplay()
		if derr != nil {
			closeLog()
			fatalf("%v", derr)
		}
		st, err = term.NewLoop(game, display, logger, rc).Run()
	default:
		st, err = tui.Run(game, logger, rc)
	}
	if err != nil {
		closeLog()
		fatalf("%v", err)
	}

	if !st.Outcome.Over() {
		return
	}

	colorTitle.Printf("%s", st.Outcome.Message())
	fmt.Printf("  score %d  seed %d\n", st.Score, game.Seed())

	if !flagNoSave {
		recordRound(game, st, logger)
	}
}

// loadConfig loads the configuration or exits. Falling back to the built-in
// defaults is allowed but reported.
func loadConfig() (config.Config, string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	if msg := sourceNotice(source); msg != "" {
		warnf("%s", msg)
	}
	return cfg, source
}

// sourceNotice explains an embedded-default source, or returns "".
func sourceNotice(source string) string {
	if source != config.SourceEmbedded {
		return ""
	}
	return fmt.Sprintf("no %s in the working directory or ~/.frogger, using built-in defaults",
		config.DefaultFileName)
}

// checkTerminalSize warns when the field and HUD do not fit.
func checkTerminalSize(game *frog.Game) {
	w, h, err := xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	needW, needH := game.ScreenSize()
	if flagBackend == "tea" {
		needH++ // Help line
	}
	if w < needW || h < needH {
		warnf("terminal is %dx%d, the field needs %dx%d", w, h, needW, needH)
	}
}

// recordRound saves a finished round. Failures are logged and never fatal.
func recordRound(game *frog.Game, st frog.State, logger *log.Logger) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("cannot open round history", "err", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRound(roundRecord(game, st))
	if err != nil {
		logger.Warn("cannot save round", "err", err)
		return
	}
	logger.Info("round saved", "id", id)
}

// roundRecord converts a finished round to its history entry.
func roundRecord(game *frog.Game, st frog.State) storage.Round {
	cfg := game.Config()
	return storage.Round{
		Seed:     game.Seed(),
		Outcome:  st.Outcome.String(),
		Reason:   string(st.Reason),
		Score:    st.Score,
		Ticks:    st.Tick,
		Bumps:    st.Bumps,
		TimeLeft: st.TimeLeft,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}
}
