package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frog"
)

// Loop drives one round on a Display.
type Loop struct {
	game    *frog.Game
	display Display
	logger  *log.Logger
	config  core.RuntimeConfig
	sleep   func(time.Duration)
}

// Option configures a Loop.
type Option func(*Loop)

// WithSleep replaces the pause used while the end message is shown.
func WithSleep(sleep func(time.Duration)) Option {
	return func(l *Loop) {
		l.sleep = sleep
	}
}

// NewLoop creates a loop for a reset game.
func NewLoop(game *frog.Game, display Display, logger *log.Logger, cfg core.RuntimeConfig, opts ...Option) *Loop {
	l := &Loop{
		game:    game,
		display: display,
		logger:  logger,
		config:  cfg,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run plays until the round ends or the player quits, then shuts the
// display down. The returned outcome is OutcomeRunning after a quit.
func (l *Loop) Run() (frog.State, error) {
	if err := l.display.Init(l.game.Config().Colors); err != nil {
		return frog.State{}, fmt.Errorf("term: %w", err)
	}
	defer l.display.Shutdown()

	screen := core.NewScreen(l.game.ScreenSize())
	l.game.Render(screen)
	l.display.Draw(screen)

	for {
		action := l.display.PollInput(l.config.Tick)
		if action == core.ActionQuit {
			st := l.game.State()
			l.logger.Info("round abandoned", "tick", st.Tick, "time_left", st.TimeLeft)
			return st, nil
		}

		result := l.game.Step(core.FrameOf(action))
		if result.Bumps > 0 {
			l.logger.Debug("frog relocated", "bumps", result.Bumps, "tick", result.State.Tick)
		}

		st := result.State
		if st.Outcome.Over() {
			l.logger.Info("round over",
				"outcome", st.Outcome,
				"reason", st.Reason,
				"score", st.Score,
				"time_left", st.TimeLeft,
			)
			l.display.ShowEndMessage(st.Outcome.Message())
			l.sleep(l.config.EndPause)
			return st, nil
		}

		l.game.Render(screen)
		l.display.Draw(screen)
	}
}
