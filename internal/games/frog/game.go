// Package frog implements the Frogger-style round: a frog crosses rows of
// moving cars and static obstacles to reach the goal row before time runs out.
package frog

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ID identifies the game in storage and file names.
const ID = "frog"

// Clock returns the current time. Tests swap it for a manual clock.
type Clock func() time.Time

// Option configures a Game.
type Option func(*Game)

// WithClock sets the time source used for the round budget.
func WithClock(c Clock) Option {
	return func(g *Game) {
		g.clock = c
	}
}

// Game owns all round state: entities, RNG, tick counter and outcome.
type Game struct {
	cfg   config.Config
	rng   *rand.Rand
	seed  int64
	clock Clock
	start time.Time

	frog      Frog
	cars      []Car
	obstacles []Obstacle

	tick     int // Shared counter driving speed rerolls
	timeLeft int
	bumps    int
	outcome  Outcome
	reason   Reason
}

// New creates a game for cfg. Call Reset before the first Step.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset places a new world and restarts the clock. A zero seed is replaced
// by one taken from the clock. It fails only when placement runs out of
// attempts.
func (g *Game) Reset(seed int64) error {
	if seed == 0 {
		seed = g.clock().UnixNano()
	}
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))

	g.frog = Frog{Point: core.Pt(g.cfg.Width/2, g.cfg.Height-1)}
	g.tick = 0
	g.bumps = 0
	g.outcome = OutcomeRunning
	g.reason = ReasonNone
	g.timeLeft = g.cfg.TotalTime

	if err := g.placeObstacles(); err != nil {
		return fmt.Errorf("frog: reset: %w", err)
	}
	if err := g.placeCars(); err != nil {
		return fmt.Errorf("frog: reset: %w", err)
	}

	g.start = g.clock()
	return nil
}

// Step advances the round by one tick. The time budget is checked first;
// then the frog moves, then the cars, then the end conditions are evaluated.
func (g *Game) Step(in core.InputFrame) StepResult {
	if g.outcome.Over() {
		return StepResult{State: g.State()}
	}

	remaining := g.cfg.Duration() - g.clock().Sub(g.start)
	g.timeLeft = core.Max(int(remaining/time.Second), 0)
	if remaining <= 0 {
		g.end(OutcomeTimedOut, ReasonTimeout)
		return StepResult{State: g.State()}
	}

	g.moveFrog(in.Move())

	reason, bumps := g.moveCars()
	g.bumps += bumps
	if reason != ReasonNone {
		g.end(OutcomeLost, reason)
		return StepResult{State: g.State(), Bumps: bumps}
	}

	if reason := g.collision(); reason != ReasonNone {
		g.end(OutcomeLost, reason)
	} else if g.frog.Y == 0 {
		g.end(OutcomeWon, ReasonGoal)
	}

	return StepResult{State: g.State(), Bumps: bumps}
}

func (g *Game) end(o Outcome, r Reason) {
	g.outcome = o
	g.reason = r
}

// field is the playing area in cells.
func (g *Game) field() core.Rect {
	return core.NewRect(0, 0, g.cfg.Width, g.cfg.Height)
}

// Score is 100 plus 10 per second left for a win, zero otherwise.
func (g *Game) Score() int {
	if g.outcome != OutcomeWon {
		return 0
	}
	return 100 + 10*g.timeLeft
}

// State returns the current round status.
func (g *Game) State() State {
	return State{
		Outcome:  g.outcome,
		Reason:   g.reason,
		Score:    g.Score(),
		TimeLeft: g.timeLeft,
		Tick:     g.tick,
		Bumps:    g.bumps,
	}
}

// Seed returns the seed the current world was generated from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the settings the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// Frog returns the frog.
func (g *Game) Frog() Frog {
	return g.frog
}

// Cars returns a copy of the cars.
func (g *Game) Cars() []Car {
	return append([]Car(nil), g.cars...)
}

// Obstacles returns a copy of the obstacles.
func (g *Game) Obstacles() []Obstacle {
	return append([]Obstacle(nil), g.obstacles...)
}
