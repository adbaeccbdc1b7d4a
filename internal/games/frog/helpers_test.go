package frog

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// manualClock is a time source that only moves when told to.
type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// emptyConfig is a 10x10 field with no entities, so tests can place their own.
func emptyConfig() config.Config {
	cfg := config.Default()
	cfg.Width = 10
	cfg.Height = 10
	cfg.CarCount = 0
	cfg.ObstacleCount = 0
	cfg.TotalTime = 60
	cfg.MaxSpeed = 3
	cfg.MaxAttempts = 1000
	return cfg
}

func newTestGame(t *testing.T, cfg config.Config) (*Game, *manualClock) {
	t.Helper()
	clk := newManualClock()
	g := New(cfg, WithClock(clk.Now))
	if err := g.Reset(1); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g, clk
}

func car(x, y, speed int) Car {
	return Car{Point: core.Pt(x, y), Speed: speed}
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}
