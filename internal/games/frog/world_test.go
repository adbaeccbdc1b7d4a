package frog

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestPlacementRules(t *testing.T) {
	cfg := config.Default()
	cfg.CarCount = config.MaxCars
	cfg.ObstacleCount = config.MaxObstacles

	for seed := int64(1); seed <= 20; seed++ {
		g := New(cfg, WithClock(newManualClock().Now))
		if err := g.Reset(seed); err != nil {
			t.Fatalf("seed %d: Reset() failed: %v", seed, err)
		}

		if len(g.cars) != cfg.CarCount || len(g.obstacles) != cfg.ObstacleCount {
			t.Fatalf("seed %d: got %d cars and %d obstacles", seed, len(g.cars), len(g.obstacles))
		}

		start := core.Pt(cfg.Width/2, cfg.Height-1)
		if g.frog.Point != start {
			t.Errorf("seed %d: frog starts at %v, expected %v", seed, g.frog.Point, start)
		}

		for _, o := range g.obstacles {
			if o.Point == start {
				t.Errorf("seed %d: obstacle on the frog start cell", seed)
			}
			if o.Y < 1 || o.Y > cfg.Height-2 || o.X < 0 || o.X >= cfg.Width {
				t.Errorf("seed %d: obstacle %v outside the traffic band", seed, o.Point)
			}
		}

		for _, c := range g.cars {
			if g.obstacleRow(c.Y) {
				t.Errorf("seed %d: car %v shares a row with an obstacle", seed, c.Point)
			}
			if c.Y < 1 || c.Y > cfg.Height-2 || c.X < 0 || c.X >= cfg.Width {
				t.Errorf("seed %d: car %v outside the traffic band", seed, c.Point)
			}
			if c.Speed < 1 || c.Speed > cfg.MaxSpeed {
				t.Errorf("seed %d: car speed %d outside [1, %d]", seed, c.Speed, cfg.MaxSpeed)
			}
		}
	}
}

func TestFriendlyPercentExtremes(t *testing.T) {
	cfg := config.Default()
	cfg.CarCount = 50

	cfg.FriendlyPercent = 0
	g, _ := newTestGame(t, cfg)
	for _, c := range g.cars {
		if c.Friendly {
			t.Fatal("no car should be friendly at 0%")
		}
	}

	cfg.FriendlyPercent = 100
	g, _ = newTestGame(t, cfg)
	for _, c := range g.cars {
		if !c.Friendly {
			t.Fatal("every car should be friendly at 100%")
		}
	}
}

func TestPlacementFailsWithoutFreeLane(t *testing.T) {
	// A single traffic lane taken by an obstacle leaves no row for cars.
	cfg := emptyConfig()
	cfg.Height = 3
	cfg.ObstacleCount = 1
	cfg.CarCount = 1
	cfg.MaxAttempts = 50

	g := New(cfg, WithClock(newManualClock().Now))
	err := g.Reset(7)
	if !errors.Is(err, ErrPlacementFailed) {
		t.Fatalf("expected ErrPlacementFailed, got %v", err)
	}
}

func TestRespawnKeepsCarsOffObstacleRows(t *testing.T) {
	cfg := config.Default()
	cfg.CarCount = 60
	cfg.ObstacleCount = 8
	cfg.MaxSpeed = 5

	g, _ := newTestGame(t, cfg)

	// The frog never leaves the start row, which no car can reach.
	for i := 0; i < 500; i++ {
		res := g.Step(idle())
		if res.State.Outcome.Over() {
			t.Fatalf("tick %d: round ended unexpectedly: %v", i, res.State.Reason)
		}
		for _, c := range g.cars {
			if g.obstacleRow(c.Y) {
				t.Fatalf("tick %d: car %v on an obstacle row", i, c.Point)
			}
			if c.X < 0 || c.X >= cfg.Width {
				t.Fatalf("tick %d: car %v outside the field", i, c.Point)
			}
		}
	}
}

func TestRelocateFrogFindsOnlyFreeCell(t *testing.T) {
	cfg := emptyConfig()
	cfg.Width = 3
	cfg.Height = 3
	g, _ := newTestGame(t, cfg)

	free := core.Pt(2, 0)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p := core.Pt(x, y)
			switch {
			case p == free:
			case x == 0:
				g.obstacles = append(g.obstacles, Obstacle{Point: p})
			default:
				g.cars = append(g.cars, car(x, y, 1))
			}
		}
	}

	if err := g.relocateFrog(); err != nil {
		t.Fatalf("relocateFrog() failed: %v", err)
	}
	if g.frog.Point != free {
		t.Errorf("frog relocated to %v, expected the only free cell %v", g.frog.Point, free)
	}
}

func TestRelocateFrogFullField(t *testing.T) {
	cfg := emptyConfig()
	cfg.Width = 2
	cfg.Height = 3
	cfg.MaxAttempts = 100
	g, _ := newTestGame(t, cfg)

	for y := 0; y < 3; y++ {
		for x := 0; x < 2; x++ {
			g.cars = append(g.cars, car(x, y, 1))
		}
	}

	if err := g.relocateFrog(); !errors.Is(err, ErrPlacementFailed) {
		t.Errorf("expected ErrPlacementFailed, got %v", err)
	}
}

func TestRelocationNeverLandsOnEntities(t *testing.T) {
	cfg := config.Default()
	cfg.CarCount = 80
	cfg.ObstacleCount = 10
	g, _ := newTestGame(t, cfg)

	for i := 0; i < 200; i++ {
		if err := g.relocateFrog(); err != nil {
			t.Fatalf("relocateFrog() failed: %v", err)
		}
		if g.occupied(g.frog.Point) {
			t.Fatalf("frog relocated onto an occupied cell %v", g.frog.Point)
		}
		if !g.field().Contains(g.frog.Point) {
			t.Fatalf("frog relocated outside the field: %v", g.frog.Point)
		}
	}
}
