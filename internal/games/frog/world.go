package frog

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ErrPlacementFailed is returned when rejection sampling runs out of attempts.
var ErrPlacementFailed = errors.New("frog: placement failed")

// lane draws a row from the traffic band: row 0 is the goal and the last
// row is the start, so cars and obstacles use [1, height-2].
func (g *Game) lane() int {
	return g.rng.Intn(g.cfg.Height-2) + 1
}

func (g *Game) randomSpeed() int {
	return g.rng.Intn(g.cfg.MaxSpeed) + 1
}

// obstacleRow reports whether any obstacle sits on row y.
func (g *Game) obstacleRow(y int) bool {
	for _, o := range g.obstacles {
		if o.Y == y {
			return true
		}
	}
	return false
}

// occupied reports whether a car or an obstacle covers p.
func (g *Game) occupied(p core.Point) bool {
	for _, o := range g.obstacles {
		if o.Point == p {
			return true
		}
	}
	for _, c := range g.cars {
		if c.Point == p {
			return true
		}
	}
	return false
}

// placeObstacles scatters obstacles over the traffic band, never on the frog.
func (g *Game) placeObstacles() error {
	g.obstacles = make([]Obstacle, 0, g.cfg.ObstacleCount)
	for i := 0; i < g.cfg.ObstacleCount; i++ {
		placed := false
		for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
			p := core.Pt(g.rng.Intn(g.cfg.Width), g.lane())
			if p == g.frog.Point {
				continue
			}
			g.obstacles = append(g.obstacles, Obstacle{Point: p})
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("obstacle %d: %w after %d attempts", i, ErrPlacementFailed, g.cfg.MaxAttempts)
		}
	}
	return nil
}

// placeCars spawns every car on a row free of obstacles.
// Obstacles must be placed first.
func (g *Game) placeCars() error {
	g.cars = make([]Car, 0, g.cfg.CarCount)
	for i := 0; i < g.cfg.CarCount; i++ {
		placed := false
		for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
			c := Car{
				Point:    core.Pt(g.rng.Intn(g.cfg.Width), g.lane()),
				Speed:    g.randomSpeed(),
				CanStop:  g.rng.Intn(2) == 1,
				Friendly: g.rng.Intn(100) < g.cfg.FriendlyPercent,
			}
			if g.obstacleRow(c.Y) {
				continue
			}
			g.cars = append(g.cars, c)
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("car %d: %w after %d attempts", i, ErrPlacementFailed, g.cfg.MaxAttempts)
		}
	}
	return nil
}

// respawn moves a car that left the field back to x=0 on a fresh row with a
// fresh speed. If no free row turns up the car keeps its current row, which
// was free when it spawned and obstacles never move.
func (g *Game) respawn(c *Car) {
	c.X = 0
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		y := g.lane()
		if !g.obstacleRow(y) {
			c.Y = y
			break
		}
	}
	c.Speed = g.randomSpeed()
}

// relocateFrog moves the frog to a random empty cell anywhere on the field,
// goal and start rows included.
func (g *Game) relocateFrog() error {
	for attempt := 0; attempt < g.cfg.MaxAttempts; attempt++ {
		p := core.Pt(g.rng.Intn(g.cfg.Width), g.rng.Intn(g.cfg.Height))
		if g.occupied(p) {
			continue
		}
		g.frog.Point = p
		return nil
	}
	return fmt.Errorf("relocate: %w after %d attempts", ErrPlacementFailed, g.cfg.MaxAttempts)
}
