package frog

import "github.com/vovakirdan/tui-frogger/internal/core"

// SpeedRerollTicks is how often every car gets a new random speed.
const SpeedRerollTicks = 50

// moveFrog applies one move, clamped to the field.
func (g *Game) moveFrog(a core.Action) {
	if !a.IsMove() {
		return
	}
	g.frog.Point = g.field().Clamp(g.frog.Add(a.Delta()))
}

// waitsForFrog reports whether a can-stop car sits right behind the frog.
func (g *Game) waitsForFrog(c Car) bool {
	return c.CanStop &&
		c.Y == g.frog.Y &&
		c.X > g.frog.X-2 &&
		c.X < g.frog.X
}

// sweeps reports whether a car on row y moving from fromX to toX passed over
// the frog. Cells past the right edge are not part of the field.
func (g *Game) sweeps(y, fromX, toX int) bool {
	if y != g.frog.Y {
		return false
	}
	toX = core.Min(toX, g.cfg.Width-1)
	for x := fromX; x <= toX; x++ {
		if x == g.frog.X {
			return true
		}
	}
	return false
}

// moveCars advances every car by one tick. Hits are resolved car by car:
// a friendly car relocates the frog and the sweep goes on, any other car ends
// the round at once and the remaining cars stay put.
// It returns the reason the round ended, or ReasonNone, plus the relocation count.
func (g *Game) moveCars() (Reason, int) {
	g.tick++
	reroll := g.tick%SpeedRerollTicks == 0
	bumps := 0

	for i := range g.cars {
		c := &g.cars[i]

		if g.waitsForFrog(*c) {
			if reroll {
				c.Speed = g.randomSpeed()
			}
			continue
		}

		oldX := c.X
		c.X += c.Speed
		if reroll {
			c.Speed = g.randomSpeed()
		}

		// Sweep the row the car drove on before it can wrap to a new one.
		hit := g.sweeps(c.Y, oldX, c.X)

		if c.X >= g.cfg.Width {
			g.respawn(c)
		}

		if !hit {
			continue
		}
		if !c.Friendly {
			return ReasonCar, bumps
		}
		bumps++
		if err := g.relocateFrog(); err != nil {
			return ReasonNoSpace, bumps
		}
	}
	return ReasonNone, bumps
}

// collision checks the frog's final cell against every car and obstacle.
func (g *Game) collision() Reason {
	for _, c := range g.cars {
		if c.Point == g.frog.Point {
			return ReasonCar
		}
	}
	for _, o := range g.obstacles {
		if o.Point == g.frog.Point {
			return ReasonObstacle
		}
	}
	return ReasonNone
}
