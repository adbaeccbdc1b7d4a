package frog

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// ScreenSize is the buffer size needed to draw the field and the HUD row.
func (g *Game) ScreenSize() (int, int) {
	return core.Max(g.cfg.Width, len(hudText(g.cfg.TotalTime))), g.cfg.Height + 1
}

func hudText(timeLeft int) string {
	return fmt.Sprintf("Time Left: %d", timeLeft)
}

// Render draws the field: goal, cars, obstacles, then the frog on top, with
// the remaining time on the row below the field.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	glyphs := g.cfg.Glyphs
	colors := g.cfg.Colors

	dst.SetCell(g.cfg.Width/2, 0, rune(glyphs.Goal), core.CursesColor(int(colors.Goal)))

	carColor := core.CursesColor(int(colors.Car))
	for _, c := range g.cars {
		dst.SetCell(c.X, c.Y, rune(glyphs.Car), carColor)
	}

	obstacleColor := core.CursesColor(int(colors.Obstacle))
	for _, o := range g.obstacles {
		dst.SetCell(o.X, o.Y, rune(glyphs.Obstacle), obstacleColor)
	}

	dst.SetCell(g.frog.X, g.frog.Y, rune(glyphs.Frog), core.CursesColor(int(colors.Frog)))

	dst.DrawText(0, g.cfg.Height, hudText(g.timeLeft))
}

// RenderEnd draws the end-of-round message centered on a cleared screen.
func RenderEnd(dst *core.Screen, message string) {
	dst.Clear()
	dst.DrawTextCentered(dst.Height()/2, message)
}
