package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func newSimDisplay(t *testing.T) (*TcellDisplay, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d := newTcellDisplay(sim)
	if err := d.Init(config.Default().Colors); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(d.Shutdown)
	sim.SetSize(80, 25)
	return d, sim
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestTcellDisplayDraw(t *testing.T) {
	d, sim := newSimDisplay(t)

	s := core.NewScreen(5, 3)
	s.SetCell(1, 1, '@', core.ColorGreen)
	s.SetCell(3, 0, 'G', core.ColorYellow)
	d.Draw(s)

	if r := runeAt(sim, 1, 1); r != '@' {
		t.Errorf("cell (1,1) = %q, want '@'", r)
	}
	if r := runeAt(sim, 3, 0); r != 'G' {
		t.Errorf("cell (3,0) = %q, want 'G'", r)
	}
}

func TestTcellDisplayEndMessage(t *testing.T) {
	d, sim := newSimDisplay(t)

	d.ShowEndMessage("GAME OVER!")

	got := make([]rune, 0, 10)
	for i := range 10 {
		got = append(got, runeAt(sim, 20+i, 10))
	}
	if string(got) != "GAME OVER!" {
		t.Errorf("end message = %q", string(got))
	}
}

func TestTcellDisplayPollInput(t *testing.T) {
	d, sim := newSimDisplay(t)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	if a := d.PollInput(time.Second); a != core.ActionUp {
		t.Errorf("PollInput() = %v, want Up", a)
	}

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if a := d.PollInput(time.Second); a != core.ActionQuit {
		t.Errorf("PollInput() = %v, want Quit", a)
	}

	if a := d.PollInput(10 * time.Millisecond); a != core.ActionNone {
		t.Errorf("PollInput() with no key = %v, want None", a)
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want core.Action
	}{
		{tcell.KeyUp, 0, core.ActionUp},
		{tcell.KeyDown, 0, core.ActionDown},
		{tcell.KeyLeft, 0, core.ActionLeft},
		{tcell.KeyRight, 0, core.ActionRight},
		{tcell.KeyCtrlC, 0, core.ActionQuit},
		{tcell.KeyRune, 'w', core.ActionUp},
		{tcell.KeyRune, 'j', core.ActionDown},
		{tcell.KeyRune, 'a', core.ActionLeft},
		{tcell.KeyRune, 'l', core.ActionRight},
		{tcell.KeyRune, 'q', core.ActionQuit},
		{tcell.KeyRune, 'x', core.ActionNone},
		{tcell.KeyEnter, 0, core.ActionNone},
	}

	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
		if got := keyAction(ev); got != tt.want {
			t.Errorf("keyAction(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestTcellColor(t *testing.T) {
	if got := tcellColor(core.ColorRed); got != tcell.PaletteColor(1) {
		t.Errorf("red = %v", got)
	}
	if got := tcellColor(core.ColorBlack); got != tcell.PaletteColor(0) {
		t.Errorf("black = %v", got)
	}
	if got := tcellColor(core.ColorDefault); got != tcell.ColorWhite {
		t.Errorf("default = %v", got)
	}
}
