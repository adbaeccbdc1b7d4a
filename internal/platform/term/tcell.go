package term

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// End message position, in cells.
const (
	endMessageX = 20
	endMessageY = 10
)

// TcellDisplay draws on a tcell screen with a black background.
type TcellDisplay struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	once   sync.Once
	base   tcell.Style
	styles map[core.Color]tcell.Style
}

// NewTcellDisplay creates a display on the real terminal.
func NewTcellDisplay() (*TcellDisplay, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: cannot create screen: %w", err)
	}
	return newTcellDisplay(s), nil
}

func newTcellDisplay(s tcell.Screen) *TcellDisplay {
	return &TcellDisplay{
		screen: s,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
		base:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		styles: make(map[core.Color]tcell.Style),
	}
}

// Init starts the screen and the event pump.
func (d *TcellDisplay) Init(p config.Palette) error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("term: cannot init screen: %w", err)
	}
	d.screen.SetStyle(d.base)
	d.screen.HideCursor()
	d.screen.Clear()

	for _, id := range []config.ColorID{p.Frog, p.Car, p.Goal, p.Obstacle} {
		c := core.CursesColor(int(id))
		d.styles[c] = d.base.Foreground(tcellColor(c))
	}

	go d.pump()
	return nil
}

// pump forwards screen events until the screen is finalized.
func (d *TcellDisplay) pump() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-d.done:
			return
		}
	}
}

// Draw copies the buffer to the terminal.
func (d *TcellDisplay) Draw(s *core.Screen) {
	d.screen.Clear()
	for y := range s.Height() {
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			d.screen.SetContent(x, y, cell.Rune, nil, d.style(cell.Color))
		}
	}
	d.screen.Show()
}

func (d *TcellDisplay) style(c core.Color) tcell.Style {
	if st, ok := d.styles[c]; ok {
		return st
	}
	return d.base
}

// PollInput waits for a key. Resize events redraw and keep waiting.
func (d *TcellDisplay) PollInput(timeout time.Duration) core.Action {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev := <-d.events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				d.screen.Sync()
			case *tcell.EventKey:
				return keyAction(e)
			}
		case <-timer.C:
			return core.ActionNone
		}
	}
}

// ShowEndMessage prints text at a fixed position on a cleared screen.
func (d *TcellDisplay) ShowEndMessage(text string) {
	d.screen.Clear()
	for i, r := range []rune(text) {
		d.screen.SetContent(endMessageX+i, endMessageY, r, nil, d.base)
	}
	d.screen.Show()
}

// Shutdown stops the event pump and restores the terminal.
func (d *TcellDisplay) Shutdown() {
	d.once.Do(func() {
		close(d.done)
		d.screen.Fini()
	})
}

// keyAction maps arrows, wasd and hjkl to moves; q and Ctrl+C quit.
func keyAction(e *tcell.EventKey) core.Action {
	switch e.Key() {
	case tcell.KeyUp:
		return core.ActionUp
	case tcell.KeyDown:
		return core.ActionDown
	case tcell.KeyLeft:
		return core.ActionLeft
	case tcell.KeyRight:
		return core.ActionRight
	case tcell.KeyCtrlC:
		return core.ActionQuit
	case tcell.KeyRune:
		switch e.Rune() {
		case 'w', 'k':
			return core.ActionUp
		case 's', 'j':
			return core.ActionDown
		case 'a', 'h':
			return core.ActionLeft
		case 'd', 'l':
			return core.ActionRight
		case 'q':
			return core.ActionQuit
		}
	}
	return core.ActionNone
}

// tcellColor maps curses colors onto the first eight palette entries.
func tcellColor(c core.Color) tcell.Color {
	if n := c.Curses(); n >= 0 {
		return tcell.PaletteColor(n)
	}
	if c == core.ColorGray {
		return tcell.ColorGray
	}
	return tcell.ColorWhite
}
