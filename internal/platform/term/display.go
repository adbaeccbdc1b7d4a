// Package term runs a frog round as a synchronous poll loop over a Display.
// The loop polls input with the tick timeout, steps the game and redraws,
// so the poll timeout is also the frame limiter.
package term

import (
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Display is the terminal capability the loop draws through.
type Display interface {
	// Init takes over the terminal and registers the color pairs.
	Init(p config.Palette) error
	// Draw shows a full frame.
	Draw(s *core.Screen)
	// PollInput waits up to timeout for one key and returns its action.
	// It returns ActionNone on timeout or for unbound keys.
	PollInput(timeout time.Duration) core.Action
	// ShowEndMessage clears the terminal and prints the end text.
	ShowEndMessage(text string)
	// Shutdown restores the terminal. It is safe to call more than once.
	Shutdown()
}
