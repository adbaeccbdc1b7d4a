package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W, K
	ActionDown         // Down arrow, S, J
	ActionLeft         // Left arrow, A, H
	ActionRight        // Right arrow, D, L
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action moves the frog.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// Delta returns the one-cell offset for a move action, or the zero point.
func (a Action) Delta() Point {
	switch a {
	case ActionUp:
		return Point{Y: -1}
	case ActionDown:
		return Point{Y: 1}
	case ActionLeft:
		return Point{X: -1}
	case ActionRight:
		return Point{X: 1}
	}
	return Point{}
}

// InputFrame collects the input for one simulation tick.
// Only the most recent move survives; a later key overwrites an earlier one.
type InputFrame struct {
	move Action
	quit bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf builds a frame holding a single action.
func FrameOf(a Action) InputFrame {
	var f InputFrame
	f.Set(a)
	return f
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	switch {
	case a.IsMove():
		f.move = a
	case a == ActionQuit:
		f.quit = true
	}
}

// Move returns the most recent move action, or ActionNone.
func (f InputFrame) Move() Action {
	return f.move
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionQuit {
		return f.quit
	}
	return a != ActionNone && f.move == a
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.move = ActionNone
	f.quit = false
}
