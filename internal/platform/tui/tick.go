// Package tui provides the Bubble Tea frontend for the frog game.
// It ties the tick timer, key input, the simulation step and rendering together.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// endMsg is sent once the end-of-round message has been shown long enough.
type endMsg struct{}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// endCmd fires endMsg after the pause.
func endCmd(pause time.Duration) tea.Cmd {
	return tea.Tick(pause, func(time.Time) tea.Msg {
		return endMsg{}
	})
}
