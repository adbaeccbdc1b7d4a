package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frog"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one frog round.
// The game must already be Reset; the model only steps and draws it.
type Model struct {
	game     *frog.Game
	screen   *core.Screen
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	state    frog.State
	ended    bool // End message is on screen
	quitting bool
}

// NewModel creates a model for a reset game.
func NewModel(game *frog.Game, logger *log.Logger, cfg core.RuntimeConfig) Model {
	return Model{
		game:   game,
		screen: core.NewScreen(game.ScreenSize()),
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		input:  core.NewInputFrame(),
		state:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case endMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey records the latest move for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		if !m.ended {
			m.logger.Info("round abandoned", "tick", m.state.Tick, "time_left", m.state.TimeLeft)
		}
		m.quitting = true
		return m, tea.Quit
	}

	if !m.ended {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ended {
		return m, nil
	}

	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	if result.Bumps > 0 {
		m.logger.Debug("frog relocated", "bumps", result.Bumps, "tick", m.state.Tick)
	}

	if m.state.Outcome.Over() {
		m.ended = true
		m.logger.Info("round over",
			"outcome", m.state.Outcome,
			"reason", m.state.Reason,
			"score", m.state.Score,
			"time_left", m.state.TimeLeft,
		)
		return m, endCmd(m.config.EndPause)
	}

	return m, tickCmd(m.config.Tick)
}

// View renders the field, or the end message once the round is over.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.ended {
		frog.RenderEnd(m.screen, m.state.Outcome.Message())
		return RenderScreen(m.screen)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed round state.
func (m Model) State() frog.State {
	return m.state
}

// Run plays a reset game in the alternate screen and returns the final state.
// The outcome is OutcomeRunning when the player quit early.
func Run(game *frog.Game, logger *log.Logger, cfg core.RuntimeConfig) (frog.State, error) {
	p := tea.NewProgram(NewModel(game, logger, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return frog.State{}, err
	}

	m, ok := final.(Model)
	if !ok {
		return game.State(), nil
	}
	return m.State(), nil
}
