package frog

import "github.com/vovakirdan/tui-frogger/internal/core"

// Frog is the player. It lives inside the field for the whole round.
type Frog struct {
	core.Point
}

// Car moves right along its row and respawns at the left edge.
type Car struct {
	core.Point
	Speed    int  // Cells per tick, 1..MaxSpeed
	CanStop  bool // Waits when it is right behind the frog
	Friendly bool // Relocates the frog instead of ending the round
}

// Obstacle is a static blocked cell.
type Obstacle struct {
	core.Point
}

// Outcome is the round state. Every value except OutcomeRunning is terminal.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Over reports whether the outcome is terminal.
func (o Outcome) Over() bool {
	return o != OutcomeRunning
}

// Message is the fixed end-of-round text.
func (o Outcome) Message() string {
	switch o {
	case OutcomeWon:
		return "YOU WIN!"
	case OutcomeLost:
		return "GAME OVER!"
	case OutcomeTimedOut:
		return "TIME IS UP!!"
	default:
		return ""
	}
}

// Reason tells what ended the round.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonGoal     Reason = "goal"
	ReasonCar      Reason = "car"
	ReasonObstacle Reason = "obstacle"
	ReasonTimeout  Reason = "timeout"
	ReasonNoSpace  Reason = "no_free_cell" // Relocation found no empty cell
)

// State is the externally visible round status.
type State struct {
	Outcome  Outcome
	Reason   Reason
	Score    int
	TimeLeft int // Whole seconds
	Tick     int
	Bumps    int // Friendly-car relocations so far
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State State
	Bumps int // Relocations during this tick
}
