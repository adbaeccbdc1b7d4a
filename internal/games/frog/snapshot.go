package frog

// Snapshot captures the complete round state for determinism testing.
type Snapshot struct {
	Seed      int64
	Tick      int
	Frog      Frog
	Cars      []Car
	Obstacles []Obstacle
	Outcome   Outcome
	Reason    Reason
	Bumps     int
}

// Snapshot returns a copy of the current round state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Seed:      g.seed,
		Tick:      g.tick,
		Frog:      g.frog,
		Cars:      g.Cars(),
		Obstacles: g.Obstacles(),
		Outcome:   g.outcome,
		Reason:    g.reason,
		Bumps:     g.bumps,
	}
}
