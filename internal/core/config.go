package core

import "time"

// RuntimeConfig contains loop settings passed to a frontend when a round starts.
type RuntimeConfig struct {
	Tick     time.Duration // Input poll timeout and frame period
	EndPause time.Duration // How long the end message stays on screen
	Seed     int64         // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with the classic timings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Tick:     50 * time.Millisecond,
		EndPause: 2 * time.Second,
		Seed:     0,
	}
}
