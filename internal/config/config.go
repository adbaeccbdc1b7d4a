// Package config loads and validates the immutable game settings read once
// before a round starts.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Hard limits on entity counts.
const (
	MaxCars      = 100
	MaxObstacles = 10
)

// Configuration errors. Validate wraps one of these so callers can use errors.Is.
var (
	ErrTooManyCars      = errors.New("value exceeds MAX_CARS")
	ErrTooManyObstacles = errors.New("value exceeds MAX_OBSTACLES")
	ErrInvalid          = errors.New("invalid configuration value")
)

// Config contains every setting of a round.
type Config struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	CarCount        int     `yaml:"car_cnt"`
	ObstacleCount   int     `yaml:"obstacle_cnt"`
	TotalTime       int     `yaml:"total_time"` // Seconds
	MaxSpeed        int     `yaml:"max_speed"`
	FriendlyPercent int     `yaml:"frcar_perc"` // 0-100
	RandomSeed      int64   `yaml:"random_seed"`
	Glyphs          Glyphs  `yaml:",inline"`
	Colors          Palette `yaml:",inline"`
	TickMillis      int     `yaml:"tick_ms"`
	MaxAttempts     int     `yaml:"max_attempts"` // Cap for every rejection-sampling loop
}

// Glyphs are the single characters used to draw each entity.
type Glyphs struct {
	Car      Glyph `yaml:"car"`
	Frog     Glyph `yaml:"frog"`
	Goal     Glyph `yaml:"goal"`
	Obstacle Glyph `yaml:"obstacle"`
}

// Palette holds the color of each entity.
type Palette struct {
	Frog     ColorID `yaml:"frog_clr"`
	Car      ColorID `yaml:"car_clr"`
	Goal     ColorID `yaml:"goal_clr"`
	Obstacle ColorID `yaml:"obstacle_clr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:           40,
		Height:          20,
		CarCount:        20,
		ObstacleCount:   6,
		TotalTime:       60,
		MaxSpeed:        2,
		FriendlyPercent: 20,
		RandomSeed:      0,
		Glyphs: Glyphs{
			Car:      '#',
			Frog:     '@',
			Goal:     'G',
			Obstacle: 'X',
		},
		Colors: Palette{
			Frog:     ColorGreen,
			Car:      ColorRed,
			Goal:     ColorYellow,
			Obstacle: ColorBlue,
		},
		TickMillis:  50,
		MaxAttempts: 10000,
	}
}

// Tick returns the frame period.
func (c Config) Tick() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Duration returns the round time budget.
func (c Config) Duration() time.Duration {
	return time.Duration(c.TotalTime) * time.Second
}

// Validate checks the limits and value ranges.
func (c Config) Validate() error {
	if c.CarCount > MaxCars {
		return fmt.Errorf("CAR_CNT=%d: %w (%d)", c.CarCount, ErrTooManyCars, MaxCars)
	}
	if c.ObstacleCount > MaxObstacles {
		return fmt.Errorf("OBSTACLE_CNT=%d: %w (%d)", c.ObstacleCount, ErrTooManyObstacles, MaxObstacles)
	}

	checks := []struct {
		key string
		val int
		min int
		max int
	}{
		{"WIDTH", c.Width, 1, -1},
		{"HEIGHT", c.Height, 3, -1}, // goal row, at least one lane, start row
		{"CAR_CNT", c.CarCount, 0, -1},
		{"OBSTACLE_CNT", c.ObstacleCount, 0, -1},
		{"TOTAL_TIME", c.TotalTime, 1, -1},
		{"MAX_SPEED", c.MaxSpeed, 1, -1},
		{"FRCAR_PERC", c.FriendlyPercent, 0, 100},
		{"TICK_MS", c.TickMillis, 1, -1},
		{"MAX_ATTEMPTS", c.MaxAttempts, 1, -1},
	}
	for _, ch := range checks {
		if ch.val < ch.min || (ch.max >= 0 && ch.val > ch.max) {
			return fmt.Errorf("%s=%d: %w", ch.key, ch.val, ErrInvalid)
		}
	}
	return nil
}

// Glyph is a single display character.
type Glyph rune

// ParseGlyph takes the first character of s.
func ParseGlyph(s string) (Glyph, error) {
	s = strings.TrimSpace(s)
	for _, r := range s {
		return Glyph(r), nil
	}
	return 0, fmt.Errorf("empty glyph: %w", ErrInvalid)
}

func (g Glyph) String() string {
	return string(rune(g))
}

// UnmarshalYAML reads a glyph from a scalar string.
func (g *Glyph) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseGlyph(value.Value)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// MarshalYAML writes the glyph as a one-character string.
func (g Glyph) MarshalYAML() (any, error) {
	return g.String(), nil
}

// ColorID is a curses color number (0-7).
type ColorID int

// Curses color numbers.
const (
	ColorBlack ColorID = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// ParseColor accepts a curses color number or a color name.
func ParseColor(s string) (ColorID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= len(colorNames) {
			return 0, fmt.Errorf("color %d out of range 0-7: %w", n, ErrInvalid)
		}
		return ColorID(n), nil
	}
	for i, name := range colorNames {
		if name == s {
			return ColorID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q: %w", s, ErrInvalid)
}

func (c ColorID) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return strconv.Itoa(int(c))
	}
	return colorNames[c]
}

// UnmarshalYAML accepts either a number or a color name.
func (c *ColorID) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
