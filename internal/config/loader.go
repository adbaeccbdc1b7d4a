package config

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.txt
var defaultConfigTxt []byte

// DefaultFileName is the configuration file looked up in the working directory.
const DefaultFileName = "config.txt"

// SourceEmbedded is reported by Load when no file was found.
const SourceEmbedded = "embedded"

// key binds one KEY=VALUE name to a Config field.
type key struct {
	name string
	get  func(*Config) string
	set  func(*Config, string) error
}

func intKey(name string, field func(*Config) *int) key {
	return key{
		name: name,
		get:  func(c *Config) string { return strconv.Itoa(*field(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("%s=%q: not a number: %w", name, v, ErrInvalid)
			}
			*field(c) = n
			return nil
		},
	}
}

func glyphKey(name string, field func(*Config) *Glyph) key {
	return key{
		name: name,
		get:  func(c *Config) string { return field(c).String() },
		set: func(c *Config, v string) error {
			g, err := ParseGlyph(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*field(c) = g
			return nil
		},
	}
}

func colorKey(name string, field func(*Config) *ColorID) key {
	return key{
		name: name,
		get:  func(c *Config) string { return strconv.Itoa(int(*field(c))) },
		set: func(c *Config, v string) error {
			id, err := ParseColor(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*field(c) = id
			return nil
		},
	}
}

// keys lists every recognized key in output order.
var keys = []key{
	intKey("WIDTH", func(c *Config) *int { return &c.Width }),
	intKey("HEIGHT", func(c *Config) *int { return &c.Height }),
	intKey("CAR_CNT", func(c *Config) *int { return &c.CarCount }),
	intKey("OBSTACLE_CNT", func(c *Config) *int { return &c.ObstacleCount }),
	intKey("TOTAL_TIME", func(c *Config) *int { return &c.TotalTime }),
	intKey("MAX_SPEED", func(c *Config) *int { return &c.MaxSpeed }),
	intKey("FRCAR_PERC", func(c *Config) *int { return &c.FriendlyPercent }),
	{
		name: "RANDOM_SEED",
		get:  func(c *Config) string { return strconv.FormatInt(c.RandomSeed, 10) },
		set: func(c *Config, v string) error {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return fmt.Errorf("RANDOM_SEED=%q: not a number: %w", v, ErrInvalid)
			}
			c.RandomSeed = n
			return nil
		},
	},
	glyphKey("CAR", func(c *Config) *Glyph { return &c.Glyphs.Car }),
	glyphKey("FROG", func(c *Config) *Glyph { return &c.Glyphs.Frog }),
	glyphKey("GOAL", func(c *Config) *Glyph { return &c.Glyphs.Goal }),
	glyphKey("OBSTACLE", func(c *Config) *Glyph { return &c.Glyphs.Obstacle }),
	colorKey("FROG_CLR", func(c *Config) *ColorID { return &c.Colors.Frog }),
	colorKey("CAR_CLR", func(c *Config) *ColorID { return &c.Colors.Car }),
	colorKey("GOAL_CLR", func(c *Config) *ColorID { return &c.Colors.Goal }),
	colorKey("OBSTACLE_CLR", func(c *Config) *ColorID { return &c.Colors.Obstacle }),
	intKey("TICK_MS", func(c *Config) *int { return &c.TickMillis }),
	intKey("MAX_ATTEMPTS", func(c *Config) *int { return &c.MaxAttempts }),
}

// tripleQuote is the ini quoting that keeps a value verbatim.
const tripleQuote = `"""`

func knownKey(name string) bool {
	for _, k := range keys {
		if k.name == name {
			return true
		}
	}
	return false
}

// literalSource keeps the recognized KEY=VALUE lines of data and quotes each
// value so ini reads it verbatim: a trailing backslash, a leading backtick or
// a lone quote is a glyph, not ini syntax. Lines without '=' (section headers
// included) and unknown keys are dropped. Values already triple-quoted, as
// Write emits them, pass through unchanged.
func literalSource(data []byte) []byte {
	var b bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		name, value, ok := strings.Cut(sc.Text(), "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if !knownKey(name) {
			continue
		}
		value = strings.TrimSpace(value)
		quoted := len(value) >= 2*len(tripleQuote) &&
			strings.HasPrefix(value, tripleQuote) && strings.HasSuffix(value, tripleQuote)
		if !quoted {
			value = tripleQuote + value + tripleQuote
		}
		fmt.Fprintf(&b, "%s = %s\n", name, value)
	}
	return b.Bytes()
}

// Parse reads KEY=VALUE lines on top of base. Keys missing from data keep
// the value they have in base; unknown keys and malformed lines are ignored.
// The last occurrence of a key wins.
func Parse(data []byte, base Config) (Config, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true, // '#' and ';' are valid glyphs
		IgnoreContinuation:      true, // so is a trailing backslash
		SkipUnrecognizableLines: true,
	}, literalSource(data))
	if err != nil {
		return base, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := base
	sec := f.Section(ini.DefaultSection)
	for _, k := range keys {
		if !sec.HasKey(k.name) {
			continue
		}
		if err := k.set(&cfg, sec.Key(k.name).String()); err != nil {
			return base, err
		}
	}
	return cfg, nil
}

// ParseYAML reads the same settings from YAML with lower-case keys.
func ParseYAML(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a config file, choosing the format by extension.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data, Default())
	default:
		cfg, err = Parse(data, Default())
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load loads the round configuration and reports where it came from.
// Search order: customPath -> ./config.txt -> ~/.frogger/config.txt -> embedded default.
// A customPath that cannot be read or parsed is an error; the other
// locations are skipped when missing.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		return cfg, customPath, err
	}

	candidates := []string{DefaultFileName}
	if userCfgPath := userConfigPath(DefaultFileName); userCfgPath != "" {
		candidates = append(candidates, userCfgPath)
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := LoadFile(path)
		return cfg, path, err
	}

	cfg, err := Parse(defaultConfigTxt, Default())
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Write prints cfg as KEY=VALUE lines.
func Write(w io.Writer, cfg Config) error {
	f := ini.Empty(ini.LoadOptions{IgnoreInlineComment: true})
	sec := f.Section(ini.DefaultSection)
	for _, k := range keys {
		if _, err := sec.NewKey(k.name, k.get(&cfg)); err != nil {
			return fmt.Errorf("failed to write %s: %w", k.name, err)
		}
	}
	_, err := f.WriteTo(w)
	return err
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frogger", filename)
}
