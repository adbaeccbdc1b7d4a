package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseKeyValue(t *testing.T) {
	data := []byte(`
# comment line
HEIGHT=12
WIDTH=30
CAR_CNT=7
CAR=#
OBSTACLE=;
FROG_CLR=cyan
CAR_CLR=5
RANDOM_SEED=99
UNKNOWN_KEY=whatever
not a key value line
`)

	cfg, err := Parse(data, Default())
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Width != 30 || cfg.Height != 12 {
		t.Errorf("size = %dx%d, expected 30x12", cfg.Width, cfg.Height)
	}
	if cfg.CarCount != 7 {
		t.Errorf("CarCount = %d, expected 7", cfg.CarCount)
	}
	if cfg.Glyphs.Car != '#' {
		t.Errorf("Car glyph = %q, expected '#'", cfg.Glyphs.Car)
	}
	if cfg.Glyphs.Obstacle != ';' {
		t.Errorf("Obstacle glyph = %q, expected ';'", cfg.Glyphs.Obstacle)
	}
	if cfg.Colors.Frog != ColorCyan || cfg.Colors.Car != ColorMagenta {
		t.Errorf("colors = %v/%v, expected cyan/magenta", cfg.Colors.Frog, cfg.Colors.Car)
	}
	if cfg.RandomSeed != 99 {
		t.Errorf("RandomSeed = %d, expected 99", cfg.RandomSeed)
	}

	// Keys missing from the file keep their defaults
	def := Default()
	if cfg.TotalTime != def.TotalTime || cfg.MaxSpeed != def.MaxSpeed {
		t.Error("missing keys should keep default values")
	}
	if cfg.Glyphs.Frog != def.Glyphs.Frog {
		t.Errorf("Frog glyph = %q, expected default %q", cfg.Glyphs.Frog, def.Glyphs.Frog)
	}
}

func TestParseInvalidNumber(t *testing.T) {
	_, err := Parse([]byte("WIDTH=wide\n"), Default())
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestParseInvalidColor(t *testing.T) {
	_, err := Parse([]byte("CAR_CLR=purple\n"), Default())
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
width: 25
car_cnt: 3
frog: "F"
goal_clr: white
obstacle_clr: 6
`)

	cfg, err := ParseYAML(data, Default())
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if cfg.Width != 25 || cfg.CarCount != 3 {
		t.Errorf("got width=%d cars=%d, expected 25 and 3", cfg.Width, cfg.CarCount)
	}
	if cfg.Glyphs.Frog != 'F' {
		t.Errorf("Frog glyph = %q, expected 'F'", cfg.Glyphs.Frog)
	}
	if cfg.Colors.Goal != ColorWhite || cfg.Colors.Obstacle != ColorCyan {
		t.Errorf("colors = %v/%v, expected white/cyan", cfg.Colors.Goal, cfg.Colors.Obstacle)
	}
	if cfg.Height != Default().Height {
		t.Error("missing keys should keep default values")
	}
}

func TestLoadFileByExtension(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "frog.txt")
	if err := os.WriteFile(txt, []byte("WIDTH=11\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	yml := filepath.Join(dir, "frog.yaml")
	if err := os.WriteFile(yml, []byte("width: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(txt)
	if err != nil || cfg.Width != 11 {
		t.Errorf("LoadFile(txt) = %d, %v; expected 11", cfg.Width, err)
	}
	cfg, err = LoadFile(yml)
	if err != nil || cfg.Width != 12 {
		t.Errorf("LoadFile(yaml) = %d, %v; expected 12", cfg.Width, err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("Load should fail when the custom config cannot be opened")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg != Default() {
		t.Errorf("embedded config should match Default(), got %+v", cfg)
	}
}

func TestLoadWorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.WriteFile(DefaultFileName, []byte("CAR_CNT=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != DefaultFileName {
		t.Errorf("source = %q, expected %q", source, DefaultFileName)
	}
	if cfg.CarCount != 3 {
		t.Errorf("CarCount = %d, expected 3", cfg.CarCount)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Width = 33
	cfg.Glyphs.Obstacle = ';'
	cfg.Colors.Car = ColorMagenta

	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	parsed, err := Parse(buf.Bytes(), Config{})
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if parsed != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", parsed, cfg)
	}
}

func TestParseLiteralValues(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		glyph Glyph
		width int
	}{
		{"backslash does not join lines", "CAR=\\\nWIDTH=12\n", '\\', 12},
		{"backtick is not a quote", "CAR=`\nWIDTH=12\n", '`', 12},
		{"double quote", "CAR=\"\nWIDTH=12\n", '"', 12},
		{"single quote", "CAR='\nWIDTH=12\n", '\'', 12},
		{"section header is skipped", "[field]\nCAR=%\nWIDTH=12\n", '%', 12},
		{"spaces around delimiter", "  CAR =  *  \n WIDTH = 12\n", '*', 12},
		{"last value wins", "CAR=a\nWIDTH=5\nCAR=b\nWIDTH=12\n", 'b', 12},
		{"crlf line endings", "CAR=&\r\nWIDTH=12\r\n", '&', 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.data), Default())
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if cfg.Glyphs.Car != tc.glyph {
				t.Errorf("Car glyph = %q, expected %q", cfg.Glyphs.Car, tc.glyph)
			}
			if cfg.Width != tc.width {
				t.Errorf("Width = %d, expected %d", cfg.Width, tc.width)
			}
		})
	}
}

func TestParseBackslashKeepsLimitCheck(t *testing.T) {
	cfg, err := Parse([]byte("CAR=\\\nOBSTACLE_CNT=50\n"), Default())
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.ObstacleCount != 50 {
		t.Fatalf("ObstacleCount = %d, expected 50", cfg.ObstacleCount)
	}
	if err := cfg.Validate(); !errors.Is(err, ErrTooManyObstacles) {
		t.Errorf("Validate() = %v, expected ErrTooManyObstacles", err)
	}
}

func TestWriteRoundTripAwkwardGlyphs(t *testing.T) {
	cfg := Default()
	cfg.Glyphs = Glyphs{Car: '`', Frog: '\\', Goal: '"', Obstacle: '#'}

	var buf bytes.Buffer
	if err := Write(&buf, cfg); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	parsed, err := Parse(buf.Bytes(), Config{})
	if err != nil {
		t.Fatalf("Parse() failed: %v\n%s", err, buf.String())
	}
	if parsed != cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v\n%s", parsed.Glyphs, cfg.Glyphs, buf.String())
	}
}
