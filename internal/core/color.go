package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Predefined colors. The first eight follow the curses color numbering
// (offset by one for ColorDefault).
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

// CursesColor converts a curses color number (0-7) to a Color.
// Numbers outside the range map to ColorDefault.
func CursesColor(n int) Color {
	if n < 0 || n > 7 {
		return ColorDefault
	}
	return ColorBlack + Color(n)
}

// Curses returns the curses color number for c, or -1 for colors
// without one.
func (c Color) Curses() int {
	if c < ColorBlack || c > ColorWhite {
		return -1
	}
	return int(c - ColorBlack)
}
