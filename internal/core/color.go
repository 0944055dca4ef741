package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Fade returns the color a particle should be drawn in given the fraction of
// its lifetime still remaining. Fresh particles are hot, dying ones grey out.
func Fade(remaining float64) Color {
	switch {
	case remaining > 0.66:
		return ColorBrightYellow
	case remaining > 0.33:
		return ColorOrange
	case remaining > 0:
		return ColorRed
	default:
		return ColorGray
	}
}
