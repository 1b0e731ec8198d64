package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorAmber
	ColorDarkOrange
	ColorDimGray
)

// Gradient picks the color for step i of n when shading from one color
// toward another. The palette is discrete, so the band switches at the midpoint.
func Gradient(from, to Color, i, n int) Color {
	if n <= 1 || i*2 < n {
		return from
	}
	return to
}
