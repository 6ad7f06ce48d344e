package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI codes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGray
	ColorDarkGray
	ColorWhite
	ColorBrightWhite
	ColorRed
	ColorYellow
	ColorCyan
)

// Invert returns the colour used for c while night mode is active.
func (c Color) Invert() Color {
	switch c {
	case ColorDefault, ColorDarkGray:
		return ColorBrightWhite
	case ColorGray:
		return ColorWhite
	case ColorWhite, ColorBrightWhite:
		return ColorDarkGray
	default:
		return c
	}
}
