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
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorGold
	ColorOrange
	ColorPurple
	ColorGray
)

// String returns the color name, used in logs and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorBrightRed:
		return "bright-red"
	case ColorBrightGreen:
		return "bright-green"
	case ColorGold:
		return "gold"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
