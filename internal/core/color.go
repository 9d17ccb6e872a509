package core

// Color is a foreground color for a screen cell. Hosts map it to terminal styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorGray
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}
