package core

// Color is a foreground color for a screen cell. The platform layer maps
// each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorMagenta
	ColorBlue
	ColorOrange
	ColorGreen
	ColorRed
	ColorGray
	ColorDim
	ColorBrightWhite
)
