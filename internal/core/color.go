package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorGreen
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
