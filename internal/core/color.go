package core

// Color is a foreground color for a screen cell, mapped to terminal colors
// by the platform renderer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorOrange
	ColorBrightWhite
)
