package core

// Color is the foreground colour of a screen cell.
// The platform maps each value to an ANSI palette entry.
type Color uint8

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

// Theme colours shared by the three space games.
const (
	ColorWall    = ColorBlue
	ColorPlayer  = ColorBrightCyan
	ColorKey     = ColorBrightYellow
	ColorHazard  = ColorBrightRed
	ColorExit    = ColorBrightGreen
	ColorHint    = ColorBrightMagenta
	ColorMuted   = ColorGray
	ColorHUD     = ColorWhite
	ColorSuccess = ColorGreen
)
