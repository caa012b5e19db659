package core

// Color represents a foreground color for a drawn glyph or text.
// Terminal hosts map it to ANSI codes, window hosts to RGBA.
type Color uint8

// Palette used by the runner's sprites and status overlay.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorGray
	ColorBrightGreen
	ColorBrightRed
	ColorOrange
)
