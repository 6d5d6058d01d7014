package core

import "strings"

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
	ColorBrown
	ColorBeige
	ColorPink
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"brown":          ColorBrown,
	"beige":          ColorBeige,
	"pink":           ColorPink,
}

// ColorByName looks up a color by its lowercase name (e.g. "bright_yellow").
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// CyclePalette is the 16-color sequence used for blinking/cycling text.
var CyclePalette = [16]Color{
	ColorDefault, ColorRed, ColorGreen, ColorYellow,
	ColorBlue, ColorMagenta, ColorCyan, ColorWhite,
	ColorGray, ColorBrightRed, ColorBrightGreen, ColorBrightYellow,
	ColorBrightBlue, ColorBrightMagenta, ColorBrightCyan, ColorBrightWhite,
}
