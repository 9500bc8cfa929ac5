package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
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
	"grey":           ColorGray,
}

// ParseColor converts a theme color name to a Color.
// Returns ColorDefault and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(s))]
	return c, ok
}

// RGB returns an approximate 8-bit RGB triple for image export.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xcd, 0x31, 0x31
	case ColorGreen:
		return 0x0d, 0xbc, 0x79
	case ColorYellow:
		return 0xe5, 0xe5, 0x10
	case ColorBlue:
		return 0x24, 0x72, 0xc8
	case ColorMagenta:
		return 0xbc, 0x3f, 0xbc
	case ColorCyan:
		return 0x11, 0xa8, 0xcd
	case ColorWhite:
		return 0xe5, 0xe5, 0xe5
	case ColorBrightRed:
		return 0xf1, 0x4c, 0x4c
	case ColorBrightGreen:
		return 0x23, 0xd1, 0x8b
	case ColorBrightYellow:
		return 0xf5, 0xf5, 0x43
	case ColorBrightBlue:
		return 0x3b, 0x8e, 0xea
	case ColorBrightMagenta:
		return 0xd6, 0x70, 0xd6
	case ColorBrightCyan:
		return 0x29, 0xb8, 0xdb
	case ColorBrightWhite:
		return 0xff, 0xff, 0xff
	case ColorOrange:
		return 0xff, 0x87, 0x00
	case ColorGray:
		return 0x8a, 0x8a, 0x8a
	default:
		return 0xcc, 0xcc, 0xcc
	}
}
