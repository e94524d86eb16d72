package core

import "strconv"

// Color is a cell foreground color. Non-zero values are ANSI 256-color
// indexes offset by one, so the zero value means the terminal default.
type Color uint16

// Palette used by the rasterizer.
const (
	ColorDefault      Color = 0
	ColorRed          Color = 1 + 1
	ColorGreen        Color = 2 + 1
	ColorYellow       Color = 3 + 1
	ColorMagenta      Color = 5 + 1
	ColorBrightRed    Color = 9 + 1
	ColorBrightYellow Color = 11 + 1
	ColorBrightCyan   Color = 14 + 1
	ColorBrown        Color = 94 + 1
	ColorGray         Color = 245 + 1
)

// ANSI returns the 256-color index as a string, or "" for the default color.
func (c Color) ANSI() string {
	if c == ColorDefault {
		return ""
	}
	return strconv.Itoa(int(c) - 1)
}
