// Package tcolor renders colorconv colors as ANSI terminal escape sequences,
// either 24 bit (true color) or downsampled to the 256 colors palette.
package tcolor // import "fortio.org/colorconv/tcolor"

import (
	"fmt"
	"image/color"
	"strings"

	"fortio.org/colorconv"
	"fortio.org/safecast"
)

// Reset all attributes.
const Reset = "\033[0m"

// Terminal foreground 24 bit color string for c.
func Foreground(c colorconv.RGB) string {
	p := c.RGBA8()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", p.R, p.G, p.B)
}

// Terminal background 24 bit color string for c.
func Background(c colorconv.RGB) string {
	p := c.RGBA8()
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", p.R, p.G, p.B)
}

// To216 returns the closest 256 colors palette index: the 24 levels gray
// ramp (232-255, plus 16 and 231 for black and white) for grayish colors, the
// 6x6x6 color cube (16-231) otherwise.
func To216(pixel color.RGBA) uint8 {
	// Check if grayscale
	shift := 4
	if (pixel.R>>shift) == (pixel.G>>shift) && (pixel.G>>shift) == (pixel.B>>shift) {
		lum := (uint16(pixel.R) + uint16(pixel.G) + uint16(pixel.B)) / 3
		if lum < 9 { // 0-9.8 but ... 0-8 9 levels
			return 16 // -> black
		}
		if lum > 247 { // 248-255 (incl) 8 levels
			return 231 // -> white
		}
		return safecast.MustConvert[uint8](min(255, 232+((lum-9)*(256-232))/(247-9)))
	}
	// 6x6x6 color cube
	return 16 + 36*(pixel.R/51) + 6*(pixel.G/51) + pixel.B/51
}

// Output selects between true color and 256 colors escape sequences.
type Output struct {
	TrueColor bool // true if the output supports true color, false for 256 colors
}

// Foreground returns the 24 bit escape when TrueColor is set, the closest
// 256 colors palette one otherwise.
func (o Output) Foreground(c colorconv.RGB) string {
	if o.TrueColor {
		return Foreground(c)
	}
	return fmt.Sprintf("\033[38;5;%dm", To216(c.RGBA8()))
}

// Background is the background version of [Output.Foreground].
func (o Output) Background(c colorconv.RGB) string {
	if o.TrueColor {
		return Background(c)
	}
	return fmt.Sprintf("\033[48;5;%dm", To216(c.RGBA8()))
}

// Swatch returns a block of width spaces painted with c as background,
// followed by Reset. Empty for width <= 0.
func (o Output) Swatch(c colorconv.RGB, width int) string {
	if width <= 0 {
		return ""
	}
	return o.Background(c) + strings.Repeat(" ", width) + Reset
}
