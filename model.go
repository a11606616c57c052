package colorconv

import (
	"image/color"
	"math"

	"fortio.org/safecast"
)

// RGBModel converts any color.Color to RGB (alpha is dropped, the channels
// stay premultiplied as returned by RGBA()).
var RGBModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	return FromColor(c)
}

// FromColor returns the RGB equivalent of c, at full 16 bit precision.
func FromColor(c color.Color) RGB {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: float64(r) / 257, G: float64(g) / 257, B: float64(b) / 257}
}

func clamp255(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(255, max(0, v))
}

// RGBA implements color.Color: channels are clamped to [0,255] and the color
// is fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = safecast.MustConvert[uint32](math.Round(clamp255(c.R) * 257))
	g = safecast.MustConvert[uint32](math.Round(clamp255(c.G) * 257))
	b = safecast.MustConvert[uint32](math.Round(clamp255(c.B) * 257))
	return r, g, b, 0xffff
}

// RGBA8 returns the opaque 8 bit color.RGBA closest to c (rounded, clamped).
func (c RGB) RGBA8() color.RGBA {
	return color.RGBA{
		R: safecast.MustConvert[uint8](math.Round(clamp255(c.R))),
		G: safecast.MustConvert[uint8](math.Round(clamp255(c.G))),
		B: safecast.MustConvert[uint8](math.Round(clamp255(c.B))),
		A: 0xff,
	}
}
