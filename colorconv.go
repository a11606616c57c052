// Package colorconv provides conversions between color spaces (RGB, HSL, HSV,
// HCG, HWB, CMYK, Lab, XYZ, LCh, Apple 16 bit RGB and grayscale) along with
// hex and CSS formatting helpers.
//
// All conversions are pure functions on plain value types: nothing is clamped
// or rounded unless stated, so chained conversions keep full float64 precision.
package colorconv // import "fortio.org/colorconv"

// RGB color, each channel in [0,255] (not necessarily integer).
type RGB struct {
	R, G, B float64
}

// HSL color: hue in [0,360), saturation and lightness in [0,100].
type HSL struct {
	H, S, L float64
}

// HSV color: hue in [0,360), saturation and value in [0,100].
type HSV struct {
	H, S, V float64
}

// HCG color (hue, chroma, gray): hue in [0,360), chroma and gray in [0,100].
type HCG struct {
	H, C, G float64
}

// HWB color (hue, whiteness, blackness): hue in [0,360), W and B in [0,100].
// W+B above 100 is normalized when converting back to RGB.
type HWB struct {
	H, W, B float64
}

// CMYK color, each component in [0,100].
type CMYK struct {
	C, M, Y, K float64
}

// Lab is CIE L*a*b* (D65): L in [0,100], A and B unbounded (typically [-128,127]).
type Lab struct {
	L, A, B float64
}

// XYZ is CIE 1931 XYZ tristimulus (D65), roughly [0,100] (Y=100 is white).
type XYZ struct {
	X, Y, Z float64
}

// LYZ is the un-normalized XYZ-like triple obtained when reversing Lab,
// see [LabToLYZ]. L holds the X axis.
type LYZ struct {
	L, Y, Z float64
}

// LCh is the cylindrical form of Lab: C is the chroma, H the hue angle in
// degrees [0,360).
type LCh struct {
	L, C, H float64
}

// Apple is the 16 bit per channel RGB used by Apple color pickers, [0,65535].
type Apple struct {
	R16, G16, B16 float64
}

// Multiplier is implemented by every color type of this package.
type Multiplier[T any] interface {
	Mul(by float64) T
}

// Multiply scales every field of the color c by the same factor.
// e.g. Multiply(CMYK{0, 1, 0.5, 0.2}, 100) is CMYK{0, 100, 50, 20}.
func Multiply[T Multiplier[T]](c T, by float64) T {
	return c.Mul(by)
}

func (c RGB) Mul(by float64) RGB     { return RGB{c.R * by, c.G * by, c.B * by} }
func (c HSL) Mul(by float64) HSL     { return HSL{c.H * by, c.S * by, c.L * by} }
func (c HSV) Mul(by float64) HSV     { return HSV{c.H * by, c.S * by, c.V * by} }
func (c HCG) Mul(by float64) HCG     { return HCG{c.H * by, c.C * by, c.G * by} }
func (c HWB) Mul(by float64) HWB     { return HWB{c.H * by, c.W * by, c.B * by} }
func (c CMYK) Mul(by float64) CMYK   { return CMYK{c.C * by, c.M * by, c.Y * by, c.K * by} }
func (c Lab) Mul(by float64) Lab     { return Lab{c.L * by, c.A * by, c.B * by} }
func (c XYZ) Mul(by float64) XYZ     { return XYZ{c.X * by, c.Y * by, c.Z * by} }
func (c LYZ) Mul(by float64) LYZ     { return LYZ{c.L * by, c.Y * by, c.Z * by} }
func (c LCh) Mul(by float64) LCh     { return LCh{c.L * by, c.C * by, c.H * by} }
func (c Apple) Mul(by float64) Apple { return Apple{c.R16 * by, c.G16 * by, c.B16 * by} }

// stringPlaces is the rounding used by the String() methods.
const stringPlaces = 2

func triple(name string, a, b, c float64) string {
	return name + "(" + num(RoundTo(a, stringPlaces)) + "," + num(RoundTo(b, stringPlaces)) + "," +
		num(RoundTo(c, stringPlaces)) + ")"
}

func (c RGB) String() string   { return triple("rgb", c.R, c.G, c.B) }
func (c HSL) String() string   { return triple("hsl", c.H, c.S, c.L) }
func (c HSV) String() string   { return triple("hsv", c.H, c.S, c.V) }
func (c HCG) String() string   { return triple("hcg", c.H, c.C, c.G) }
func (c HWB) String() string   { return triple("hwb", c.H, c.W, c.B) }
func (c Lab) String() string   { return triple("lab", c.L, c.A, c.B) }
func (c XYZ) String() string   { return triple("xyz", c.X, c.Y, c.Z) }
func (c LYZ) String() string   { return triple("lyz", c.L, c.Y, c.Z) }
func (c LCh) String() string   { return triple("lch", c.L, c.C, c.H) }
func (c Apple) String() string { return triple("apple", c.R16, c.G16, c.B16) }

func (c CMYK) String() string {
	return "cmyk(" + num(RoundTo(c.C, stringPlaces)) + "," + num(RoundTo(c.M, stringPlaces)) + "," +
		num(RoundTo(c.Y, stringPlaces)) + "," + num(RoundTo(c.K, stringPlaces)) + ")"
}
