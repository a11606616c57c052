package colorconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fortio.org/log"
)

// roundHalfUp rounds to the nearest integer, ties toward +Inf (so -2.5 is -2).
func roundHalfUp(x float64) float64 {
	if fl := math.Floor(x); x-fl == 0.5 {
		return fl + 1
	}
	return math.Round(x)
}

// num formats v the shortest way, without exponent.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hexByte(v float64) string {
	return fmt.Sprintf("%02x", int64(roundHalfUp(v)))
}

func roundedInt(v float64) string {
	return strconv.FormatInt(int64(roundHalfUp(v)), 10)
}

// RGBToHex returns the lowercase "rrggbb" hex string (no leading #) for rgb,
// each channel rounded to the nearest integer.
func RGBToHex(rgb RGB) string {
	return hexByte(rgb.R) + hexByte(rgb.G) + hexByte(rgb.B)
}

// GrayToHex returns the "rrggbb" hex string for gray in [0,100].
func GrayToHex(gray float64) string {
	p := hexByte(gray / 100 * 255)
	return p + p + p
}

// HexToRGB parses a "rrggbb" hex string (optional leading # or 0x, case
// insensitive). Like a lenient parser it uses the longest leading run of hex
// digits. Input without such a prefix (or overflowing 64 bits) is not an
// error: black is returned.
func HexToRGB(input string) RGB {
	s := strings.TrimPrefix(strings.TrimSpace(input), "#")
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	end := 0
	for end < len(s) && isHexDigit(s[end]) {
		end++
	}
	value, err := strconv.ParseUint(s[:end], 16, 64)
	if err != nil {
		log.Debugf("HexToRGB: invalid hex color %q, using black: %v", input, err)
		return RGB{}
	}
	v := uint32(value) //nolint:gosec // only the low 24 bits are used.
	return RGB{
		R: float64((v >> 16) & 0xFF),
		G: float64((v >> 8) & 0xFF),
		B: float64(v & 0xFF),
	}
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// RGBToCSS returns "rgb(r,g,b)" with each channel rounded.
func RGBToCSS(rgb RGB) string {
	return "rgb(" + RGBToStr(rgb) + ")"
}

// RGBToStr returns "r,g,b" with each channel rounded, e.g. "0,127,255".
func RGBToStr(rgb RGB) string {
	return roundedInt(rgb.R) + "," + roundedInt(rgb.G) + "," + roundedInt(rgb.B)
}

// RGBAToCSS returns "rgba(r,g,b,a)" with each channel rounded and alpha
// ([0,1]) rounded to 2 places.
func RGBAToCSS(rgb RGB, alpha float64) string {
	return "rgba(" + RGBToStr(rgb) + "," + num(RoundTo(alpha, 2)) + ")"
}

// HSLToCSS returns "hsl(hdeg,s%,l%)", 2 places for each component.
func HSLToCSS(hsl HSL) string {
	return "hsl(" + num(RoundTo(hsl.H, 2)) + "deg," + num(RoundTo(hsl.S, 2)) + "%," +
		num(RoundTo(hsl.L, 2)) + "%)"
}

// HWBToCSS returns "hwb(hdeg,w%,b%)", 2 places for each component.
func HWBToCSS(hwb HWB) string {
	return "hwb(" + num(RoundTo(hwb.H, 2)) + "deg," + num(RoundTo(hwb.W, 2)) + "%," +
		num(RoundTo(hwb.B, 2)) + "%)"
}
