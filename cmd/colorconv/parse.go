package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"fortio.org/colorconv"
	"golang.org/x/image/colornames"
)

// ErrUnknownSpace is returned (wrapped) for a "space:..." color whose space
// isn't one of Spaces.
var ErrUnknownSpace = errors.New("unknown color space")

type spaceParser struct {
	n       int // number of components
	convert func(v []float64) colorconv.RGB
}

var parsers = map[string]spaceParser{
	"rgb": {3, func(v []float64) colorconv.RGB { return colorconv.RGB{R: v[0], G: v[1], B: v[2]} }},
	"hsl": {3, func(v []float64) colorconv.RGB { return colorconv.HSLToRGB(colorconv.HSL{H: v[0], S: v[1], L: v[2]}) }},
	"hsv": {3, func(v []float64) colorconv.RGB { return colorconv.HSVToRGB(colorconv.HSV{H: v[0], S: v[1], V: v[2]}) }},
	"hcg": {3, func(v []float64) colorconv.RGB { return colorconv.HCGToRGB(colorconv.HCG{H: v[0], C: v[1], G: v[2]}) }},
	"hwb": {3, func(v []float64) colorconv.RGB { return colorconv.HWBToRGB(colorconv.HWB{H: v[0], W: v[1], B: v[2]}) }},
	"cmyk": {4, func(v []float64) colorconv.RGB {
		return colorconv.CMYKToRGB(colorconv.CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]})
	}},
	"xyz": {3, func(v []float64) colorconv.RGB { return colorconv.XYZToRGB(colorconv.XYZ{X: v[0], Y: v[1], Z: v[2]}) }},
	"lab": {3, func(v []float64) colorconv.RGB { return labToRGB(colorconv.Lab{L: v[0], A: v[1], B: v[2]}) }},
	"lch": {3, func(v []float64) colorconv.RGB {
		return labToRGB(colorconv.LChToLab(colorconv.LCh{L: v[0], C: v[1], H: v[2]}))
	}},
	"apple": {3, func(v []float64) colorconv.RGB {
		return colorconv.AppleToRGB(colorconv.Apple{R16: v[0], G16: v[1], B16: v[2]})
	}},
	"gray": {1, func(v []float64) colorconv.RGB { return colorconv.GrayToRGB(v[0]) }},
}

func labToRGB(lab colorconv.Lab) colorconv.RGB {
	return colorconv.XYZToRGB(colorconv.LabToLYZ(lab).XYZ())
}

// Spaces returns the sorted list of spaces accepted in "space:v1,v2,...".
func Spaces() []string {
	res := make([]string, 0, len(parsers))
	for k := range parsers {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// ParseColor converts user input to RGB. Accepted forms are RRGGBB (with or
// without #), a CSS color name and space:v1,v2,v3 (4 values for cmyk, 1 for
// gray) in that space's own scale, e.g. hsl:26,51.6,43.7.
func ParseColor(input string) (colorconv.RGB, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if space, values, found := strings.Cut(s, ":"); found {
		return parseSpace(strings.TrimSpace(space), values)
	}
	if c, ok := colornames.Map[s]; ok {
		return colorconv.FromColor(c), nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || strings.Trim(hex, "0123456789abcdef") != "" {
		return colorconv.RGB{}, fmt.Errorf("invalid color '%s', must be RRGGBB, a color name or space:v1,v2,v3", input)
	}
	return colorconv.HexToRGB(hex), nil
}

func parseSpace(space, values string) (colorconv.RGB, error) {
	p, ok := parsers[space]
	if !ok {
		return colorconv.RGB{}, fmt.Errorf("%w '%s', must be one of %s", ErrUnknownSpace, space,
			strings.Join(Spaces(), ", "))
	}
	parts := strings.Split(values, ",")
	if len(parts) != p.n {
		return colorconv.RGB{}, fmt.Errorf("invalid %s color '%s', need %d comma separated values", space, values, p.n)
	}
	v := make([]float64, p.n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return colorconv.RGB{}, fmt.Errorf("invalid %s component '%s': %w", space, part, err)
		}
		v[i] = f
	}
	return p.convert(v), nil
}
