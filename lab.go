package colorconv

import "math"

// D65 reference white, Y normalized to 1 and to 100.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883

	refX = 95.047
	refY = 100.
	refZ = 108.883
)

// CIE constants as used by the Lab formulas: epsilon threshold (~216/24389)
// and slope of the linear segment (~24389/27/116).
const (
	labEpsilon = 0.008856
	labKappa   = 7.787
	labOffset  = 16. / 116.
)

// srgbToLinear removes the sRGB gamma, x in [0,1].
func srgbToLinear(x float64) float64 {
	if x > 0.04045 {
		return math.Pow((x+0.055)/1.055, 2.4)
	}
	return x / 12.92
}

// linearToSRGB applies the sRGB gamma.
func linearToSRGB(x float64) float64 {
	if x > 0.0031308 {
		return 1.055*math.Pow(x, 1./2.4) - 0.055
	}
	return x * 12.92
}

// labCompress is the Lab f(t): cube root above epsilon, linear below.
func labCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1./3.)
	}
	return labKappa*t + labOffset
}

// labUncompress is the inverse of labCompress.
func labUncompress(ft float64) float64 {
	if ft3 := math.Pow(ft, 3); ft3 > labEpsilon {
		return ft3
	}
	return (ft - labOffset) / labKappa
}

// RGBToXYZ converts rgb to CIE XYZ (D65, sRGB primaries), Y=100 for white.
func RGBToXYZ(rgb RGB) XYZ {
	r := srgbToLinear(rgb.R/255) * 100
	g := srgbToLinear(rgb.G/255) * 100
	b := srgbToLinear(rgb.B/255) * 100
	return XYZ{
		X: r*0.412453 + g*0.357580 + b*0.180423,
		Y: r*0.212671 + g*0.715160 + b*0.072169,
		Z: r*0.019334 + g*0.119193 + b*0.950227,
	}
}

// RGBToLab converts rgb to CIE L*a*b* (D65).
func RGBToLab(rgb RGB) Lab {
	r := srgbToLinear(rgb.R / 255)
	g := srgbToLinear(rgb.G / 255)
	b := srgbToLinear(rgb.B / 255)
	x := labCompress((r*0.4124 + g*0.3576 + b*0.1805) / whiteX)
	y := labCompress((r*0.2126 + g*0.7152 + b*0.0722) / whiteY)
	z := labCompress((r*0.0193 + g*0.1192 + b*0.9505) / whiteZ)
	return Lab{L: 116*y - 16, A: 500 * (x - y), B: 200 * (y - z)}
}

// LabToLYZ reverses the Lab compression. The result is on the XYZ scale
// (Y=100 for white) and can be fed to [XYZToRGB] as XYZ{lyz.L, lyz.Y, lyz.Z}.
func LabToLYZ(lab Lab) LYZ {
	y := (lab.L + 16) / 116
	x := lab.A/500 + y
	z := y - lab.B/200
	return LYZ{
		L: labUncompress(x) * refX,
		Y: labUncompress(y) * refY,
		Z: labUncompress(z) * refZ,
	}
}

// XYZ returns the tristimulus view of the LYZ triple.
func (c LYZ) XYZ() XYZ {
	return XYZ{X: c.L, Y: c.Y, Z: c.Z}
}

// XYZToRGB converts xyz (D65, Y=100 white) to RGB. Out of gamut colors give
// channels outside of [0,255].
func XYZToRGB(xyz XYZ) RGB {
	x := xyz.X / 100
	y := xyz.Y / 100
	z := xyz.Z / 100
	r := x*3.2404542 + y*-1.5371385 + z*-0.4985314
	g := x*-0.969266 + y*1.8760108 + z*0.041556
	b := x*0.0556434 + y*-0.2040259 + z*1.0572252
	return RGB{
		R: linearToSRGB(r) * 255,
		G: linearToSRGB(g) * 255,
		B: linearToSRGB(b) * 255,
	}
}

// XYZToLab converts xyz (D65, Y=100 white) to Lab.
func XYZToLab(xyz XYZ) Lab {
	x := labCompress(xyz.X / refX)
	y := labCompress(xyz.Y / refY)
	z := labCompress(xyz.Z / refZ)
	return Lab{L: 116*y - 16, A: 500 * (x - y), B: 200 * (y - z)}
}

// LabToLCh converts to the polar form, hue in degrees [0,360).
func LabToLCh(lab Lab) LCh {
	h := math.Atan2(lab.B, lab.A) * 360 / 2 / math.Pi
	if h < 0 {
		h += 360
	}
	if h >= 360 { // tiny negative angles round up to 360
		h -= 360
	}
	return LCh{L: lab.L, C: math.Hypot(lab.A, lab.B), H: h}
}

// LChToLab is the inverse of [LabToLCh].
func LChToLab(lch LCh) Lab {
	hr := lch.H / 360 * 2 * math.Pi
	return Lab{L: lch.L, A: lch.C * math.Cos(hr), B: lch.C * math.Sin(hr)}
}
