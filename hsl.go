package colorconv

import "math"

// RGBToHSL converts rgb ([0,255] channels) to HSL. Grays (r=g=b) get hue 0.
func RGBToHSL(rgb RGB) HSL {
	r := rgb.R / 255
	g := rgb.G / 255
	b := rgb.B / 255
	lo := min(r, g, b)
	hi := max(r, g, b)
	delta := hi - lo
	var h, s float64
	switch hi {
	case lo:
		h = 0
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	case b:
		h = 4 + (r-g)/delta
	}
	h = min(h*60, 360)
	if h < 0 {
		h += 360
	}
	l := (lo + hi) / 2
	switch {
	case hi == lo:
		s = 0
	case l <= 0.5:
		s = delta / (hi + lo)
	default:
		s = delta / (2 - hi - lo)
	}
	return HSL{H: h, S: s * 100, L: l * 100}
}

// HSLToRGB converts hsl to RGB. The result is not rounded.
func HSLToRGB(hsl HSL) RGB {
	h := hsl.H / 360
	s := hsl.S / 100
	l := hsl.L / 100
	if s == 0 {
		v := l * 255
		return RGB{v, v, v}
	}
	var t2 float64
	if l < 0.5 {
		t2 = l * (1 + s)
	} else {
		t2 = l + s - l*s
	}
	t1 := 2*l - t2
	return RGB{
		R: hueToChannel(t1, t2, h+1./3.) * 255,
		G: hueToChannel(t1, t2, h) * 255,
		B: hueToChannel(t1, t2, h-1./3.) * 255,
	}
}

// hueToChannel is the piecewise linear hue to channel helper, t is the hue
// shifted by the channel's phase, wrapped into [0,1].
func hueToChannel(t1, t2, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case 6*t < 1:
		return t1 + (t2-t1)*6*t
	case 2*t < 1:
		return t2
	case 3*t < 2:
		return t1 + (t2-t1)*(2./3.-t)*6
	default:
		return t1
	}
}

// HSLToHSV converts directly, keeping the hue.
func HSLToHSV(hsl HSL) HSV {
	s := hsl.S / 100
	l := hsl.L / 100
	smin := s
	lmin := max(l, 0.01)
	l *= 2
	if l <= 1 {
		s *= l
	} else {
		s *= 2 - l
	}
	if lmin <= 1 {
		smin *= lmin
	} else {
		smin *= 2 - lmin
	}
	v := (l + s) / 2
	var sv float64
	if l == 0 {
		sv = (2 * smin) / (lmin + smin)
	} else {
		sv = (2 * s) / (l + s)
	}
	return HSV{H: hsl.H, S: sv * 100, V: v * 100}
}

// HSLToHCG converts directly, keeping the hue.
func HSLToHCG(hsl HSL) HCG {
	s := hsl.S / 100
	l := hsl.L / 100
	var c float64
	if l < 0.5 {
		c = 2 * s * l
	} else {
		c = 2 * s * (1 - l)
	}
	var g float64
	if c < 1 {
		g = (l - 0.5*c) / (1 - c)
	}
	return HCG{H: hsl.H, C: c * 100, G: g * 100}
}

// HSVToRGB converts hsv to RGB using the 6 sectors algorithm.
func HSVToRGB(hsv HSV) RGB {
	h := hsv.H / 60
	s := hsv.S / 100
	v := hsv.V / 100
	fl := math.Floor(h)
	f := h - fl
	p := 255 * v * (1 - s)
	q := 255 * v * (1 - s*f)
	t := 255 * v * (1 - s*(1-f))
	v *= 255
	switch int(Modulo(fl, 6)) {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	case 5:
		return RGB{v, p, q}
	default: // NaN hue
		return RGB{}
	}
}

// HSVToHSL converts directly, keeping the hue.
func HSVToHSL(hsv HSV) HSL {
	s := hsv.S / 100
	v := hsv.V / 100
	vmin := max(v, 0.01)
	l := (2 - s) * v
	lmin := (2 - s) * vmin
	sl := s * vmin
	if lmin <= 1 {
		sl /= lmin
	} else {
		sl /= 2 - lmin
	}
	if math.IsNaN(sl) {
		sl = 0
	}
	l /= 2
	return HSL{H: hsv.H, S: sl * 100, L: l * 100}
}

// HSVToHCG converts directly, keeping the hue.
func HSVToHCG(hsv HSV) HCG {
	s := hsv.S / 100
	v := hsv.V / 100
	c := s * v
	var g float64
	if c < 1 {
		g = (v - c) / (1 - c)
	}
	return HCG{H: hsv.H, C: c * 100, G: g * 100}
}

// RGBToHWB converts rgb to HWB, the hue is the one of [RGBToHSL].
func RGBToHWB(rgb RGB) HWB {
	h := RGBToHSL(rgb).H
	w := 1. / 255. * min(rgb.R, rgb.G, rgb.B)
	b := 1. - 1./255.*max(rgb.R, rgb.G, rgb.B)
	return HWB{H: h, W: w * 100, B: b * 100}
}

// HWBToRGB converts hwb to RGB. When W+B exceeds 100 both are scaled down
// proportionally so they sum to 100.
func HWBToRGB(hwb HWB) RGB {
	h := hwb.H / 360
	w := hwb.W / 100
	b := hwb.B / 100
	if ratio := w + b; ratio > 1 {
		w /= ratio
		b /= ratio
	}
	i := math.Floor(6 * h)
	v := 1 - b
	f := 6*h - i
	sector := int(i)
	if sector&1 != 0 {
		f = 1 - f
	}
	n := w + f*(v-w) // linear interpolation
	v *= 255
	n *= 255
	w *= 255
	switch sector {
	case 1:
		return RGB{n, v, w}
	case 2:
		return RGB{w, v, n}
	case 3:
		return RGB{w, n, v}
	case 4:
		return RGB{n, w, v}
	case 5:
		return RGB{v, w, n}
	default: // 0, 6 (h == 360) and out of range hues.
		return RGB{v, n, w}
	}
}

// HWBToHCG converts directly, keeping the hue.
func HWBToHCG(hwb HWB) HCG {
	w := hwb.W / 100
	b := hwb.B / 100
	v := 1 - b
	c := v - w
	var g float64
	if c < 1 {
		g = (v - c) / (1 - c)
	}
	return HCG{H: hwb.H, C: c * 100, G: g * 100}
}

// HCGToRGB converts hcg to RGB: the pure hue is blended with the gray level
// G in proportion of the chroma C.
func HCGToRGB(hcg HCG) RGB {
	h := hcg.H / 360
	c := hcg.C / 100
	g := hcg.G / 100
	if c == 0 {
		return RGB{g * 255, g * 255, g * 255}
	}
	hi := Modulo(h, 1) * 6
	v := Modulo(hi, 1)
	w := 1 - v
	var pure [3]float64
	switch int(math.Floor(hi)) {
	case 0:
		pure = [3]float64{1, v, 0}
	case 1:
		pure = [3]float64{w, 1, 0}
	case 2:
		pure = [3]float64{0, 1, v}
	case 3:
		pure = [3]float64{0, w, 1}
	case 4:
		pure = [3]float64{v, 0, 1}
	default:
		pure = [3]float64{1, 0, w}
	}
	mg := (1 - c) * g
	return RGB{
		R: (c*pure[0] + mg) * 255,
		G: (c*pure[1] + mg) * 255,
		B: (c*pure[2] + mg) * 255,
	}
}

// HCGToHSV converts directly, keeping the hue.
func HCGToHSV(hcg HCG) HSV {
	c := hcg.C / 100
	g := hcg.G / 100
	v := c + g*(1-c)
	var s float64
	if v > 0 {
		s = c / v
	}
	return HSV{H: hcg.H, S: s * 100, V: v * 100}
}

// HCGToHSL converts directly, keeping the hue. Black and white get saturation 0.
func HCGToHSL(hcg HCG) HSL {
	c := hcg.C / 100
	g := hcg.G / 100
	l := g*(1-c) + 0.5*c
	var s float64
	switch {
	case l > 0 && l < 0.5:
		s = c / (2 * l)
	case l >= 0.5 && l < 1:
		s = c / (2 * (1 - l))
	}
	return HSL{H: hcg.H, S: s * 100, L: l * 100}
}

// HCGToHWB converts directly, keeping the hue.
func HCGToHWB(hcg HCG) HWB {
	c := hcg.C / 100
	g := hcg.G / 100
	v := c + g*(1-c)
	return HWB{H: hcg.H, W: (v - c) * 100, B: (1 - v) * 100}
}
