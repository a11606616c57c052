package colorconv

// RGBToCMYK converts rgb to CMYK. Black (K=100) gets C=M=Y=0.
func RGBToCMYK(rgb RGB) CMYK {
	r := rgb.R / 255
	g := rgb.G / 255
	b := rgb.B / 255
	k := 1 - max(r, g, b)
	if k == 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k) * 100,
		M: (1 - g - k) / (1 - k) * 100,
		Y: (1 - b - k) / (1 - k) * 100,
		K: k * 100,
	}
}

// CMYKToRGB converts cmyk ([0,100] components) to RGB.
func CMYKToRGB(cmyk CMYK) RGB {
	k := cmyk.K / 100
	channel := func(v float64) float64 {
		return (1 - min(1, v/100*(1-k)+k)) * 255
	}
	return RGB{R: channel(cmyk.C), G: channel(cmyk.M), B: channel(cmyk.Y)}
}
