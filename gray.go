package colorconv

// Grayscale constructors: gray is the intensity in [0,100], 0 is black and
// 100 is white in every space.

// GrayToRGB returns the gray with all channels at gray percent of 255.
func GrayToRGB(gray float64) RGB {
	v := gray / 100 * 255
	return RGB{v, v, v}
}

// GrayToHSL returns hue 0, saturation 0, lightness gray.
func GrayToHSL(gray float64) HSL {
	return HSL{H: 0, S: 0, L: gray}
}

// GrayToHSV returns hue 0, saturation 0, value gray.
func GrayToHSV(gray float64) HSV {
	return HSV{H: 0, S: 0, V: gray}
}

// GrayToHWB returns the neutral point {0, gray, 100-gray}, the same gray as
// [GrayToRGB] (and not {0, 100, gray}).
func GrayToHWB(gray float64) HWB {
	return HWB{H: 0, W: gray, B: 100 - gray}
}

// GrayToCMYK returns the neutral point K = 100-gray with no ink, the same gray
// as [GrayToRGB] (and not K = gray).
func GrayToCMYK(gray float64) CMYK {
	return CMYK{K: 100 - gray}
}

// GrayToLab returns lightness gray with no chroma.
func GrayToLab(gray float64) Lab {
	return Lab{L: gray}
}

// AppleToRGB rescales the 16 bit channels to [0,255].
func AppleToRGB(apple Apple) RGB {
	return RGB{
		R: apple.R16 / 65535 * 255,
		G: apple.G16 / 65535 * 255,
		B: apple.B16 / 65535 * 255,
	}
}
