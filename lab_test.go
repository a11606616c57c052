package colorconv_test

import (
	"math"
	"testing"

	"fortio.org/colorconv"
	"github.com/google/go-cmp/cmp"
)

func TestRGBToLabFixedPoints(t *testing.T) {
	tests := []struct {
		name      string
		rgb       colorconv.RGB
		want      colorconv.Lab
		tolerance float64
	}{
		{"black", colorconv.RGB{}, colorconv.Lab{}, 1e-9},
		// The rounded 4 digits matrix puts white slightly off the neutral axis.
		{"white", colorconv.RGB{R: 255, G: 255, B: 255}, colorconv.Lab{L: 100, A: 0, B: 0}, 0.05},
		{"brown", colorconv.RGB{R: 169, G: 104, B: 54}, colorconv.Lab{L: 50.22, A: 21.47, B: 38.39}, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, colorconv.RGBToLab(tt.rgb), approx(tt.tolerance)); diff != "" {
				t.Errorf("RGBToLab(%v) mismatch (-want +got):\n%s", tt.rgb, diff)
			}
		})
	}
}

func TestRGBToXYZ(t *testing.T) {
	white := colorconv.RGBToXYZ(colorconv.RGB{R: 255, G: 255, B: 255})
	if diff := cmp.Diff(colorconv.XYZ{X: 95.0456, Y: 100, Z: 108.8754}, white, approx(1e-3)); diff != "" {
		t.Errorf("RGBToXYZ(white) mismatch (-want +got):\n%s", diff)
	}
	if got := colorconv.RGBToXYZ(colorconv.RGB{}); got != (colorconv.XYZ{}) {
		t.Errorf("RGBToXYZ(black) = %v", got)
	}
}

// XYZ -> Lab -> LYZ is exact up to float64 precision.
func TestXYZLabLYZRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				xyz := colorconv.RGBToXYZ(colorconv.RGB{R: float64(r), G: float64(g), B: float64(b)})
				back := colorconv.LabToLYZ(colorconv.XYZToLab(xyz)).XYZ()
				if diff := cmp.Diff(xyz, back, approx(1e-9)); diff != "" {
					t.Fatalf("XYZ -> Lab -> LYZ for %d,%d,%d mismatch (-want +got):\n%s", r, g, b, diff)
				}
			}
		}
	}
}

// Measured maximum errors over all 256^3 colors are 0.0092 (XYZ) and 0.293
// (Lab, whose forward matrix is rounded to 4 digits while XYZToRGB uses the
// exact inverse).
func TestLabXYZRGBRoundTrip(t *testing.T) {
	var maxXYZ, maxLab float64
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 3 {
				in := colorconv.RGB{R: float64(r), G: float64(g), B: float64(b)}
				viaXYZ := colorconv.XYZToRGB(colorconv.RGBToXYZ(in))
				viaLab := colorconv.XYZToRGB(colorconv.LabToLYZ(colorconv.RGBToLab(in)).XYZ())
				maxXYZ = max(maxXYZ, math.Abs(viaXYZ.R-in.R), math.Abs(viaXYZ.G-in.G), math.Abs(viaXYZ.B-in.B))
				maxLab = max(maxLab, math.Abs(viaLab.R-in.R), math.Abs(viaLab.G-in.G), math.Abs(viaLab.B-in.B))
			}
		}
	}
	t.Logf("max error via XYZ %g, via Lab %g", maxXYZ, maxLab)
	if maxXYZ > 0.02 {
		t.Errorf("RGB -> XYZ -> RGB max error %g > 0.02", maxXYZ)
	}
	if maxLab > 0.5 {
		t.Errorf("RGB -> Lab -> LYZ -> RGB max error %g > 0.5", maxLab)
	}
}

func TestLabToLCh(t *testing.T) {
	tests := []struct {
		lab  colorconv.Lab
		want colorconv.LCh
	}{
		{colorconv.Lab{L: 50}, colorconv.LCh{L: 50, C: 0, H: 0}},
		{colorconv.Lab{L: 50, A: 10}, colorconv.LCh{L: 50, C: 10, H: 0}},
		{colorconv.Lab{L: 50, B: 10}, colorconv.LCh{L: 50, C: 10, H: 90}},
		{colorconv.Lab{L: 50, A: -10}, colorconv.LCh{L: 50, C: 10, H: 180}},
		{colorconv.Lab{L: 50, B: -10}, colorconv.LCh{L: 50, C: 10, H: 270}},
		{colorconv.Lab{L: 20, A: 3, B: -4}, colorconv.LCh{L: 20, C: 5, H: 306.869897645844}},
		{colorconv.Lab{L: 50, A: 1, B: -1e-17}, colorconv.LCh{L: 50, C: 1, H: 0}},
	}
	for _, tt := range tests {
		got := colorconv.LabToLCh(tt.lab)
		if diff := cmp.Diff(tt.want, got, approx(1e-9)); diff != "" {
			t.Errorf("LabToLCh(%v) mismatch (-want +got):\n%s", tt.lab, diff)
		}
		if got.H < 0 || got.H >= 360 {
			t.Errorf("LabToLCh(%v) hue %v out of [0,360)", tt.lab, got.H)
		}
		if diff := cmp.Diff(tt.lab, colorconv.LChToLab(got), approx(1e-9)); diff != "" {
			t.Errorf("LChToLab(LabToLCh(%v)) mismatch (-want +got):\n%s", tt.lab, diff)
		}
	}
}
