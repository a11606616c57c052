// Package sweep checks conversion round trips (RGB -> some space(s) -> RGB)
// over the whole 8 bit RGB cube, or a regular subset of it.
package sweep // import "fortio.org/colorconv/sweep"

import (
	"math"
	"time"

	"fortio.org/colorconv"
	"fortio.org/fortio/stats"
	"fortio.org/log"
	"github.com/loov/hrtime"
)

// Chain is a round trip from RGB back to RGB and the maximum absolute
// per channel error it is expected to stay within.
type Chain struct {
	Name      string
	Tolerance float64
	Convert   func(colorconv.RGB) colorconv.RGB
}

// Exact is the tolerance of the chains that only use rational operations.
const Exact = 1e-7

// Chains returns all the known round trips. XYZ and Lab go through pow()
// and rounded matrices and have looser tolerances (measured maximum errors
// over the full cube are 0.0092 and 0.293 respectively).
func Chains() []Chain {
	return []Chain{
		{"hsl", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.HSLToRGB(colorconv.RGBToHSL(c))
		}},
		{"hwb", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.HWBToRGB(colorconv.RGBToHWB(c))
		}},
		{"hsl-hsv", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.HSVToRGB(colorconv.HSLToHSV(colorconv.RGBToHSL(c)))
		}},
		{"hsl-hcg", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.HCGToRGB(colorconv.HSLToHCG(colorconv.RGBToHSL(c)))
		}},
		{"hwb-hcg", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.HCGToRGB(colorconv.HWBToHCG(colorconv.RGBToHWB(c)))
		}},
		{"hsv-hcg", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.HCGToRGB(colorconv.HSVToHCG(colorconv.HSLToHSV(colorconv.RGBToHSL(c))))
		}},
		{"hcg-hsv", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.HSVToRGB(colorconv.HCGToHSV(colorconv.HSLToHCG(colorconv.RGBToHSL(c))))
		}},
		{"hcg-hsl", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.HSLToRGB(colorconv.HCGToHSL(colorconv.HSLToHCG(colorconv.RGBToHSL(c))))
		}},
		{"hcg-hwb", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.HWBToRGB(colorconv.HCGToHWB(colorconv.HWBToHCG(colorconv.RGBToHWB(c))))
		}},
		{"cmyk", Exact, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.CMYKToRGB(colorconv.RGBToCMYK(c))
		}},
		{"xyz", 0.02, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.XYZToRGB(colorconv.RGBToXYZ(c))
		}},
		{"lab", 0.5, func(c colorconv.RGB) colorconv.RGB {
			return colorconv.XYZToRGB(colorconv.LabToLYZ(colorconv.RGBToLab(c)).XYZ())
		}},
		{"lab-lch", 0.5, func(c colorconv.RGB) colorconv.RGB {
			lab := colorconv.LChToLab(colorconv.LabToLCh(colorconv.RGBToLab(c)))
			return colorconv.XYZToRGB(colorconv.LabToLYZ(lab).XYZ())
		}},
	}
}

// Result of a sweep.
type Result struct {
	Chain     string
	Tolerance float64
	Errors    *stats.Counter // per channel absolute errors
	Failures  int64          // colors with at least one channel beyond the tolerance
	Worst     colorconv.RGB  // input color with the largest error
	Elapsed   time.Duration
}

// OK is true when no color exceeded the tolerance.
func (r *Result) OK() bool {
	return r.Failures == 0
}

// Levels returns 0, step, 2*step... and always 255. step < 1 means 1.
func Levels(step int) []float64 {
	step = max(step, 1)
	levels := make([]float64, 0, 256/step+1)
	for v := 0; v < 255; v += step {
		levels = append(levels, float64(v))
	}
	return append(levels, 255)
}

// Run converts every RGB triple made of Levels(step) through the chain.
func Run(chain Chain, step int) *Result {
	res := &Result{Chain: chain.Name, Tolerance: chain.Tolerance, Errors: &stats.Counter{}}
	levels := Levels(step)
	worst := -1.
	start := hrtime.Now()
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				in := colorconv.RGB{R: r, G: g, B: b}
				out := chain.Convert(in)
				e := max(math.Abs(out.R-r), math.Abs(out.G-g), math.Abs(out.B-b))
				res.Errors.Record(math.Abs(out.R - r))
				res.Errors.Record(math.Abs(out.G - g))
				res.Errors.Record(math.Abs(out.B - b))
				if e > worst || math.IsNaN(e) {
					worst = e
					res.Worst = in
				}
				if !(e <= chain.Tolerance) { // NaN fails too
					res.Failures++
					if res.Failures <= 3 {
						log.S(log.Warning, "Round trip out of tolerance", log.Str("chain", chain.Name),
							log.Str("in", in.String()), log.Str("out", out.String()), log.Any("error", e))
					}
				}
			}
		}
	}
	res.Elapsed = hrtime.Since(start)
	log.S(log.Info, "Sweep done", log.Str("chain", chain.Name), log.Any("colors", len(levels)*len(levels)*len(levels)),
		log.Any("failures", res.Failures), log.Any("max", res.Errors.Max), log.Any("avg", res.Errors.Avg()),
		log.Str("worst", res.Worst.String()), log.Str("elapsed", res.Elapsed.String()))
	return res
}

// RunAll runs every chain of Chains() and returns the results in order.
func RunAll(step int) []*Result {
	chains := Chains()
	results := make([]*Result, 0, len(chains))
	for _, c := range chains {
		results = append(results, Run(c, step))
	}
	return results
}
