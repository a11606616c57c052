// colorconv shows a color in every supported color space, or checks the
// conversions round trips over the RGB cube (-sweep).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"fortio.org/cli"
	"fortio.org/colorconv"
	"fortio.org/colorconv/sweep"
	"fortio.org/colorconv/table"
	"fortio.org/colorconv/tcolor"
	"fortio.org/log"
	"fortio.org/safecast"
	"golang.org/x/term"
)

func main() {
	os.Exit(Main())
}

var borders = map[string]table.BorderStyle{
	"none":    table.BorderNone,
	"columns": table.BorderColumns,
	"outer":   table.BorderOuterColumns,
	"full":    table.BorderFull,
}

func Main() int {
	places := flag.Int("places", 2, "Number of decimal `places` to show")
	trueColor := flag.Bool("truecolor", false, "Use 24 bit colors for swatches instead of the 256 colors palette")
	swatch := flag.Bool("swatch", false, "Always show color swatches (default is only when stdout is a terminal)")
	doSweep := flag.Bool("sweep", false, "Check all the conversion round trips over the RGB cube instead")
	step := flag.Int("step", 1, "RGB cube `step` for -sweep (1 is all 256^3 colors)")
	border := flag.String("border", "outer", "Table `style`: none, columns, outer or full")
	cli.MinArgs = 0
	cli.MaxArgs = -1
	cli.ArgsHelp = " color...\nwhere color is RRGGBB, #RRGGBB, a color name or space:v1,v2,v3 with space one of: " +
		strings.Join(Spaces(), ", ") + " (cmyk takes 4 values, gray 1)"
	cli.Main()
	style, ok := borders[*border]
	if !ok {
		return log.FErrf("Invalid -border %q, must be none, columns, outer or full", *border)
	}
	if *doSweep {
		return runSweep(os.Stdout, *step, style)
	}
	if flag.NArg() == 0 {
		return log.FErrf("Need at least one color argument (or -sweep)")
	}
	showSwatch := *swatch || term.IsTerminal(safecast.MustConvert[int](os.Stdout.Fd()))
	out := tcolor.Output{TrueColor: *trueColor}
	log.LogVf("Swatches %t, true color %t", showSwatch, *trueColor)
	for _, arg := range flag.Args() {
		rgb, err := ParseColor(arg)
		if err != nil {
			return log.FErrf("Error parsing color: %v", err)
		}
		var sw string
		if showSwatch {
			sw = out.Swatch(rgb, 6)
		}
		printTable(os.Stdout, Rows(arg, sw, rgb, *places), style)
	}
	return 0
}

func printTable(w io.Writer, rows [][]string, style table.BorderStyle) {
	if len(rows) == 0 {
		return
	}
	align := make([]table.Alignment, len(rows[0])) // all table.Left
	lines, _ := table.CreateTableLines(align, 2, rows, style)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

// Values formats each value rounded to places, comma separated.
func Values(places int, values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(colorconv.RoundTo(v, places), 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

// Rows returns the table of rgb in every space. The header row has the user's
// input and the optional swatch.
func Rows(input, swatch string, rgb colorconv.RGB, places int) [][]string {
	hsl := colorconv.RGBToHSL(rgb)
	hsv := colorconv.HSLToHSV(hsl)
	hcg := colorconv.HSLToHCG(hsl)
	hwb := colorconv.RGBToHWB(rgb)
	cmyk := colorconv.RGBToCMYK(rgb)
	xyz := colorconv.RGBToXYZ(rgb)
	lab := colorconv.RGBToLab(rgb)
	lch := colorconv.LabToLCh(lab)
	apple := colorconv.Multiply(rgb, 65535./255.)
	return [][]string{
		{input, swatch},
		{"hex", "#" + colorconv.RGBToHex(rgb)},
		{"rgb", Values(places, rgb.R, rgb.G, rgb.B)},
		{"hsl", Values(places, hsl.H, hsl.S, hsl.L)},
		{"hsv", Values(places, hsv.H, hsv.S, hsv.V)},
		{"hcg", Values(places, hcg.H, hcg.C, hcg.G)},
		{"hwb", Values(places, hwb.H, hwb.W, hwb.B)},
		{"cmyk", Values(places, cmyk.C, cmyk.M, cmyk.Y, cmyk.K)},
		{"xyz", Values(places, xyz.X, xyz.Y, xyz.Z)},
		{"lab", Values(places, lab.L, lab.A, lab.B)},
		{"lch", Values(places, lch.L, lch.C, lch.H)},
		{"apple", Values(places, apple.R, apple.G, apple.B)},
		{"css", colorconv.RGBToCSS(rgb)},
		{"css hsl", colorconv.HSLToCSS(hsl)},
		{"css hwb", colorconv.HWBToCSS(hwb)},
	}
}

func runSweep(w io.Writer, step int, style table.BorderStyle) int {
	results := sweep.RunAll(step)
	rows := [][]string{{"chain", "tolerance", "max error", "avg error", "failures", "time"}}
	failed := 0
	for _, r := range results {
		rows = append(rows, []string{
			r.Chain,
			strconv.FormatFloat(r.Tolerance, 'g', -1, 64),
			strconv.FormatFloat(r.Errors.Max, 'g', 4, 64),
			strconv.FormatFloat(r.Errors.Avg(), 'g', 4, 64),
			strconv.FormatInt(r.Failures, 10),
			r.Elapsed.Round(time.Microsecond).String(),
		})
		if !r.OK() {
			failed++
		}
	}
	printTable(w, rows, style)
	if failed > 0 {
		return log.FErrf("%d of %d round trips out of tolerance", failed, len(results))
	}
	log.Infof("All %d round trips within tolerance", len(results))
	return 0
}
