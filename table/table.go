// Package table renders aligned text tables, optionally with box drawing
// borders. Cells may contain ANSI color sequences (e.g. swatches), they do
// not count toward the column widths.
package table // import "fortio.org/colorconv/table"

import (
	"strings"

	"github.com/rivo/uniseg"
)

const (
	SquareTopLeft     = "┌"
	SquareTopRight    = "┐"
	SquareBottomLeft  = "└"
	SquareBottomRight = "┘"

	Horizontal = "─"
	Vertical   = "│"

	TopT        = "┬"
	BottomT     = "┴"
	LeftT       = "├"
	RightT      = "┤"
	MiddleCross = "┼"
)

type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

type BorderStyle int

const (
	BorderNone         BorderStyle = iota // No borders at all
	BorderColumns                         // Only vertical lines between columns (│)
	BorderOuterColumns                    // Outer box + column separators
	BorderFull                            // Full grid with all cell borders
)

// ScreenWidth is the number of terminal columns str occupies once the ANSI
// escape sequences are removed.
func ScreenWidth(str string) int {
	return uniseg.StringWidth(AnsiClean(str))
}

// AnsiClean removes the CSI escape sequences (ESC [ parameters final byte)
// from str. An unterminated sequence at the end is removed too.
func AnsiClean(str string) string {
	if strings.IndexByte(str, '\x1b') < 0 {
		return str
	}
	var sb strings.Builder
	sb.Grow(len(str))
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c != '\x1b' {
			sb.WriteByte(c)
			continue
		}
		if i+1 < len(str) && str[i+1] != '[' {
			continue // lone escape
		}
		// skip parameters and intermediate bytes up to the final byte (0x40-0x7E).
		i += 2
		for i < len(str) && (str[i] < 0x40 || str[i] > 0x7E) {
			i++
		}
	}
	return sb.String()
}

// drawHorizontalBorder creates a horizontal border line with the specified corner/junction characters.
func drawHorizontalBorder(ncols int, colWidths []int, columnSpacing int, left, middle, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for j := 0; j < ncols; j++ {
		sb.WriteString(strings.Repeat(Horizontal, colWidths[j]+2*columnSpacing))
		if j < ncols-1 {
			sb.WriteString(middle)
		}
	}
	sb.WriteString(right)
	return sb.String()
}

// calculateColumnWidths computes the maximum width needed for each column
// and returns both the column widths and all individual cell widths.
func calculateColumnWidths(table [][]string, ncols int) ([]int, [][]int) {
	nrows := len(table)
	colWidths := make([]int, ncols)
	allWidths := make([][]int, 0, nrows)
	for _, row := range table {
		if len(row) != ncols {
			panic("inconsistent number of columns in table")
		}
		allWidthsRow := make([]int, 0, ncols)
		for j, cell := range row {
			w := ScreenWidth(cell)
			allWidthsRow = append(allWidthsRow, w)
			if w > colWidths[j] {
				colWidths[j] = w
			}
		}
		allWidths = append(allWidths, allWidthsRow)
	}
	return colWidths, allWidths
}

// calculateTableWidth computes the total width of the table including borders and spacing.
func calculateTableWidth(colWidths []int, ncols, columnSpacing int, hasColumnBorders, hasOuterBorder bool) int {
	maxw := 0
	for _, w := range colWidths {
		maxw += w
		if hasColumnBorders {
			maxw += 2 * columnSpacing
		}
	}
	// Add spacing/separators between columns
	if ncols > 1 {
		if hasColumnBorders {
			maxw += (ncols - 1) // vertical separators between columns
		} else {
			maxw += columnSpacing * (ncols - 1)
		}
	}
	if hasOuterBorder {
		maxw += 2 // left and right borders
	}
	return maxw
}

// formatCell formats a single cell with the specified alignment and padding.
func formatCell(sb *strings.Builder, cell string, cellWidth, columnWidth, columnSpacing int,
	align Alignment, hasColumnBorders bool,
) {
	delta := columnWidth - cellWidth
	if hasColumnBorders {
		sb.WriteString(strings.Repeat(" ", columnSpacing))
	}
	switch align {
	case Left:
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", delta))
	case Center:
		sb.WriteString(strings.Repeat(" ", delta/2))
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", delta/2+delta%2))
	case Right:
		sb.WriteString(strings.Repeat(" ", delta))
		sb.WriteString(cell)
	}
	if hasColumnBorders {
		sb.WriteString(strings.Repeat(" ", columnSpacing))
	}
}

// CreateTableLines returns the lines of the rendered table and its width
// (in screen columns). The number of columns is len(alignment), every row
// must have that many cells.
func CreateTableLines(
	alignment []Alignment,
	columnSpacing int,
	table [][]string,
	borderStyle BorderStyle,
) ([]string, int) {
	nrows := len(table)
	ncols := len(alignment)

	colWidths, allWidths := calculateColumnWidths(table, ncols)

	hasColumnBorders := borderStyle != BorderNone
	hasOuterBorder := borderStyle == BorderOuterColumns || borderStyle == BorderFull

	maxw := calculateTableWidth(colWidths, ncols, columnSpacing, hasColumnBorders, hasOuterBorder)

	numLines := nrows
	if borderStyle == BorderFull {
		numLines = 2*nrows + 1 // data rows + row separators + top/bottom borders
	} else if hasOuterBorder {
		numLines = nrows + 2 // data rows + top/bottom borders
	}

	// Build table lines using direct indexing to catch capacity errors
	lines := make([]string, numLines)
	var sb strings.Builder
	lineIdx := 0

	if hasOuterBorder {
		lines[lineIdx] = drawHorizontalBorder(ncols, colWidths, columnSpacing,
			SquareTopLeft, TopT, SquareTopRight)
		lineIdx++
	}

	for i, row := range table {
		rowWidth := allWidths[i]

		// Add row separator for full borders (except before first row)
		if borderStyle == BorderFull && i > 0 {
			lines[lineIdx] = drawHorizontalBorder(ncols, colWidths, columnSpacing,
				LeftT, MiddleCross, RightT)
			lineIdx++
		}

		if hasOuterBorder {
			sb.WriteString(Vertical)
		}

		for j, cell := range row {
			formatCell(&sb, cell, rowWidth[j], colWidths[j], columnSpacing, alignment[j], hasColumnBorders)
			if j < ncols-1 {
				separator := strings.Repeat(" ", columnSpacing)
				if hasColumnBorders {
					separator = Vertical
				}
				sb.WriteString(separator)
			}
		}

		if hasOuterBorder {
			sb.WriteString(Vertical)
		}

		lines[lineIdx] = sb.String()
		lineIdx++
		sb.Reset()
	}

	if hasOuterBorder {
		lines[lineIdx] = drawHorizontalBorder(ncols, colWidths, columnSpacing,
			SquareBottomLeft, BottomT, SquareBottomRight)
	}

	return lines, maxw
}
