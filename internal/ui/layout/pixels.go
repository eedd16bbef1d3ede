package layout

import "math"

// Fallback cell dimensions for terminals that do not report pixel sizes.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// PixelSize converts a size in terminal cells to pixels using the given cell
// dimensions.
func PixelSize(cols, rows, cellW, cellH int) (width, height float64) {
	return float64(cols * cellW), float64(rows * cellH)
}

// Cells converts a pixel length to whole terminal cells, never less than one.
// Used to quantize bar geometry back onto the cell grid at render time.
func Cells(px float64, cellPx int) int {
	if cellPx <= 0 {
		return 1
	}
	c := int(math.Round(px / float64(cellPx)))
	if c < 1 {
		return 1
	}
	return c
}
