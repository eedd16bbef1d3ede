//go:build !unix

package layout

// CellSize returns the default cell dimensions on platforms without
// TIOCGWINSZ.
func CellSize() (cellW, cellH int) {
	return DefaultCellWidth, DefaultCellHeight
}
