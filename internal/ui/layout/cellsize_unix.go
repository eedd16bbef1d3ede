//go:build unix

package layout

import (
	"os"

	"golang.org/x/sys/unix"
)

// CellSize returns the terminal cell dimensions in pixels by querying
// TIOCGWINSZ. Falls back to defaults if the terminal does not report pixel
// sizes.
func CellSize() (cellW, cellH int) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return DefaultCellWidth, DefaultCellHeight
	}
	return int(ws.Xpixel) / int(ws.Col), int(ws.Ypixel) / int(ws.Row)
}
