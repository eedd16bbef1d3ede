// Package visualizer renders an animated multi-bar level display. It is a
// pure presentational primitive: callers supply per-bar levels, geometry in
// cells, and colors; it never computes amplitude itself.
package visualizer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Config describes one render pass of the bar display.
type Config struct {
	Bars      int // number of bars
	BarWidth  int // cells per bar
	BarGap    int // cells between adjacent bars
	MaxHeight int // total vertical span in cells

	// Colors holds one foreground color per bar; when shorter than Bars the
	// list is cycled, when empty the bars are rendered unstyled. Background
	// stays transparent either way.
	Colors []lipgloss.Color
}

// eighths are the partial block glyphs that give sub-cell height resolution.
// Index is the number of filled eighths in the cell.
var eighths = [...]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Width returns the total width of the bar row in cells.
func Width(cfg Config) int {
	if cfg.Bars <= 0 {
		return 0
	}
	return cfg.Bars*cfg.BarWidth + (cfg.Bars-1)*cfg.BarGap
}

// Render returns the bar display, exactly cfg.MaxHeight lines tall. Bars are
// anchored at the bottom and grow upward; a silent bar still shows a single
// bottom eighth so the row reads as live. Levels outside [0,1] are clamped.
// Missing levels render as silent bars.
func Render(cfg Config, levels []float64) string {
	if cfg.Bars <= 0 || cfg.MaxHeight <= 0 || cfg.BarWidth <= 0 {
		return ""
	}

	// Per-bar filled eighths, floored at one so every bar stays visible.
	filled := make([]int, cfg.Bars)
	for b := range cfg.Bars {
		var lv float64
		if b < len(levels) {
			lv = min(max(levels[b], 0), 1)
		}
		e := int(lv*float64(cfg.MaxHeight*8) + 0.5)
		if e < 1 {
			e = 1
		}
		filled[b] = e
	}

	gap := strings.Repeat(" ", cfg.BarGap)

	var rows []string
	for r := range cfg.MaxHeight {
		fromBottom := cfg.MaxHeight - 1 - r
		cells := make([]string, 0, cfg.Bars)
		for b := range cfg.Bars {
			full := filled[b] / 8
			part := filled[b] % 8

			var glyph rune
			switch {
			case fromBottom < full:
				glyph = eighths[8]
			case fromBottom == full:
				glyph = eighths[part]
			default:
				glyph = ' '
			}

			cell := strings.Repeat(string(glyph), cfg.BarWidth)
			cells = append(cells, paint(cfg, b, cell))
		}
		rows = append(rows, strings.Join(cells, gap))
	}

	return strings.Join(rows, "\n")
}

func paint(cfg Config, bar int, cell string) string {
	if len(cfg.Colors) == 0 {
		return cell
	}
	c := cfg.Colors[bar%len(cfg.Colors)]
	return lipgloss.NewStyle().Foreground(c).Render(cell)
}
