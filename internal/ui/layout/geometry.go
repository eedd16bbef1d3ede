// Package layout provides pure functions for visualizer dimension calculations.
package layout

// BarCount is the fixed number of bars in the bot audio visualizer.
const BarCount = 10

// TotalMaxWidth is the widest the bar row may grow, in pixels. Bars and gaps
// alternate, so the row holds 2*BarCount-1 slots of BarWidth each.
const TotalMaxWidth = 240

const (
	// MinBarWidth is the narrowest a single bar may get, in pixels.
	MinBarWidth = 2
	// MaxBarWidth is TotalMaxWidth spread across bars and gaps.
	MaxBarWidth = float64(TotalMaxWidth) / (2*BarCount - 1)
	// MinMaxHeight is the floor for the bar height ceiling, in pixels.
	MinMaxHeight = 20
	// MaxMaxHeight caps bar height at a 16:9 aspect of TotalMaxWidth.
	MaxMaxHeight = TotalMaxWidth / (16.0 / 9.0)
)

// Geometry is one snapshot of bar sizing constraints, fully derived from the
// observed container size. A new snapshot replaces the previous one wholesale
// on every observation; nothing survives a resize.
type Geometry struct {
	BarWidth     float64 // pixels
	BarGap       float64 // pixels, always equal to BarWidth
	MaxBarHeight float64 // pixels
}

// Default returns the geometry used before the first observation.
func Default() Geometry {
	return Geometry{BarWidth: 4, BarGap: 4, MaxBarHeight: 48}
}

// Compute derives bar geometry from a container size in pixels.
// Bar width scales with container width and is clamped to
// [MinBarWidth, MaxBarWidth]; the gap always matches the bar width.
// Max bar height tracks container height clamped to
// [MinMaxHeight, MaxMaxHeight].
func Compute(width, height float64) Geometry {
	w := clamp(width/(2*BarCount), MinBarWidth, MaxBarWidth)
	return Geometry{
		BarWidth:     w,
		BarGap:       w,
		MaxBarHeight: clamp(height, MinMaxHeight, MaxMaxHeight),
	}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
