package monitor

import (
	"fmt"
	"math"
	"strings"
)

// Overlay graph character semantics, from most to least loaded:
//
//	▓  both CPU and memory reach this cell
//	█  only CPU reaches this cell
//	░  only memory reaches this cell
//	   (space) neither reaches it
//
// Each column is one aged history entry; each row is one height-th of
// the 0-100% range. A value of exactly 0 still paints the bottom row,
// so an idle machine draws a visible baseline instead of a blank graph.

const (
	cellBoth  = '▓'
	cellCPU   = '█'
	cellMem   = '░'
	cellEmpty = ' '
	cellBar   = '■'
)

// RenderOverlay renders the dual-metric history graph. Both slices must
// have the same length (one value per column); rows are emitted top to
// bottom and joined with newlines. height is the bucket count, so the
// output has height+1 rows: the extra row is the zero baseline.
func RenderOverlay(cpu, mem []float64, height int) string {
	if len(cpu) == 0 || height <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow((len(cpu) + 1) * (height + 1))
	for row := height; row >= 0; row-- {
		for col := range cpu {
			c := bucketFor(cpu[col], height)
			m := bucketFor(mem[col], height)
			switch {
			case c >= row && m >= row:
				b.WriteRune(cellBoth)
			case c >= row:
				b.WriteRune(cellCPU)
			case m >= row:
				b.WriteRune(cellMem)
			default:
				b.WriteRune(cellEmpty)
			}
		}
		if row > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderBar renders a two-line horizontal gauge:
//
//	┌> ■■■■■■■■■■                                       cpu
//	└> 23.4 %
//
// The label rides the right end of the bar row. Fill is truncated, not
// rounded, so the bar only shows a full cell of progress once the value
// has actually covered it.
func RenderBar(label string, percent float64, width int) string {
	if width < 1 {
		width = 1
	}
	percent = clampPercent(percent)
	filled := int(percent / 100.0 * float64(width))

	var b strings.Builder
	b.Grow(width + 16)
	b.WriteString("┌> ")
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteRune(cellBar)
		} else {
			b.WriteRune(cellEmpty)
		}
	}
	fmt.Fprintf(&b, "%-3s\n└> %-5.1f%%", label, percent)
	return b.String()
}

// bucketFor maps a percentage to a graph row index in [0, height].
// Truncating division matches the bar fill behavior: a bucket is only
// reached once the value fully covers it.
func bucketFor(val float64, height int) int {
	return clampInt(int(val/100.0*float64(height)), 0, height)
}

// clampPercent clamps a value to [0, 100]. NaN collapses to 0 so a
// degenerate sample can never poison the graph or the ring.
func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// clampInt clamps an integer to a range [lo, hi].
func clampInt(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
