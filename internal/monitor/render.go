package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rileyhilliard/sidecar/internal/errors"
	"github.com/rileyhilliard/sidecar/internal/term"
)

// RenderState gathers everything a single frame is drawn from:
// geometry, the tick's snapshot, the history window, and the tail
// lines to show. It is rebuilt every tick; nothing here outlives the
// frame.
type RenderState struct {
	Geo    term.Geometry
	Height int

	Snap    Snapshot
	CPUHist []float64
	MemHist []float64

	TailPath  string
	TailLines []string
}

// Compose builds the complete frame as one string. Layout, top to
// bottom:
//
//	History (CPU=█, RAM=░)
//	<history overlay, Height+1 rows>
//	<blank>
//	<cpu bar, 2 rows>
//	 > s=<swap>% | i=<iowait>% | 1=<load1> | 5=<load5> | 15=<load15>
//	 > [<running>/<total>] :: (<battery>% on ac|on batt)
//	<mem bar, 2 rows>
//	 > tail: <path>            (only when tailing)
//	<tail lines that fit>
func (st RenderState) Compose() string {
	var b strings.Builder
	b.Grow((st.Height + 8) * (st.Geo.GraphWidth + 8))

	b.WriteString("History (CPU=█, RAM=░)\n")
	b.WriteString(RenderOverlay(st.CPUHist, st.MemHist, st.Height))
	b.WriteString("\n\n")

	b.WriteString(RenderBar("cpu", st.Snap.CPUPercent, st.Geo.GraphWidth))
	b.WriteByte('\n')

	fmt.Fprintf(&b, " > s=%.1f%% | i=%.1f%% | 1=%.2f | 5=%.2f | 15=%.2f\n",
		st.Snap.SwapPercent, st.Snap.IOWaitPercent,
		st.Snap.Load.Load1, st.Snap.Load.Load5, st.Snap.Load.Load15)

	battery := st.Snap.Power.BatteryPercent
	if battery < 0 {
		battery = 0
	}
	source := "on batt)"
	if st.Snap.Power.OnAC {
		source = "on ac)  "
	}
	fmt.Fprintf(&b, " > [%d/%d] :: (%d%% %s\n",
		st.Snap.Load.Running, st.Snap.Load.Total, battery, source)

	b.WriteString(RenderBar("mem", st.Snap.MemPercent, st.Geo.GraphWidth))
	b.WriteByte('\n')

	if st.TailPath != "" {
		fmt.Fprintf(&b, " > tail: %s\n", st.TailPath)

		lines := st.TailLines
		if fit := st.TailRows(); len(lines) > fit {
			lines = lines[len(lines)-fit:]
		}
		limit := st.Geo.Cols - 1
		for _, line := range lines {
			b.WriteString(truncateLine(line, limit))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// TailRows returns how many tail lines fit beneath the dashboard
// block on the current terminal, floored at zero.
func (st RenderState) TailRows() int {
	usedAbove := 1 + (st.Height + 1) + 1 + (2 * 2)
	usedBelow := 2
	available := st.Geo.Rows - usedAbove - usedBelow
	if available < 0 {
		return 0
	}
	return available
}

// truncateLine caps a line at limit runes so a long tail entry cannot
// wrap and shove the layout around.
func truncateLine(line string, limit int) string {
	if limit < 1 {
		limit = 1
	}
	runes := []rune(line)
	if len(runes) <= limit {
		return line
	}
	return string(runes[:limit])
}

// Renderer owns the screen. It decides between two repaint modes:
// a full clear, which eliminates stale cells but flickers, and
// home-and-overwrite, which is seamless but only valid while the
// frame covers everything the previous frame drew.
//
// Overwrite is the default. A full clear happens on the first frame,
// after a resize, and whenever new tail lines arrive (tail lines vary
// in length, so overwriting cannot be trusted to cover them).
type Renderer struct {
	buf   *bufio.Writer
	out   *termenv.Output
	drawn bool
}

// NewRenderer creates a renderer writing to w, typically stdout.
func NewRenderer(w io.Writer) *Renderer {
	buf := bufio.NewWriter(w)
	return &Renderer{
		buf: buf,
		out: termenv.NewOutput(buf),
	}
}

// Draw paints one frame, buffered and flushed as a unit so a slow
// terminal never shows a half-drawn screen.
func (r *Renderer) Draw(frame string, full bool) error {
	if full || !r.drawn {
		r.out.ClearScreen()
	} else {
		r.out.MoveCursor(1, 1)
	}
	r.drawn = true

	if _, err := r.out.WriteString(frame); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm, "Failed to write frame", "")
	}
	if err := r.buf.Flush(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm, "Failed to flush frame", "")
	}
	return nil
}
