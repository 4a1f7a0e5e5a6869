// Package term tracks terminal geometry for the dashboard. Resize
// signals only raise a flag here; the tick loop asks for fresh
// measurements at the top of its next pass, so geometry never changes
// mid-frame.
package term

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	xterm "golang.org/x/term"
)

// Fallback size for when the output is not a terminal (pipes, tests).
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Geometry is a terminal measurement plus the graph width derived
// from it.
type Geometry struct {
	Cols       int
	Rows       int
	GraphWidth int
}

// Bounds configures how graph width derives from terminal width.
type Bounds struct {
	// Margin is the number of columns reserved for bar ends, labels,
	// and breathing room.
	Margin int
	// Min keeps the graph legible on absurdly narrow terminals.
	Min int
	// Max caps the graph at the history capacity; wider would just
	// render columns that can never hold data.
	Max int
}

// geometryFor derives a Geometry from a raw terminal size.
func (b Bounds) geometryFor(cols, rows int) Geometry {
	if cols <= 0 || rows <= 0 {
		cols, rows = DefaultCols, DefaultRows
	}
	width := cols - b.Margin
	if width < b.Min {
		width = b.Min
	}
	if width > b.Max {
		width = b.Max
	}
	return Geometry{Cols: cols, Rows: rows, GraphWidth: width}
}

// Watcher measures one terminal and watches it for resizes.
type Watcher struct {
	fd     int
	bounds Bounds
	ch     chan os.Signal
}

// NewWatcher creates a watcher for the terminal on fd, typically
// stdout's.
func NewWatcher(fd int, bounds Bounds) *Watcher {
	return &Watcher{
		fd:     fd,
		bounds: bounds,
		ch:     make(chan os.Signal, 1),
	}
}

// Watch registers for resize signals. Call Stop to undo.
func (w *Watcher) Watch() {
	signal.Notify(w.ch, unix.SIGWINCH)
}

// Stop unregisters the signal handler.
func (w *Watcher) Stop() {
	signal.Stop(w.ch)
}

// Resized drains any pending resize signal and reports whether one
// arrived since the last call. Never blocks.
func (w *Watcher) Resized() bool {
	select {
	case <-w.ch:
		return true
	default:
		return false
	}
}

// Measure reads the current terminal size. Non-terminals get the
// fallback size so the dashboard still renders something sensible
// when piped.
func (w *Watcher) Measure() Geometry {
	cols, rows, err := xterm.GetSize(w.fd)
	if err != nil {
		return w.bounds.geometryFor(DefaultCols, DefaultRows)
	}
	return w.bounds.geometryFor(cols, rows)
}
