// Package monitor implements the live terminal dashboard: a tick loop
// that samples kernel counters, maintains rolling history, and repaints
// the screen in place.
//
// # Architecture
//
// The dashboard is deliberately single-threaded. One goroutine owns the
// tick loop and everything it touches; there are no locks and no
// channels between samplers and the renderer. Each tick runs the same
// sequence:
//
//  1. Apply any pending terminal resize (geometry is recomputed here,
//     never inside the signal handler)
//  2. Sample CPU, memory, load, and power state
//  3. Poll the tailed file for new lines, if tailing
//  4. Feed the history ring (it ages itself every K-th tick)
//  5. Compose the frame and repaint
//
// # Key Components
//
//	Sampler   - Reads /proc and /sys sources, computes delta-based CPU usage
//	Ring      - Fixed-capacity dual-series history (CPU + memory percent)
//	Renderer  - Composes the frame and decides full clear vs home-and-overwrite
//	Dashboard - Wires the above into the tick loop
//
// # Repaint Policy
//
// The renderer never clears the screen on an ordinary tick. It homes the
// cursor and overwrites the previous frame, which keeps the display
// flicker-free at high refresh rates. A full clear happens only when the
// terminal was resized or when new tail lines arrived, because both can
// leave stale cells the overwrite would not cover.
//
// # History Aging
//
// The ring records one entry every HistoryDivisor ticks, so at the
// default 500ms refresh and divisor 4 each graph column spans two
// seconds. With the default 512-slot capacity the graph can look back
// about 17 minutes on a wide terminal.
package monitor
