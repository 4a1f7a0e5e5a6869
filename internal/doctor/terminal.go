package doctor

import (
	"fmt"
	"os"

	xterm "golang.org/x/term"
)

// Minimum usable terminal for the default layout: 19 rows fit the header,
// eleven graph rows, the divider, both bars, and the stats lines; 32 columns
// fit the 20-column graph floor plus margin.
const (
	minUsableCols = 32
	minUsableRows = 19
)

// TTYCheck verifies stdout is an actual terminal.
type TTYCheck struct {
	FD int
}

func (c *TTYCheck) Name() string     { return "tty" }
func (c *TTYCheck) Category() string { return "TERMINAL" }

func (c *TTYCheck) Run() CheckResult {
	if !xterm.IsTerminal(c.FD) {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "stdout is not a terminal",
			Suggestion: "sidecar repaints the screen with escape sequences; run it directly in a terminal, not through a pipe",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "stdout is a terminal",
	}
}

func (c *TTYCheck) Fix() error { return nil }

// TermSizeCheck verifies the terminal is large enough for the default
// layout.
type TermSizeCheck struct {
	FD      int
	MinCols int
	MinRows int
}

func (c *TermSizeCheck) Name() string     { return "term_size" }
func (c *TermSizeCheck) Category() string { return "TERMINAL" }

func (c *TermSizeCheck) Run() CheckResult {
	cols, rows, err := xterm.GetSize(c.FD)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Cannot measure terminal size",
			Suggestion: "The dashboard will assume 80x24",
		}
	}

	minCols, minRows := c.MinCols, c.MinRows
	if minCols == 0 {
		minCols = minUsableCols
	}
	if minRows == 0 {
		minRows = minUsableRows
	}

	if cols < minCols || rows < minRows {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Terminal %dx%d is small", cols, rows),
			Suggestion: fmt.Sprintf("The full dashboard needs at least %dx%d; graphs will be cramped", minCols, minRows),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Terminal %dx%d", cols, rows),
	}
}

func (c *TermSizeCheck) Fix() error { return nil }

// TermEnvCheck verifies TERM is set to something that understands escape
// sequences.
type TermEnvCheck struct{}

func (c *TermEnvCheck) Name() string     { return "term_env" }
func (c *TermEnvCheck) Category() string { return "TERMINAL" }

func (c *TermEnvCheck) Run() CheckResult {
	value := os.Getenv("TERM")

	switch value {
	case "":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "TERM is not set",
			Suggestion: "Escape sequences may not render; set TERM (e.g. xterm-256color)",
		}
	case "dumb":
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "TERM=dumb does not support escape sequences",
			Suggestion: "Run sidecar in a full terminal emulator",
		}
	default:
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("TERM=%s", value),
		}
	}
}

func (c *TermEnvCheck) Fix() error { return nil }

// NewTerminalChecks creates the terminal checks for the given file
// descriptor, typically stdout's.
func NewTerminalChecks(fd int) []Check {
	return []Check{
		&TTYCheck{FD: fd},
		&TermSizeCheck{FD: fd},
		&TermEnvCheck{},
	}
}
