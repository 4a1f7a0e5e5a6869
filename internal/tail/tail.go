// Package tail follows a file the way tail -f does: start at the end,
// surface complete lines as they are appended, and keep trying at EOF
// forever. EOF is the steady state for a tailed file, never an error.
package tail

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rileyhilliard/sidecar/internal/errors"
)

// DefaultMaxLines is how many recent lines a Tailer retains when no
// limit is configured.
const DefaultMaxLines = 12

// Tailer follows one file and retains its most recent lines.
//
// Poll never blocks waiting for data: it drains whatever complete
// lines are available and returns. A partially written line (no
// terminating newline yet) is held back until the rest arrives, so a
// writer that flushes mid-line never produces a torn entry.
type Tailer struct {
	path string
	f    *os.File
	r    *bufio.Reader

	// offset counts bytes consumed from the file. When a stat reports
	// the file is now smaller than this, the file was truncated and we
	// start over from the top.
	offset int64

	frag  []byte
	lines []string
	max   int
}

// Open starts tailing path from its current end, so only lines written
// after this call appear. maxLines bounds the retained history;
// non-positive means DefaultMaxLines.
func Open(path string, maxLines int) (*Tailer, error) {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTail,
			fmt.Sprintf("Unable to open %s for tailing", path),
			"Check that the file exists and is readable, or run without a file argument.")
	}

	end, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		f.Close()
		return nil, errors.WrapWithCode(err, errors.ErrTail,
			fmt.Sprintf("Unable to seek to the end of %s", path), "")
	}

	return &Tailer{
		path:   path,
		f:      f,
		r:      bufio.NewReader(f),
		offset: end,
		max:    maxLines,
	}, nil
}

// Poll drains all complete lines currently available and reports
// whether anything new arrived. Call it once per tick.
func (t *Tailer) Poll() (bool, error) {
	t.checkTruncation()

	updated := false
	for {
		chunk, err := t.r.ReadString('\n')
		t.offset += int64(len(chunk))

		if err == nil {
			line := strings.TrimSuffix(chunk, "\n")
			if len(t.frag) > 0 {
				line = string(t.frag) + line
				t.frag = t.frag[:0]
			}
			t.appendLine(cleanLine(line))
			updated = true
			continue
		}

		// Hold back the unterminated remainder for the next poll.
		if len(chunk) > 0 {
			t.frag = append(t.frag, chunk...)
		}
		if err == io.EOF {
			return updated, nil
		}
		return updated, errors.WrapWithCode(err, errors.ErrTail,
			fmt.Sprintf("Error reading %s", t.path), "")
	}
}

// checkTruncation rewinds to the start when the file shrank beneath
// what we already consumed. The held fragment belongs to the old
// content, so it is dropped.
func (t *Tailer) checkTruncation() {
	fi, err := os.Stat(t.path)
	if err != nil {
		return
	}
	if fi.Size() >= t.offset {
		return
	}
	if _, err := t.f.Seek(0, io.SeekStart); err != nil {
		return
	}
	t.r.Reset(t.f)
	t.offset = 0
	t.frag = t.frag[:0]
}

// appendLine stores a line, evicting the oldest once full.
func (t *Tailer) appendLine(line string) {
	if len(t.lines) < t.max {
		t.lines = append(t.lines, line)
		return
	}
	copy(t.lines, t.lines[1:])
	t.lines[len(t.lines)-1] = line
}

// cleanLine cuts the line at the first carriage return, which handles
// CRLF files and writers that repaint with \r.
func cleanLine(line string) string {
	if i := strings.IndexByte(line, '\r'); i >= 0 {
		return line[:i]
	}
	return line
}

// Last returns up to n of the most recent lines, oldest first.
func (t *Tailer) Last(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(t.lines) {
		n = len(t.lines)
	}
	out := make([]string, n)
	copy(out, t.lines[len(t.lines)-n:])
	return out
}

// Len returns the number of retained lines.
func (t *Tailer) Len() int {
	return len(t.lines)
}

// Path returns the file being tailed.
func (t *Tailer) Path() string {
	return t.path
}

// Close releases the underlying file handle.
func (t *Tailer) Close() error {
	return t.f.Close()
}
