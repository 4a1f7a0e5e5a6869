package doctor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// tempFileFD returns a file descriptor that is definitely not a terminal.
func tempFileFD(t *testing.T) int {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return int(f.Fd())
}

func TestTTYCheck_NotATerminal(t *testing.T) {
	result := (&TTYCheck{FD: tempFileFD(t)}).Run()

	if result.Status != StatusWarn {
		t.Errorf("status = %v, want warn", result.Status)
	}
	if !strings.Contains(result.Message, "not a terminal") {
		t.Errorf("message %q should explain the problem", result.Message)
	}
}

func TestTermSizeCheck_Unmeasurable(t *testing.T) {
	result := (&TermSizeCheck{FD: tempFileFD(t)}).Run()

	if result.Status != StatusWarn {
		t.Errorf("status = %v, want warn", result.Status)
	}
	if !strings.Contains(result.Suggestion, "80x24") {
		t.Errorf("suggestion %q should mention the fallback size", result.Suggestion)
	}
}

func TestTermEnvCheck(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		status CheckStatus
	}{
		{"unset", "", StatusWarn},
		{"dumb terminal", "dumb", StatusWarn},
		{"full terminal", "xterm-256color", StatusPass},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TERM", tc.value)

			result := (&TermEnvCheck{}).Run()

			if result.Status != tc.status {
				t.Errorf("status = %v, want %v", result.Status, tc.status)
			}
		})
	}
}

func TestNewTerminalChecks(t *testing.T) {
	checks := NewTerminalChecks(1)

	if len(checks) != 3 {
		t.Fatalf("expected 3 checks, got %d", len(checks))
	}
	for _, check := range checks {
		if check.Category() != "TERMINAL" {
			t.Errorf("check %s category = %q, want TERMINAL", check.Name(), check.Category())
		}
	}
}
