package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSemanticColors(t *testing.T) {
	tests := []struct {
		name  string
		color lipgloss.Color
		code  string
	}{
		{"success is green", ColorSuccess, "2"},
		{"error is red", ColorError, "1"},
		{"warning is yellow", ColorWarning, "3"},
		{"info is cyan", ColorInfo, "6"},
		{"muted is gray", ColorMuted, "8"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, string(tc.color))
		})
	}
}

func TestStatusSymbols(t *testing.T) {
	symbols := map[string]string{
		"success":  SymbolSuccess,
		"fail":     SymbolFail,
		"warning":  SymbolWarning,
		"complete": SymbolComplete,
	}

	seen := make(map[string]string)
	for name, sym := range symbols {
		assert.NotEmpty(t, sym, "symbol %s should not be empty", name)
		if prev, ok := seen[sym]; ok {
			t.Errorf("symbol %s duplicates %s (%q)", name, prev, sym)
		}
		seen[sym] = name
	}

	assert.Equal(t, "✓", SymbolSuccess)
	assert.Equal(t, "✗", SymbolFail)
}
