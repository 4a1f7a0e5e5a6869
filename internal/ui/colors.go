package ui

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes for terminal compatibility.
// Standard 16-color codes keep output readable on any terminal theme,
// including the minimal terminals sidecar is likely to live in.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Muted color for secondary content (suggestions, hints)
const (
	ColorMuted lipgloss.Color = "8" // Gray (bright black)
)
