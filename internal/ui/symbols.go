package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Operation completed successfully
	SymbolFail     = "✗" // Operation failed
	SymbolWarning  = "⚠" // Degraded but not fatal
	SymbolComplete = "●" // Check passed (alternative to success)
)
