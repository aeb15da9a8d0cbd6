package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Completed successfully
	SymbolFail     = "✗" // Failed
	SymbolPending  = "○" // Not yet started
	SymbolProgress = "◐" // In progress
	SymbolSkipped  = "⊘" // Skipped
)
