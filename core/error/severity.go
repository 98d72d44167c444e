// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors raised by the text library
//              and maps error codes to default severities. Severities drive
//              logging decisions in tooling built on top of the library.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-02
// Modified: 2026-08-02
//
// Change History:
// - 2026-08-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, out-of-range indexes, failed probes
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: malformed encoded input, failed conversions
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: stale iterator use, which points at a logic error in the caller
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical system errors
	case CodeInternal:
		return SeverityCritical

	// High severity errors
	case CodeInvalidIterator:
		return SeverityHigh

	// Medium severity errors
	case CodeMalformedInput, CodeConversion, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium

	// Low severity errors
	case CodeNullInput, CodeIndexOutOfRange, CodeInvalidArgument, CodeMissingConfig:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
