// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the text library. These codes enable
//              structured error handling, probing conversions, and error
//              reporting in tooling built on the library.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-02
// Modified: 2026-08-02
//
// Change History:
// - 2026-08-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the text library
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Input validation
	CodeNullInput       Code = "NULL_INPUT"
	CodeIndexOutOfRange Code = "INDEX_OUT_OF_RANGE"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeMalformedInput  Code = "MALFORMED_INPUT"

	// Conversion
	CodeConversion Code = "CONVERSION_ERROR"

	// Iteration
	CodeInvalidIterator Code = "INVALID_ITERATOR"

	// Configuration and environment (used by tooling layers)
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeNullInput, CodeIndexOutOfRange, CodeInvalidArgument, CodeMalformedInput,
		CodeConversion,
		CodeInvalidIterator,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNullInput, CodeIndexOutOfRange, CodeInvalidArgument, CodeMalformedInput:
		return "validation"
	case CodeConversion:
		return "conversion"
	case CodeInvalidIterator:
		return "iteration"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
