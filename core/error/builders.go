// File: builders.go
// Title: Standard Error Constructors
// Description: Provides standardized constructors for the error kinds raised
//              by the text library so every package reports failures with the
//              same code, operation, and detail conventions.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-02
// Modified: 2026-08-02
//
// Change History:
// - 2026-08-02 v0.1.0: Initial implementation with per-kind constructors

package error

import "fmt"

// NullInput reports a nil byte source where text was required
func NullInput(operation string) *Error {
	return New("cannot treat a nil byte slice as text").
		WithCode(CodeNullInput).
		WithOperation(operation)
}

// IndexOutOfRange reports an index outside the legal interval [low .. high]
func IndexOutOfRange(operation string, index, low, high int) *Error {
	return Newf("index %d is out of range [%d .. %d]", index, low, high).
		WithCode(CodeIndexOutOfRange).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"index": index,
			"low":   low,
			"high":  high,
		})
}

// InvalidArgument reports an argument that fails a precondition check
func InvalidArgument(operation, message string) *Error {
	return New(message).
		WithCode(CodeInvalidArgument).
		WithOperation(operation)
}

// MalformedInput reports input that violates an expected encoding
func MalformedInput(operation, message string) *Error {
	return New(message).
		WithCode(CodeMalformedInput).
		WithOperation(operation)
}

// Conversion reports a failed type conversion
func Conversion(operation, message string) *Error {
	return New(message).
		WithCode(CodeConversion).
		WithOperation(operation)
}

// ConversionFor reports a failed conversion for a named target type
func ConversionFor(operation, targetType, input string) *Error {
	return Newf("could not convert %q to %s", input, targetType).
		WithCode(CodeConversion).
		WithOperation(operation).
		WithDetail("target_type", targetType)
}

// InvalidIterator reports use of an iterator after its source mutated
func InvalidIterator(operation string) *Error {
	return New("iterator invalidated by a mutation of its source").
		WithCode(CodeInvalidIterator).
		WithOperation(operation)
}

// Internal reports a violated internal invariant
func Internal(operation string, args ...interface{}) *Error {
	return New(fmt.Sprint(args...)).
		WithCode(CodeInternal).
		WithOperation(operation)
}
