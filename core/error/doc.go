// Package error provides structured error handling for the text library.
//
// Package: error
// Title: Text Library Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, stack traces, and severity
//              levels. Every validation failure in the text library carries one
//              of the codes defined here, so callers branch on classification
//              instead of matching message strings.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-02
// Modified: 2026-08-02
//
// Change History:
// - 2026-08-02 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for the library's failure kinds
// - Stack trace capture for debugging
// - Error severity levels and categorization
// - Standard constructors so each failure kind is reported uniformly
//
// Usage:
//   import texterror "github.com/htiek/text/core/error"
//
//   // Report an out-of-range index
//   err := texterror.IndexOutOfRange("value.at", 9, 0, 4)
//
//   // Check error classification
//   if texterror.HasCode(err, texterror.CodeIndexOutOfRange) {
//     // Handle bounds failures specifically
//   }
//
//   // Wrap an error with context
//   wrapped := texterror.Wrap(err, "failed to render slice").
//     WithDetail("start", 9)
package error
