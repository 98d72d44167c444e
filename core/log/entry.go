// File: entry.go
// Title: Log Entry and Field Definitions
// Description: Defines the Entry type carrying a single log record with its
//              metadata, and the Fields helpers used to attach structured
//              key-value data to log calls.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-03
// Modified: 2026-08-03
//
// Change History:
// - 2026-08-03 v0.1.0: Initial implementation with structured entries

package log

import (
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	// Core log information
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	// Context information
	CorrelationID string

	// Custom fields
	Fields Fields

	// Error information
	Error error
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Int creates an integer field for logging
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// String creates a string field for logging
func String(key string, value string) Fields {
	return Fields{key: value}
}

// Duration creates a duration field for logging
func Duration(key string, duration time.Duration) Fields {
	return Fields{key: duration}
}

// merge combines multiple field maps into one; later maps win on key clashes
func merge(fieldMaps ...Fields) Fields {
	result := make(Fields)
	for _, fields := range fieldMaps {
		for k, v := range fields {
			result[k] = v
		}
	}
	return result
}
