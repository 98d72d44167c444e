// File: format.go
// Title: Log Output Formatters
// Description: Implements the Formatter interface with JSON and human-readable
//              text formatters, plus parsing of format names from
//              configuration.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-03
// Modified: 2026-08-03
//
// Change History:
// - 2026-08-03 v0.1.0: Initial implementation with JSON and text formats

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs (recommended for machine consumption)
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format: %q", format)
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats log entries as JSON objects, one per line
type JSONFormatter struct {
	// TimestampFormat controls timestamp rendering (default RFC3339)
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with default settings
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format implements Formatter
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(f.timestampFormat()),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.CorrelationID != "" {
		data["correlation_id"] = entry.CorrelationID
	}
	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}
	for k, v := range entry.Fields {
		data[k] = v
	}

	line, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("formatting log entry: %w", err)
	}
	return append(line, '\n'), nil
}

func (f *JSONFormatter) timestampFormat() string {
	if f.TimestampFormat == "" {
		return time.RFC3339
	}
	return f.TimestampFormat
}

// TextFormatter formats log entries as aligned human-readable lines
type TextFormatter struct {
	// TimestampFormat controls timestamp rendering (default time-only)
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05.000"}
}

// Format implements Formatter
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.timestampFormat()))
	b.WriteString(" ")
	b.WriteString(entry.Level.ShortString())
	if entry.Logger != "" {
		b.WriteString(" [")
		b.WriteString(entry.Logger)
		b.WriteString("]")
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	// Deterministic field order for readable, diffable output
	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
		}
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}
	if entry.CorrelationID != "" {
		fmt.Fprintf(&b, " correlation_id=%s", entry.CorrelationID)
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

func (f *TextFormatter) timestampFormat() string {
	if f.TimestampFormat == "" {
		return "15:04:05.000"
	}
	return f.TimestampFormat
}
