// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type providing leveled, structured
//              logging with contextual fields, named child loggers, and
//              pluggable formatting.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-03
// Modified: 2026-08-03
//
// Change History:
// - 2026-08-03 v0.1.0: Initial implementation with structured logging

package log

import (
	"io"
	"os"
	"sync"
	"time"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	// Configuration
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context attached to every entry emitted by this logger
	contextFields Fields
	correlationID string

	// Thread safety for configuration and writes
	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stdout,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := New()
	logger.level = config.Level
	logger.name = config.Name

	if config.Output != nil {
		logger.output = config.Output
	}
	if config.Format == FormatText {
		logger.formatter = NewTextFormatter()
	}
	return logger
}

// SetLevel updates the minimum level emitted by the logger
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.level = level
}

// Level returns the logger's current minimum level
func (l *Logger) Level() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

// SetOutput redirects the logger's output
func (l *Logger) SetOutput(w io.Writer) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.output = w
}

// SetFormatter replaces the entry formatter
func (l *Logger) SetFormatter(f Formatter) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.formatter = f
}

// Named returns a child logger with the given name, sharing configuration
func (l *Logger) Named(name string) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	child := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          name,
		contextFields: merge(l.contextFields),
		correlationID: l.correlationID,
	}
	return child
}

// WithFields returns a child logger that attaches the given fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	child := &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: merge(l.contextFields, fields),
		correlationID: l.correlationID,
	}
	return child
}

// WithCorrelationID returns a child logger tagged with a correlation ID
func (l *Logger) WithCorrelationID(id string) *Logger {
	child := l.WithFields(nil)
	child.correlationID = id
	return child
}

// Trace logs a message at trace level
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs a message at error level, optionally with an error value
func (l *Logger) Error(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// Fatal logs a message at fatal level and exits the process
func (l *Logger) Fatal(message string, err error, fields ...Fields) {
	l.log(LevelFatal, message, err, fields...)
	os.Exit(1)
}

// log builds the entry and writes it through the formatter
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	enabled := l.level.Enabled(level)
	formatter := l.formatter
	output := l.output
	l.mutex.RUnlock()

	if !enabled {
		return
	}

	entry := &Entry{
		Timestamp:     time.Now(),
		Level:         level,
		Message:       message,
		Logger:        l.name,
		CorrelationID: l.correlationID,
		Fields:        merge(append([]Fields{l.contextFields}, fields...)...),
		Error:         err,
	}

	line, ferr := formatter.Format(entry)
	if ferr != nil {
		return // A broken formatter must not take the program down
	}

	l.mutex.Lock()
	_, _ = output.Write(line)
	l.mutex.Unlock()
}
