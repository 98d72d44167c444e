// Package log provides leveled structured logging for text library tooling.
//
// Package: log
// Title: Structured Logging for the Text Library
// Description: This package implements a small structured logger with leveled
//              output, contextual fields, named child loggers, correlation
//              IDs, and pluggable JSON/text formatting. The library packages
//              themselves never log; the logger exists for command-line and
//              integration layers built on top of them.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-03
// Modified: 2026-08-03
//
// Change History:
// - 2026-08-03 v0.1.0: Initial implementation
//
// Usage:
//   logger := log.NewWithConfig(log.Config{
//       Level:  log.LevelDebug,
//       Format: log.FormatText,
//       Name:   "textcli",
//   })
//
//   logger.Info("decoded input", log.Int("bytes", 42))
//   logger.Error("conversion failed", err, log.String("input", raw))
package log
