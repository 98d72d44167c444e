// Package config provides configuration loading for text library tooling.
//
// Package: config
// Title: TOML/YAML Configuration for the Text Library Tooling
// Description: This package loads configuration for command-line tooling from
//              TOML or YAML files, with format auto-detection by extension,
//              default values, environment-variable overrides, and
//              dot-notation accessors with type coercion.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-04
// Modified: 2026-08-04
//
// Change History:
// - 2026-08-04 v0.1.0: Initial implementation
//
// Usage:
//   cfg, err := config.Load("textcli.toml", config.LoadOptions{
//       EnvPrefix: "TEXTCLI",
//       Defaults: map[string]interface{}{
//           "cli.delimiter": ",",
//           "cli.radix":     10,
//           "log.level":     "info",
//       },
//   })
//
//   delimiter := cfg.GetString("cli.delimiter", ",")
package config
