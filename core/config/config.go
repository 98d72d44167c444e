// File: config.go
// Title: Configuration Loading and Access
// Description: Implements loading of TOML and YAML configuration files with
//              format auto-detection, default values, environment-variable
//              overrides, and dot-notation accessors with type coercion.
//              Used by the command-line tooling to pick up defaults such as
//              delimiter, radix, and log level.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-04
// Modified: 2026-08-04
//
// Change History:
// - 2026-08-04 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	texterror "github.com/htiek/text/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto auto-detects format from the file extension (default)
	FormatAuto Format = iota

	// FormatTOML forces TOML parsing
	FormatTOML

	// FormatYAML forces YAML parsing
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values under dot-notation keys
}

// New creates an empty configuration carrying only the given defaults
func New(defaults map[string]interface{}) *Config {
	cfg := &Config{data: make(map[string]interface{})}
	for key, value := range defaults {
		cfg.set(key, value)
	}
	return cfg
}

// Load reads and parses the configuration file at path
func Load(path string, opts LoadOptions) (*Config, error) {
	cfg := New(opts.Defaults)
	cfg.filePath = path
	cfg.envPrefix = opts.EnvPrefix

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, texterror.Wrap(err, "configuration file not found").
				WithCode(texterror.CodeMissingConfig).
				WithDetail("path", path)
		}
		return nil, texterror.Wrap(err, "could not read configuration file").
			WithCode(texterror.CodeConfigError).
			WithDetail("path", path)
	}

	format := opts.Format
	if format == FormatAuto {
		format = detectFormat(path)
	}

	parsed := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(raw, &parsed); err != nil {
			return nil, texterror.Wrap(err, "could not parse TOML configuration").
				WithCode(texterror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &parsed); err != nil {
			return nil, texterror.Wrap(err, "could not parse YAML configuration").
				WithCode(texterror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		return nil, texterror.New("unsupported configuration format").
			WithCode(texterror.CodeInvalidConfig).
			WithDetail("format", format.String())
	}

	cfg.mu.Lock()
	mergeMaps(cfg.data, parsed)
	cfg.mu.Unlock()

	return cfg, nil
}

// detectFormat maps a file extension to a format; TOML is the default
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// mergeMaps overlays src onto dst, descending into nested maps
func mergeMaps(dst, src map[string]interface{}) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]interface{}); ok {
			if dstMap, ok := dst[key].(map[string]interface{}); ok {
				mergeMaps(dstMap, srcMap)
				continue
			}
		}
		dst[key] = value
	}
}

// set stores a value under a dot-notation key, creating nested maps as needed
func (c *Config) set(key string, value interface{}) {
	parts := strings.Split(key, ".")
	node := c.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			node[part] = next
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
}

// Get returns the value for a dot-notation key. Environment variables take
// precedence over file values: the key "cli.delimiter" with prefix "TEXTCLI"
// is overridden by TEXTCLI_CLI_DELIMITER.
func (c *Config) Get(key string) (interface{}, bool) {
	if c.envPrefix != "" {
		envKey := c.envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if value, ok := os.LookupEnv(envKey); ok {
			return value, true
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var node interface{} = c.data
	for _, part := range strings.Split(key, ".") {
		asMap, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = asMap[part]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// GetString returns a string value, or fallback when the key is absent
func (c *Config) GetString(key, fallback string) string {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case string:
		return v
	default:
		return strings.TrimSpace(strconvFormat(v))
	}
}

// GetInt returns an integer value, or fallback when absent or non-numeric
func (c *Config) GetInt(key string, fallback int) int {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return fallback
}

// GetBool returns a boolean value, or fallback when absent or non-boolean
func (c *Config) GetBool(key string, fallback bool) bool {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

// FilePath returns the path the configuration was loaded from
func (c *Config) FilePath() string {
	return c.filePath
}

// strconvFormat renders scalar config values without fmt's reflection overhead
func strconvFormat(v interface{}) string {
	switch t := v.(type) {
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return ""
	}
}
