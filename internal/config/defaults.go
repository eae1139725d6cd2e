// Package config provides internal configuration loading and processing.
package config

import (
	"time"

	"github.com/fmthook/fmthook/internal/format"
	"github.com/fmthook/fmthook/pkg/config"
)

// DefaultFormatterTimeout bounds a single formatter invocation.
const DefaultFormatterTimeout = 30 * time.Second

var (
	// DefaultFormatterBinary is the formatter executable looked up on PATH.
	DefaultFormatterBinary = format.DefaultBinary

	// DefaultFormatterMinVersion is the oldest formatter version with the
	// -assume-filename and -style flags the tool relies on.
	DefaultFormatterMinVersion = format.MinVersion.String()
)

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *config.Config {
	return &config.Config{
		Formatter: &config.FormatterConfig{
			Binary:     DefaultFormatterBinary,
			Timeout:    config.Duration(DefaultFormatterTimeout),
			MinVersion: DefaultFormatterMinVersion,
		},
		Files: &config.FilesConfig{
			Patterns: []string{},
		},
		Log: &config.LogConfig{},
	}
}

// defaultsToMap flattens the defaults into a koanf confmap.
func defaultsToMap() map[string]any {
	return map[string]any{
		"formatter.binary":      DefaultFormatterBinary,
		"formatter.timeout":     DefaultFormatterTimeout.String(),
		"formatter.min_version": DefaultFormatterMinVersion,
		"files.patterns":        []string{},
		"log.file":              "",
		"log.debug":             false,
	}
}
