// Package config provides configuration schema types for fmthook.
package config

import (
	"time"

	"github.com/cockroachdb/errors"
)

// ErrNegativeDuration is returned when a negative duration is provided.
var ErrNegativeDuration = errors.New("duration must be non-negative")

// Config is the root tool configuration. Behavior that belongs to a
// repository (interactive mode, formatting style) lives in git config
// instead; these settings describe the tool's own environment.
type Config struct {
	Formatter *FormatterConfig `koanf:"formatter"`
	Files     *FilesConfig     `koanf:"files"`
	Log       *LogConfig       `koanf:"log"`
}

// FormatterConfig configures the external formatter invocation.
type FormatterConfig struct {
	// Binary is the formatter executable name or path.
	Binary string `koanf:"binary"`

	// Timeout bounds a single formatter invocation.
	Timeout Duration `koanf:"timeout"`

	// MinVersion is the oldest formatter version the tool accepts.
	MinVersion string `koanf:"min_version"`
}

// FilesConfig configures which staged files are checked.
type FilesConfig struct {
	// Patterns are extra glob patterns checked in addition to the
	// built-in source file extensions.
	Patterns []string `koanf:"patterns"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// File is the log destination. Empty disables logging; the hook's
	// stdout and stderr stay reserved for the commit interaction.
	File string `koanf:"file"`

	// Debug enables debug-level entries.
	Debug bool `koanf:"debug"`
}

// Duration wraps time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(err, "invalid duration")
	}

	if dur < 0 {
		return errors.Wrapf(ErrNegativeDuration, "got %s", dur)
	}

	*d = Duration(dur)

	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
