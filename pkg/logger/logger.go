// Package logger provides structured logging for the pre-commit hook.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Logger provides structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// Level represents the log level.
type Level string

const (
	// LevelDebug represents debug-level logging.
	LevelDebug Level = "DEBUG"

	// LevelInfo represents info-level logging.
	LevelInfo Level = "INFO"

	// LevelError represents error-level logging.
	LevelError Level = "ERROR"

	// LogFilePermissions defines the file permissions for log files (owner read/write only).
	LogFilePermissions = 0o600
)

// FileLogger implements Logger with file output only. The hook's stdout and
// stderr are part of the interactive protocol with the user, so diagnostics
// never go there.
type FileLogger struct {
	file      io.Writer
	baseKVs   []any
	debugMode bool
}

// NewFileLogger creates a new FileLogger that appends to a log file.
func NewFileLogger(filePath string, debugMode bool) (*FileLogger, error) {
	//nolint:gosec // File path comes from the user's own configuration
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileLogger{
		file:      file,
		debugMode: debugMode,
	}, nil
}

// NewFileLoggerWithWriter creates a new FileLogger with a custom writer.
func NewFileLoggerWithWriter(file io.Writer, debugMode bool) *FileLogger {
	return &FileLogger{
		file:      file,
		debugMode: debugMode,
	}
}

// Debug logs debug-level messages.
func (l *FileLogger) Debug(msg string, keysAndValues ...any) {
	if !l.debugMode {
		return
	}

	l.log(LevelDebug, msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *FileLogger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *FileLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *FileLogger) With(keysAndValues ...any) Logger {
	newKVs := make([]any, len(l.baseKVs)+len(keysAndValues))
	copy(newKVs, l.baseKVs)
	copy(newKVs[len(l.baseKVs):], keysAndValues)

	return &FileLogger{
		file:      l.file,
		baseKVs:   newKVs,
		debugMode: l.debugMode,
	}
}

// log writes a log entry to the file.
func (l *FileLogger) log(level Level, msg string, keysAndValues ...any) {
	timestamp := time.Now().UTC().Format("2006-01-02T15:04:05Z")

	var builder strings.Builder

	builder.WriteString(timestamp)
	builder.WriteByte(' ')
	builder.WriteString(string(level))
	builder.WriteByte(' ')
	builder.WriteString(msg)

	writeKVs(&builder, l.baseKVs)
	writeKVs(&builder, keysAndValues)

	builder.WriteByte('\n')

	_, _ = io.WriteString(l.file, builder.String())
}

// writeKVs appends key-value pairs to the builder as " key=value".
func writeKVs(builder *strings.Builder, keysAndValues []any) {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		builder.WriteByte(' ')
		builder.WriteString(fmt.Sprint(keysAndValues[i]))
		builder.WriteByte('=')

		value := fmt.Sprint(keysAndValues[i+1])
		if strings.ContainsAny(value, " \t\n\"") {
			value = fmt.Sprintf("%q", value)
		}

		builder.WriteString(value)
	}
}
