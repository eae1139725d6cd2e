package logger

// NoOpLogger implements Logger and discards everything. Used in tests and
// when no log file is configured.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug discards the message.
func (*NoOpLogger) Debug(string, ...any) {}

// Info discards the message.
func (*NoOpLogger) Info(string, ...any) {}

// Error discards the message.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same no-op logger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *NoOpLogger) With(...any) Logger {
	return l
}
