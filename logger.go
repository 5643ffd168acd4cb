package automata

import "log/slog"

// Logger is an interface that provides methods for logging messages with different severity levels.
// *slog.Logger satisfies it.
type Logger interface {
	// Debug logs a debug message with optional keys and values.
	Debug(msg string, keysAndValues ...any)
	// Info logs an informational message with optional keys and values.
	Info(msg string, keysAndValues ...any)
	// Warn logs a warning message with optional keys and values.
	Warn(msg string, keysAndValues ...any)
	// Error logs an error message with optional keys and values.
	Error(msg string, keysAndValues ...any)
}

// discardLogger is used when no logger is configured.
var discardLogger Logger = slog.New(slog.DiscardHandler)
