package gridgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with gridgo-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogIndex logs a metadata rebuild.
func (l *Logger) LogIndex(rows, columns int, duration time.Duration) {
	l.Debug("metadata rebuilt",
		"rows", rows,
		"columns", columns,
		"duration", duration,
	)
}

// LogFilter logs a filter-and-search pass.
func (l *Logger) LogFilter(total, visible, tokens int, duration time.Duration) {
	l.Debug("filter pass completed",
		"rows", total,
		"visible", visible,
		"query_tokens", tokens,
		"duration", duration,
	)
}

// LogSort logs a sort pass.
func (l *Logger) LogSort(rows, activeSorts int, duration time.Duration) {
	l.Debug("sort pass completed",
		"rows", rows,
		"active_sorts", activeSorts,
		"duration", duration,
	)
}
