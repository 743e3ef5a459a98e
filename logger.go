package clustergo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with clustergo-specific context.
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

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithRows adds a row-count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{
		Logger: l.Logger.With("rows", rows),
	}
}

// LogFit logs a fit operation.
func (l *Logger) LogFit(ctx context.Context, k, rows, iterations int, inertia float64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"k", k,
			"rows", rows,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit completed",
			"k", k,
			"rows", rows,
			"iterations", iterations,
			"inertia", inertia,
			"duration", duration,
		)
	}
}

// LogSweep logs an elbow sweep operation.
func (l *Logger) LogSweep(ctx context.Context, kMin, kMax, rows int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sweep failed",
			"k_min", kMin,
			"k_max", kMax,
			"rows", rows,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sweep completed",
			"k_min", kMin,
			"k_max", kMax,
			"rows", rows,
			"duration", duration,
		)
	}
}
