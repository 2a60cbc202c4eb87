package hkmeans

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hkmeans-specific context.
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
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogCluster logs a completed or failed clustering run.
func (l *Logger) LogCluster(ctx context.Context, k, points, iterations int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "cluster failed",
			"k", k,
			"points", points,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "cluster completed",
			"k", k,
			"points", points,
			"iterations", iterations,
		)
	}
}

// LogIteration logs the work done by a single iteration.
func (l *Logger) LogIteration(ctx context.Context, s IterationStats) {
	l.DebugContext(ctx, "iteration completed",
		"iteration", s.Iteration,
		"pruned", s.Pruned,
		"tightened", s.Tightened,
		"searched", s.Searched,
		"reassigned", s.Reassigned,
		"empty", s.Empty,
		"movement", s.Movement,
	)
}

// LogQuantize logs a color quantization run.
func (l *Logger) LogQuantize(ctx context.Context, pixels, colors int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "quantize failed",
			"pixels", pixels,
			"colors", colors,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "quantize completed",
			"pixels", pixels,
			"colors", colors,
		)
	}
}
