package kdgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kdgo-specific context.
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
		Logger: slog.New(slog.DiscardHandler),
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

// LogBuild logs a bulk build.
func (l *Logger) LogBuild(ctx context.Context, count, height int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "build completed",
			"count", count,
			"height", height,
		)
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(ctx context.Context, id uint32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"id", id,
		)
	}
}

// LogRemove logs a remove operation.
func (l *Logger) LogRemove(ctx context.Context, removed bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "remove failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "remove completed",
			"removed", removed,
		)
	}
}

// LogLookup logs an exact-match lookup.
func (l *Logger) LogLookup(ctx context.Context, found bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "lookup failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "lookup completed",
			"found", found,
		)
	}
}

// LogSearch logs a nearest neighbor search.
func (l *Logger) LogSearch(ctx context.Context, id uint32, dist float32, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"id", id,
			"distance", dist,
		)
	}
}

// LogBatchSearch logs a batch nearest neighbor search.
func (l *Logger) LogBatchSearch(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch search failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch search completed",
			"count", count,
		)
	}
}
