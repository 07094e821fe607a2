package feature

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with feature-specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewWriterLogger(os.Stderr, level)
}

// NewWriterLogger creates a text Logger writing to w.
func NewWriterLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewWriterLogger(io.Discard, slog.Level(1000))
}

// WithFeature adds feature identification fields.
func (l *Logger) WithFeature(id, kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("feature", id, "kind", kind),
	}
}

// LogIndexBuild logs a completed spatial index rebuild.
func (l *Logger) LogIndexBuild(indexed, excluded int, maxRadius float64, took time.Duration) {
	l.Debug("spatial index rebuilt",
		"indexed", indexed,
		"excluded", excluded,
		"max_radius", maxRadius,
		"duration", took,
	)
	if excluded > 0 {
		l.Warn("elements with non-finite positions excluded from spatial index",
			"excluded", excluded,
		)
	}
}

// LogQuery logs a completed query.
func (l *Logger) LogQuery(kind QueryKind, candidates, matched int, err error) {
	if err != nil {
		l.Error("query failed",
			"query", kind.String(),
			"error", err,
		)
		return
	}
	l.Debug("query completed",
		"query", kind.String(),
		"candidates", candidates,
		"matched", matched,
	)
}
