package jsonfile

import (
	"context"
	"errors"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with jsonfile-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithPath adds a path field to the logger.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path),
	}
}

// WithKey adds a bundle key field to the logger.
func (l *Logger) WithKey(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// WithCodec adds a codec field to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// logFailure logs a missing file at warn and every other failure at error.
func (l *Logger) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "kind", KindOf(err).String(), "error", err)
	if errors.Is(err, ErrNotFound) {
		l.WarnContext(ctx, msg, args...)
		return
	}
	l.ErrorContext(ctx, msg, args...)
}

// LogWrite logs a file write.
func (l *Logger) LogWrite(ctx context.Context, path string, bytes int, err error) {
	if err != nil {
		l.WithPath(path).logFailure(ctx, "write failed", err)
	} else {
		l.WithPath(path).DebugContext(ctx, "write completed", "bytes", bytes)
	}
}

// LogRead logs a file read.
func (l *Logger) LogRead(ctx context.Context, path string, bytes int, err error) {
	if err != nil {
		l.WithPath(path).logFailure(ctx, "read failed", err)
	} else {
		l.WithPath(path).DebugContext(ctx, "read completed", "bytes", bytes)
	}
}

// LogBundleRead logs a bundle read.
func (l *Logger) LogBundleRead(ctx context.Context, key string, bytes int, err error) {
	if err != nil {
		l.WithKey(key).logFailure(ctx, "bundle read failed", err)
	} else {
		l.WithKey(key).DebugContext(ctx, "bundle read completed", "bytes", bytes)
	}
}

// LogBundleWrite logs a bundle write.
func (l *Logger) LogBundleWrite(ctx context.Context, key string, bytes int, err error) {
	if err != nil {
		l.WithKey(key).logFailure(ctx, "bundle write failed", err)
	} else {
		l.WithKey(key).DebugContext(ctx, "bundle write completed", "bytes", bytes)
	}
}

// LogPanic logs a panic recovered by a try operation.
func (l *Logger) LogPanic(ctx context.Context, op, target string, recovered any) {
	l.ErrorContext(ctx, "recovered panic",
		"op", op,
		"target", target,
		"panic", recovered,
	)
}
