package memaccess

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/memaccess/strategy"
)

// Logger wraps slog.Logger with memaccess-specific context.
// This provides structured logging with consistent field names.
//
// The access core never logs; the Logger serves tools built on it.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStrategy adds a strategy field to the logger.
func (l *Logger) WithStrategy(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", name),
	}
}

// WithAddress adds an address field to the logger.
func (l *Logger) WithAddress(addr int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("address", slog.Int64Value(addr)),
	}
}

// LogPlatform logs the platform report.
func (l *Logger) LogPlatform(ctx context.Context, p Platform) {
	attrs := []any{
		"arch", p.Arch,
		"os", p.GOOS,
		"big_endian", p.BigEndian,
		"pointer_size", p.PointerSize,
		"unaligned_access_allowed", p.UnalignedAccessAllowed,
		"intrinsic", p.IntrinsicAvailable,
	}
	for _, t := range []strategy.Type{strategy.TypeStandard, strategy.TypeAlignmentAware, strategy.TypePlatformAware} {
		if name, ok := p.Roles[t]; ok {
			attrs = append(attrs, "role_"+t.String(), name)
		}
	}

	if !p.IntrinsicAvailable {
		l.WarnContext(ctx, "host memory intrinsic unavailable", attrs...)
		return
	}
	l.InfoContext(ctx, "platform", attrs...)
}

// LogStressProgress logs the progress of a contention run.
func (l *Logger) LogStressProgress(ctx context.Context, done, total int64) {
	l.DebugContext(ctx, "stress progress",
		"done", done,
		"total", total,
	)
}

// LogStress logs the outcome of a contention run.
func (l *Logger) LogStress(ctx context.Context, goroutines, iterations int, counter int64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "stress failed",
			"goroutines", goroutines,
			"iterations", iterations,
			"error", err,
		)
		return
	}

	expected := int64(goroutines) * int64(iterations)
	if counter != expected {
		l.ErrorContext(ctx, "stress counter mismatch",
			"expected", expected,
			"counter", counter,
			"elapsed", elapsed,
		)
		return
	}
	l.InfoContext(ctx, "stress completed",
		"goroutines", goroutines,
		"iterations", iterations,
		"counter", counter,
		"elapsed", elapsed,
	)
}
