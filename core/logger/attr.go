package logger

import (
	"log/slog"
	"runtime"
	"strconv"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Panic creates an attribute for a recovered panic value.
// Returns empty Attr for nil.
func Panic(v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any("panic", v)
}

// ============================================================================
// Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Dispatch Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event type names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// EventID creates an attribute for event instance IDs.
func EventID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("event_id", id)
}

// Observer creates an attribute for observer names.
func Observer(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("observer", name)
}

// Capability creates an attribute describing how an observer handles an event.
func Capability(c string) slog.Attr {
	return slog.String("capability", c)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// ============================================================================
// Debugging
// ============================================================================

// Stack captures and returns the current stack trace.
func Stack() slog.Attr {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}
