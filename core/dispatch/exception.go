package dispatch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/notifier/core/event"
	"github.com/dmitrymomot/notifier/core/logger"
)

// Disposition tells the exception policy what to do with an observer error.
type Disposition uint8

const (
	// Swallow logs the error and lets the dispatch continue. This is the default.
	Swallow Disposition = iota

	// Propagate ends the dispatch and returns the error to the caller (sync)
	// or the worker's future (async).
	Propagate
)

func (d Disposition) String() string {
	if d == Propagate {
		return "propagate"
	}
	return "swallow"
}

type taggedError struct {
	err         error
	disposition Disposition
}

func (e *taggedError) Error() string { return e.err.Error() }
func (e *taggedError) Unwrap() error { return e.err }

// WithDisposition tags err with d. The tag survives further wrapping with %w.
func WithDisposition(err error, d Disposition) error {
	if err == nil {
		return nil
	}
	return &taggedError{err: err, disposition: d}
}

// PassThrough tags err so that the exception policy propagates it.
//
// Example:
//
//	if err := tx.Commit(); err != nil {
//	    return dispatch.PassThrough(err)
//	}
func PassThrough(err error) error {
	return WithDisposition(err, Propagate)
}

// DispositionOf returns the outermost disposition tag in err's chain, or Swallow.
func DispositionOf(err error) Disposition {
	var tagged *taggedError
	if errors.As(err, &tagged) {
		return tagged.disposition
	}
	var pt *PassThroughError
	if errors.As(err, &pt) {
		return Propagate
	}
	return Swallow
}

// Failure describes one observer error handed to the exception policy.
type Failure struct {
	Event      event.Event
	Observer   string
	Capability Capability
	Err        error
}

// ExceptionHandler decides what happens to observer errors.
// Returning nil swallows the error; returning an error ends the dispatch with it.
// Implementations are shared by all dispatches and must be safe for concurrent use.
type ExceptionHandler interface {
	Handle(ctx context.Context, f Failure) error
}

// ExceptionHandlerFunc adapts a function to ExceptionHandler.
type ExceptionHandlerFunc func(ctx context.Context, f Failure) error

func (fn ExceptionHandlerFunc) Handle(ctx context.Context, f Failure) error {
	return fn(ctx, f)
}

// NewExceptionHandler returns the default policy: errors tagged Propagate are
// returned as *PassThroughError, everything else is logged and swallowed.
// The handler is stateless apart from the logger.
func NewExceptionHandler(log *slog.Logger) ExceptionHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &defaultExceptionHandler{logger: log}
}

type defaultExceptionHandler struct {
	logger *slog.Logger
}

func (h *defaultExceptionHandler) Handle(ctx context.Context, f Failure) error {
	if DispositionOf(f.Err) == Propagate {
		var pt *PassThroughError
		if errors.As(f.Err, &pt) {
			return f.Err
		}
		return &PassThroughError{Observer: f.Observer, Event: f.Event, Err: f.Err}
	}

	h.logger.ErrorContext(ctx, "observer failed",
		logger.Event(f.Event.Type().Name()),
		logger.EventID(f.Event.ID()),
		logger.Observer(f.Observer),
		logger.Capability(f.Capability.String()),
		logger.Error(f.Err))

	return nil
}
