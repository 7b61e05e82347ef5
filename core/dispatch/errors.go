package dispatch

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/notifier/core/event"
)

var (
	// ErrMissingResult is returned when a HandleWithResult observer returns without publishing a result.
	ErrMissingResult = errors.New("observer did not publish a result")

	// ErrDuplicateResult is returned when a HandleWithResult observer publishes more than one result.
	ErrDuplicateResult = errors.New("observer published more than one result")

	// ErrOverCount is returned when a result collector receives an entry after it already aggregated.
	ErrOverCount = errors.New("result collector received more results than expected")

	// ErrLateResult marks a result published after the observer returned. Late results are dropped.
	ErrLateResult = errors.New("observer published a result after returning")

	// ErrMissingCallback is returned by DispatchAsync when observers produce results but no callback was given.
	ErrMissingCallback = errors.New("callback is required when observers produce results")

	// ErrObserverPanic wraps a panic recovered from an observer.
	ErrObserverPanic = errors.New("observer panicked")
)

// Violation classifies a broken result contract.
type Violation uint8

const (
	MissingResult Violation = iota + 1
	DuplicateResult
	OverCount
	LateResult
)

func (v Violation) sentinel() error {
	switch v {
	case MissingResult:
		return ErrMissingResult
	case DuplicateResult:
		return ErrDuplicateResult
	case OverCount:
		return ErrOverCount
	case LateResult:
		return ErrLateResult
	default:
		return errors.New("unknown contract violation")
	}
}

// ContractError reports an observer that broke the one-result-per-observer contract.
// It aborts the dispatch it occurred in and is never handed to the exception policy.
type ContractError struct {
	Violation Violation
	Observer  string
	Event     event.Event
	Published int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("dispatch: observer %q broke result contract on %s: %v (published %d)",
		e.Observer, e.Event.Type(), e.Violation.sentinel(), e.Published)
}

func (e *ContractError) Unwrap() error {
	return e.Violation.sentinel()
}

// PassThroughError carries an observer error that the exception policy decided to
// propagate. It ends the dispatch it was raised in.
type PassThroughError struct {
	Observer string
	Event    event.Event
	Err      error
}

func (e *PassThroughError) Error() string {
	return fmt.Sprintf("dispatch: observer %q failed on %s: %v", e.Observer, e.Event.Type(), e.Err)
}

func (e *PassThroughError) Unwrap() error {
	return e.Err
}

// ExceptionWrapper stands in for the result of a HandleWithResult observer that
// failed with a swallowed error. Aggregators receive it in the failed observer's slot.
type ExceptionWrapper struct {
	Message  string
	Observer string
	Event    event.Event
	Cause    error
}

func newExceptionWrapper(observer string, e event.Event, cause error) *ExceptionWrapper {
	return &ExceptionWrapper{
		Message:  "Failed to notify " + observer,
		Observer: observer,
		Event:    e,
		Cause:    cause,
	}
}

func (w *ExceptionWrapper) Error() string {
	return w.Message
}

func (w *ExceptionWrapper) Unwrap() error {
	return w.Cause
}
