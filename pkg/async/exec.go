package async

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"
)

// ExecFuture represents the outcome of an asynchronous function that only returns an error.
type ExecFuture struct {
	err  error
	once sync.Once
	done chan struct{}
}

// Await waits for the asynchronous function to complete and returns its error.
func (f *ExecFuture) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// Returns the error if the function completes before the timeout.
// If the timeout occurs before completion, returns ErrTimeout.
// The function itself keeps running; only the wait is abandoned.
func (f *ExecFuture) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// Done returns a channel that is closed once the function has completed.
func (f *ExecFuture) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *ExecFuture) complete(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Completed returns a future that has already finished with err.
// Useful when there is nothing to run but the caller expects a future.
func Completed(err error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}
	f.complete(err)
	return f
}

// Exec runs fn in exactly one new goroutine and returns a future for its error.
// A panic inside fn is recovered and reported as ErrPanic with the panic value
// and stack trace, so the goroutine never takes the process down.
//
// Unlike a plain goroutine, Exec does not check ctx before running fn: once
// submitted, fn always runs. Cancellation is left to fn.
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v\n%s", ErrPanic, r, debug.Stack())
			}
			f.complete(err)
		}()

		err = fn(ctx, param)
	}()

	return f
}
