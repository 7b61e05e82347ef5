package async

import "errors"

var (
	// ErrTimeout is returned by AwaitWithTimeout when the function has not completed in time.
	ErrTimeout = errors.New("async: timeout waiting for completion")

	// ErrPanic is returned by Await when the executed function panicked.
	ErrPanic = errors.New("async: function panicked")
)
