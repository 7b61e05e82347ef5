// Package async provides a minimal future for running one function in its own goroutine.
//
// Exec starts exactly one goroutine per call and returns an *ExecFuture that reports
// the function's error. The dispatcher uses it to run each asynchronous dispatch on a
// dedicated worker while still letting callers observe how the worker ended.
//
// # Usage
//
//	future := async.Exec(ctx, job, func(ctx context.Context, j Job) error {
//		return j.Run(ctx)
//	})
//
//	// Do other work...
//
//	if err := future.Await(); err != nil {
//		log.Printf("job failed: %v", err)
//	}
//
// Waiting with a timeout abandons the wait, not the work:
//
//	if err := future.AwaitWithTimeout(time.Second); errors.Is(err, async.ErrTimeout) {
//		log.Println("still running")
//	}
//
// Completed returns a future that is already finished, for code paths that have
// nothing to run but must hand back a future.
//
// # Error Handling
//
//   - ErrTimeout: returned when AwaitWithTimeout exceeds its duration
//   - ErrPanic: returned when the function panicked; the message carries the panic value and stack
//
// # Context Support
//
// Exec passes ctx through to the function but does not itself check it: a submitted
// function always runs. Functions that want to honour cancellation must watch ctx.
package async
