// Package dispatch notifies observers that an event occurred and aggregates the
// results they return. Delivery is either synchronous, on the caller's goroutine,
// or asynchronous, on one dedicated goroutine per dispatch call.
//
// # Observers and Capabilities
//
// Every dispatch asks each observer in the queue how it handles the event:
//
//   - Skip: not invoked
//   - HandleVoid: invoked without a result sink
//   - HandleWithResult: invoked with a sink and must publish exactly one value
//
// The answers form a Plan, which is rebuilt on every dispatch because an
// observer's capability may depend on the event's payload. Observers are always
// invoked one at a time, in queue order, and results reach the aggregator in
// that same order.
//
//	greeter := dispatch.NewObserver("greeter",
//		dispatch.Only(dispatch.HandleWithResult, UserLogin),
//		func(ctx context.Context, e event.Event, sink dispatch.ResultSink) error {
//			sink("welcome back")
//			return nil
//		},
//	)
//
// # Synchronous Dispatch
//
//	d := dispatch.New(dispatch.WithLogger(logger))
//
//	result, err := d.Dispatch(ctx, event.New(UserLogin, payload), queue)
//
// Dispatch returns (nil, nil) when no observer handles the event.
//
// # Asynchronous Dispatch
//
//	future, err := d.DispatchAsync(ctx, evt, queue, func(result any) {
//		log.Info("aggregated", "result", result)
//	})
//	if err != nil {
//		return err // ErrMissingCallback
//	}
//
// The callback runs exactly once per dispatch that has at least one
// HandleWithResult observer, and never when there is none. The future reports how
// the worker ended and can be ignored.
//
// # Failures
//
// Each observer call is isolated. An error (or panic) is handed to the
// ExceptionHandler:
//
//   - errors tagged with PassThrough propagate: the dispatch stops and returns a *PassThroughError
//   - other errors are logged and swallowed; a HandleWithResult observer's slot is
//     filled with an *ExceptionWrapper whose message is "Failed to notify <observer>"
//
// An observer that publishes no result, or more than one, breaks the result
// contract; the dispatch stops with a *ContractError (ErrMissingResult,
// ErrDuplicateResult). Such violations are never swallowed.
//
// # Concurrency
//
// The Dispatcher, its aggregator and its exception handler are shared by all
// dispatches. Per-dispatch state (plan, result buffer, collector) is owned by a
// single dispatch. Async dispatch starts one goroutine per call without bound and
// offers no cancellation; use Wait to block until in-flight dispatches finish.
package dispatch
