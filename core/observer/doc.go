// Package observer provides Queue, an ordered, concurrency-safe registry of
// dispatch observers.
//
//	q := observer.New(audit, greeter)
//	if err := q.Add(mailer); err != nil {
//		return err // observer.ErrDuplicateObserver
//	}
//
//	result, err := dispatcher.Dispatch(ctx, evt, q)
//
// Observers are notified in registration order. The queue may be modified while
// dispatches are running; a dispatch sees the observers present when it resolved
// its plan.
package observer
