package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/notifier/core/event"
	"github.com/dmitrymomot/notifier/core/logger"
)

// Dispatcher notifies observers of events, synchronously or on a dedicated
// goroutine per dispatch, and aggregates the results they publish.
//
// A Dispatcher holds no per-dispatch state; it is safe for concurrent use.
type Dispatcher struct {
	aggregatorFactory AggregatorFactory
	aggregator        Aggregator
	exceptionHandler  ExceptionHandler
	logger            *slog.Logger

	wg sync.WaitGroup

	syncDispatches     atomic.Int64
	asyncDispatches    atomic.Int64
	observersNotified  atomic.Int64
	observerFailures   atomic.Int64
	contractViolations atomic.Int64
	passThrough        atomic.Int64
	activeWorkers      atomic.Int32
	lastActivityAt     atomic.Int64
}

// Stats provides observability counters for a Dispatcher.
type Stats struct {
	SyncDispatches     int64
	AsyncDispatches    int64
	ObserversNotified  int64
	ObserverFailures   int64
	ContractViolations int64
	PassThrough        int64
	ActiveWorkers      int32
	LastActivityAt     time.Time
}

// New creates a dispatcher with the given options.
//
// Example:
//
//	d := dispatch.New(
//	    dispatch.WithLogger(logger),
//	    dispatch.WithAggregator(newSummary),
//	)
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		aggregatorFactory: CollectAggregator,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.aggregator = d.aggregatorFactory()
	if d.exceptionHandler == nil {
		d.exceptionHandler = NewExceptionHandler(d.logger)
	}

	return d
}

// Dispatch notifies every observer in q that handles e, in queue order, on the
// caller's goroutine, and returns the aggregated result.
//
// If no observer handles e it returns (nil, nil) without calling the aggregator.
// Swallowed observer errors become *ExceptionWrapper entries. The dispatch ends
// early with a *PassThroughError (or whatever the exception handler returned)
// or a *ContractError when an observer publishes zero or several results.
//
// There is no timeout: a slow observer blocks the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, e event.Event, q Queue) (any, error) {
	d.syncDispatches.Add(1)
	d.touch()

	plan := resolve(ctx, e, q, d.logger)
	if plan.Empty() {
		return nil, nil
	}

	ctx = event.WithMeta(ctx, e)
	results := make([]any, 0, plan.Expected())

	err := d.notify(ctx, e, plan, func(entry any) error {
		results = append(results, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	result, err := d.aggregator.Aggregate(ctx, results)
	if err != nil {
		return nil, fmt.Errorf("dispatch: aggregate %d results: %w", len(results), err)
	}
	return result, nil
}

// DispatchEach runs one synchronous dispatch per event concurrently and returns
// the aggregated results in input order. Observers of each single dispatch are
// still invoked serially. The first error is returned; other dispatches run to
// completion regardless.
func (d *Dispatcher) DispatchEach(ctx context.Context, events []event.Event, q Queue) ([]any, error) {
	results := make([]any, len(events))

	var g errgroup.Group
	for i, e := range events {
		g.Go(func() error {
			r, err := d.Dispatch(ctx, e, q)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Wait blocks until every asynchronous dispatch started so far has finished,
// or ctx is done. It does not stop running dispatches.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns current dispatcher statistics.
func (d *Dispatcher) Stats() Stats {
	var last time.Time
	if ts := d.lastActivityAt.Load(); ts > 0 {
		last = time.Unix(0, ts)
	}

	return Stats{
		SyncDispatches:     d.syncDispatches.Load(),
		AsyncDispatches:    d.asyncDispatches.Load(),
		ObserversNotified:  d.observersNotified.Load(),
		ObserverFailures:   d.observerFailures.Load(),
		ContractViolations: d.contractViolations.Load(),
		PassThrough:        d.passThrough.Load(),
		ActiveWorkers:      d.activeWorkers.Load(),
		LastActivityAt:     last,
	}
}

func (d *Dispatcher) touch() {
	d.lastActivityAt.Store(time.Now().UnixNano())
}

// notify runs the plan serially. commit receives one entry per HandleWithResult
// observer, in plan order.
func (d *Dispatcher) notify(ctx context.Context, e event.Event, plan Plan, commit func(any) error) error {
	for _, step := range plan.steps {
		if err := d.notifyOne(ctx, e, step, commit); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) notifyOne(ctx context.Context, e event.Event, step Step, commit func(any) error) error {
	d.observersNotified.Add(1)
	name := step.Observer.Name()

	if step.Capability == HandleVoid {
		if err := invoke(ctx, e, step.Observer, nil); err != nil {
			return d.fail(ctx, e, step, err)
		}
		return nil
	}

	s := &slot{onLate: func(value any) {
		d.violation(ctx, &ContractError{Violation: LateResult, Observer: name, Event: e, Published: 1})
	}}

	err := invoke(ctx, e, step.Observer, s.publish)
	entries := s.close()

	if err != nil {
		if perr := d.fail(ctx, e, step, err); perr != nil {
			return perr
		}
		// Appended even if the observer already published; the arity check below
		// then reports the slot as corrupt instead of picking one of the entries.
		entries = append(entries, newExceptionWrapper(name, e, err))
	}

	switch {
	case len(entries) == 0:
		return d.violation(ctx, &ContractError{Violation: MissingResult, Observer: name, Event: e})
	case len(entries) > 1:
		return d.violation(ctx, &ContractError{Violation: DuplicateResult, Observer: name, Event: e, Published: len(entries)})
	}

	if err := commit(entries[0]); err != nil {
		if errors.Is(err, ErrOverCount) {
			return d.violation(ctx, &ContractError{Violation: OverCount, Observer: name, Event: e, Published: 1})
		}
		return err
	}
	return nil
}

// fail routes an observer error through the exception policy. A non-nil return
// ends the dispatch.
func (d *Dispatcher) fail(ctx context.Context, e event.Event, step Step, err error) error {
	d.observerFailures.Add(1)

	perr := d.exceptionHandler.Handle(ctx, Failure{
		Event:      e,
		Observer:   step.Observer.Name(),
		Capability: step.Capability,
		Err:        err,
	})
	if perr != nil {
		d.passThrough.Add(1)
	}
	return perr
}

func (d *Dispatcher) violation(ctx context.Context, err *ContractError) error {
	d.contractViolations.Add(1)
	d.logger.ErrorContext(ctx, "observer broke result contract",
		logger.Event(err.Event.Type().Name()),
		logger.EventID(err.Event.ID()),
		logger.Observer(err.Observer),
		logger.Count("published", err.Published),
		logger.Error(err))
	return err
}

// invoke calls the observer, converting a panic into an error wrapping ErrObserverPanic.
func invoke(ctx context.Context, e event.Event, obs Observer, sink ResultSink) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("%w: %s: %w", ErrObserverPanic, obs.Name(), rerr)
				return
			}
			err = fmt.Errorf("%w: %s: %v", ErrObserverPanic, obs.Name(), r)
		}
	}()
	return obs.OnEvent(ctx, e, sink)
}
