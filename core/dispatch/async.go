package dispatch

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/notifier/core/event"
	"github.com/dmitrymomot/notifier/core/logger"
	"github.com/dmitrymomot/notifier/pkg/async"
)

// DispatchAsync notifies every observer in q that handles e on a new goroutine
// and returns immediately. Exactly one goroutine is started per call; there is
// no pooling.
//
// The plan is resolved before returning. If no observer handles e, nothing runs,
// cb is never called and the returned future is already complete. If at least one
// observer produces a result, cb is required (ErrMissingCallback otherwise, before
// any observer runs) and is called exactly once with the aggregated result after
// the last result arrives.
//
// The returned future reports how the worker ended: nil, a *PassThroughError,
// a *ContractError or an aggregation error. None of these reach cb. Callers that
// only care about cb may ignore the future.
//
// Observers receive a context that is never cancelled: once started, a dispatch
// runs to completion.
func (d *Dispatcher) DispatchAsync(ctx context.Context, e event.Event, q Queue, cb Callback) (*async.ExecFuture, error) {
	plan := resolve(ctx, e, q, d.logger)
	if plan.Empty() {
		return async.Completed(nil), nil
	}

	if plan.Expected() > 0 && cb == nil {
		return nil, fmt.Errorf("%w: %d observers of %s produce results", ErrMissingCallback, plan.Expected(), e.Type())
	}

	d.asyncDispatches.Add(1)
	d.touch()

	var col *collector
	if plan.Expected() > 0 {
		col = newCollector(plan.Expected(), d.aggregator, cb)
	}

	d.wg.Add(1)
	d.activeWorkers.Add(1)

	wctx := event.WithMeta(context.WithoutCancel(ctx), e)

	return async.Exec(wctx, plan, func(ctx context.Context, plan Plan) error {
		defer d.wg.Done()
		defer d.activeWorkers.Add(-1)

		err := d.notify(ctx, e, plan, func(entry any) error {
			return col.accept(ctx, entry)
		})
		if err != nil {
			pending := 0
			if col != nil {
				pending = col.pending()
			}
			d.logger.ErrorContext(ctx, "async dispatch terminated",
				logger.Event(e.Type().Name()),
				logger.EventID(e.ID()),
				logger.Count("results_pending", pending),
				logger.Error(err))
		}
		return err
	}), nil
}
