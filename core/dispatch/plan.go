package dispatch

import (
	"context"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/notifier/core/event"
	"github.com/dmitrymomot/notifier/core/logger"
)

// Step is one observer scheduled by a Plan together with its capability.
type Step struct {
	Observer   Observer
	Capability Capability
}

// Plan is the ordered set of observers that handle one event.
// It is built fresh for every dispatch and never cached.
type Plan struct {
	steps    []Step
	expected int
}

// Resolve queries every observer in q, in queue order, for its capability to
// handle e and returns the resulting plan. Skipped observers are left out.
// Capabilities outside the known set are treated as Skip.
func Resolve(ctx context.Context, e event.Event, q Queue) Plan {
	return resolve(ctx, e, q, nil)
}

func resolve(ctx context.Context, e event.Event, q Queue, log *slog.Logger) Plan {
	var p Plan
	if q == nil {
		return p
	}

	for obs := range q.Observers() {
		c := obs.Classify(ctx, e)
		if !c.valid() {
			if log != nil {
				log.WarnContext(ctx, "observer returned unknown capability, skipping",
					logger.Event(e.Type().Name()),
					logger.Observer(obs.Name()),
					logger.Key("capability", uint8(c)))
			}
			continue
		}
		if c == Skip {
			continue
		}
		if c == HandleWithResult {
			p.expected++
		}
		p.steps = append(p.steps, Step{Observer: obs, Capability: c})
	}

	return p
}

// Steps returns the scheduled observers in invocation order.
func (p Plan) Steps() []Step {
	return slices.Clone(p.steps)
}

// Len returns the number of observers that will be invoked.
func (p Plan) Len() int {
	return len(p.steps)
}

// Expected returns the number of HandleWithResult observers, which is exactly
// the number of entries the aggregator receives.
func (p Plan) Expected() int {
	return p.expected
}

// Empty reports whether no observer handles the event.
func (p Plan) Empty() bool {
	return len(p.steps) == 0
}
