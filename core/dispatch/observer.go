package dispatch

import (
	"context"
	"iter"
	"slices"

	"github.com/dmitrymomot/notifier/core/event"
)

// ResultSink publishes an observer's result for the current dispatch.
// It must be called exactly once by a HandleWithResult observer before OnEvent returns.
type ResultSink func(value any)

// Observer reacts to dispatched events.
type Observer interface {
	// Name identifies the observer in logs, errors and exception wrappers.
	Name() string

	// Classify reports how the observer handles e. It is queried on every
	// dispatch, so the answer may depend on the event's payload.
	Classify(ctx context.Context, e event.Event) Capability

	// OnEvent handles e. sink is nil unless Classify returned HandleWithResult.
	// Returning an error (or panicking) hands the failure to the exception policy.
	OnEvent(ctx context.Context, e event.Event, sink ResultSink) error
}

// Classifier is the function form of Observer.Classify.
type Classifier func(ctx context.Context, e event.Event) Capability

// ObserverFunc is the function form of Observer.OnEvent.
type ObserverFunc func(ctx context.Context, e event.Event, sink ResultSink) error

// NewObserver builds an Observer from a name, a classifier and a handler function.
//
// Example:
//
//	audit := dispatch.NewObserver("audit",
//	    dispatch.Only(dispatch.HandleVoid, UserLogin),
//	    func(ctx context.Context, e event.Event, _ dispatch.ResultSink) error {
//	        return store.Append(ctx, e)
//	    },
//	)
func NewObserver(name string, classify Classifier, fn ObserverFunc) Observer {
	return &funcObserver{name: name, classify: classify, fn: fn}
}

type funcObserver struct {
	name     string
	classify Classifier
	fn       ObserverFunc
}

func (o *funcObserver) Name() string {
	return o.name
}

func (o *funcObserver) Classify(ctx context.Context, e event.Event) Capability {
	if o.classify == nil {
		return Skip
	}
	return o.classify(ctx, e)
}

func (o *funcObserver) OnEvent(ctx context.Context, e event.Event, sink ResultSink) error {
	return o.fn(ctx, e, sink)
}

// Only returns a classifier that reports c for events of the given types and Skip
// for everything else. With no types it reports c for every event.
func Only(c Capability, types ...event.Type) Classifier {
	return func(_ context.Context, e event.Event) Capability {
		if len(types) == 0 || slices.Contains(types, e.Type()) {
			return c
		}
		return Skip
	}
}

// Queue provides the observers to notify, in a stable order.
// Dispatch only reads from the queue.
type Queue interface {
	Observers() iter.Seq[Observer]
}

type observerList []Observer

func (l observerList) Observers() iter.Seq[Observer] {
	return slices.Values(l)
}

// Observers adapts a fixed list of observers to Queue.
func Observers(obs ...Observer) Queue {
	return observerList(slices.Clone(obs))
}
