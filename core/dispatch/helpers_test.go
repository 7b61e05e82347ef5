package dispatch_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/notifier/core/dispatch"
	"github.com/dmitrymomot/notifier/core/event"
)

var (
	userLogin  = event.MustType("USER_LOGIN")
	userLogout = event.MustType("USER_LOGOUT")
)

// calls records observer invocations in order. Safe for concurrent use.
type calls struct {
	mu    sync.Mutex
	names []string
}

func (c *calls) add(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = append(c.names, name)
}

func (c *calls) list() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.names)
}

func voidObserver(name string, rec *calls) dispatch.Observer {
	return dispatch.NewObserver(name, dispatch.Only(dispatch.HandleVoid, userLogin),
		func(ctx context.Context, e event.Event, sink dispatch.ResultSink) error {
			rec.add(name)
			if sink != nil {
				return errors.New("void observer received a sink")
			}
			return nil
		})
}

func valueObserver(name string, value any, rec *calls) dispatch.Observer {
	return dispatch.NewObserver(name, dispatch.Only(dispatch.HandleWithResult, userLogin),
		func(ctx context.Context, e event.Event, sink dispatch.ResultSink) error {
			rec.add(name)
			sink(value)
			return nil
		})
}

func failingObserver(name string, err error, rec *calls) dispatch.Observer {
	return dispatch.NewObserver(name, dispatch.Only(dispatch.HandleWithResult, userLogin),
		func(ctx context.Context, e event.Event, sink dispatch.ResultSink) error {
			rec.add(name)
			return err
		})
}

func silentObserver(name string, rec *calls) dispatch.Observer {
	return dispatch.NewObserver(name, dispatch.Only(dispatch.HandleWithResult, userLogin),
		func(ctx context.Context, e event.Event, sink dispatch.ResultSink) error {
			rec.add(name)
			return nil
		})
}

func chattyObserver(name string, rec *calls) dispatch.Observer {
	return dispatch.NewObserver(name, dispatch.Only(dispatch.HandleWithResult, userLogin),
		func(ctx context.Context, e event.Event, sink dispatch.ResultSink) error {
			rec.add(name)
			sink("first")
			sink("second")
			return nil
		})
}

// recordingAggregator renders every entry as a string (exception wrappers as
// their message), remembers each input and joins the entries with ",".
type recordingAggregator struct {
	mu     sync.Mutex
	inputs [][]string
	count  atomic.Int32
}

func (a *recordingAggregator) Aggregate(_ context.Context, results []any) (any, error) {
	a.count.Add(1)

	rendered := make([]string, 0, len(results))
	for _, r := range results {
		var w *dispatch.ExceptionWrapper
		if err, ok := r.(error); ok && errors.As(err, &w) {
			rendered = append(rendered, w.Message)
			continue
		}
		rendered = append(rendered, fmt.Sprint(r))
	}

	a.mu.Lock()
	a.inputs = append(a.inputs, rendered)
	a.mu.Unlock()

	return strings.Join(rendered, ","), nil
}

func (a *recordingAggregator) seen() [][]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.inputs)
}

func newRecordingDispatcher(opts ...dispatch.Option) (*dispatch.Dispatcher, *recordingAggregator) {
	agg := &recordingAggregator{}
	opts = append([]dispatch.Option{dispatch.WithAggregator(func() dispatch.Aggregator { return agg })}, opts...)
	return dispatch.New(opts...), agg
}

func itoa(i int) string {
	return fmt.Sprint(i)
}
