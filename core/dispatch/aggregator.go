package dispatch

import (
	"context"
	"slices"
)

// Aggregator reduces the ordered results of one dispatch into a single value.
// Entries are either published values or *ExceptionWrapper. One aggregator is
// shared by all dispatches of a Dispatcher and must be safe for concurrent use.
type Aggregator interface {
	Aggregate(ctx context.Context, results []any) (any, error)
}

// AggregatorFunc adapts a function to Aggregator.
type AggregatorFunc func(ctx context.Context, results []any) (any, error)

func (fn AggregatorFunc) Aggregate(ctx context.Context, results []any) (any, error) {
	return fn(ctx, results)
}

// AggregatorFactory creates the aggregator a Dispatcher uses. It is called once.
type AggregatorFactory func() Aggregator

// CollectAggregator returns the results unchanged as []any.
func CollectAggregator() Aggregator {
	return AggregatorFunc(func(_ context.Context, results []any) (any, error) {
		return slices.Clone(results), nil
	})
}
