package dispatch

import (
	"context"
	"fmt"
)

// Callback receives the aggregated result of an asynchronous dispatch.
type Callback func(result any)

// collector accumulates the results of one asynchronous dispatch and, once the
// expected number has arrived, aggregates them and invokes the callback.
//
// A collector is confined to the single worker goroutine of its dispatch and is
// not safe for concurrent use. Invoking observers in parallel would require
// locking here.
type collector struct {
	expected   int
	buf        []any
	aggregator Aggregator
	callback   Callback
	finished   bool
}

func newCollector(expected int, aggregator Aggregator, callback Callback) *collector {
	return &collector{
		expected:   expected,
		buf:        make([]any, 0, expected),
		aggregator: aggregator,
		callback:   callback,
	}
}

// accept appends entry. The entry that completes the expected count triggers
// aggregation and the callback, exactly once. Returns ErrOverCount for entries
// arriving after that.
func (c *collector) accept(ctx context.Context, entry any) error {
	if c.finished {
		return ErrOverCount
	}

	c.buf = append(c.buf, entry)
	if len(c.buf) < c.expected {
		return nil
	}

	c.finished = true
	result, err := c.aggregator.Aggregate(ctx, c.buf)
	if err != nil {
		return fmt.Errorf("dispatch: aggregate %d results: %w", len(c.buf), err)
	}
	c.callback(result)
	return nil
}

func (c *collector) pending() int {
	return c.expected - len(c.buf)
}
