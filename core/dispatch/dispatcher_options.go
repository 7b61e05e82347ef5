package dispatch

import "log/slog"

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithAggregator sets the factory for the aggregator shared by all dispatches.
// The factory is invoked once, in New. Default: CollectAggregator.
//
// Example:
//
//	d := dispatch.New(dispatch.WithAggregator(func() dispatch.Aggregator {
//	    return dispatch.AggregatorFunc(sumResults)
//	}))
func WithAggregator(factory AggregatorFactory) Option {
	return func(d *Dispatcher) {
		if factory != nil {
			d.aggregatorFactory = factory
		}
	}
}

// WithExceptionHandler sets the policy applied to observer errors.
// Default: NewExceptionHandler with the dispatcher's logger.
func WithExceptionHandler(h ExceptionHandler) Option {
	return func(d *Dispatcher) {
		if h != nil {
			d.exceptionHandler = h
		}
	}
}

// WithLogger configures structured logging for dispatch operations.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}
