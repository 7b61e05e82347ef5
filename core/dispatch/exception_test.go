package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifier/core/dispatch"
	"github.com/dmitrymomot/notifier/core/event"
)

func TestDispositionOf(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain")

	tests := []struct {
		name string
		err  error
		want dispatch.Disposition
	}{
		{"nil", nil, dispatch.Swallow},
		{"plain error", plain, dispatch.Swallow},
		{"pass-through", dispatch.PassThrough(plain), dispatch.Propagate},
		{"wrapped pass-through", fmt.Errorf("ctx: %w", dispatch.PassThrough(plain)), dispatch.Propagate},
		{"explicit swallow", dispatch.WithDisposition(plain, dispatch.Swallow), dispatch.Swallow},
		{"outer tag wins", dispatch.WithDisposition(dispatch.PassThrough(plain), dispatch.Swallow), dispatch.Swallow},
		{"pass-through error type", &dispatch.PassThroughError{Err: plain}, dispatch.Propagate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, dispatch.DispositionOf(tt.err))
		})
	}

	assert.Nil(t, dispatch.PassThrough(nil))
	assert.Equal(t, "propagate", dispatch.Propagate.String())
	assert.Equal(t, "swallow", dispatch.Swallow.String())
}

func TestDefaultExceptionHandler(t *testing.T) {
	t.Parallel()

	evt := event.New(userLogin, nil)

	t.Run("logs and swallows ordinary errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		h := dispatch.NewExceptionHandler(slog.New(slog.NewJSONHandler(&buf, nil)))

		err := h.Handle(context.Background(), dispatch.Failure{
			Event:      evt,
			Observer:   "mailer",
			Capability: dispatch.HandleWithResult,
			Err:        errors.New("smtp down"),
		})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"observer":"mailer"`)
		assert.Contains(t, buf.String(), `"capability":"with_result"`)
		assert.Contains(t, buf.String(), `"event":"USER_LOGIN"`)
	})

	t.Run("wraps pass-through errors", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("fatal")
		h := dispatch.NewExceptionHandler(nil)

		err := h.Handle(context.Background(), dispatch.Failure{Event: evt, Observer: "db", Err: dispatch.PassThrough(cause)})

		var pt *dispatch.PassThroughError
		require.ErrorAs(t, err, &pt)
		assert.Equal(t, "db", pt.Observer)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("keeps existing pass-through error", func(t *testing.T) {
		t.Parallel()

		existing := &dispatch.PassThroughError{Observer: "inner", Event: evt, Err: errors.New("x")}
		h := dispatch.NewExceptionHandler(nil)

		err := h.Handle(context.Background(), dispatch.Failure{Event: evt, Observer: "outer", Err: existing})
		assert.Same(t, existing, err)
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		h := dispatch.NewExceptionHandler(nil)
		var wg sync.WaitGroup
		for i := range 64 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var err error = errors.New("ordinary")
				if i%2 == 0 {
					err = dispatch.PassThrough(err)
				}
				res := h.Handle(context.Background(), dispatch.Failure{Event: evt, Observer: "o", Err: err})
				if i%2 == 0 {
					assert.Error(t, res)
				} else {
					assert.NoError(t, res)
				}
			}()
		}
		wg.Wait()
	})
}

func TestExceptionWrapper(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	rec := &calls{}
	var captured []any
	d := dispatch.New(dispatch.WithAggregator(func() dispatch.Aggregator {
		return dispatch.AggregatorFunc(func(_ context.Context, r []any) (any, error) {
			captured = r
			return nil, nil
		})
	}))

	_, err := d.Dispatch(context.Background(), event.New(userLogin, nil), dispatch.Observers(failingObserver("C", cause, rec)))
	require.NoError(t, err)
	require.Len(t, captured, 1)

	var w *dispatch.ExceptionWrapper
	require.ErrorAs(t, captured[0].(error), &w)
	assert.Equal(t, "Failed to notify C", w.Message)
	assert.Equal(t, "C", w.Observer)
	assert.Same(t, cause, w.Cause)
	assert.ErrorIs(t, w, cause)
}
