package event

import (
	"context"
	"time"
)

type eventIDCtx struct{}

// WithEventID attaches an event ID to the context.
func WithEventID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, eventIDCtx{}, id)
}

// IDFrom extracts the event ID from the context.
// Returns empty string if not present.
func IDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(eventIDCtx{}).(string); ok {
		return id
	}
	return ""
}

type eventTypeCtx struct{}

// WithEventType attaches an event type name to the context.
func WithEventType(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, eventTypeCtx{}, name)
}

// TypeFrom extracts the event type name from the context.
// Returns empty string if not present.
func TypeFrom(ctx context.Context) string {
	if name, ok := ctx.Value(eventTypeCtx{}).(string); ok {
		return name
	}
	return ""
}

type eventTimeCtx struct{}

// WithEventTime attaches the event creation time to the context.
func WithEventTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, eventTimeCtx{}, t)
}

// TimeFrom extracts the event creation time from the context.
// Returns zero time if not present.
func TimeFrom(ctx context.Context) time.Time {
	if t, ok := ctx.Value(eventTimeCtx{}).(time.Time); ok {
		return t
	}
	return time.Time{}
}

// WithMeta attaches all event metadata (ID, type name, creation time) to the context.
func WithMeta(ctx context.Context, e Event) context.Context {
	ctx = WithEventID(ctx, e.ID())
	ctx = WithEventType(ctx, e.Type().Name())
	ctx = WithEventTime(ctx, e.CreatedAt())
	return ctx
}
