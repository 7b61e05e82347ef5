package event

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Event is an immutable notification that something of a given Type occurred.
// Observers receive the event by value; the payload is opaque to the dispatcher.
type Event struct {
	id        string
	eventType Type
	payload   any
	createdAt time.Time
}

// Option configures an Event at construction time.
type Option func(*Event)

// WithID overrides the auto-generated event ID.
func WithID(id string) Option {
	return func(e *Event) {
		if id != "" {
			e.id = id
		}
	}
}

// WithTime overrides the creation timestamp.
func WithTime(t time.Time) Option {
	return func(e *Event) {
		if !t.IsZero() {
			e.createdAt = t
		}
	}
}

// New creates an Event of the given type carrying payload.
// The event is assigned a UUID and the current time unless overridden by options.
//
// Example:
//
//	evt := event.New(userLogin, LoginPayload{UserID: "42"})
func New(t Type, payload any, opts ...Option) Event {
	e := Event{
		id:        uuid.New().String(),
		eventType: t,
		payload:   payload,
		createdAt: time.Now(),
	}

	for _, opt := range opts {
		opt(&e)
	}

	return e
}

// ID returns the unique identifier of this event instance.
func (e Event) ID() string {
	return e.id
}

// Type returns the event type.
func (e Event) Type() Type {
	return e.eventType
}

// Payload returns the opaque payload the event was created with.
func (e Event) Payload() any {
	return e.payload
}

// CreatedAt returns when the event was created.
func (e Event) CreatedAt() time.Time {
	return e.createdAt
}

// Equal reports whether e and other carry the same type and payload.
// ID and creation time are instance metadata and are not compared.
func (e Event) Equal(other Event) bool {
	return e.eventType == other.eventType && reflect.DeepEqual(e.payload, other.payload)
}

// Is reports whether e is of type t.
func Is(e Event, t Type) bool {
	return e.eventType == t
}
