package event

import "errors"

var (
	// ErrInvalidArgument is returned when an event type is created with an empty name.
	ErrInvalidArgument = errors.New("invalid argument")
)
