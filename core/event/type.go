package event

import (
	"fmt"
	"strings"
)

// Type identifies what occurred. Two types are equal when their names are equal,
// so Type can be compared with == and used as a map key.
type Type struct {
	name string
}

// NewType creates an event type with the given name.
// Returns ErrInvalidArgument if the name is empty or consists only of whitespace.
//
// Example:
//
//	userLogin, err := event.NewType("USER_LOGIN")
//	if err != nil {
//	    return err
//	}
func NewType(name string) (Type, error) {
	if strings.TrimSpace(name) == "" {
		return Type{}, fmt.Errorf("%w: event type name must not be empty (got %q)", ErrInvalidArgument, name)
	}
	return Type{name: name}, nil
}

// MustType is like NewType but panics on an invalid name.
// Intended for package-level declarations and startup code.
func MustType(name string) Type {
	t, err := NewType(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the event type name.
func (t Type) Name() string {
	return t.name
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return t.name
}

// IsZero reports whether t is the zero Type, which no valid event carries.
func (t Type) IsZero() bool {
	return t.name == ""
}
