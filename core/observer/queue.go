package observer

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/dmitrymomot/notifier/core/dispatch"
)

var (
	// ErrDuplicateObserver is returned when an observer with the same name is already registered.
	ErrDuplicateObserver = errors.New("observer already registered")

	// ErrUnnamedObserver is returned when an observer has an empty name.
	ErrUnnamedObserver = errors.New("observer name must not be empty")
)

// Queue is an ordered registry of observers. Observers are notified in
// registration order. Registration may happen concurrently with dispatches:
// each dispatch iterates a snapshot taken when iteration starts.
type Queue struct {
	mu        sync.RWMutex
	observers []dispatch.Observer
}

// New creates a queue with the given observers. It panics on duplicate or
// unnamed observers; use Add for error handling.
func New(obs ...dispatch.Observer) *Queue {
	q := &Queue{}
	if err := q.Add(obs...); err != nil {
		panic(err)
	}
	return q
}

// Add appends observers to the end of the queue. Names must be unique because
// they identify observers in exception wrappers and logs. Nothing is added if
// any observer is rejected.
func (q *Queue) Add(obs ...dispatch.Observer) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	seen := make(map[string]struct{}, len(q.observers)+len(obs))
	for _, o := range q.observers {
		seen[o.Name()] = struct{}{}
	}

	for _, o := range obs {
		name := o.Name()
		if name == "" {
			return ErrUnnamedObserver
		}
		if _, exists := seen[name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateObserver, name)
		}
		seen[name] = struct{}{}
	}

	q.observers = append(q.observers, obs...)
	return nil
}

// Remove deletes the observer with the given name and reports whether it was present.
func (q *Queue) Remove(name string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := slices.IndexFunc(q.observers, func(o dispatch.Observer) bool { return o.Name() == name })
	if i < 0 {
		return false
	}
	q.observers = slices.Delete(q.observers, i, i+1)
	return true
}

// Len returns the number of registered observers.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.observers)
}

// Observers implements dispatch.Queue.
func (q *Queue) Observers() iter.Seq[dispatch.Observer] {
	q.mu.RLock()
	snapshot := slices.Clone(q.observers)
	q.mu.RUnlock()

	return slices.Values(snapshot)
}
