package dispatch

import "sync"

// slot stages the values one HandleWithResult observer publishes during a single
// invocation. The observer may call its sink from other goroutines while OnEvent
// is running, hence the mutex. Once closed, further publishes are reported as late.
type slot struct {
	mu      sync.Mutex
	entries []any
	closed  bool
	onLate  func(value any)
}

func (s *slot) publish(value any) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		if s.onLate != nil {
			s.onLate(value)
		}
		return
	}
	s.entries = append(s.entries, value)
	s.mu.Unlock()
}

// close stops accepting values and returns what was published.
func (s *slot) close() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return s.entries
}
