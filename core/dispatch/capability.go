package dispatch

// Capability describes how an observer handles a particular event.
type Capability uint8

const (
	// Skip means the observer is not interested in the event and is not invoked.
	Skip Capability = iota

	// HandleVoid means the observer is invoked without a result sink.
	HandleVoid

	// HandleWithResult means the observer is invoked with a result sink and must
	// publish exactly one value through it.
	HandleWithResult
)

// String implements fmt.Stringer.
func (c Capability) String() string {
	switch c {
	case Skip:
		return "skip"
	case HandleVoid:
		return "void"
	case HandleWithResult:
		return "with_result"
	default:
		return "unknown"
	}
}

func (c Capability) valid() bool {
	return c <= HandleWithResult
}
