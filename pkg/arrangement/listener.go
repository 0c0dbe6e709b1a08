package arrangement

// SampleListener receives the arrangements produced by a Generator
type SampleListener interface {
	// Start is called exactly once, before any call to Next, with the number of arrangements the generator produces when it's not stopped
	Start(count int)
	// Next receives an arrangement and its 1-based sequence number. Returning true stops the generator, returning false lets it continue.
	// The indices slice is owned by the listener
	Next(indices []int, sequence int) bool
}

// ListenerFuncs adapts a pair of plain functions to the SampleListener interface. A nil OnStart is ignored and a nil OnNext never stops the generator
type ListenerFuncs struct {
	OnStart func(count int)
	OnNext  func(indices []int, sequence int) bool
}

func (listener ListenerFuncs) Start(count int) {
	if listener.OnStart != nil {
		listener.OnStart(count)
	}
}

func (listener ListenerFuncs) Next(indices []int, sequence int) bool {
	if listener.OnNext == nil {
		return false
	}
	return listener.OnNext(indices, sequence)
}
