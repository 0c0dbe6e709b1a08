package arrangement

type enumerationState int

const (
	continueEnumeration enumerationState = iota
	stopRequested
)

// enumeration holds the mutable state of a single Generate call
type enumeration struct {
	listener SampleListener
	row      []int
	sequence int
}

func newEnumeration(listener SampleListener, row []int) *enumeration {
	return &enumeration{listener: listener, row: row}
}

// emit hands a copy of values (each shifted by offset) to the listener
func (e *enumeration) emit(values []int, offset int) enumerationState {
	indices := make([]int, len(values))
	for i, value := range values {
		indices[i] = value + offset
	}

	e.sequence++
	if e.listener.Next(indices, e.sequence) {
		return stopRequested
	}
	return continueEnumeration
}
