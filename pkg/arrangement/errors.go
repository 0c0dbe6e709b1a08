package arrangement

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched (through errors.Is) by every construction error
	ErrInvalidArgument = errors.New("arrangement: invalid argument")
	// ErrUnknownKind is returned when a kind name cannot be parsed
	ErrUnknownKind = errors.New("arrangement: unknown kind")
)

// InvalidArgumentError carries the population and sample sizes a generator was rejected with
type InvalidArgumentError struct {
	PopulationSize int
	SampleSize     int
}

func (err *InvalidArgumentError) Error() string {
	if err.PopulationSize < 0 || err.SampleSize < 0 {
		return fmt.Sprintf("the population-size of: %v and the sample-size of: %v cannot be negative", err.PopulationSize, err.SampleSize)
	}
	return fmt.Sprintf("the sample-size of: %v cannot be larger than a population-size of: %v", err.SampleSize, err.PopulationSize)
}

func (err *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
