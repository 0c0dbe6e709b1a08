package arrangement

type permutationsGenerator struct {
	sampleConfig
}

// NewPermutations returns a generator of the ordered arrangements of sampleSize distinct indices from [0, populationSize).
// Arrangements are produced depth-first in swap order, e.g. for populationSize 3 and sampleSize 2:
//
//	[0 1] [0 2] [1 0] [1 2] [2 1] [2 0]
func NewPermutations(populationSize, sampleSize int) (Generator, error) {
	config, err := newSampleConfig(populationSize, sampleSize)
	if err != nil {
		return nil, err
	}
	return &permutationsGenerator{config}, nil
}

func (generator *permutationsGenerator) Count() int {
	return FallingFactorial(generator.populationSize, generator.sampleSize)
}

func (generator *permutationsGenerator) Generate(listener SampleListener) {
	row := make([]int, generator.populationSize)
	for i := range row {
		row[i] = i
	}
	e := newEnumeration(listener, row)

	listener.Start(generator.Count())
	if generator.sampleSize == 0 {
		e.emit(nil, 0)
		return
	}
	generator.permutations(e, 0)
}

func (generator *permutationsGenerator) permutations(e *enumeration, depth int) enumerationState {
	for j := depth; j < generator.populationSize; j++ {
		e.row[depth], e.row[j] = e.row[j], e.row[depth]

		var state enumerationState
		if depth < generator.sampleSize-1 {
			state = generator.permutations(e, depth+1)
		} else {
			state = e.emit(e.row[:generator.sampleSize], 0)
		}

		// The swap is undone before honouring a stop so the row is left as it was found
		e.row[depth], e.row[j] = e.row[j], e.row[depth]
		if state == stopRequested {
			return stopRequested
		}
	}
	return continueEnumeration
}
