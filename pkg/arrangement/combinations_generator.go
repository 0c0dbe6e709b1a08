package arrangement

type combinationsGenerator struct {
	sampleConfig
}

// NewCombinations returns a generator of the strictly increasing arrangements of sampleSize indices from [0, populationSize).
// Arrangements are produced in ascending lexicographic order.
func NewCombinations(populationSize, sampleSize int) (Generator, error) {
	config, err := newSampleConfig(populationSize, sampleSize)
	if err != nil {
		return nil, err
	}
	return &combinationsGenerator{config}, nil
}

func (generator *combinationsGenerator) Count() int {
	return Binomial(generator.populationSize, generator.sampleSize)
}

func (generator *combinationsGenerator) Generate(listener SampleListener) {
	// row[0] is a sentinel; row[1..sampleSize] hold 1-based indices
	e := newEnumeration(listener, make([]int, generator.sampleSize+1))

	listener.Start(generator.Count())
	if generator.sampleSize == 0 {
		e.emit(nil, 0)
		return
	}
	generator.combinations(e, 1)
}

func (generator *combinationsGenerator) combinations(e *enumeration, depth int) enumerationState {
	// Largest value row[depth] may take while leaving room for the deeper positions
	bound := generator.populationSize - generator.sampleSize + depth

	e.row[depth] = e.row[depth-1]
	for e.row[depth] < bound {
		e.row[depth]++

		var state enumerationState
		if depth < generator.sampleSize {
			state = generator.combinations(e, depth+1)
		} else {
			state = e.emit(e.row[1:], -1)
		}

		if state == stopRequested {
			return stopRequested
		}
	}
	return continueEnumeration
}
