package arrangement

type samplesGenerator struct {
	sampleConfig
}

// NewSamples returns a generator of the ordered arrangements of sampleSize indices from [0, populationSize) where indices may repeat.
// Arrangements are produced in odometer order with the first index as the most significant digit.
func NewSamples(populationSize, sampleSize int) (Generator, error) {
	config, err := newSampleConfig(populationSize, sampleSize)
	if err != nil {
		return nil, err
	}
	return &samplesGenerator{config}, nil
}

func (generator *samplesGenerator) Count() int {
	return Power(generator.populationSize, generator.sampleSize)
}

func (generator *samplesGenerator) Generate(listener SampleListener) {
	// Holds 1-based digits
	e := newEnumeration(listener, make([]int, generator.sampleSize))

	listener.Start(generator.Count())
	if generator.sampleSize == 0 {
		e.emit(nil, 0)
		return
	}
	generator.samples(e, 0)
}

func (generator *samplesGenerator) samples(e *enumeration, depth int) enumerationState {
	e.row[depth] = 0
	for e.row[depth] < generator.populationSize {
		e.row[depth]++

		var state enumerationState
		if depth < generator.sampleSize-1 {
			state = generator.samples(e, depth+1)
		} else {
			state = e.emit(e.row, -1)
		}

		if state == stopRequested {
			return stopRequested
		}
	}
	return continueEnumeration
}
