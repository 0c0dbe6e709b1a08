package arrangement

// Generator enumerates every arrangement of SampleSize indices drawn from [0, PopulationSize).
// A generator is immutable; each call to Generate works on its own scratch state.
// Calling Generate from within one of its own listener callbacks is not supported.
type Generator interface {
	PopulationSize() int
	SampleSize() int
	// Returns the number of arrangements an unstopped call to Generate produces
	Count() int
	// Blocks until every arrangement has been delivered to the listener or the listener asks to stop
	Generate(listener SampleListener)
}

type sampleConfig struct {
	populationSize int
	sampleSize     int
}

func newSampleConfig(populationSize, sampleSize int) (sampleConfig, error) {
	if populationSize < 0 || sampleSize < 0 || sampleSize > populationSize {
		return sampleConfig{}, &InvalidArgumentError{PopulationSize: populationSize, SampleSize: sampleSize}
	}
	return sampleConfig{populationSize: populationSize, sampleSize: sampleSize}, nil
}

func (config sampleConfig) PopulationSize() int {
	return config.populationSize
}

func (config sampleConfig) SampleSize() int {
	return config.sampleSize
}
