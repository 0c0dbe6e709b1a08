package arrangement

// Indexer gives a unique index to an arrangement and vice versa
type Indexer interface {
	// Returns the 1-based sequence number under which the arrangement is generated, or 0 if the arrangement cannot be generated
	Index(indices []int) int
	// Returns the arrangement generated under a 1-based sequence number, or nil if index is not in [1, count]
	Indices(index int) []int
}

// NewSampleIndexer returns the Indexer of the arrangements produced by NewSamples(populationSize, sampleSize)
func NewSampleIndexer(populationSize, sampleSize int) (Indexer, error) {
	config, err := newSampleConfig(populationSize, sampleSize)
	if err != nil {
		return nil, err
	}
	return &sampleIndexer{config}, nil
}

// sampleIndexer treats an arrangement as a number in base populationSize whose first index is the most significant digit
type sampleIndexer struct {
	sampleConfig
}

func (indexer *sampleIndexer) Index(indices []int) int {
	if len(indices) != indexer.sampleSize {
		return 0
	}

	index := 0
	for _, digit := range indices {
		if digit < 0 || digit >= indexer.populationSize {
			return 0
		}
		index = index*indexer.populationSize + digit
	}
	return index + 1
}

func (indexer *sampleIndexer) Indices(index int) []int {
	if index < 1 || index > Power(indexer.populationSize, indexer.sampleSize) {
		return nil
	}

	index = index - 1
	indices := make([]int, indexer.sampleSize)
	for i := indexer.sampleSize - 1; i >= 0; i-- {
		indices[i] = index % indexer.populationSize
		index = index / indexer.populationSize
	}
	return indices
}
