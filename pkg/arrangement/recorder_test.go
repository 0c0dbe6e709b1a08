package arrangement

// recorder is a SampleListener that keeps every call it receives and stops at stopAt (when stopAt > 0)
type recorder struct {
	starts       int
	count        int
	startedLate  bool
	arrangements [][]int
	sequences    []int
	stopAt       int
}

func (r *recorder) Start(count int) {
	r.starts++
	r.count = count
}

func (r *recorder) Next(indices []int, sequence int) bool {
	if r.starts == 0 {
		r.startedLate = true
	}
	r.arrangements = append(r.arrangements, indices)
	r.sequences = append(r.sequences, sequence)
	return r.stopAt > 0 && sequence >= r.stopAt
}

func record(generator Generator, stopAt int) *recorder {
	r := &recorder{stopAt: stopAt}
	generator.Generate(r)
	return r
}
