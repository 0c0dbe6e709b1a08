package arrangement

import "github.com/samber/lo"

// Constraint reports whether an arrangement should be kept
type Constraint func(indices []int) bool

// Collect runs the generator to exhaustion and returns every arrangement that holds all the constraints, in generation order.
//
// Example:
//
//	generator, _ := arrangement.NewSamples(3, 2)
//	// Keeps [0 1], [1 2] ...
//	pairs := arrangement.Collect(generator, func(indices []int) bool {
//		return indices[1] == indices[0]+1
//	})
func Collect(generator Generator, constraints ...Constraint) [][]int {
	return CollectN(generator, 0, constraints...)
}

// CollectN behaves like Collect but stops the generator once limit arrangements have been kept. A limit <= 0 means no limit
func CollectN(generator Generator, limit int, constraints ...Constraint) [][]int {
	var arrangements [][]int
	generator.Generate(ListenerFuncs{
		OnStart: func(count int) {
			if limit > 0 {
				count = min(count, limit)
			}
			// An overflowed count is negative
			if len(constraints) == 0 && count > 0 {
				arrangements = make([][]int, 0, count)
			}
		},
		OnNext: func(indices []int, _ int) bool {
			holds := lo.EveryBy(constraints, func(constraint Constraint) bool {
				return constraint(indices)
			})
			if holds {
				arrangements = append(arrangements, indices)
			}
			return limit > 0 && len(arrangements) >= limit
		},
	})
	return arrangements
}
