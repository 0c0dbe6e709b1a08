package arrangement_test

import (
	"fmt"

	"github.com/limaJavier/arrangements/pkg/arrangement"
)

func ExampleNewPermutations() {
	generator, err := arrangement.NewPermutations(3, 2)
	if err != nil {
		panic(err)
	}

	generator.Generate(arrangement.ListenerFuncs{
		OnStart: func(count int) { fmt.Println("count:", count) },
		OnNext: func(indices []int, sequence int) bool {
			fmt.Println(sequence, indices)
			return false
		},
	})
	// Output:
	// count: 6
	// 1 [0 1]
	// 2 [0 2]
	// 3 [1 0]
	// 4 [1 2]
	// 5 [2 1]
	// 6 [2 0]
}

func ExampleNewCombinations() {
	generator, err := arrangement.NewCombinations(4, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(arrangement.Collect(generator))
	// Output:
	// [[0 1] [0 2] [0 3] [1 2] [1 3] [2 3]]
}

func ExampleNewSamples_stop() {
	generator, err := arrangement.NewSamples(3, 3)
	if err != nil {
		panic(err)
	}
	generator.Generate(arrangement.ListenerFuncs{
		OnNext: func(indices []int, sequence int) bool {
			fmt.Println(sequence, indices)
			return sequence == 3
		},
	})
	// Output:
	// 1 [0 0 0]
	// 2 [0 0 1]
	// 3 [0 0 2]
}

func ExampleNewPermutations_invalid() {
	_, err := arrangement.NewPermutations(2, 5)
	fmt.Println(err)
	// Output:
	// the sample-size of: 5 cannot be larger than a population-size of: 2
}
