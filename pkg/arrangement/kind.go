package arrangement

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Kind selects one of the enumeration algorithms
type Kind int

const (
	Permutations Kind = iota
	Combinations
	Samples
)

var (
	kindNames = map[Kind]string{
		Permutations: "permutations",
		Combinations: "combinations",
		Samples:      "samples",
	}
	kindsByName  = lo.Invert(kindNames)
	constructors = map[Kind]func(populationSize, sampleSize int) (Generator, error){
		Permutations: NewPermutations,
		Combinations: NewCombinations,
		Samples:      NewSamples,
	}
)

// Kinds returns every kind in declaration order
func Kinds() []Kind {
	kinds := lo.Keys(kindNames)
	slices.Sort(kinds)
	return kinds
}

func (kind Kind) String() string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}

// ParseKind is case-insensitive and accepts the names returned by Kind.String
func ParseKind(name string) (Kind, error) {
	kind, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// NewGenerator builds the generator of the given kind
func NewGenerator(kind Kind, populationSize, sampleSize int) (Generator, error) {
	constructor, ok := constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	return constructor(populationSize, sampleSize)
}
