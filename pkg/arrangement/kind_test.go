package arrangement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	scenarios := map[string]Kind{
		"permutations":   Permutations,
		"Combinations":   Combinations,
		" SAMPLES ":      Samples,
		Samples.String(): Samples,
	}

	for name, expected := range scenarios {
		kind, err := ParseKind(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, kind)
	}

	_, err := ParseKind("variations")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []Kind{Permutations, Combinations, Samples}, Kinds())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestNewGenerator(t *testing.T) {
	//** Act
	permutations, err := NewGenerator(Permutations, 5, 3)
	require.NoError(t, err)
	combinations, err := NewGenerator(Combinations, 5, 3)
	require.NoError(t, err)
	samples, err := NewGenerator(Samples, 5, 3)
	require.NoError(t, err)
	_, err = NewGenerator(Kind(7), 5, 3)

	//** Assert
	assert.Equal(t, 60, permutations.Count())
	assert.Equal(t, 10, combinations.Count())
	assert.Equal(t, 125, samples.Count())
	assert.ErrorIs(t, err, ErrUnknownKind)
}
