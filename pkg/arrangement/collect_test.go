package arrangement

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/samber/lo"
)

func TestCollectWithoutConstraints(t *testing.T) {
	g := NewWithT(t)

	generator, err := NewCombinations(4, 2)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(Collect(generator)).To(Equal([][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}))
}

func TestCollectWithConstraints(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	generator, err := NewSamples(4, 3)
	g.Expect(err).NotTo(HaveOccurred())
	sumsToThree := func(indices []int) bool { return lo.Sum(indices) == 3 }
	startsWithZero := func(indices []int) bool { return indices[0] == 0 }

	//** Act
	arrangements := Collect(generator, sumsToThree, startsWithZero)

	//** Assert
	g.Expect(arrangements).To(Equal([][]int{{0, 0, 3}, {0, 1, 2}, {0, 2, 1}, {0, 3, 0}}))
	g.Expect(arrangements).To(HaveEach(WithTransform(lo.Sum[int], Equal(3))))
}

func TestCollectN(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	generator, err := NewPermutations(5, 5)
	g.Expect(err).NotTo(HaveOccurred())
	startsWithFour := func(indices []int) bool { return indices[0] == 4 }

	//** Act
	firstThree := CollectN(generator, 3)
	constrained := CollectN(generator, 2, startsWithFour)
	unlimited := CollectN(generator, 0, startsWithFour)

	//** Assert
	g.Expect(firstThree).To(HaveLen(3))
	g.Expect(firstThree[0]).To(Equal([]int{0, 1, 2, 3, 4}))
	g.Expect(constrained).To(HaveLen(2))
	g.Expect(constrained).To(HaveEach(WithTransform(func(indices []int) int { return indices[0] }, Equal(4))))
	g.Expect(unlimited).To(HaveLen(24))
}

func TestCollectNothingMatches(t *testing.T) {
	g := NewWithT(t)

	generator, err := NewCombinations(5, 2)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(Collect(generator, func([]int) bool { return false })).To(BeEmpty())
}

func TestCollectNWithOverflowedCount(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	// 21! does not fit a 64-bit int, so the announced count wraps around
	generator, err := NewPermutations(21, 21)
	g.Expect(err).NotTo(HaveOccurred())

	//** Act
	arrangements := CollectN(generator, 5)

	//** Assert
	g.Expect(arrangements).To(HaveLen(5))
	g.Expect(arrangements[0]).To(Equal(lo.Range(21)))
}
