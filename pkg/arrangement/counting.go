package arrangement

import "github.com/samber/lo"

// Counts are computed with native ints; values beyond math.MaxInt silently overflow.

// Factorial returns n!, which is 1 for n <= 1
func Factorial(n int) int {
	return FallingFactorial(n, n)
}

// FallingFactorial returns n * (n-1) * ... * (n-k+1), the number of permutations of k elements out of n
func FallingFactorial(n, k int) int {
	if k <= 0 {
		return 1
	}
	return lo.Reduce(lo.RangeFrom(n-k+1, k), func(product, factor int, _ int) int {
		return product * factor
	}, 1)
}

// Binomial returns n! / (k! * (n-k)!), or 0 when k is not in [0, n]
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)

	// After step i the result is C(n-k+i, i), so each division is exact
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// Power returns base^exponent for a non-negative exponent, with 0^0 = 1
func Power(base, exponent int) int {
	result := 1
	for range exponent {
		result *= base
	}
	return result
}
