package modifier

import (
	"math"
	"math/rand"
)

// splitIntRandom splits n into two non-negative parts summing to n,
// via randomized rounding around the fraction f: the leftover unit
// from floor/ceil rounding (when it exists) is awarded to the first
// part with probability f.
func splitIntRandom(n int, f float64, rng *rand.Rand) (int, int) {
	n1 := int(math.Floor(f * float64(n)))
	n2 := n - int(math.Ceil(f*float64(n)))

	if n1+n2 == n-1 {
		if rng.Float64() < f {
			n1++
		} else {
			n2++
		}
	}
	return n1, n2
}
