package modifier

import (
	"math/rand"
	"testing"
)

func TestSplitIntRandomSumsToN(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fractions := []float64{0, 0.1, 0.3, 0.5, 0.7, 1.0}
	for _, f := range fractions {
		for n := 0; n < 20; n++ {
			n1, n2 := splitIntRandom(n, f, rng)
			if n1+n2 != n {
				t.Fatalf("splitIntRandom(%d, %v) = (%d, %d), sum %d != %d", n, f, n1, n2, n1+n2, n)
			}
		}
	}
}

func TestSplitIntRandomConvergesToMean(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n = 10
	const f = 0.3
	const trials = 20000

	var sum int
	for i := 0; i < trials; i++ {
		n1, _ := splitIntRandom(n, f, rng)
		sum += n1
	}
	mean := float64(sum) / float64(trials)
	if mean < 2.9 || mean > 3.1 {
		t.Fatalf("mean of first part = %v, want close to 3.0", mean)
	}
}
