package ngrammodel

import (
	"math/rand"
	"sort"
)

// weightedIndex draws an index in [0, len(weights)) with probability
// proportional to weights[i], via a cumulative-sum array and a binary
// search over a single uniform draw. Adapted from the cumulative-sum
// + sort.Search "Rank" technique for weighted selection over a
// discrete distribution.
type weightedIndex struct {
	cumulative []uint64
	total      uint64
}

func newWeightedIndex(weights []uint64) *weightedIndex {
	cumulative := make([]uint64, len(weights))
	var running uint64
	for i, w := range weights {
		running += w
		cumulative[i] = running
	}
	return &weightedIndex{cumulative: cumulative, total: running}
}

// draw returns an index into the original weights slice. total must be
// > 0.
func (w *weightedIndex) draw(rng *rand.Rand) int {
	target := uint64(rng.Int63n(int64(w.total))) + 1
	return sort.Search(len(w.cumulative), func(i int) bool {
		return w.cumulative[i] >= target
	})
}
