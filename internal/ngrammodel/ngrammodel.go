// Package ngrammodel implements the n-gram Markov model: a count table
// keyed by bit-packed fixed-length context, trained by sliding a
// window across input sequences and sampled by a lazy seed-then-walk
// random walk.
package ngrammodel

import (
	"math/rand"

	"github.com/sebschmi/template-switch-generator/internal/alphabet"
	"github.com/sebschmi/template-switch-generator/internal/kmer"
	"github.com/sebschmi/template-switch-generator/internal/tserr"
)

// maxCount is the bounded 32-bit accumulator ceiling; incrementing a
// count past this is a fatal error rather than a silent wraparound.
const maxCount = ^uint32(0)

// Model is an ordered mapping from an N-length context to a per-
// character successor count array, along with the alphabet and N it
// was trained for.
type Model struct {
	n        int
	alphabet alphabet.Alphabet
	counts   map[uint64][]uint32
}

// New returns an empty model for the given context length and
// alphabet, ready for training.
func New(n int, alph alphabet.Alphabet) (*Model, error) {
	if _, err := kmer.New(n, alph.Size()); err != nil {
		return nil, err
	}
	return &Model{n: n, alphabet: alph, counts: make(map[uint64][]uint32)}, nil
}

// N returns the context length this model was trained for.
func (m *Model) N() int { return m.n }

// Alphabet returns the alphabet this model was trained for.
func (m *Model) Alphabet() alphabet.Alphabet { return m.alphabet }

// Train folds one input sequence (alphabet character indices) into the
// model's count table. For each offset i in [0, len(sequence)-N-1) the
// context sequence[i:i+N] is formed and the successor-th entry of its
// count row is incremented.
//
// The loop bound deliberately excludes the final valid window at
// offset len(sequence)-N-1 (it iterates only while i+N+1 <= len(sequence)-1,
// i.e. up to len(sequence)-N-2 inclusive for N>0); this mirrors the
// trained system's observed behavior and is preserved rather than
// corrected.
func (m *Model) Train(sequence []int) error {
	l := len(sequence)
	bound := l - m.n - 1
	for i := 0; i < bound; i++ {
		k, err := kmer.FromIndices(sequence[i:i+m.n], m.alphabet.Size())
		if err != nil {
			return err
		}
		successor := sequence[i+m.n]
		row, ok := m.counts[k.Bits()]
		if !ok {
			row = make([]uint32, m.alphabet.Size())
			m.counts[k.Bits()] = row
		}
		if row[successor] == maxCount {
			return &tserr.SerializationError{Op: "train", Err: errCountOverflow}
		}
		row[successor]++
	}
	return nil
}

// FromSequences is a convenience constructor that trains a fresh model
// from a batch of sequences in one call.
func FromSequences(n int, alph alphabet.Alphabet, sequences [][]int) (*Model, error) {
	m, err := New(n, alph)
	if err != nil {
		return nil, err
	}
	for _, s := range sequences {
		if err := m.Train(s); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ContextCount returns the number of distinct contexts stored, for
// tests and diagnostics.
func (m *Model) ContextCount() int { return len(m.counts) }

// Row returns the stored count row for a context, and whether it is
// present.
func (m *Model) Row(k kmer.Kmer) ([]uint32, bool) {
	row, ok := m.counts[k.Bits()]
	return row, ok
}

// sortedContextKeys returns the model's context keys in ascending
// order, which is also lexicographic order on k-mers.
func (m *Model) sortedContextKeys() []uint64 {
	keys := make([]uint64, 0, len(m.counts))
	for k := range m.counts {
		keys = append(keys, k)
	}
	sortUint64s(keys)
	return keys
}

// GenerateSequence produces exactly length characters (as alphabet
// indices) by the seed-then-walk algorithm: seed a context drawn from
// the context distribution, emit it, then walk successor draws until
// the current context falls out of the model, at which point reseed.
func (m *Model) GenerateSequence(length int, rng *rand.Rand) ([]int, error) {
	if length < m.n {
		return nil, &tserr.AncestorTooShort{Length: length, N: m.n}
	}
	if len(m.counts) == 0 {
		return nil, &tserr.EmptyModel{}
	}

	keys := m.sortedContextKeys()
	weights := make([]uint64, len(keys))
	for i, k := range keys {
		var sum uint64
		for _, c := range m.counts[k] {
			sum += uint64(c)
		}
		weights[i] = sum
	}
	ctxDist := newWeightedIndex(weights)

	output := make([]int, 0, length)
	var current kmer.Kmer
	hasCurrent := false

	for len(output) < length {
		if !hasCurrent {
			seed := keys[ctxDist.draw(rng)]
			current = kmer.FromBits(seed, m.n, m.alphabet.Size())
			hasCurrent = true
			for i := 0; i < m.n && len(output) < length; i++ {
				output = append(output, current.Index(i))
			}
			continue
		}

		row, ok := m.counts[current.Bits()]
		if !ok {
			hasCurrent = false
			continue
		}
		rowWeights := make([]uint64, len(row))
		for i, c := range row {
			rowWeights[i] = uint64(c)
		}
		successor := newWeightedIndex(rowWeights).draw(rng)
		output = append(output, successor)
		current = current.Successor(successor)
	}

	return output, nil
}
