// Package kmer implements a bit-packed, fixed-length, totally ordered
// k-mer context backed by a single uint64. One runtime-sized
// representation is used for every supported N and alphabet size,
// rather than dispatching to a family of differently-sized integer
// types at compile time: for N up to 9 and any alphabet this repo
// supports, N*bitsPerSymbol never exceeds 64 bits.
package kmer

import (
	"math/bits"

	"github.com/sebschmi/template-switch-generator/internal/tserr"
)

// MaxN is the largest supported context length.
const MaxN = 9

// BitsPerSymbol returns floor(log2(alphabetSize+1)), the number of bits
// needed to pack one character of an alphabet of the given size. This
// matches the original implementation's ilog2 (floor), not a ceiling.
func BitsPerSymbol(alphabetSize int) int {
	return bits.Len(uint(alphabetSize+1)) - 1
}

// Kmer is an ordered tuple of N alphabet-character indices packed into
// a uint64, most-significant character first. Two Kmers with the same
// N and alphabet size compare correctly with plain uint64 ordering,
// which is also their required lexicographic ordering.
type Kmer struct {
	bits          uint64
	n             int
	bitsPerSymbol int
}

// New returns the all-zero (first lexicographic) k-mer for the given N
// and alphabet size. It fails if N is out of [0, MaxN] or the packed
// width would exceed 64 bits.
func New(n, alphabetSize int) (Kmer, error) {
	if n < 0 || n > MaxN {
		return Kmer{}, &tserr.UnsupportedN{N: n}
	}
	bps := BitsPerSymbol(alphabetSize)
	if n*bps > 64 {
		return Kmer{}, &tserr.UnsupportedN{N: n}
	}
	return Kmer{bits: 0, n: n, bitsPerSymbol: bps}, nil
}

// FromIndices packs an explicit sequence of character indices (length
// must equal n) into a k-mer.
func FromIndices(indices []int, alphabetSize int) (Kmer, error) {
	k, err := New(len(indices), alphabetSize)
	if err != nil {
		return Kmer{}, err
	}
	var packed uint64
	for _, idx := range indices {
		packed = (packed << uint(k.bitsPerSymbol)) | uint64(idx)
	}
	k.bits = packed
	return k, nil
}

// N returns the context length.
func (k Kmer) N() int { return k.n }

// Bits returns the raw packed representation, used for model storage
// and as a map key. Its natural uint64 ordering is the k-mer's
// lexicographic ordering.
func (k Kmer) Bits() uint64 { return k.bits }

// Index returns the alphabet index of the i-th character (0 = first,
// most significant).
func (k Kmer) Index(i int) int {
	shift := uint((k.n - 1 - i) * k.bitsPerSymbol)
	mask := uint64(1)<<uint(k.bitsPerSymbol) - 1
	return int((k.bits >> shift) & mask)
}

// Successor returns the k-mer obtained by dropping the first character
// and appending character index c.
func (k Kmer) Successor(c int) Kmer {
	if k.n == 0 {
		return k
	}
	mask := uint64(1)<<uint(k.n*k.bitsPerSymbol) - 1
	next := ((k.bits << uint(k.bitsPerSymbol)) | uint64(c)) & mask
	return Kmer{bits: next, n: k.n, bitsPerSymbol: k.bitsPerSymbol}
}

// FromBits reconstructs a Kmer from its raw packed form, as read back
// from a persisted model.
func FromBits(raw uint64, n, alphabetSize int) Kmer {
	return Kmer{bits: raw, n: n, bitsPerSymbol: BitsPerSymbol(alphabetSize)}
}
