// Package alphabet defines the fixed, finite character sets that
// sequences and n-gram contexts are drawn from.
package alphabet

import "github.com/sebschmi/template-switch-generator/internal/tserr"

// Alphabet is a fixed, finite, totally ordered character set. Indices
// run over [0, Size()).
type Alphabet interface {
	// Identifier is the textual name stored in the model container
	// (e.g. "dna").
	Identifier() string
	// Size returns the number of characters in the alphabet.
	Size() int
	// Index returns the index of c, or -1 if c is not a member.
	Index(c byte) int
	// FromIndex returns the character at i. i must be in [0, Size()).
	FromIndex(i int) byte
	// ReverseComplementIndex returns the index of the
	// reverse-complement of the character at index i.
	ReverseComplementIndex(i int) int
}

// ByIdentifier resolves an alphabet identifier to its Alphabet, as used
// when decoding a model container or parsing a --alphabet flag.
func ByIdentifier(identifier string) (Alphabet, error) {
	switch identifier {
	case DNA.Identifier():
		return DNA, nil
	default:
		return nil, &tserr.UnsupportedAlphabet{Identifier: identifier}
	}
}

type dnaAlphabet struct{}

// DNA is the sole shipped alphabet instance: A, C, G, T, size 4.
var DNA Alphabet = dnaAlphabet{}

const dnaChars = "ACGT"

func (dnaAlphabet) Identifier() string { return "dna" }

func (dnaAlphabet) Size() int { return len(dnaChars) }

func (dnaAlphabet) Index(c byte) int {
	switch c {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

func (dnaAlphabet) FromIndex(i int) byte {
	return dnaChars[i]
}

// reverse complement: A<->T, C<->G, i.e. index i maps to 3-i.
func (dnaAlphabet) ReverseComplementIndex(i int) int {
	return 3 - i
}
