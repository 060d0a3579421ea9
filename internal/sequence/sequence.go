// Package sequence implements the mutable, editable sequence container
// that SequenceModification values are applied against: a thin slice
// of alphabet character indices supporting length-changing splice and
// delete operations.
package sequence

import "github.com/sebschmi/template-switch-generator/internal/alphabet"

// Sequence is a mutable sequence of alphabet character indices.
type Sequence struct {
	indices  []int
	alphabet alphabet.Alphabet
}

// FromIndices wraps an existing slice of character indices.
func FromIndices(indices []int, alph alphabet.Alphabet) *Sequence {
	return &Sequence{indices: indices, alphabet: alph}
}

// FromChars builds a Sequence from raw characters, looking each one up
// in alph. The caller is responsible for having already filtered or
// rejected unknown characters.
func FromChars(chars []byte, alph alphabet.Alphabet) *Sequence {
	indices := make([]int, len(chars))
	for i, c := range chars {
		indices[i] = alph.Index(c)
	}
	return &Sequence{indices: indices, alphabet: alph}
}

// Alphabet returns the sequence's alphabet.
func (s *Sequence) Alphabet() alphabet.Alphabet { return s.alphabet }

// Len returns the current length.
func (s *Sequence) Len() int { return len(s.indices) }

// Get returns the character index at position.
func (s *Sequence) Get(position int) int { return s.indices[position] }

// Set replaces the character index at position.
func (s *Sequence) Set(position, index int) { s.indices[position] = index }

// Indices returns the underlying index slice. Callers must not retain
// it across a mutating call.
func (s *Sequence) Indices() []int { return s.indices }

// Splice replaces [start, end) with replacement, which may be a
// different length than end-start, growing or shrinking the sequence.
func (s *Sequence) Splice(start, end int, replacement []int) {
	tail := append([]int{}, s.indices[end:]...)
	s.indices = append(s.indices[:start:start], replacement...)
	s.indices = append(s.indices, tail...)
}

// Delete removes [start, end) from the sequence.
func (s *Sequence) Delete(start, end int) {
	s.Splice(start, end, nil)
}

// ReverseComplementIndices returns the reverse-complement, as alphabet
// indices, of the characters read starting at "from" and going
// backwards for "length" characters: the reverse-complement of
// [from-length+1, from+1) read forward.
func (s *Sequence) ReverseComplementIndices(from, length int) []int {
	out := make([]int, length)
	for i := 0; i < length; i++ {
		out[i] = s.alphabet.ReverseComplementIndex(s.indices[from-i])
	}
	return out
}

// Bytes renders the sequence back to its character representation.
func (s *Sequence) Bytes() []byte {
	out := make([]byte, len(s.indices))
	for i, idx := range s.indices {
		out[i] = s.alphabet.FromIndex(idx)
	}
	return out
}

// Clone returns an independent copy of the sequence.
func (s *Sequence) Clone() *Sequence {
	indices := append([]int{}, s.indices...)
	return &Sequence{indices: indices, alphabet: s.alphabet}
}
