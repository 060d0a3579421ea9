package ngrammodel

import (
	"encoding/gob"
	"io"

	"github.com/sebschmi/template-switch-generator/internal/alphabet"
	"github.com/sebschmi/template-switch-generator/internal/kmer"
	"github.com/sebschmi/template-switch-generator/internal/tserr"
)

// entry is one (context, count row) pair as persisted, in the model's
// sorted context order.
type entry struct {
	Context uint64
	Counts  []uint32
}

// Encode writes the model as three consecutive gob values: N, the
// alphabet identifier, and the count table in sorted context order.
// This mirrors a self-describing sequential-value container, the same
// shape a Decode call validates before trusting the bulk payload.
func (m *Model) Encode(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(m.n); err != nil {
		return &tserr.SerializationError{Op: "encode N", Err: err}
	}
	if err := enc.Encode(m.alphabet.Identifier()); err != nil {
		return &tserr.SerializationError{Op: "encode alphabet", Err: err}
	}
	entries := make([]entry, 0, len(m.counts))
	for _, k := range m.sortedContextKeys() {
		entries = append(entries, entry{Context: k, Counts: m.counts[k]})
	}
	if err := enc.Encode(entries); err != nil {
		return &tserr.SerializationError{Op: "encode entries", Err: err}
	}
	return nil
}

// Decode reads a model previously written by Encode. It validates N
// and the alphabet identifier before decoding the (potentially large)
// count table.
func Decode(r io.Reader) (*Model, error) {
	dec := gob.NewDecoder(r)

	var n int
	if err := dec.Decode(&n); err != nil {
		return nil, &tserr.SerializationError{Op: "decode N", Err: err}
	}
	if n < 0 || n > kmer.MaxN {
		return nil, &tserr.UnsupportedN{N: n}
	}

	var identifier string
	if err := dec.Decode(&identifier); err != nil {
		return nil, &tserr.SerializationError{Op: "decode alphabet", Err: err}
	}
	alph, err := alphabet.ByIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	var entries []entry
	if err := dec.Decode(&entries); err != nil {
		return nil, &tserr.SerializationError{Op: "decode entries", Err: err}
	}

	m, err := New(n, alph)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		m.counts[e.Context] = e.Counts
	}
	return m, nil
}
