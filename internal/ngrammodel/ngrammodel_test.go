package ngrammodel

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/sebschmi/template-switch-generator/internal/alphabet"
	"github.com/sebschmi/template-switch-generator/internal/kmer"
)

func indices(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = alphabet.DNA.Index(s[i])
	}
	return out
}

// TestTrainScenario reproduces the ACGTAC / N=2 scenario: contexts
// AC->G, CG->T, GT->A are recorded, context TA is absent because the
// final training window is excluded by design.
func TestTrainScenario(t *testing.T) {
	m, err := New(2, alphabet.DNA)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Train(indices("ACGTAC")); err != nil {
		t.Fatal(err)
	}

	check := func(ctx string, want []uint32) {
		k, err := kmer.FromIndices(indices(ctx), alphabet.DNA.Size())
		if err != nil {
			t.Fatal(err)
		}
		row, ok := m.Row(k)
		if !ok {
			t.Fatalf("context %s missing", ctx)
		}
		for i := range want {
			if row[i] != want[i] {
				t.Fatalf("context %s: row = %v, want %v", ctx, row, want)
			}
		}
	}

	check("AC", []uint32{0, 0, 1, 0})
	check("CG", []uint32{0, 0, 0, 1})
	check("GT", []uint32{1, 0, 0, 0})

	if k, err := kmer.FromIndices(indices("TA"), alphabet.DNA.Size()); err == nil {
		if _, ok := m.Row(k); ok {
			t.Fatal("context TA should be absent")
		}
	}

	if m.ContextCount() != 3 {
		t.Fatalf("expected 3 contexts, got %d", m.ContextCount())
	}
}

func TestGenerateSequenceLength(t *testing.T) {
	m, err := FromSequences(2, alphabet.DNA, [][]int{indices("ACGTACGTACGTACGT")})
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(42))
	out, err := m.GenerateSequence(50, rng)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 50 {
		t.Fatalf("expected length 50, got %d", len(out))
	}
	for _, idx := range out {
		if idx < 0 || idx >= alphabet.DNA.Size() {
			t.Fatalf("invalid character index %d", idx)
		}
	}
}

func TestGenerateSequenceEmptyModel(t *testing.T) {
	m, err := New(2, alphabet.DNA)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.GenerateSequence(5, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected EmptyModel error")
	}
}

func TestGenerateSequenceBelowN(t *testing.T) {
	m, err := FromSequences(3, alphabet.DNA, [][]int{indices("ACGTACGTACGT")})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.GenerateSequence(1, rand.New(rand.NewSource(1))); err == nil {
		t.Fatal("expected AncestorTooShort error")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	m, err := FromSequences(2, alphabet.DNA, [][]int{indices("ACGTACGTACGTAC")})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.N() != m.N() || decoded.Alphabet().Identifier() != m.Alphabet().Identifier() {
		t.Fatalf("N/alphabet mismatch after round trip")
	}
	if decoded.ContextCount() != m.ContextCount() {
		t.Fatalf("context count mismatch: %d vs %d", decoded.ContextCount(), m.ContextCount())
	}
	for _, k := range m.sortedContextKeys() {
		wantRow := m.counts[k]
		gotRow, ok := decoded.counts[k]
		if !ok {
			t.Fatalf("missing context %d after round trip", k)
		}
		for i := range wantRow {
			if wantRow[i] != gotRow[i] {
				t.Fatalf("row mismatch for context %d: %v vs %v", k, wantRow, gotRow)
			}
		}
	}
}

func TestReseedWithSameSeedIsDeterministic(t *testing.T) {
	m, err := FromSequences(2, alphabet.DNA, [][]int{indices("ACGTACGTACGTACGTACGT")})
	if err != nil {
		t.Fatal(err)
	}
	a, err := m.GenerateSequence(30, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.GenerateSequence(30, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("outputs diverged at %d: %v vs %v", i, a, b)
		}
	}
}
