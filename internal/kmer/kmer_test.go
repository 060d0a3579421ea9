package kmer

import "testing"

func TestBitsPerSymbol(t *testing.T) {
	cases := []struct {
		alphabetSize, want int
	}{
		{3, 2}, // ilog2(4) = 2
		{4, 2}, // ilog2(5) = 2
		{7, 3}, // ilog2(8) = 3
		{8, 3}, // ilog2(9) = 3
	}
	for _, c := range cases {
		if got := BitsPerSymbol(c.alphabetSize); got != c.want {
			t.Errorf("BitsPerSymbol(%d) = %d, want %d", c.alphabetSize, got, c.want)
		}
	}
}

func TestSuccessorAndIndex(t *testing.T) {
	k, err := FromIndices([]int{0, 1, 2}, 4) // A C G
	if err != nil {
		t.Fatal(err)
	}
	if k.Index(0) != 0 || k.Index(1) != 1 || k.Index(2) != 2 {
		t.Fatalf("unexpected indices: %d %d %d", k.Index(0), k.Index(1), k.Index(2))
	}

	next := k.Successor(3) // CGT
	if next.Index(0) != 1 || next.Index(1) != 2 || next.Index(2) != 3 {
		t.Fatalf("unexpected successor indices: %d %d %d", next.Index(0), next.Index(1), next.Index(2))
	}
}

func TestOrdering(t *testing.T) {
	a, _ := FromIndices([]int{0, 0}, 4) // AA
	b, _ := FromIndices([]int{0, 1}, 4) // AC
	c, _ := FromIndices([]int{1, 0}, 4) // CA
	if !(a.Bits() < b.Bits() && b.Bits() < c.Bits()) {
		t.Fatalf("expected lexicographic ordering AA < AC < CA, got %d %d %d", a.Bits(), b.Bits(), c.Bits())
	}
}

func TestUnsupportedN(t *testing.T) {
	if _, err := New(MaxN+1, 4); err == nil {
		t.Fatal("expected error for N > MaxN")
	}
	if _, err := New(-1, 4); err == nil {
		t.Fatal("expected error for negative N")
	}
}
