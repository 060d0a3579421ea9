package modifier

import (
	"math/rand"
	"testing"

	"github.com/sebschmi/template-switch-generator/internal/alphabet"
	"github.com/sebschmi/template-switch-generator/internal/sequence"
	"github.com/sebschmi/template-switch-generator/internal/tserr"
)

func TestSubstitutionIsReversible(t *testing.T) {
	s := sequence.FromChars([]byte("ACGT"), alphabet.DNA)
	original := string(s.Bytes())

	increment := 2
	Apply(s, Modification{Kind: Substitution, Position: 1, CharacterIncrement: increment})
	Apply(s, Modification{Kind: Substitution, Position: 1, CharacterIncrement: alphabet.DNA.Size() - increment})

	if string(s.Bytes()) != original {
		t.Fatalf("substitution round trip: got %s, want %s", s.Bytes(), original)
	}
}

func TestTemplateSwitchChangesLengthByLengthDifference(t *testing.T) {
	s := sequence.FromChars([]byte("ACGTACGTACGTACGTACGT"), alphabet.DNA)
	before := s.Len()

	lengthDifference := 1
	Apply(s, Modification{Kind: TemplateSwitch, Position: 2, Length: 4, Offset: 10, LengthDifference: lengthDifference})

	if s.Len() != before+lengthDifference {
		t.Fatalf("expected length to change by %d, got %d -> %d", lengthDifference, before, s.Len())
	}
}

func TestNewModifierPairRejectsInvalidFraction(t *testing.T) {
	detector := NewTemplateSwitchOverlapDetector(5)
	rng := rand.New(rand.NewSource(1))
	params := SequenceModificationParameters{GapLengthMean: 3, TemplateSwitch: TemplateSwitchParameters{MinLength: 1, MaxLength: 2, MaxOffset: 1, MaximumOverlapTries: 1}}

	_, err := NewModifierPair(SequenceModificationAmount{}, 1.5, params, detector, alphabet.DNA.Size(), rng)
	if err == nil {
		t.Fatal("expected an error for fraction outside [0,1]")
	}
}

func TestNextRejectsEmptySequenceEvenWithNoBudgetLeft(t *testing.T) {
	detector := NewTemplateSwitchOverlapDetector(2)
	rng := rand.New(rand.NewSource(7))
	sm := newModifier(SequenceModificationAmount{}, SequenceModificationParameters{}, detector, alphabet.DNA.Size(), rng)

	_, err := sm.Next(0)
	if err == nil {
		t.Fatal("expected an error for a zero-length sequence, even with no budget remaining")
	}
	if _, ok := err.(*tserr.SequenceBecameEmpty); !ok {
		t.Fatalf("expected *tserr.SequenceBecameEmpty, got %T: %v", err, err)
	}
}

func TestModifierPairAppliesFullBudget(t *testing.T) {
	detector := NewTemplateSwitchOverlapDetector(2)
	rng := rand.New(rand.NewSource(99))
	params := SequenceModificationParameters{
		GapLengthMean: 2,
		TemplateSwitch: TemplateSwitchParameters{
			MinOffset: 1, MaxOffset: 2,
			MinLength: 2, MaxLength: 3,
			MinLengthDifference: 0, MaxLengthDifference: 0,
			Margin:               2,
			MaximumOverlapTries:  10,
		},
	}
	amount := SequenceModificationAmount{TemplateSwitchAmount: 1, GapAmount: 2, SubstitutionAmount: 3}

	pair, err := NewModifierPair(amount, 0.5, params, detector, alphabet.DNA.Size(), rng)
	if err != nil {
		t.Fatal(err)
	}

	seq := sequence.FromChars([]byte("ACGTACGTACGTACGTACGTACGTACGTACGT"), alphabet.DNA)
	if err := pair.Reference.Apply(seq); err != nil {
		t.Fatal(err)
	}
	detector.ClearModificationStack()
	if err := pair.Query.Apply(seq); err != nil {
		t.Fatal(err)
	}
}
