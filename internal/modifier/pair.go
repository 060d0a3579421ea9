package modifier

import (
	"math"
	"math/rand"

	"github.com/sebschmi/template-switch-generator/internal/tserr"
)

// ModifierPair holds the two independent SequenceModifier instances
// derived from one total edit budget.
type ModifierPair struct {
	Query     *SequenceModifier
	Reference *SequenceModifier
}

// NewModifierPair splits total into a query and a reference budget via
// splitIntRandom, one call per edit kind, and builds a modifier for
// each sharing detector.
//
// The first half returned by splitIntRandom is assigned to the query
// modifier and the second half to the reference modifier. Given that f
// is named the *reference*-ancestry fraction, this is the reverse of
// what the name suggests; it is an intentional, preserved asymmetry of
// the source this was derived from, not a bug.
func NewModifierPair(total SequenceModificationAmount, referenceAncestryFraction float64, params SequenceModificationParameters, detector *TemplateSwitchOverlapDetector, alphabetSize int, rng *rand.Rand) (*ModifierPair, error) {
	if math.IsNaN(referenceAncestryFraction) || referenceAncestryFraction < 0 || referenceAncestryFraction > 1 {
		return nil, &tserr.InvalidFraction{Fraction: referenceAncestryFraction}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	tsFirst, tsSecond := splitIntRandom(total.TemplateSwitchAmount, referenceAncestryFraction, rng)
	gapFirst, gapSecond := splitIntRandom(total.GapAmount, referenceAncestryFraction, rng)
	subFirst, subSecond := splitIntRandom(total.SubstitutionAmount, referenceAncestryFraction, rng)

	query := newModifier(SequenceModificationAmount{
		TemplateSwitchAmount: tsFirst,
		GapAmount:            gapFirst,
		SubstitutionAmount:   subFirst,
	}, params, detector, alphabetSize, rng)

	reference := newModifier(SequenceModificationAmount{
		TemplateSwitchAmount: tsSecond,
		GapAmount:            gapSecond,
		SubstitutionAmount:   subSecond,
	}, params, detector, alphabetSize, rng)

	return &ModifierPair{Query: query, Reference: reference}, nil
}
