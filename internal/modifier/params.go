package modifier

import (
	"math"

	"github.com/sebschmi/template-switch-generator/internal/tserr"
)

// TemplateSwitchParameters bounds the four sampled template-switch
// parameters and configures overlap retry behavior.
type TemplateSwitchParameters struct {
	MinOffset, MaxOffset                     int
	MinLength, MaxLength                     int
	MinLengthDifference, MaxLengthDifference int
	Margin                                   int
	MaximumOverlapTries                      int
	// OverlapAllowed disables the overlap check entirely: candidate
	// template switches are accepted without consulting the detector.
	OverlapAllowed bool
}

// SequenceModificationParameters is the configuration shared by both
// derivatives of a pair.
type SequenceModificationParameters struct {
	TemplateSwitch TemplateSwitchParameters
	GapLengthMean  float64
}

// SequenceModificationAmount is a per-derivative edit budget.
type SequenceModificationAmount struct {
	TemplateSwitchAmount int
	GapAmount            int
	SubstitutionAmount   int
}

// Validate checks the configuration errors enumerated in the
// configuration error taxonomy.
func (p SequenceModificationParameters) Validate() error {
	if math.IsNaN(p.GapLengthMean) || p.GapLengthMean <= 0 {
		return &tserr.InvalidGapMean{Mean: p.GapLengthMean}
	}
	ts := p.TemplateSwitch
	if ts.MinOffset > ts.MaxOffset {
		return &tserr.EmptyInterval{Name: "template-switch offset", Min: ts.MinOffset, Max: ts.MaxOffset}
	}
	if ts.MinLength > ts.MaxLength {
		return &tserr.EmptyInterval{Name: "template-switch length", Min: ts.MinLength, Max: ts.MaxLength}
	}
	if ts.MinLengthDifference > ts.MaxLengthDifference {
		return &tserr.EmptyInterval{Name: "template-switch length difference", Min: ts.MinLengthDifference, Max: ts.MaxLengthDifference}
	}
	return nil
}
