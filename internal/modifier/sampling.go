package modifier

import (
	"math"
	"math/rand"

	"github.com/sebschmi/template-switch-generator/internal/tserr"
	"gonum.org/v1/gonum/stat/distuv"
)

// safeIntn returns a uniform draw in [0, n), treating n <= 0 as the
// single-valued range {0} rather than panicking.
func safeIntn(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}

// randRange draws uniformly from the inclusive interval [min, max].
func randRange(rng *rand.Rand, min, max int) int {
	return min + safeIntn(rng, max-min+1)
}

func sampleSubstitution(seqLen, alphabetSize int, rng *rand.Rand) Modification {
	return Modification{
		Kind:               Substitution,
		Position:           safeIntn(rng, seqLen),
		CharacterIncrement: 1 + safeIntn(rng, alphabetSize-1),
	}
}

// sampleGap draws a gap length from Exponential(1/mean), rounds it per
// §4.3, then samples either an insertion or a deletion of that length.
func sampleGap(seqLen int, mean float64, rng *rand.Rand) (Modification, error) {
	lambda := 1 / mean
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda <= 0 {
		return Modification{}, &tserr.InvalidExponentialLambda{Lambda: lambda}
	}
	dist := distuv.Exponential{Rate: lambda, Src: rng}
	raw := dist.Rand()

	var length int
	if raw < 1 {
		length = 1
	} else {
		length = int(math.Round(raw))
	}

	if length > seqLen {
		return Modification{}, &tserr.SequenceTooShortForGap{SequenceLength: seqLen, GapLength: length}
	}

	if rng.Intn(2) == 0 {
		return Modification{
			Kind:     Insertion,
			Position: safeIntn(rng, seqLen),
			Source:   safeIntn(rng, seqLen-length),
			Length:   length,
		}, nil
	}
	return Modification{
		Kind:     Deletion,
		Position: safeIntn(rng, seqLen-length),
		Length:   length,
	}, nil
}

// sampleTemplateSwitch draws offset, length and length_difference from
// their configured intervals, then derives the admissible position
// range and draws a position from it.
func sampleTemplateSwitch(seqLen int, params TemplateSwitchParameters, rng *rand.Rand) (Modification, error) {
	offset := randRange(rng, params.MinOffset, params.MaxOffset)
	length := randRange(rng, params.MinLength, params.MaxLength)

	maxLD := params.MaxLengthDifference
	if length < maxLD {
		maxLD = length
	}
	if params.MinLengthDifference > maxLD {
		return Modification{}, &tserr.EmptyInterval{Name: "template-switch length difference", Min: params.MinLengthDifference, Max: maxLD}
	}
	lengthDifference := randRange(rng, params.MinLengthDifference, maxLD)

	low := max(0, offset-length) + params.Margin
	bound := max(offset, length, length+lengthDifference)
	high := seqLen - bound - params.Margin

	if high <= low {
		required := low + bound + params.Margin + 1
		return Modification{}, &tserr.SequenceTooShortForTemplateSwitch{SequenceLength: seqLen, RequiredLength: required}
	}

	position := low + safeIntn(rng, high-low)
	return Modification{
		Kind:             TemplateSwitch,
		Position:         position,
		Length:           length,
		Offset:           offset,
		LengthDifference: lengthDifference,
	}, nil
}
