package modifier

import (
	"math/rand"

	"github.com/sebschmi/template-switch-generator/internal/sequence"
	"github.com/sebschmi/template-switch-generator/internal/tserr"
)

// SequenceModifier holds one derivative's remaining edit budget and
// draws, validates, and applies a mixed stream of edits against a
// mutable sequence, enforcing the non-overlap invariant via a shared
// TemplateSwitchOverlapDetector.
type SequenceModifier struct {
	remaining    SequenceModificationAmount
	params       SequenceModificationParameters
	detector     *TemplateSwitchOverlapDetector
	rng          *rand.Rand
	alphabetSize int
}

func newModifier(amount SequenceModificationAmount, params SequenceModificationParameters, detector *TemplateSwitchOverlapDetector, alphabetSize int, rng *rand.Rand) *SequenceModifier {
	return &SequenceModifier{remaining: amount, params: params, detector: detector, rng: rng, alphabetSize: alphabetSize}
}

// Next draws and returns the next modification, decrementing the
// corresponding budget. An empty sequence is always an error, even if
// the remaining budget is also zero: a prior edit having consumed the
// whole sequence is never silently treated as "done". Otherwise it
// returns (nil, nil) once all budgets are exhausted.
func (sm *SequenceModifier) Next(seqLen int) (*Modification, error) {
	if seqLen == 0 {
		return nil, &tserr.SequenceBecameEmpty{}
	}
	total := sm.remaining.TemplateSwitchAmount + sm.remaining.GapAmount + sm.remaining.SubstitutionAmount
	if total == 0 {
		return nil, nil
	}

	index := sm.rng.Intn(total)
	switch {
	case index < sm.remaining.TemplateSwitchAmount:
		sm.remaining.TemplateSwitchAmount--
		return sm.nextTemplateSwitch(seqLen)
	case index < sm.remaining.TemplateSwitchAmount+sm.remaining.GapAmount:
		sm.remaining.GapAmount--
		m, err := sampleGap(seqLen, sm.params.GapLengthMean, sm.rng)
		if err != nil {
			return nil, err
		}
		if !sm.params.TemplateSwitch.OverlapAllowed {
			sm.detector.ApplyModification(m)
		}
		return &m, nil
	default:
		sm.remaining.SubstitutionAmount--
		m := sampleSubstitution(seqLen, sm.alphabetSize, sm.rng)
		if !sm.params.TemplateSwitch.OverlapAllowed {
			sm.detector.ApplyModification(m)
		}
		return &m, nil
	}
}

func (sm *SequenceModifier) nextTemplateSwitch(seqLen int) (*Modification, error) {
	tries := sm.params.TemplateSwitch.MaximumOverlapTries
	for try := 0; try < tries; try++ {
		m, err := sampleTemplateSwitch(seqLen, sm.params.TemplateSwitch, sm.rng)
		if err != nil {
			return nil, err
		}
		if sm.params.TemplateSwitch.OverlapAllowed {
			return &m, nil
		}
		if sm.detector.ApplyModification(m) == Independent {
			return &m, nil
		}
	}
	return nil, &tserr.TemplateSwitchOverlap{Tries: tries}
}

// Apply repeatedly draws and applies modifications to seq until the
// budget is exhausted.
func (sm *SequenceModifier) Apply(seq *sequence.Sequence) error {
	for {
		m, err := sm.Next(seq.Len())
		if err != nil {
			return err
		}
		if m == nil {
			return nil
		}
		Apply(seq, *m)
	}
}
