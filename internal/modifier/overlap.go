package modifier

import (
	"fmt"
	"io"
	"sort"
)

// trange is a half-open [Start, End) range in original coordinates.
type trange struct {
	Start, End int
}

// TemplateSwitchOverlapDetector maintains the set of already-placed
// template-switch coordinate ranges in the original coordinate frame
// and answers overlap queries for candidate edits.
type TemplateSwitchOverlapDetector struct {
	margin            int
	templateSwitches  []trange
	modificationStack []Modification
}

// NewTemplateSwitchOverlapDetector returns a detector with the given
// per-side range padding.
func NewTemplateSwitchOverlapDetector(margin int) *TemplateSwitchOverlapDetector {
	return &TemplateSwitchOverlapDetector{margin: margin}
}

// ApplyModification offers m to the detector. Non-template-switch
// edits are always accepted and recorded on the modification stack.
// Template switches are rewritten into original coordinates through
// the modification stack and checked against the stored ranges.
func (d *TemplateSwitchOverlapDetector) ApplyModification(m Modification) OverlapResult {
	if m.Kind != TemplateSwitch {
		d.modificationStack = append(d.modificationStack, m)
		return Independent
	}

	lo := min(m.Position, m.Position-m.Length+m.Offset)
	hi := max(m.Position, m.Position+m.Length-m.LengthDifference, m.Position+m.Offset)
	if lo < d.margin {
		return Overlap
	}

	candStart := lo - d.margin
	candEnd := hi + d.margin

	for i := len(d.modificationStack) - 1; i >= 0; i-- {
		prior := d.modificationStack[i]
		candStart = rewriteEndpoint(candStart, prior)
		candEnd = rewriteEndpoint(candEnd, prior)
	}

	idx := sort.Search(len(d.templateSwitches), func(i int) bool {
		return d.templateSwitches[i].End > candStart
	})
	if idx < len(d.templateSwitches) && d.templateSwitches[idx].Start < candEnd {
		return Overlap
	}

	d.templateSwitches = append(d.templateSwitches, trange{})
	copy(d.templateSwitches[idx+1:], d.templateSwitches[idx:])
	d.templateSwitches[idx] = trange{Start: candStart, End: candEnd}

	d.modificationStack = append(d.modificationStack, m)
	return Independent
}

// rewriteEndpoint undoes one prior edit's effect on endpoint e, per
// the per-edit-kind shift rules. Only endpoints strictly after the
// prior edit's position are affected, and the result is clamped at
// that position so it never crosses it.
func rewriteEndpoint(e int, prior Modification) int {
	if e <= prior.Position {
		return e
	}
	switch prior.Kind {
	case TemplateSwitch:
		return max(prior.Position, e-prior.LengthDifference)
	case Insertion:
		return max(prior.Position, e-prior.Length)
	case Deletion:
		return e + prior.Length
	default: // Substitution
		return e
	}
}

// ClearModificationStack empties the chronological modification stack
// while retaining the accumulated template-switch ranges. The front
// end calls this between the reference and query passes: the two
// derivatives are edited from a shared ancestor but their edit
// histories are independent, while the reference's template-switch
// footprint must remain forbidden for the query.
func (d *TemplateSwitchOverlapDetector) ClearModificationStack() {
	d.modificationStack = nil
}

// Ranges returns the accumulated sorted, disjoint template-switch
// ranges, for tests and diagnostics.
func (d *TemplateSwitchOverlapDetector) Ranges() []trange {
	return append([]trange(nil), d.templateSwitches...)
}

// WriteModifications dumps the chronological modification stack, a
// debugging aid rather than part of the tested core contract.
func (d *TemplateSwitchOverlapDetector) WriteModifications(w io.Writer) error {
	for _, m := range d.modificationStack {
		if _, err := fmt.Fprintf(w, "%s position=%d length=%d offset=%d length_difference=%d character_increment=%d source=%d\n",
			m.Kind, m.Position, m.Length, m.Offset, m.LengthDifference, m.CharacterIncrement, m.Source); err != nil {
			return err
		}
	}
	return nil
}
