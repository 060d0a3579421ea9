package modifier

import "github.com/sebschmi/template-switch-generator/internal/sequence"

// Apply performs the in-place effect of m against seq, per §4.3's
// application semantics.
func Apply(seq *sequence.Sequence, m Modification) {
	switch m.Kind {
	case Substitution:
		old := seq.Get(m.Position)
		seq.Set(m.Position, (old+m.CharacterIncrement)%seq.Alphabet().Size())

	case Insertion:
		copied := append([]int{}, seq.Indices()[m.Source:m.Source+m.Length]...)
		seq.Splice(m.Position, m.Position, copied)

	case Deletion:
		seq.Delete(m.Position, m.Position+m.Length)

	case TemplateSwitch:
		from := m.Position + m.Offset
		replacement := seq.ReverseComplementIndices(from, m.Length)
		seq.Splice(m.Position, m.Position+m.Length-m.LengthDifference, replacement)
	}
}
