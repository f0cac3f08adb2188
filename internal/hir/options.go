package hir

// DefaultMaxRerollRounds bounds how many rounds a single "rr" may take.
const DefaultMaxRerollRounds = 1000

// Options bounds the work a single roll may do. Zero means no limit,
// except MaxRerollRounds which falls back to DefaultMaxRerollRounds.
type Options struct {
	MaxDice         uint64
	MaxSides        uint64
	MaxRerollRounds int
}

func (o Options) rerollRounds() int {
	if o.MaxRerollRounds <= 0 {
		return DefaultMaxRerollRounds
	}
	return o.MaxRerollRounds
}
