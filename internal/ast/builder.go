package ast

type Hints struct{ Exprs, SetOps uint }

// Builder owns every arena of one parsed expression.
type Builder struct {
	Exprs  *Exprs
	SetOps *SetOps
}

func NewBuilder(hints Hints) *Builder {
	return &Builder{
		Exprs:  NewExprs(hints.Exprs),
		SetOps: NewSetOps(hints.SetOps),
	}
}

// NewSetOp allocates one set operation.
func (b *Builder) NewSetOp(data SetOpData) SetOpID {
	return b.SetOps.New(data)
}

// AttachOps appends set operations to a dice or set expression.
// It reports false for any other kind.
func (b *Builder) AttachOps(id ExprID, ops []SetOpID) bool {
	if d, ok := b.Exprs.DiceData(id); ok {
		d.Ops = append(d.Ops, ops...)
		return true
	}
	if s, ok := b.Exprs.Set(id); ok {
		s.Ops = append(s.Ops, ops...)
		return true
	}
	return false
}
