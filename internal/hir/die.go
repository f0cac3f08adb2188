package hir

// Mutations on a single Die node. Every one keeps the previous values around.

func (r *resolver) dieData(idx ExprIdx) (*Expression, *DieData) {
	e := r.db.Get(idx)
	d, ok := e.Data.(*DieData)
	if !ok {
		panic("hir: expected a Die at index " + idx.String())
	}
	return e, d
}

func (r *resolver) liveLiteral(d *DieData) *LiteralData {
	live := d.Live()
	if !live.IsValid() {
		return nil
	}
	lit, _ := r.db.Get(live).Data.(*LiteralData)
	return lit
}

// rerollDie appends a fresh literal; only the newest one counts.
func (r *resolver) rerollDie(idx ExprIdx) {
	e, d := r.dieData(idx)
	face := r.db.Ctx().Roll(d.Sides)
	d.Values = append(d.Values, r.db.allocLiteral(e.Span, false, face))
}

// explodeDie adds a roll to the live literal and marks it exploded, so every
// value on it sums.
func (r *resolver) explodeDie(idx ExprIdx) {
	e, d := r.dieData(idx)
	lit := r.liveLiteral(d)
	if lit == nil {
		return
	}
	if !lit.Exploded && len(lit.Values) > 1 {
		// history from mi/ma must not be summed: restart from the live value
		last, _ := lit.Last()
		next := r.db.allocLiteral(e.Span, false, last)
		d.Values = append(d.Values, next)
		lit = r.db.Get(next).Data.(*LiteralData)
	}
	lit.Values = append(lit.Values, r.db.Ctx().Roll(d.Sides))
	lit.Exploded = true
}

// forceValue overwrites the die's value with v.
func (r *resolver) forceValue(idx ExprIdx, v uint64) {
	e, d := r.dieData(idx)
	lit := r.liveLiteral(d)
	if lit == nil || lit.Exploded {
		d.Values = append(d.Values, r.db.allocLiteral(e.Span, false, v))
		return
	}
	lit.Values = append(lit.Values, v)
}

// explodeItem explodes one set item. A literal n gains a roll of dn; a dice
// group gains one more die. Other items have nothing to roll and are left alone.
func (r *resolver) explodeItem(idx ExprIdx) {
	e := r.db.Get(idx)
	switch d := e.Data.(type) {
	case *LiteralData:
		if len(d.Values) == 0 || d.Values[0] == 0 {
			return
		}
		d.Values = append(d.Values, r.db.Ctx().Roll(d.Values[0]))
		d.Exploded = true
	case *DiceData:
		if d.Sides == 0 {
			return
		}
		lit := r.db.allocLiteral(e.Span, true, r.db.Ctx().Roll(d.Sides))
		d.Values = append(d.Values, r.db.allocDie(e.Span, d.Sides, lit))
	}
}
