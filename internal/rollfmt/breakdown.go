package rollfmt

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"diceroll/internal/hir"
)

type styles struct {
	dropped, explode, total, err *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		dropped: color.New(color.Faint, color.CrossedOut),
		explode: color.New(color.FgYellow, color.Bold),
		total:   color.New(color.Bold),
		err:     color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{s.dropped, s.explode, s.total, s.err} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Breakdown renders the evaluated expression with every rolled value:
//
//	2d20kh1 (~~5~~, 15) - 5
//
// Values that no longer count are struck with ~~, exploding faces carry !.
// Dice a set explosion added to a group follow its list: 2d100 (40, 60)!+9.
func Breakdown(db *hir.Database, root hir.ExprIdx, opts Options) string {
	b := &breakdown{db: db, st: newStyles(opts.Color)}
	b.expr(root)
	return b.sb.String()
}

type breakdown struct {
	db *hir.Database
	st styles
	sb strings.Builder
}

func precedence(op hir.BinaryOp) int {
	if op == hir.OpMul || op == hir.OpDiv {
		return 2
	}
	return 1
}

func (b *breakdown) expr(idx hir.ExprIdx) {
	if !idx.IsValid() {
		b.sb.WriteByte('?')
		return
	}
	e := b.db.Get(idx)
	switch d := e.Data.(type) {
	case *hir.MissingData:
		b.sb.WriteByte('?')
	case *hir.LiteralData:
		b.literal(d, false)
	case *hir.BinaryData:
		b.operand(d.LHS, func(c *hir.BinaryData) bool {
			return precedence(c.Op) < precedence(d.Op)
		})
		b.sb.WriteString(" " + d.Op.String() + " ")
		b.operand(d.RHS, func(c *hir.BinaryData) bool {
			pc, pp := precedence(c.Op), precedence(d.Op)
			return pc < pp || (pc == pp && (d.Op == hir.OpSub || d.Op == hir.OpDiv))
		})
	case *hir.UnaryData:
		b.sb.WriteString(d.Op.String())
		b.operand(d.Expr, func(*hir.BinaryData) bool { return true })
	case *hir.DieData:
		b.die(d, !e.Kept)
	case *hir.DiceData:
		b.sb.WriteString(strconv.FormatUint(d.Count, 10) + "d" + strconv.FormatUint(d.Sides, 10))
		b.ops(d.Ops)
		b.sb.WriteString(" (")
		closed := false
		for i, v := range d.Values {
			switch {
			case uint64(i) >= d.Count: //nolint:gosec // i >= 0
				// кость, добавленная взрывом группы внутри множества
				if !closed {
					b.sb.WriteByte(')')
					closed = true
				}
				b.sb.WriteString(b.st.explode.Sprint("!"))
				b.sb.WriteByte('+')
			case i > 0:
				b.sb.WriteString(", ")
			}
			b.expr(v)
		}
		if !closed {
			b.sb.WriteByte(')')
		}
	case *hir.SetData:
		b.sb.WriteByte('(')
		for i, item := range d.Items {
			if i > 0 {
				b.sb.WriteString(", ")
			}
			b.setItem(item)
		}
		if len(d.Items) == 1 {
			b.sb.WriteByte(',')
		}
		b.sb.WriteByte(')')
		b.ops(d.Ops)
	}
}

// operand writes a child of an operator, in parentheses when wrap says the
// child binds looser than its parent.
func (b *breakdown) operand(idx hir.ExprIdx, wrap func(*hir.BinaryData) bool) {
	if idx.IsValid() {
		if c, ok := b.db.Get(idx).Data.(*hir.BinaryData); ok && wrap(c) {
			b.sb.WriteByte('(')
			b.expr(idx)
			b.sb.WriteByte(')')
			return
		}
	}
	b.expr(idx)
}

func (b *breakdown) setItem(idx hir.ExprIdx) {
	e := b.db.Get(idx)
	if e.Kept || e.Kind == hir.ExprMissing {
		b.expr(idx)
		return
	}
	if lit, ok := e.Data.(*hir.LiteralData); ok {
		b.literal(lit, true)
		return
	}
	inner := &breakdown{db: b.db, st: b.st}
	inner.expr(idx)
	b.strike(inner.sb.String())
}

func (b *breakdown) die(d *hir.DieData, dropped bool) {
	live := d.Live()
	for i, v := range d.Values {
		if i > 0 {
			b.sb.WriteByte(' ')
		}
		lit, ok := b.db.Get(v).Data.(*hir.LiteralData)
		if !ok {
			b.sb.WriteByte('?')
			continue
		}
		b.literal(lit, dropped || v != live)
	}
}

// literal writes one value history. A non-exploded literal counts only its
// last value, so earlier ones are struck.
func (b *breakdown) literal(d *hir.LiteralData, struck bool) {
	for i, v := range d.Values {
		last := i == len(d.Values)-1
		text := strconv.FormatUint(v, 10)
		switch {
		case d.Exploded:
			if i > 0 {
				b.sb.WriteByte('+')
			}
			b.value(text, struck)
			if !last {
				b.sb.WriteString(b.st.explode.Sprint("!"))
			}
		default:
			if i > 0 {
				b.sb.WriteByte(' ')
			}
			b.value(text, struck || !last)
		}
	}
}

func (b *breakdown) value(text string, struck bool) {
	if struck {
		b.strike(text)
		return
	}
	b.sb.WriteString(text)
}

func (b *breakdown) strike(text string) {
	b.sb.WriteString(b.st.dropped.Sprint("~~" + text + "~~"))
}

func (b *breakdown) ops(ops []hir.SetOperation) {
	for _, op := range ops {
		b.sb.WriteString(op.String())
	}
}
