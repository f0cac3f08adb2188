package hir

import (
	"fmt"

	"diceroll/internal/ast"
	"diceroll/internal/source"
)

// Lower transforms an AST expression into arena nodes, rolling every die as
// it goes. Children are allocated before their parents.
//
// A number that is absent or does not parse turns its subtree into a Missing
// node. Lowering keeps going so the arena stays inspectable and returns the
// first such problem.
func Lower(builder *ast.Builder, root ast.ExprID, db *Database, opts Options) (ExprIdx, error) {
	l := &lowerer{builder: builder, db: db, opts: opts}
	idx := l.lowerExpr(root)
	if l.err != nil {
		return idx, l.err
	}
	return idx, nil
}

// lowerer holds context for the lowering pass.
type lowerer struct {
	builder *ast.Builder
	db      *Database
	opts    Options
	err     *Error
}

// fail allocates a Missing node spanning node in place of the subtree and
// records the first error, pointing at the offending number.
func (l *lowerer) fail(kind error, node, at source.Span, detail string) ExprIdx {
	idx := l.db.allocMissing(node)
	if at.Empty() {
		at = node
	}
	if l.err == nil {
		l.err = &Error{Kind: kind, Idx: idx, Span: at, Detail: detail}
	}
	return idx
}

func (l *lowerer) lowerExpr(id ast.ExprID) ExprIdx {
	expr := l.builder.Exprs.Get(id)
	if expr == nil {
		// operand absent: already reported by the parser
		return l.db.allocMissing(source.Span{})
	}

	switch expr.Kind {
	case ast.ExprGroup:
		g, _ := l.builder.Exprs.Group(id)
		return l.lowerExpr(g.Inner)

	case ast.ExprLit:
		lit, _ := l.builder.Exprs.Literal(id)
		v, ok := lit.Value()
		if !ok {
			return l.fail(ErrMissing, expr.Span, expr.Span, fmt.Sprintf("literal %q is not a valid number", lit.Text))
		}
		return l.db.allocLiteral(expr.Span, false, v)

	case ast.ExprUnary:
		u, _ := l.builder.Exprs.Unary(id)
		if u.Op == ast.ExprUnaryPlus {
			return l.lowerExpr(u.Operand)
		}
		inner := l.lowerExpr(u.Operand)
		return l.db.Alloc(Expression{
			Kind: ExprUnary,
			Kept: true,
			Span: expr.Span,
			Data: &UnaryData{Op: OpNeg, Expr: inner},
		})

	case ast.ExprBinary:
		b, _ := l.builder.Exprs.Binary(id)
		lhs := l.lowerExpr(b.Left)
		rhs := l.lowerExpr(b.Right)
		return l.db.Alloc(Expression{
			Kind: ExprBinary,
			Kept: true,
			Span: expr.Span,
			Data: &BinaryData{Op: lowerBinaryOp(b.Op), LHS: lhs, RHS: rhs},
		})

	case ast.ExprDice:
		return l.lowerDice(id, expr)

	case ast.ExprSet:
		return l.lowerSet(id, expr)
	}

	return l.db.allocMissing(expr.Span)
}

func (l *lowerer) lowerDice(id ast.ExprID, expr *ast.Expr) ExprIdx {
	d, _ := l.builder.Exprs.DiceData(id)

	count, ok := d.Count()
	if !ok {
		return l.fail(ErrMissing, expr.Span, d.CountSpan, fmt.Sprintf("dice count %q is not a valid number", d.CountText))
	}
	sides, ok := d.Sides()
	if !ok {
		return l.fail(ErrMissing, expr.Span, d.SidesSpan, fmt.Sprintf("dice sides %q is not a valid number", d.SidesText))
	}
	ops, bad := l.lowerOps(d.Ops)
	if bad != nil {
		return l.fail(ErrMissing, expr.Span, badOpSpan(bad), badOpDetail(bad))
	}

	switch {
	case sides == 0:
		return l.fail(ErrZeroSides, expr.Span, d.SidesSpan, "")
	case l.opts.MaxDice > 0 && count > l.opts.MaxDice:
		return l.fail(ErrTooManyDice, expr.Span, d.CountSpan, fmt.Sprintf("%d > %d", count, l.opts.MaxDice))
	case l.opts.MaxSides > 0 && sides > l.opts.MaxSides:
		return l.fail(ErrTooManySides, expr.Span, d.SidesSpan, fmt.Sprintf("%d > %d", sides, l.opts.MaxSides))
	}

	values := make([]ExprIdx, 0, min(count, 64))
	for face := range l.db.Ctx().RollMany(sides, count) {
		lit := l.db.allocLiteral(expr.Span, false, face)
		values = append(values, l.db.allocDie(expr.Span, sides, lit))
	}

	return l.db.Alloc(Expression{
		Kind: ExprDice,
		Kept: true,
		Span: expr.Span,
		Data: &DiceData{Count: count, Sides: sides, Values: values, Ops: ops},
	})
}

func (l *lowerer) lowerSet(id ast.ExprID, expr *ast.Expr) ExprIdx {
	s, _ := l.builder.Exprs.Set(id)

	// ops first: a broken op makes the whole set Missing and its items are never rolled
	ops, bad := l.lowerOps(s.Ops)
	if bad != nil {
		return l.fail(ErrMissing, expr.Span, badOpSpan(bad), badOpDetail(bad))
	}

	items := make([]ExprIdx, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, l.lowerExpr(item))
	}
	return l.db.Alloc(Expression{
		Kind: ExprSet,
		Kept: true,
		Span: expr.Span,
		Data: &SetData{Items: items, Ops: ops},
	})
}

// lowerOps converts set operations. It returns the first operation whose
// number is absent or does not parse.
func (l *lowerer) lowerOps(ids []ast.SetOpID) ([]SetOperation, *ast.SetOpData) {
	if len(ids) == 0 {
		return nil, nil
	}
	ops := make([]SetOperation, 0, len(ids))
	for _, id := range ids {
		data := l.builder.SetOps.Get(id)
		if data == nil {
			continue
		}
		num, ok := data.Num()
		if !ok {
			return nil, data
		}
		ops = append(ops, SetOperation{
			Op:   lowerSetOp(data.Op),
			Sel:  lowerSetSel(data.Sel),
			Num:  num,
			Span: data.Span,
		})
	}
	return ops, nil
}

func badOpSpan(data *ast.SetOpData) source.Span {
	if data.NumSpan.Empty() {
		return data.Span
	}
	return data.NumSpan
}

func badOpDetail(data *ast.SetOpData) string {
	if data.NumText == "" {
		return fmt.Sprintf("set operation %q needs a number", data.String())
	}
	return fmt.Sprintf("set operation %q: %q is not a valid number", data.Op.String()+data.Sel.String(), data.NumText)
}

func lowerBinaryOp(op ast.ExprBinaryOp) BinaryOp {
	switch op {
	case ast.ExprBinarySub:
		return OpSub
	case ast.ExprBinaryMul:
		return OpMul
	case ast.ExprBinaryDiv:
		return OpDiv
	default:
		return OpAdd
	}
}

func lowerSetOp(op ast.SetOpKind) SetOp {
	switch op {
	case ast.SetOpDrop:
		return SetOpDrop
	case ast.SetOpReroll:
		return SetOpReroll
	case ast.SetOpRerollOnce:
		return SetOpRerollOnce
	case ast.SetOpRerollAdd:
		return SetOpRerollAdd
	case ast.SetOpExplode:
		return SetOpExplode
	case ast.SetOpMin:
		return SetOpMin
	case ast.SetOpMax:
		return SetOpMax
	default:
		return SetOpKeep
	}
}

func lowerSetSel(sel ast.SetSelKind) SetSel {
	switch sel {
	case ast.SetSelHighest:
		return SelHighest
	case ast.SetSelLowest:
		return SelLowest
	case ast.SetSelGreater:
		return SelGreater
	case ast.SetSelLess:
		return SelLess
	default:
		return SelNumber
	}
}
