package ast

import (
	"diceroll/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Literals *Arena[ExprLiteralData]
	Binaries *Arena[ExprBinaryData]
	Unaries  *Arena[ExprUnaryData]
	Groups   *Arena[ExprGroupData]
	Dice     *Arena[ExprDiceData]
	Sets     *Arena[ExprSetData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint as the initial capacity.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 5
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Groups:   NewArena[ExprGroupData](capHint),
		Dice:     NewArena[ExprDiceData](capHint),
		Sets:     NewArena[ExprSetData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID, or nil for NoExprID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, text string) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Text: text})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewUnary creates a new unary expression.
func (e *Exprs) NewUnary(span source.Span, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary data for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewGroup creates a new parenthesized expression.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

// Group returns the group data for the given expression ID.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// NewDice creates a new dice expression.
func (e *Exprs) NewDice(span source.Span, data ExprDiceData) ExprID {
	payload := e.Dice.Allocate(data)
	return e.new(ExprDice, span, PayloadID(payload))
}

// DiceData returns the dice data for the given expression ID.
func (e *Exprs) DiceData(id ExprID) (*ExprDiceData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprDice {
		return nil, false
	}
	return e.Dice.Get(uint32(expr.Payload)), true
}

// NewSet creates a new set expression.
func (e *Exprs) NewSet(span source.Span, items []ExprID, ops []SetOpID) ExprID {
	payload := e.Sets.Allocate(ExprSetData{Items: items, Ops: ops})
	return e.new(ExprSet, span, PayloadID(payload))
}

// Set returns the set data for the given expression ID.
func (e *Exprs) Set(id ExprID) (*ExprSetData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprSet {
		return nil, false
	}
	return e.Sets.Get(uint32(expr.Payload)), true
}
