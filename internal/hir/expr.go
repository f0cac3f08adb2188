package hir

import (
	"diceroll/internal/source"
)

// ExprKind enumerates HIR expression kinds.
type ExprKind uint8

const (
	// ExprMissing stands in for an operand the parser could not produce.
	ExprMissing ExprKind = iota
	// ExprLiteral is a constant, or one face of a die.
	ExprLiteral
	// ExprBinary is an arithmetic combination (+, -, *, /).
	ExprBinary
	// ExprUnary is sign negation.
	ExprUnary
	// ExprDie is one physical die with its value history.
	ExprDie
	// ExprDice is a rolled group of identical dice plus its set operations.
	ExprDice
	// ExprSet is an arbitrary collection of sub-expressions plus its set operations.
	ExprSet
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprMissing:
		return "Missing"
	case ExprLiteral:
		return "Literal"
	case ExprBinary:
		return "Binary"
	case ExprUnary:
		return "Unary"
	case ExprDie:
		return "Die"
	case ExprDice:
		return "Dice"
	case ExprSet:
		return "Set"
	default:
		return "Unknown"
	}
}

// BinaryOp enumerates arithmetic operators.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// UnaryOp enumerates prefix operators. Unary plus is dropped during lowering.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
)

func (op UnaryOp) String() string {
	if op == OpNeg {
		return "-"
	}
	return "?"
}

// Expression is one node of the arena.
// Kept is cleared by set operations instead of deleting the node, so the
// full roll history stays available for display.
type Expression struct {
	Kind ExprKind
	Kept bool
	Span source.Span
	Data ExprData // Kind-specific payload
}

// Drop marks the expression as not contributing to its parent.
func (e *Expression) Drop() { e.Kept = false }

// ExprData is the interface for expression-specific data.
type ExprData interface {
	exprData()
}

// MissingData holds data for ExprMissing.
type MissingData struct{}

func (*MissingData) exprData() {}

// LiteralData holds data for ExprLiteral.
// Only the last value counts unless Exploded, in which case all values sum.
type LiteralData struct {
	Values   []uint64
	Exploded bool
}

func (*LiteralData) exprData() {}

// Last returns the live value.
func (d *LiteralData) Last() (uint64, bool) {
	if len(d.Values) == 0 {
		return 0, false
	}
	return d.Values[len(d.Values)-1], true
}

// BinaryData holds data for ExprBinary.
type BinaryData struct {
	Op  BinaryOp
	LHS ExprIdx
	RHS ExprIdx
}

func (*BinaryData) exprData() {}

// UnaryData holds data for ExprUnary.
type UnaryData struct {
	Op   UnaryOp
	Expr ExprIdx
}

func (*UnaryData) exprData() {}

// DieData holds data for ExprDie. Every entry of Values is a Literal;
// rerolls append a new one and only the last counts.
type DieData struct {
	Sides  uint64
	Values []ExprIdx
}

func (*DieData) exprData() {}

// Live returns the literal currently carrying the die's value.
func (d *DieData) Live() ExprIdx {
	if len(d.Values) == 0 {
		return NoExprIdx
	}
	return d.Values[len(d.Values)-1]
}

// DiceData holds data for ExprDice. Values are Die nodes.
//
// Count is the rolled group size and never changes. Exploding the group as a
// set item appends dice past Count, so len(Values) may exceed it.
type DiceData struct {
	Count  uint64
	Sides  uint64
	Values []ExprIdx
	Ops    []SetOperation
}

func (*DiceData) exprData() {}

// SetData holds data for ExprSet.
type SetData struct {
	Items []ExprIdx
	Ops   []SetOperation
}

func (*SetData) exprData() {}
