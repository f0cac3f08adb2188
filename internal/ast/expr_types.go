package ast

import (
	"strconv"

	"diceroll/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprLit is an unsigned integer literal.
	ExprLit ExprKind = iota
	// ExprDice is "NdS" with optional set operations.
	ExprDice
	ExprBinary
	ExprUnary
	// ExprGroup is a parenthesized expression, "(x)".
	ExprGroup
	// ExprSet is "()", "(x,)" or "(a, b, ...)" with optional set operations.
	ExprSet
)

func (k ExprKind) String() string {
	switch k {
	case ExprLit:
		return "Literal"
	case ExprDice:
		return "Dice"
	case ExprBinary:
		return "Binary"
	case ExprUnary:
		return "Unary"
	case ExprGroup:
		return "Paren"
	case ExprSet:
		return "Set"
	}
	return "Expr(?)"
}

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
)

func (op ExprBinaryOp) String() string {
	switch op {
	case ExprBinaryAdd:
		return "+"
	case ExprBinarySub:
		return "-"
	case ExprBinaryMul:
		return "*"
	case ExprBinaryDiv:
		return "/"
	}
	return "?"
}

// ExprUnaryOp enumerates unary operator kinds.
type ExprUnaryOp uint8

const (
	ExprUnaryNeg ExprUnaryOp = iota
	// ExprUnaryPlus is accepted by the parser and has no effect.
	ExprUnaryPlus
)

func (op ExprUnaryOp) String() string {
	if op == ExprUnaryNeg {
		return "-"
	}
	return "+"
}

// ExprLiteralData keeps the digits as written; Value parses on demand so
// an overflowing literal survives parsing and is reported by validation.
type ExprLiteralData struct {
	Text string
}

// Value returns the literal's value, or false when it does not fit in uint64.
func (d *ExprLiteralData) Value() (uint64, bool) {
	return parseU64(d.Text)
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprGroupData struct {
	Inner ExprID
}

// ExprDiceData describes "[count]d<sides>".
// CountText is empty for an implicit count ("d20"); SidesText is "%" for d%.
type ExprDiceData struct {
	CountText string
	CountSpan source.Span
	SidesText string
	SidesSpan source.Span
	Ops       []SetOpID
}

// Count returns the number of dice; an omitted count means one die.
func (d *ExprDiceData) Count() (uint64, bool) {
	if d.CountText == "" {
		return 1, true
	}
	return parseU64(d.CountText)
}

// Sides returns the number of faces; "%" means 100.
func (d *ExprDiceData) Sides() (uint64, bool) {
	if d.SidesText == "%" {
		return 100, true
	}
	return parseU64(d.SidesText)
}

type ExprSetData struct {
	Items []ExprID
	Ops   []SetOpID
}

func parseU64(text string) (uint64, bool) {
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
