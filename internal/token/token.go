package token

import (
	"diceroll/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a number or dice literal.
func (t Token) IsLiteral() bool {
	return t.Kind == Number || t.Kind == Dice
}

// IsArithOp reports whether the token is a binary or unary arithmetic operator.
func (t Token) IsArithOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

// IsSetOp reports whether the token starts a set operation.
func (t Token) IsSetOp() bool {
	return t.Kind.IsSetOp()
}

// IsSetOp reports whether k is one of k p rr ro ra e mi ma.
func (k Kind) IsSetOp() bool {
	return k >= OpKeep && k <= OpMax
}

// IsSelector reports whether k is one of h l > <.
func (k Kind) IsSelector() bool {
	return k >= SelHighest && k <= SelLess
}
