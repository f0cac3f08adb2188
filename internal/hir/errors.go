package hir

import (
	"errors"

	"diceroll/internal/source"
)

var (
	// ErrDivideByZero: the right operand of '/' evaluated to 0.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrNoValues: a die or literal has no recorded value.
	ErrNoValues = errors.New("no values recorded")
	// ErrMissing: a number required by lowering was absent or did not parse.
	ErrMissing = errors.New("missing value")
	// ErrInvalidSetOp: an operation/selector pair that can never be applied.
	ErrInvalidSetOp = errors.New("invalid set operation")
	// ErrSetOpNotSupported: the operation does not apply to sets.
	ErrSetOpNotSupported = errors.New("set operation not supported on sets")
	// ErrRerollLimit: a reroll did not settle within the round cap.
	ErrRerollLimit = errors.New("reroll limit exceeded")
	// ErrZeroSides: a die with no sides cannot be rolled.
	ErrZeroSides = errors.New("dice must have at least one side")
	// ErrOverflow: a total does not fit in int64.
	ErrOverflow = errors.New("integer overflow")
	// ErrTooManyDice: count exceeds the configured limit.
	ErrTooManyDice = errors.New("too many dice")
	// ErrTooManySides: sides exceeds the configured limit.
	ErrTooManySides = errors.New("too many sides")
)

// Error ties a sentinel to the node that raised it.
type Error struct {
	Kind   error
	Idx    ExprIdx
	Span   source.Span
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Detail
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, db *Database, idx ExprIdx, detail string) *Error {
	err := &Error{Kind: kind, Idx: idx, Detail: detail}
	if idx.IsValid() && db != nil {
		err.Span = db.Get(idx).Span
	}
	return err
}
