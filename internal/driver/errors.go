package driver

import (
	"errors"

	"diceroll/internal/diag"
	"diceroll/internal/hir"
)

// DiagError carries a front-end diagnostic as the failure of an evaluation.
type DiagError struct {
	Diagnostic diag.Diagnostic
}

func (e *DiagError) Error() string { return e.Diagnostic.Short() }

// evalCodes maps core sentinels to diagnostic codes.
var evalCodes = []struct {
	err  error
	code diag.Code
}{
	{hir.ErrDivideByZero, diag.EvlDivideByZero},
	{hir.ErrNoValues, diag.EvlNoValues},
	{hir.ErrMissing, diag.EvlMissing},
	{hir.ErrInvalidSetOp, diag.EvlInvalidSetOp},
	{hir.ErrSetOpNotSupported, diag.EvlSetOpNotSupported},
	{hir.ErrRerollLimit, diag.EvlRerollLimit},
	{hir.ErrZeroSides, diag.EvlZeroSides},
	{hir.ErrOverflow, diag.EvlOverflow},
	{hir.ErrTooManyDice, diag.EvlTooManyDice},
	{hir.ErrTooManySides, diag.EvlTooManySides},
}

// CodeFor returns the diagnostic code for an evaluation error.
func CodeFor(err error) diag.Code {
	for _, m := range evalCodes {
		if errors.Is(err, m.err) {
			return m.code
		}
	}
	return diag.EvlInfo
}
