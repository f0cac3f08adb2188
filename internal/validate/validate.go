// Package validate checks parsed numbers against the uint64 range before lowering.
package validate

import (
	"fmt"
	"math"
	"slices"

	"diceroll/internal/ast"
	"diceroll/internal/diag"
	"diceroll/internal/source"
)

// Kind classifies a validation finding.
type Kind uint8

const (
	NumberTooLarge Kind = iota
)

// Error is one out-of-range number.
type Error struct {
	Kind  Kind
	Range source.Span
}

func (e Error) Message() string {
	return fmt.Sprintf("number is larger than an integer's maximum value, %d", uint64(math.MaxUint64))
}

// Validate scans every literal, dice count/sides and set-operation number in b.
// Findings come back ordered by position.
func Validate(b *ast.Builder) []Error {
	var errs []Error
	tooLarge := func(sp source.Span) {
		errs = append(errs, Error{Kind: NumberTooLarge, Range: sp})
	}

	exprs := b.Exprs.Arena.Slice()
	for i := range exprs {
		id := ast.ExprID(i + 1)
		switch exprs[i].Kind {
		case ast.ExprLit:
			lit, _ := b.Exprs.Literal(id)
			if _, ok := lit.Value(); !ok {
				tooLarge(exprs[i].Span)
			}
		case ast.ExprDice:
			d, _ := b.Exprs.DiceData(id)
			if _, ok := d.Count(); !ok {
				tooLarge(d.CountSpan)
			}
			if _, ok := d.Sides(); !ok {
				tooLarge(d.SidesSpan)
			}
		}
	}
	for _, op := range b.SetOps.Arena.Slice() {
		if op.NumText == "" {
			continue // отсутствие числа уже сообщил парсер
		}
		if _, ok := op.Num(); !ok {
			tooLarge(op.NumSpan)
		}
	}

	slices.SortStableFunc(errs, func(a, b Error) int {
		return int(a.Range.Start) - int(b.Range.Start)
	})
	return errs
}

// Report runs Validate and forwards each finding to r.
func Report(b *ast.Builder, r diag.Reporter) int {
	errs := Validate(b)
	for _, e := range errs {
		diag.ReportError(r, diag.ValNumberTooLarge, e.Range, e.Message()).Emit()
	}
	return len(errs)
}
