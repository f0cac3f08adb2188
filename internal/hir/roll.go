package hir

import (
	"context"
	"strconv"

	"diceroll/internal/ast"
	"diceroll/internal/random"
	"diceroll/internal/trace"
)

// RollResult is the populated arena plus the top-level total.
// Seed is the seed of the roll context, 0 for a scripted source.
type RollResult struct {
	DB    *Database
	Root  ExprIdx
	Total int64
	Seed  uint64
}

// Roll lowers root, resolves every set operation and computes the total.
// The result is returned even on error so the arena can be inspected; Total
// is only meaningful when err is nil.
func Roll(ctx context.Context, builder *ast.Builder, root ast.ExprID, rctx *random.Context, opts Options) (*RollResult, error) {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	db := NewDatabase(rctx)
	res := &RollResult{DB: db, Seed: rctx.Seed()}

	span := trace.Begin(tracer, trace.ScopePass, "lower", parent)
	idx, err := Lower(builder, root, db, opts)
	res.Root = idx
	span.WithExtra("nodes", strconv.Itoa(db.Len())).
		WithExtra("draws", strconv.FormatUint(rctx.Draws(), 10)).
		End(errDetail(err))
	if err != nil {
		return res, err
	}

	span = trace.Begin(tracer, trace.ScopePass, "resolve", parent)
	err = Resolve(trace.WithSpan(ctx, span), db, opts)
	span.WithExtra("nodes", strconv.Itoa(db.Len())).
		WithExtra("draws", strconv.FormatUint(rctx.Draws(), 10)).
		End(errDetail(err))
	if err != nil {
		return res, err
	}

	span = trace.Begin(tracer, trace.ScopePass, "total", parent)
	total, err := Total(db, idx)
	span.End(errDetail(err))
	if err != nil {
		return res, err
	}
	res.Total = total
	return res, nil
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
