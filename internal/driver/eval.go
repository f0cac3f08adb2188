package driver

import (
	"context"
	"errors"
	"strconv"

	"diceroll/internal/diag"
	"diceroll/internal/hir"
	"diceroll/internal/observ"
	"diceroll/internal/random"
	"diceroll/internal/source"
	"diceroll/internal/trace"
)

type Options struct {
	MaxDiagnostics int
	Limits         hir.Options
	Timer          *observ.Timer // optional
}

// Result is everything known about one evaluated expression.
type Result struct {
	Input string
	*ParseResult
	Roll *hir.RollResult
	Seed uint64
	// Err is the first problem: a lex/parse/validation diagnostic, or the
	// evaluation error. Nil means Roll.Total is the answer.
	Err error
}

// Total returns the final value when evaluation succeeded.
func (r *Result) Total() (int64, bool) {
	if r.Err != nil || r.Roll == nil {
		return 0, false
	}
	return r.Roll.Total, true
}

// Eval runs the whole pipeline on input. It evaluates even after front-end
// errors, so the partial tree can be displayed, but Err then reports the
// front-end problem.
func Eval(ctx context.Context, input string, rctx *random.Context, opts Options) *Result {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeExpr, "expr", trace.CurrentSpan(ctx))
	ctx = trace.WithSpan(ctx, span)

	pr := Parse(ctx, input, opts.MaxDiagnostics, opts.Timer)
	res := &Result{Input: input, ParseResult: pr, Seed: rctx.Seed()}

	phase := opts.Timer.Begin("roll")
	roll, err := hir.Roll(ctx, pr.Builder, pr.Root, rctx, opts.Limits)
	res.Roll = roll
	note := ""
	if err == nil {
		note = "total " + strconv.FormatInt(roll.Total, 10)
	}
	opts.Timer.End(phase, note)

	if err != nil {
		reportEvalError(pr.Bag, pr.File, err)
	}
	if d, ok := pr.Bag.FirstError(); ok && !isEvalDiagnostic(d) {
		res.Err = &DiagError{Diagnostic: d}
	} else if err != nil {
		res.Err = err
	}

	span.WithExtra("input", input).End(errDetail(res.Err))
	return res
}

// reportEvalError adds err to bag. A missing value after a front-end error is
// the same problem seen twice and is not repeated.
func reportEvalError(bag *diag.Bag, file *source.File, err error) {
	if errors.Is(err, hir.ErrMissing) && bag.HasErrors() {
		return
	}
	var sp source.Span
	var herr *hir.Error
	if errors.As(err, &herr) {
		sp = herr.Span
		sp.File = file.ID
	}
	bag.Add(diag.NewError(CodeFor(err), sp, err.Error()))
}

func isEvalDiagnostic(d diag.Diagnostic) bool {
	return d.Code >= diag.EvlInfo && d.Code < diag.EvlInfo+1000
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
