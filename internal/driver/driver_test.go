package driver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"diceroll/internal/diag"
	"diceroll/internal/hir"
	"diceroll/internal/observ"
	"diceroll/internal/random"
	"diceroll/internal/token"
	"diceroll/internal/trace"
)

func TestTokenize(t *testing.T) {
	res := Tokenize("2d6kh1 + 3", 10)
	var kinds []token.Kind
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.Dice, token.OpKeep, token.SelHighest, token.Number, token.Plus, token.Number, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestEvalScripted(t *testing.T) {
	rctx := random.NewWithSource(random.NewFixed(14))
	res := Eval(context.Background(), "1d20 - 2", rctx, Options{})
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if total, ok := res.Total(); !ok || total != 12 {
		t.Fatalf("Total() = %d, %v; want 12, true", total, ok)
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
		msg   string
	}{
		{"1/0", diag.EvlDivideByZero, "error at 0..3: divide by zero"},
		{"1d20 +", diag.SynExpectOperand, "error at 6..6: expected number, dice, '(', or '-'"},
		{"99999999999999999999", diag.ValNumberTooLarge, "error at 0..20: number is larger than an integer's maximum value, 18446744073709551615"},
		{"4d6rrh1", diag.EvlInvalidSetOp, `error at 3..7: invalid set operation: "rr" cannot use selector "h"`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := Eval(context.Background(), tt.input, random.New(7), Options{})
			if res.Err == nil {
				t.Fatal("expected an error")
			}
			if _, ok := res.Total(); ok {
				t.Fatal("Total() should fail")
			}
			first, ok := res.Bag.FirstError()
			if !ok {
				t.Fatal("no diagnostic recorded")
			}
			if first.Code != tt.code {
				t.Errorf("code = %s, want %s", first.Code.ID(), tt.code.ID())
			}
			if got := first.Short(); got != tt.msg {
				t.Errorf("message = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestEvalErrorKinds(t *testing.T) {
	res := Eval(context.Background(), "1/0", random.New(1), Options{})
	if !errors.Is(res.Err, hir.ErrDivideByZero) {
		t.Fatalf("err = %v", res.Err)
	}
	res = Eval(context.Background(), "(1", random.New(1), Options{})
	var de *DiagError
	if !errors.As(res.Err, &de) {
		t.Fatalf("err %T is not *DiagError", res.Err)
	}
	if de.Diagnostic.Code != diag.SynUnclosedParen {
		t.Fatalf("code = %s", de.Diagnostic.Code.ID())
	}
	// the partial tree is still evaluated
	if res.Roll == nil || res.Roll.Total != 1 {
		t.Fatalf("partial roll = %+v", res.Roll)
	}
}

func TestMissingNotReportedTwice(t *testing.T) {
	res := Eval(context.Background(), "99999999999999999999d6", random.New(1), Options{})
	for _, d := range res.Bag.Items() {
		if d.Code == diag.EvlMissing {
			t.Fatalf("missing value reported after validation already did: %v", res.Bag.Items())
		}
	}
}

func TestLimits(t *testing.T) {
	res := Eval(context.Background(), "1000d6", random.New(1), Options{Limits: hir.Options{MaxDice: 100}})
	if !errors.Is(res.Err, hir.ErrTooManyDice) {
		t.Fatalf("err = %v", res.Err)
	}
}

func TestEvalBatchDeterministic(t *testing.T) {
	inputs := []string{"4d6kh3", "2d20kl1 + 5", "8d6e6", "(1, 2, 3d4)kh2", "1/0"}
	seed := uint64(42)

	run := func(jobs int) []*Result {
		res, err := EvalBatch(context.Background(), inputs, BatchOptions{Jobs: jobs, Seed: &seed})
		if err != nil {
			t.Fatal(err)
		}
		return res
	}
	serial, parallel := run(1), run(4)

	for i := range inputs {
		// each expression must match a standalone roll from Seed+i
		single := Eval(context.Background(), inputs[i], random.New(seed+uint64(i)), Options{})
		for _, r := range []*Result{serial[i], parallel[i]} {
			if r.Input != inputs[i] || r.Seed != seed+uint64(i) {
				t.Fatalf("result %d out of order: %q seed %d", i, r.Input, r.Seed)
			}
			got, gotOK := r.Total()
			want, wantOK := single.Total()
			if got != want || gotOK != wantOK {
				t.Fatalf("%q: total %d/%v, want %d/%v", inputs[i], got, gotOK, want, wantOK)
			}
		}
	}
}

func TestEvalBatchProgress(t *testing.T) {
	inputs := []string{"1d6", "2d6", "1/0", "3d6"}
	seed := uint64(3)

	var mu sync.Mutex
	seen := make(map[int]string)
	res, err := EvalBatch(context.Background(), inputs, BatchOptions{
		Jobs: 2,
		Seed: &seed,
		Progress: func(i int, r *Result) {
			mu.Lock()
			defer mu.Unlock()
			seen[i] = r.Input
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != len(inputs) {
		t.Fatalf("progress called for %d of %d expressions", len(seen), len(inputs))
	}
	for i, input := range inputs {
		if seen[i] != input || res[i].Input != input {
			t.Fatalf("progress index %d got %q, want %q", i, seen[i], input)
		}
	}
}

func TestEvalBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	seed := uint64(1)
	_, err := EvalBatch(ctx, []string{"1d6", "2d6"}, BatchOptions{Seed: &seed})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestEvalTraceAndTimings(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.FormatText, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), tr)
	timer := observ.NewTimer()

	res := Eval(ctx, "3d6kh2", random.New(3), Options{Timer: timer})
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	_ = tr.Flush()

	out := buf.String()
	for _, want := range []string{"expr", "parse", "validate", "lower", "resolve", "total", "kh2"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
	var names []string
	for _, p := range timer.Report().Phases {
		names = append(names, p.Name)
	}
	if strings.Join(names, ",") != "parse,validate,roll" {
		t.Errorf("phases = %v", names)
	}
}
