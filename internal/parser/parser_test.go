package parser

import (
	"fmt"
	"strings"
	"testing"

	"diceroll/internal/ast"
	"diceroll/internal/diag"
	"diceroll/internal/lexer"
	"diceroll/internal/source"
)

func parseText(t *testing.T, input string) (*ast.Builder, Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<test>", input))
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{})
	res := ParseExpr(lx, b, Options{Reporter: rep})
	return b, res, bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Short())
	}
	return strings.Join(lines, "; ")
}

func dump(t *testing.T, b *ast.Builder, root ast.ExprID) string {
	t.Helper()
	var sb strings.Builder
	if err := ast.Dump(&sb, b, root); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

func TestParseTrees(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"1d20 - 2", []string{
			"Binary - @0..8",
			"  Dice 1d20 @0..4",
			"  Literal 2 @7..8",
		}},
		{"1 + 2 * 3", []string{
			"Binary + @0..9",
			"  Literal 1 @0..1",
			"  Binary * @4..9",
			"    Literal 2 @4..5",
			"    Literal 3 @8..9",
		}},
		{"8 - 2 - 1", []string{
			"Binary - @0..9",
			"  Binary - @0..5",
			"    Literal 8 @0..1",
			"    Literal 2 @4..5",
			"  Literal 1 @8..9",
		}},
		{"-d4", []string{
			"Unary - @0..3",
			"  Dice d4 @1..3",
		}},
		{"2d20kh1", []string{
			"Dice 2d20 @0..7",
			"  SetOp kh1 @4..7",
		}},
		{"3d%ro<2e6", []string{
			"Dice 3d% @0..9",
			"  SetOp ro<2 @3..7",
			"  SetOp e6 @7..9",
		}},
		{"(1 + 2) * 3", []string{
			"Binary * @0..11",
			"  Paren @0..7",
			"    Binary + @1..6",
			"      Literal 1 @1..2",
			"      Literal 2 @5..6",
			"  Literal 3 @10..11",
		}},
		{"()", []string{"Set @0..2"}},
		{"(3,)", []string{
			"Set @0..4",
			"  Literal 3 @1..2",
		}},
		{"(100, 2d100)e100", []string{
			"Set @0..16",
			"  Literal 100 @1..4",
			"  Dice 2d100 @6..11",
			"  SetOp e100 @12..16",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, res, bag := parseText(t, tt.input)
			if bag.Len() != 0 || res.Errors != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
			}
			want := strings.Join(tt.want, "\n") + "\n"
			if got := dump(t, b, res.Root); got != want {
				t.Errorf("tree mismatch\n got:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestDiceSplitSpans(t *testing.T) {
	b, res, _ := parseText(t, "12d345")
	d, ok := b.Exprs.DiceData(res.Root)
	if !ok {
		t.Fatal("root is not dice")
	}
	if d.CountText != "12" || d.SidesText != "345" {
		t.Errorf("split = %q / %q", d.CountText, d.SidesText)
	}
	if d.CountSpan != (source.Span{File: 1, Start: 0, End: 2}) || d.SidesSpan != (source.Span{File: 1, Start: 3, End: 6}) {
		t.Errorf("spans = %v / %v", d.CountSpan, d.SidesSpan)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
		short string
	}{
		{"1 + 2 /", diag.SynExpectOperand, "error at 7..7: expected number, dice, '(', or '-'"},
		{"1d20 + / 2", diag.SynExpectOperand, "error at 7..8: expected number, dice, '(', or '-', but found '/'"},
		{"", diag.SynExpectOperand, "error at 0..0: expected number, dice, '(', or '-'"},
		{"(1 + 2", diag.SynUnclosedParen, "error at 6..6: expected ')'"},
		{"(2)k1", diag.SynSetOpOnGroup, "error at 3..4: set operations apply to dice and sets; write '(x,)' for a one-item set"},
		{"2d6k", diag.SynExpectSetNumber, "error at 4..4: expected number"},
		{"2d6kh1 3", diag.SynUnexpectedToken, "error at 7..8: expected '+', '-', '*', or '/', but found number"},
		{"1)", diag.SynUnexpectedToken, "error at 1..2: unmatched ')'"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, res, bag := parseText(t, tt.input)
			if bag.Len() == 0 || res.Errors == 0 {
				t.Fatal("expected a diagnostic")
			}
			first := bag.Items()[0]
			if first.Code != tt.code || first.Short() != tt.short {
				t.Errorf("got %s", diagnosticsSummary(bag))
			}
		})
	}
}

func TestMissingOperandsStayInTree(t *testing.T) {
	b, res, _ := parseText(t, "*2")
	bin, ok := b.Exprs.Binary(res.Root)
	if !ok {
		t.Fatalf("root is %v", b.Exprs.Get(res.Root))
	}
	if bin.Left.IsValid() || !bin.Right.IsValid() {
		t.Errorf("operands = %d, %d", bin.Left, bin.Right)
	}
}

func TestLexErrorNotDoubleReported(t *testing.T) {
	_, _, bag := parseText(t, "1 + x")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Errorf("diagnostics: %s", diagnosticsSummary(bag))
	}
}

func TestMaxErrors(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<test>", "(( 1 +"))
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	res := ParseExpr(lx, ast.NewBuilder(ast.Hints{}), Options{Reporter: rep, MaxErrors: 1})
	if bag.Len() != 1 {
		t.Errorf("reported %d diagnostics, want 1: %s", bag.Len(), diagnosticsSummary(bag))
	}
	if res.Errors < 2 {
		t.Errorf("Errors = %d, want every error counted", res.Errors)
	}
}
