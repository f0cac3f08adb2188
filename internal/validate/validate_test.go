package validate

import (
	"testing"

	"diceroll/internal/ast"
	"diceroll/internal/diag"
	"diceroll/internal/lexer"
	"diceroll/internal/parser"
	"diceroll/internal/source"
)

func build(t *testing.T, input string) *ast.Builder {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<test>", input))
	bag := diag.NewBag(8)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	b := ast.NewBuilder(ast.Hints{})
	parser.ParseExpr(lx, b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse errors for %q: %v", input, bag.Items())
	}
	return b
}

func TestValidate(t *testing.T) {
	tests := []struct {
		input string
		want  []source.Span
	}{
		{"123", nil},
		{"18446744073709551615", nil},
		{"99999999999999999999", []source.Span{{File: 1, Start: 0, End: 20}}},
		{"1 + 99999999999999999999d6", []source.Span{{File: 1, Start: 4, End: 24}}},
		{"2d99999999999999999999", []source.Span{{File: 1, Start: 2, End: 22}}},
		{"4d6kh99999999999999999999 + 99999999999999999999", []source.Span{
			{File: 1, Start: 5, End: 25},
			{File: 1, Start: 28, End: 48},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			errs := Validate(build(t, tt.input))
			if len(errs) != len(tt.want) {
				t.Fatalf("got %d errors, want %d: %+v", len(errs), len(tt.want), errs)
			}
			for i, e := range errs {
				if e.Kind != NumberTooLarge || e.Range != tt.want[i] {
					t.Errorf("error %d = %+v, want range %v", i, e, tt.want[i])
				}
			}
		})
	}
}

func TestReportMessage(t *testing.T) {
	bag := diag.NewBag(4)
	n := Report(build(t, "99999999999999999999"), diag.BagReporter{Bag: bag})
	if n != 1 || bag.Len() != 1 {
		t.Fatalf("reported %d / %d", n, bag.Len())
	}
	want := "number is larger than an integer's maximum value, 18446744073709551615"
	if got := bag.Items()[0].Message; got != want {
		t.Errorf("message = %q", got)
	}
	if bag.Items()[0].Code != diag.ValNumberTooLarge {
		t.Errorf("code = %s", bag.Items()[0].Code.ID())
	}
}
