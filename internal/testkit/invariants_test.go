package testkit

import (
	"strings"
	"testing"

	"diceroll/internal/ast"
	"diceroll/internal/diag"
	"diceroll/internal/lexer"
	"diceroll/internal/parser"
	"diceroll/internal/source"
)

func parse(t *testing.T, input string) (*ast.Builder, ast.ExprID, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<test>", input))
	rep := diag.BagReporter{Bag: diag.NewBag(32)}
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseExpr(lexer.New(file, lexer.Options{Reporter: rep}), b, parser.Options{Reporter: rep})
	return b, res.Root, file
}

func TestSpanInvariantsHold(t *testing.T) {
	inputs := []string{
		"1d20 + 5",
		"-(4d6kh3 - 2) * 3",
		"(1, 2d6e6, (3,))p1",
		"((1d4)",
		"1 + * 2",
		"(, 2)",
		"1d6kh",
		"",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			b, root, file := parse(t, input)
			if err := CheckSpanInvariants(b, root, file); err != nil {
				t.Fatalf("invariants broken: %v", err)
			}
		})
	}
}

func TestSpanInvariantsDetectEscape(t *testing.T) {
	b, root, file := parse(t, "1 + 2")
	bin, ok := b.Exprs.Binary(root)
	if !ok {
		t.Fatal("root is not binary")
	}
	b.Exprs.Get(bin.Right).Span.End = 99

	err := CheckSpanInvariants(b, root, file)
	if err == nil || !strings.Contains(err.Error(), "outside parent span") {
		t.Fatalf("expected containment error, got %v", err)
	}
}
