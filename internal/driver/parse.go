package driver

import (
	"context"
	"strconv"

	"diceroll/internal/ast"
	"diceroll/internal/diag"
	"diceroll/internal/lexer"
	"diceroll/internal/observ"
	"diceroll/internal/parser"
	"diceroll/internal/source"
	"diceroll/internal/trace"
	"diceroll/internal/validate"
)

// exprName is the virtual file name given to command-line expressions.
const exprName = "<expr>"

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Root    ast.ExprID
	Bag     *diag.Bag
}

// Parse lexes, parses and validates input. Problems go to the bag; the tree
// is always returned, with holes where operands were missing.
func Parse(ctx context.Context, input string, maxDiagnostics int, timer *observ.Timer) *ParseResult {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(exprName, input))
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	phase := timer.Begin("parse")
	span := trace.Begin(tracer, trace.ScopePass, "parse", parent)
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	res := parser.ParseExpr(lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: uint(bag.Cap()),
	})
	nodes := strconv.FormatUint(uint64(builder.Exprs.Arena.Len()), 10)
	span.WithExtra("nodes", nodes).End("")
	timer.End(phase, nodes+" nodes")

	phase = timer.Begin("validate")
	span = trace.Begin(tracer, trace.ScopePass, "validate", parent)
	n := validate.Report(builder, reporter)
	span.End(strconv.Itoa(n) + " findings")
	timer.End(phase, "")

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Root:    res.Root,
		Bag:     bag,
	}
}
