package hir

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer is used to dump an arena as an indented tree.
type Printer struct {
	w      io.Writer
	db     *Database
	indent int
	err    error
}

// Dump writes the subtree rooted at root.
//
//	#7 Binary - @0..8
//	  #5 Dice 2d20 kh1 @0..6
//	    #2 Die d20 dropped
//	      #1 Literal 5
func Dump(w io.Writer, db *Database, root ExprIdx) error {
	p := &Printer{w: w, db: db}
	p.printExpr(root)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) line(idx ExprIdx, format string, args ...any) {
	p.printf("%s%s ", strings.Repeat("  ", p.indent), idx)
	p.printf(format, args...)
	p.printf("\n")
}

func (p *Printer) printExpr(idx ExprIdx) {
	if !idx.IsValid() {
		p.printf("%s<none>\n", strings.Repeat("  ", p.indent))
		return
	}
	e := p.db.Get(idx)
	flags := ""
	if !e.Kept && e.Kind != ExprMissing {
		flags = " dropped"
	}
	span := ""
	if !e.Span.Empty() {
		span = " @" + e.Span.String()
	}

	switch d := e.Data.(type) {
	case *MissingData:
		p.line(idx, "Missing%s", span)

	case *LiteralData:
		p.line(idx, "Literal %s%s", formatValues(d), flags)

	case *BinaryData:
		p.line(idx, "Binary %s%s%s", d.Op, flags, span)
		p.nested(d.LHS, d.RHS)

	case *UnaryData:
		p.line(idx, "Unary %s%s%s", d.Op, flags, span)
		p.nested(d.Expr)

	case *DieData:
		p.line(idx, "Die d%d%s", d.Sides, flags)
		p.nested(d.Values...)

	case *DiceData:
		p.line(idx, "Dice %dd%d%s%s%s", d.Count, d.Sides, formatOps(d.Ops), flags, span)
		p.nested(d.Values...)

	case *SetData:
		p.line(idx, "Set%s%s%s", formatOps(d.Ops), flags, span)
		p.nested(d.Items...)
	}
}

func (p *Printer) nested(children ...ExprIdx) {
	p.indent++
	for _, c := range children {
		p.printExpr(c)
	}
	p.indent--
}

// formatValues renders the value history: "5", "2 -> 4", "6 + 3 !".
func formatValues(d *LiteralData) string {
	parts := make([]string, len(d.Values))
	for i, v := range d.Values {
		parts[i] = strconv.FormatUint(v, 10)
	}
	if d.Exploded {
		return strings.Join(parts, " + ") + " !"
	}
	return strings.Join(parts, " -> ")
}

func formatOps(ops []SetOperation) string {
	if len(ops) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte(' ')
	for _, op := range ops {
		sb.WriteString(op.String())
	}
	return sb.String()
}
