package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented tree of the expression rooted at id:
//
//	Binary - @0..8
//	  Dice 1d20 @0..4
//	  Literal 2 @7..8
func Dump(w io.Writer, b *Builder, id ExprID) error {
	var sb strings.Builder
	dumpExpr(&sb, b, id, 0)
	_, err := io.WriteString(w, sb.String())
	return err
}

func dumpExpr(sb *strings.Builder, b *Builder, id ExprID, depth int) {
	indent := strings.Repeat("  ", depth)
	expr := b.Exprs.Get(id)
	if expr == nil {
		fmt.Fprintf(sb, "%sMissing\n", indent)
		return
	}

	switch expr.Kind {
	case ExprLit:
		lit, _ := b.Exprs.Literal(id)
		fmt.Fprintf(sb, "%sLiteral %s @%s\n", indent, lit.Text, expr.Span)
	case ExprDice:
		d, _ := b.Exprs.DiceData(id)
		fmt.Fprintf(sb, "%sDice %sd%s @%s\n", indent, d.CountText, d.SidesText, expr.Span)
		dumpOps(sb, b, d.Ops, depth+1)
	case ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		fmt.Fprintf(sb, "%sBinary %s @%s\n", indent, bin.Op, expr.Span)
		dumpExpr(sb, b, bin.Left, depth+1)
		dumpExpr(sb, b, bin.Right, depth+1)
	case ExprUnary:
		un, _ := b.Exprs.Unary(id)
		fmt.Fprintf(sb, "%sUnary %s @%s\n", indent, un.Op, expr.Span)
		dumpExpr(sb, b, un.Operand, depth+1)
	case ExprGroup:
		g, _ := b.Exprs.Group(id)
		fmt.Fprintf(sb, "%sParen @%s\n", indent, expr.Span)
		dumpExpr(sb, b, g.Inner, depth+1)
	case ExprSet:
		s, _ := b.Exprs.Set(id)
		fmt.Fprintf(sb, "%sSet @%s\n", indent, expr.Span)
		for _, item := range s.Items {
			dumpExpr(sb, b, item, depth+1)
		}
		dumpOps(sb, b, s.Ops, depth+1)
	}
}

func dumpOps(sb *strings.Builder, b *Builder, ops []SetOpID, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, opID := range ops {
		op := b.SetOps.Get(opID)
		num := op.NumText
		if num == "" {
			num = "?"
		}
		fmt.Fprintf(sb, "%sSetOp %s%s%s @%s\n", indent, op.Op, op.Sel, num, op.Span)
	}
}
