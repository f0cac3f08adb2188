// Package testkit holds structural checks shared by parser tests and fuzz
// harnesses.
package testkit

import (
	"fmt"

	"diceroll/internal/ast"
	"diceroll/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed
// expression:
// 1) every span belongs to sf and lies within its content
// 2) every child span (operands, set items, set operations) is contained in
// its parent's span
// 3) node ids are visited once, so the tree has no sharing or cycles
func CheckSpanInvariants(b *ast.Builder, root ast.ExprID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	c := &spanChecker{b: b, file: sf, seen: make(map[ast.ExprID]bool)}
	if !root.IsValid() {
		return nil
	}
	return c.check(root, source.Span{File: sf.ID, Start: 0, End: sf.Len()})
}

type spanChecker struct {
	b    *ast.Builder
	file *source.File
	seen map[ast.ExprID]bool
}

func (c *spanChecker) check(id ast.ExprID, parent source.Span) error {
	if c.seen[id] {
		return fmt.Errorf("expr %d reached twice", id)
	}
	c.seen[id] = true

	e := c.b.Exprs.Get(id)
	if e == nil {
		return fmt.Errorf("nil expr for id=%d", id)
	}
	if err := c.within(e.Span, parent, fmt.Sprintf("%s %d", e.Kind, id)); err != nil {
		return err
	}

	var children []ast.ExprID
	var ops []ast.SetOpID
	switch e.Kind {
	case ast.ExprBinary:
		bin, _ := c.b.Exprs.Binary(id)
		children = []ast.ExprID{bin.Left, bin.Right}
	case ast.ExprUnary:
		un, _ := c.b.Exprs.Unary(id)
		children = []ast.ExprID{un.Operand}
	case ast.ExprGroup:
		g, _ := c.b.Exprs.Group(id)
		children = []ast.ExprID{g.Inner}
	case ast.ExprSet:
		s, _ := c.b.Exprs.Set(id)
		children, ops = s.Items, s.Ops
	case ast.ExprDice:
		d, _ := c.b.Exprs.DiceData(id)
		ops = d.Ops
	}

	for _, child := range children {
		if !child.IsValid() {
			continue // пропущенный операнд
		}
		if err := c.check(child, e.Span); err != nil {
			return err
		}
	}
	for _, opID := range ops {
		op := c.b.SetOps.Get(opID)
		if op == nil {
			return fmt.Errorf("nil set op for id=%d", opID)
		}
		if err := c.within(op.Span, e.Span, "set op "+op.String()); err != nil {
			return err
		}
	}
	return nil
}

func (c *spanChecker) within(sp, parent source.Span, what string) error {
	if sp.File != c.file.ID {
		return fmt.Errorf("%s: span file mismatch: got=%d want=%d", what, sp.File, c.file.ID)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("%s: inverted span %v", what, sp)
	}
	if sp.Start < parent.Start || sp.End > parent.End {
		return fmt.Errorf("%s: span %v is outside parent span %v", what, sp, parent)
	}
	return nil
}
