package ast

import (
	"strings"
	"testing"

	"diceroll/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestArenaIDsAreOneBased(t *testing.T) {
	a := NewArena[int](0)
	if got := a.Get(0); got != nil {
		t.Fatalf("Get(0) = %v, want nil", *got)
	}
	first := a.Allocate(10)
	second := a.Allocate(20)
	if first != 1 || second != 2 {
		t.Fatalf("ids = %d, %d", first, second)
	}
	*a.Get(first) = 11
	if a.Slice()[0] != 11 || a.Len() != 2 {
		t.Errorf("unexpected arena state %v", a.Slice())
	}
	if a.Get(3) != nil {
		t.Error("Get past the end must be nil")
	}
}

func TestAccessorsCheckKind(t *testing.T) {
	b := NewBuilder(Hints{})
	lit := b.Exprs.NewLiteral(span(0, 1), "7")
	if _, ok := b.Exprs.Binary(lit); ok {
		t.Error("Binary() accepted a literal")
	}
	if _, ok := b.Exprs.Literal(NoExprID); ok {
		t.Error("Literal() accepted NoExprID")
	}
	data, ok := b.Exprs.Literal(lit)
	if !ok {
		t.Fatal("Literal() rejected a literal")
	}
	if v, ok := data.Value(); !ok || v != 7 {
		t.Errorf("Value() = %d, %v", v, ok)
	}
}

func TestNumericFields(t *testing.T) {
	tests := []struct {
		name      string
		count     string
		sides     string
		wantCount uint64
		wantSides uint64
		countOK   bool
		sidesOK   bool
	}{
		{"explicit", "3", "6", 3, 6, true, true},
		{"implicit count", "", "20", 1, 20, true, true},
		{"percentile", "2", "%", 2, 100, true, true},
		{"overflow count", "99999999999999999999", "6", 0, 6, false, true},
		{"overflow sides", "1", "18446744073709551616", 1, 0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ExprDiceData{CountText: tt.count, SidesText: tt.sides}
			c, cok := d.Count()
			s, sok := d.Sides()
			if c != tt.wantCount || cok != tt.countOK {
				t.Errorf("Count() = %d, %v", c, cok)
			}
			if s != tt.wantSides || sok != tt.sidesOK {
				t.Errorf("Sides() = %d, %v", s, sok)
			}
		})
	}

	lit := ExprLiteralData{Text: "18446744073709551615"}
	if v, ok := lit.Value(); !ok || v != ^uint64(0) {
		t.Errorf("max literal = %d, %v", v, ok)
	}
}

func TestAttachOps(t *testing.T) {
	b := NewBuilder(Hints{})
	dice := b.Exprs.NewDice(span(0, 3), ExprDiceData{CountText: "2", SidesText: "6"})
	op := b.NewSetOp(SetOpData{Op: SetOpKeep, Sel: SetSelHighest, NumText: "1", Span: span(3, 6)})
	if !b.AttachOps(dice, []SetOpID{op}) {
		t.Fatal("AttachOps rejected dice")
	}
	lit := b.Exprs.NewLiteral(span(7, 8), "1")
	if b.AttachOps(lit, []SetOpID{op}) {
		t.Error("AttachOps accepted a literal")
	}
	d, _ := b.Exprs.DiceData(dice)
	if len(d.Ops) != 1 || b.SetOps.Get(d.Ops[0]).String() != "kh1" {
		t.Errorf("ops = %v", d.Ops)
	}
}

func TestDump(t *testing.T) {
	b := NewBuilder(Hints{})
	dice := b.Exprs.NewDice(span(0, 4), ExprDiceData{CountText: "1", SidesText: "20"})
	two := b.Exprs.NewLiteral(span(7, 8), "2")
	root := b.Exprs.NewBinary(span(0, 8), ExprBinarySub, dice, two)

	var sb strings.Builder
	if err := Dump(&sb, b, root); err != nil {
		t.Fatal(err)
	}
	want := "Binary - @0..8\n  Dice 1d20 @0..4\n  Literal 2 @7..8\n"
	if sb.String() != want {
		t.Errorf("Dump =\n%s\nwant\n%s", sb.String(), want)
	}
}
