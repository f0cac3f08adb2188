package hir

import (
	"errors"
	"math"
	"testing"

	"diceroll/internal/random"
	"diceroll/internal/source"
)

func TestDatabaseGetPanicsOnForeignIndex(t *testing.T) {
	db := NewDatabase(random.New(1))
	db.allocLiteral(source.Span{}, false, 1)

	for _, idx := range []ExprIdx{NoExprIdx, 2} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Get(%d) did not panic", idx)
				}
			}()
			db.Get(idx)
		}()
	}
}

func TestAllocKeepsPointers(t *testing.T) {
	db := NewDatabase(random.New(1))
	first := db.allocLiteral(source.Span{}, false, 1)
	p := db.Get(first)
	for i := 0; i < 1000; i++ {
		db.allocLiteral(source.Span{}, false, 2)
	}
	if db.Get(first) != p {
		t.Fatal("pointer moved after Alloc")
	}
}

func TestLiteralTotal(t *testing.T) {
	db := NewDatabase(random.New(1))
	tests := []struct {
		name     string
		values   []uint64
		exploded bool
		want     int64
		err      error
	}{
		{"last value counts", []uint64{2, 5}, false, 5, nil},
		{"exploded sums", []uint64{6, 6, 3}, true, 15, nil},
		{"no values", nil, false, 0, ErrNoValues},
		{"too large", []uint64{math.MaxUint64}, false, 0, ErrOverflow},
		{"exploded overflow", []uint64{math.MaxInt64, 1}, true, 0, ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := db.allocLiteral(source.Span{}, tt.exploded, tt.values...)
			got, err := Total(db, idx)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if got != tt.want {
				t.Fatalf("total = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDroppedAndMissingCountZero(t *testing.T) {
	db := NewDatabase(random.New(1))
	lit := db.allocLiteral(source.Span{}, false, 9)
	db.Get(lit).Drop()
	missing := db.allocMissing(source.Span{})
	sum := db.Alloc(Expression{Kind: ExprBinary, Kept: true, Data: &BinaryData{Op: OpAdd, LHS: lit, RHS: missing}})

	got, err := Total(db, sum)
	if err != nil || got != 0 {
		t.Fatalf("Total = %d, %v; want 0, nil", got, err)
	}
}

func TestDieWithoutValues(t *testing.T) {
	db := NewDatabase(random.New(1))
	die := db.Alloc(Expression{Kind: ExprDie, Kept: true, Data: &DieData{Sides: 6}})
	if _, err := Total(db, die); !errors.Is(err, ErrNoValues) {
		t.Fatalf("err = %v, want ErrNoValues", err)
	}
}

func TestApplyBinary(t *testing.T) {
	tests := []struct {
		op       BinaryOp
		lhs, rhs int64
		want     int64
		err      error
	}{
		{OpAdd, 2, 3, 5, nil},
		{OpSub, 2, 3, -1, nil},
		{OpMul, -4, 3, -12, nil},
		{OpDiv, 7, -2, -3, nil},
		{OpDiv, 1, 0, 0, ErrDivideByZero},
		{OpDiv, math.MinInt64, -1, 0, ErrOverflow},
		{OpAdd, math.MaxInt64, 1, 0, ErrOverflow},
		{OpSub, math.MinInt64, 1, 0, ErrOverflow},
		{OpMul, math.MaxInt64, 2, 0, ErrOverflow},
		{OpMul, math.MinInt64, -1, 0, ErrOverflow},
	}
	for _, tt := range tests {
		got, err := applyBinary(tt.op, tt.lhs, tt.rhs)
		if !errors.Is(err, tt.err) || got != tt.want {
			t.Errorf("%d %s %d = %d, %v; want %d, %v", tt.lhs, tt.op, tt.rhs, got, err, tt.want, tt.err)
		}
	}
}

func TestSelectTargets(t *testing.T) {
	db := NewDatabase(random.New(1))
	var children []ExprIdx
	for _, v := range []uint64{3, 6, 2, 6, 1} {
		children = append(children, db.allocLiteral(source.Span{}, false, v))
	}
	db.Get(children[4]).Drop()

	tests := []struct {
		name        string
		op          SetOperation
		skipDropped bool
		want        []bool
	}{
		{"highest 2 tie", SetOperation{Sel: SelHighest, Num: 2}, false, []bool{false, true, false, true, false}},
		{"highest 1 earlier wins", SetOperation{Sel: SelHighest, Num: 1}, false, []bool{false, true, false, false, false}},
		{"lowest 1 sees dropped", SetOperation{Sel: SelLowest, Num: 1}, false, []bool{false, false, false, false, true}},
		{"lowest 1 skips dropped", SetOperation{Sel: SelLowest, Num: 1}, true, []bool{false, false, true, false, false}},
		{"number capped", SetOperation{Sel: SelNumber, Num: 6}, false, []bool{false, true, false, true, false}},
		{"greater capped at num", SetOperation{Sel: SelGreater, Num: 1}, false, []bool{true, false, false, false, false}},
		{"less", SetOperation{Sel: SelLess, Num: 3}, true, []bool{false, false, true, false, false}},
		{"more than available", SetOperation{Sel: SelHighest, Num: 99}, true, []bool{true, true, true, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mask, _, err := selectTargets(db, children, tt.op, tt.skipDropped)
			if err != nil {
				t.Fatal(err)
			}
			for i := range tt.want {
				if mask[i] != tt.want[i] {
					t.Fatalf("mask = %v, want %v", mask, tt.want)
				}
			}
		})
	}
}
