package hir

import (
	"strconv"

	"diceroll/internal/source"
)

// SetOp enumerates the rules applicable to dice and sets.
type SetOp uint8

const (
	SetOpKeep SetOp = iota
	SetOpDrop
	SetOpReroll
	SetOpRerollOnce
	SetOpRerollAdd
	SetOpExplode
	SetOpMin
	SetOpMax
)

var setOpNames = [...]string{"k", "p", "rr", "ro", "ra", "e", "mi", "ma"}

func (op SetOp) String() string {
	if int(op) < len(setOpNames) {
		return setOpNames[op]
	}
	return "?"
}

// SetSel chooses which children an operation targets.
type SetSel uint8

const (
	SelNumber SetSel = iota
	SelHighest
	SelLowest
	SelGreater
	SelLess
)

var setSelNames = [...]string{"", "h", "l", ">", "<"}

func (s SetSel) String() string {
	if int(s) < len(setSelNames) {
		return setSelNames[s]
	}
	return "?"
}

// isRank reports whether the selector orders children instead of comparing them.
func (s SetSel) isRank() bool {
	return s == SelHighest || s == SelLowest
}

// SetOperation is one rule (op, selector, num) attached to a dice or set node.
type SetOperation struct {
	Op   SetOp
	Sel  SetSel
	Num  uint64
	Span source.Span
}

// String renders the operation the way it is written, e.g. "kh1" or "rr<3".
func (o SetOperation) String() string {
	return o.Op.String() + o.Sel.String() + strconv.FormatUint(o.Num, 10)
}
