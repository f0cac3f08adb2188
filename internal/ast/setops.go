package ast

import (
	"diceroll/internal/source"
)

// SetOpKind enumerates set operators (k p rr ro ra e mi ma).
type SetOpKind uint8

const (
	SetOpKeep SetOpKind = iota
	SetOpDrop
	SetOpReroll
	SetOpRerollOnce
	SetOpRerollAdd
	SetOpExplode
	SetOpMin
	SetOpMax
)

var setOpText = [...]string{"k", "p", "rr", "ro", "ra", "e", "mi", "ma"}

func (k SetOpKind) String() string {
	if int(k) < len(setOpText) {
		return setOpText[k]
	}
	return "?"
}

// SetSelKind enumerates selectors; SetSelNumber is the implicit one.
type SetSelKind uint8

const (
	SetSelNumber SetSelKind = iota
	SetSelHighest
	SetSelLowest
	SetSelGreater
	SetSelLess
)

var setSelText = [...]string{"", "h", "l", ">", "<"}

func (k SetSelKind) String() string {
	if int(k) < len(setSelText) {
		return setSelText[k]
	}
	return "?"
}

// SetOpData is one "op [sel] num" suffix.
// NumText is empty when the parser could not find the number.
type SetOpData struct {
	Op      SetOpKind
	Sel     SetSelKind
	NumText string
	NumSpan source.Span
	Span    source.Span
}

// Num returns the operand, or false when it is absent or does not fit in uint64.
func (d *SetOpData) Num() (uint64, bool) {
	return parseU64(d.NumText)
}

func (d *SetOpData) String() string {
	return d.Op.String() + d.Sel.String() + d.NumText
}

// SetOps stores set operations shared by dice and set expressions.
type SetOps struct {
	Arena *Arena[SetOpData]
}

func NewSetOps(capHint uint) *SetOps {
	if capHint == 0 {
		capHint = 1 << 4
	}
	return &SetOps{Arena: NewArena[SetOpData](capHint)}
}

func (s *SetOps) New(data SetOpData) SetOpID {
	return SetOpID(s.Arena.Allocate(data))
}

func (s *SetOps) Get(id SetOpID) *SetOpData {
	return s.Arena.Get(uint32(id))
}
