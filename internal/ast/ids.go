package ast

type (
	ExprID    uint32
	PayloadID uint32
	SetOpID   uint32
)

const (
	NoExprID    ExprID    = 0
	NoPayloadID PayloadID = 0
	NoSetOpID   SetOpID   = 0
)

func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
func (id SetOpID) IsValid() bool   { return id != NoSetOpID }
