package hir

import "fmt"

// incompatible lists selectors an operation can never be combined with.
var incompatible = map[SetOp][]SetSel{
	SetOpReroll: {SelHighest, SelLowest},
	SetOpMin:    {SelHighest, SelLowest, SelGreater, SelLess},
	SetOpMax:    {SelHighest, SelLowest, SelGreater, SelLess},
}

// setOps are the operations a Set accepts.
var setOps = map[SetOp]bool{
	SetOpKeep:      true,
	SetOpDrop:      true,
	SetOpExplode:   true,
	SetOpRerollAdd: true,
}

// Validate checks every set operation in the arena. It runs before any
// mutation so an expression is either resolved completely or not at all.
func Validate(db *Database) error {
	for idx, e := range db.All() {
		switch d := e.Data.(type) {
		case *DiceData:
			for _, op := range d.Ops {
				if err := validateDiceOp(db, idx, d, op); err != nil {
					return err
				}
			}
		case *SetData:
			for _, op := range d.Ops {
				if err := validateSetOp(db, idx, op); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkCompatible(db *Database, idx ExprIdx, op SetOperation) error {
	for _, sel := range incompatible[op.Op] {
		if sel == op.Sel {
			err := newError(ErrInvalidSetOp, db, idx, fmt.Sprintf("%q cannot use selector %q", op.Op.String(), op.Sel.String()))
			err.Span = op.Span
			return err
		}
	}
	return nil
}

func validateDiceOp(db *Database, idx ExprIdx, d *DiceData, op SetOperation) error {
	if err := checkCompatible(db, idx, op); err != nil {
		return err
	}
	if op.Op == SetOpReroll && d.Count > 0 && rerollsEveryFace(op, d.Sides) {
		err := newError(ErrInvalidSetOp, db, idx, fmt.Sprintf("%q matches every face of a d%d", op.String(), d.Sides))
		err.Span = op.Span
		return err
	}
	return nil
}

func validateSetOp(db *Database, idx ExprIdx, op SetOperation) error {
	if err := checkCompatible(db, idx, op); err != nil {
		return err
	}
	if !setOps[op.Op] {
		err := newError(ErrSetOpNotSupported, db, idx, fmt.Sprintf("%q", op.Op.String()))
		err.Span = op.Span
		return err
	}
	return nil
}

// rerollsEveryFace reports whether a reroll selector matches all of 1..sides,
// so no roll could ever leave the selection.
func rerollsEveryFace(op SetOperation, sides uint64) bool {
	switch op.Sel {
	case SelNumber:
		return sides == 1 && op.Num == 1
	case SelLess:
		return op.Num > sides
	}
	// Greater: "rr>0" would match everything but its target cap is zero
	return false
}
