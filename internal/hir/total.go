package hir

import (
	"math"

	"fortio.org/safecast"
)

// Total computes the signed value of idx. It never rolls and never mutates.
// Dropped nodes and Missing operands contribute 0.
func Total(db *Database, idx ExprIdx) (int64, error) {
	e := db.Get(idx)
	if !e.Kept {
		return 0, nil
	}

	switch d := e.Data.(type) {
	case *MissingData:
		return 0, nil

	case *LiteralData:
		return literalTotal(db, idx, d)

	case *BinaryData:
		lhs, err := Total(db, d.LHS)
		if err != nil {
			return 0, err
		}
		rhs, err := Total(db, d.RHS)
		if err != nil {
			return 0, err
		}
		v, kind := applyBinary(d.Op, lhs, rhs)
		if kind != nil {
			return 0, newError(kind, db, idx, "")
		}
		return v, nil

	case *UnaryData:
		v, err := Total(db, d.Expr)
		if err != nil {
			return 0, err
		}
		if v == math.MinInt64 {
			return 0, newError(ErrOverflow, db, idx, "")
		}
		return -v, nil

	case *DieData:
		live := d.Live()
		if !live.IsValid() {
			return 0, newError(ErrNoValues, db, idx, "")
		}
		return Total(db, live)

	case *DiceData:
		return sumTotals(db, idx, d.Values)

	case *SetData:
		return sumTotals(db, idx, d.Items)
	}
	return 0, nil
}

func literalTotal(db *Database, idx ExprIdx, d *LiteralData) (int64, error) {
	if len(d.Values) == 0 {
		return 0, newError(ErrNoValues, db, idx, "")
	}
	if !d.Exploded {
		v, err := safecast.Conv[int64](d.Values[len(d.Values)-1])
		if err != nil {
			return 0, newError(ErrOverflow, db, idx, "")
		}
		return v, nil
	}
	var sum int64
	for _, raw := range d.Values {
		v, err := safecast.Conv[int64](raw)
		if err != nil {
			return 0, newError(ErrOverflow, db, idx, "")
		}
		var ok bool
		if sum, ok = addInt64(sum, v); !ok {
			return 0, newError(ErrOverflow, db, idx, "")
		}
	}
	return sum, nil
}

func sumTotals(db *Database, idx ExprIdx, children []ExprIdx) (int64, error) {
	var sum int64
	for _, c := range children {
		v, err := Total(db, c)
		if err != nil {
			return 0, err
		}
		var ok bool
		if sum, ok = addInt64(sum, v); !ok {
			return 0, newError(ErrOverflow, db, idx, "")
		}
	}
	return sum, nil
}

// applyBinary returns the result or the sentinel describing why there is none.
func applyBinary(op BinaryOp, lhs, rhs int64) (int64, error) {
	var (
		v  int64
		ok bool
	)
	switch op {
	case OpAdd:
		v, ok = addInt64(lhs, rhs)
	case OpSub:
		v, ok = subInt64(lhs, rhs)
	case OpMul:
		v, ok = mulInt64(lhs, rhs)
	case OpDiv:
		if rhs == 0 {
			return 0, ErrDivideByZero
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return 0, ErrOverflow
		}
		// Go truncates toward zero
		return lhs / rhs, nil
	}
	if !ok {
		return 0, ErrOverflow
	}
	return v, nil
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func subInt64(a, b int64) (int64, bool) {
	s := a - b
	if (b > 0 && s > a) || (b < 0 && s < a) {
		return 0, false
	}
	return s, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
