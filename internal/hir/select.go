package hir

import (
	"cmp"
	"slices"
)

type candidate struct {
	pos   int
	total int64
}

// selectTargets returns a mask over children marking the ones op targets.
//
// Highest/Lowest sort by total (stable, so the earlier position wins ties)
// and take the first Num. Number/Greater/Less compare each total to Num
// and take at most Num matches in original order.
//
// With skipDropped, children that are already dropped are never candidates.
func selectTargets(db *Database, children []ExprIdx, op SetOperation, skipDropped bool) ([]bool, int, error) {
	cands := make([]candidate, 0, len(children))
	for i, c := range children {
		if skipDropped && !db.Get(c).Kept {
			continue
		}
		t, err := Total(db, c)
		if err != nil {
			return nil, 0, err
		}
		cands = append(cands, candidate{pos: i, total: t})
	}

	limit := len(cands)
	if op.Num < uint64(limit) {
		limit = int(op.Num) //nolint:gosec // op.Num < len
	}

	mask := make([]bool, len(children))
	picked := 0

	switch op.Sel {
	case SelHighest, SelLowest:
		desc := op.Sel == SelHighest
		slices.SortStableFunc(cands, func(a, b candidate) int {
			if desc {
				return cmp.Compare(b.total, a.total)
			}
			return cmp.Compare(a.total, b.total)
		})
		for _, c := range cands[:limit] {
			mask[c.pos] = true
			picked++
		}
	default:
		for _, c := range cands {
			if picked == limit {
				break
			}
			if matches(op.Sel, c.total, op.Num) {
				mask[c.pos] = true
				picked++
			}
		}
	}
	return mask, picked, nil
}

func matches(sel SetSel, total int64, num uint64) bool {
	c := compareNum(total, num)
	switch sel {
	case SelNumber:
		return c == 0
	case SelGreater:
		return c > 0
	case SelLess:
		return c < 0
	}
	return false
}

// compareNum orders a signed total against an unsigned operand.
func compareNum(total int64, num uint64) int {
	if total < 0 {
		return -1
	}
	return cmp.Compare(uint64(total), num)
}
