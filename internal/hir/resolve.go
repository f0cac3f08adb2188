package hir

import (
	"context"
	"strconv"

	"diceroll/internal/trace"
)

// Resolve validates and then applies every set operation in the arena.
//
// Nodes are visited in allocation order, so inner dice settle before the set
// that contains them. Each node's operations run in declared order, each one
// complete (including its rounds) before the next.
func Resolve(ctx context.Context, db *Database, opts Options) error {
	if err := Validate(db); err != nil {
		return err
	}

	r := &resolver{
		db:     db,
		opts:   opts,
		tracer: trace.FromContext(ctx),
		parent: trace.CurrentSpan(ctx),
	}

	// nodes appended while resolving carry no operations
	n := db.Len()
	for i := 1; i <= n; i++ {
		idx := ExprIdx(i) //nolint:gosec // bounded by Len
		if err := r.resolveNode(idx); err != nil {
			return err
		}
	}
	return nil
}

type resolver struct {
	db     *Database
	opts   Options
	tracer trace.Tracer
	parent uint64
}

func (r *resolver) resolveNode(idx ExprIdx) error {
	switch d := r.db.Get(idx).Data.(type) {
	case *DiceData:
		for _, op := range d.Ops {
			rounds, err := r.applyDice(idx, d, op)
			if err != nil {
				return err
			}
			r.point(idx, op, rounds)
		}
	case *SetData:
		for _, op := range d.Ops {
			rounds, err := r.applySet(idx, d, op)
			if err != nil {
				return err
			}
			r.point(idx, op, rounds)
		}
	}
	return nil
}

func (r *resolver) point(idx ExprIdx, op SetOperation, rounds int) {
	if !r.tracer.Enabled() {
		return
	}
	trace.Point(r.tracer, trace.ScopeNode, "setop", r.parent, op.String(), map[string]string{
		"node":   strconv.FormatUint(uint64(idx), 10),
		"rounds": strconv.Itoa(rounds),
	})
}

// applyDice runs one operation on a Dice node and reports how many
// selection rounds it took.
func (r *resolver) applyDice(idx ExprIdx, d *DiceData, op SetOperation) (int, error) {
	switch op.Op {
	case SetOpKeep, SetOpDrop:
		return 1, r.keepOrDrop(d.Values, op)

	case SetOpReroll:
		return r.reroll(idx, d.Values, op)

	case SetOpRerollOnce:
		mask, _, err := selectTargets(r.db, d.Values, op, true)
		if err != nil {
			return 0, err
		}
		for i, die := range d.Values {
			if mask[i] {
				r.rerollDie(die)
			}
		}
		return 1, nil

	case SetOpExplode:
		return r.explode(d.Values, op, r.explodeDie)

	case SetOpRerollAdd:
		return 1, r.explodeOnce(d.Values, op, r.explodeDie)

	case SetOpMin, SetOpMax:
		return 1, r.clamp(d.Values, op)
	}
	return 0, nil
}

// applySet runs one operation on a Set node. Validate has already rejected
// anything but keep, drop, explode and reroll-add.
func (r *resolver) applySet(_ ExprIdx, s *SetData, op SetOperation) (int, error) {
	switch op.Op {
	case SetOpKeep, SetOpDrop:
		return 1, r.keepOrDrop(s.Items, op)
	case SetOpExplode:
		return r.explode(s.Items, op, r.explodeItem)
	case SetOpRerollAdd:
		return 1, r.explodeOnce(s.Items, op, r.explodeItem)
	}
	return 0, nil
}

// keepOrDrop drops the non-selected children (keep) or the selected ones (drop).
// Already dropped children still take part in selection with total 0.
func (r *resolver) keepOrDrop(children []ExprIdx, op SetOperation) error {
	mask, _, err := selectTargets(r.db, children, op, false)
	if err != nil {
		return err
	}
	isDrop := op.Op == SetOpDrop
	for i, c := range children {
		if mask[i] == isDrop {
			r.db.Get(c).Drop()
		}
	}
	return nil
}

// reroll repeats until no live die qualifies or the round cap is hit.
func (r *resolver) reroll(idx ExprIdx, dice []ExprIdx, op SetOperation) (int, error) {
	limit := r.opts.rerollRounds()
	for round := 0; ; round++ {
		mask, picked, err := selectTargets(r.db, dice, op, true)
		if err != nil {
			return round, err
		}
		if picked == 0 {
			return round, nil
		}
		if round == limit {
			e := newError(ErrRerollLimit, r.db, idx, op.String()+" still matching after "+strconv.Itoa(limit)+" rounds")
			e.Span = op.Span
			return round, e
		}
		for i, die := range dice {
			if mask[i] {
				r.rerollDie(die)
			}
		}
	}
}

// explode repeats until every qualifying child has exploded once. A child
// never explodes twice within one operation, so the loop ends after at most
// len(children) rounds.
func (r *resolver) explode(children []ExprIdx, op SetOperation, fn func(ExprIdx)) (int, error) {
	exploded := make([]bool, len(children))
	rounds := 0
	for {
		mask, _, err := selectTargets(r.db, children, op, true)
		if err != nil {
			return rounds, err
		}
		fired := false
		for i, c := range children {
			if mask[i] && !exploded[i] {
				fn(c)
				exploded[i] = true
				fired = true
			}
		}
		if !fired {
			return rounds, nil
		}
		rounds++
	}
}

func (r *resolver) explodeOnce(children []ExprIdx, op SetOperation, fn func(ExprIdx)) error {
	mask, _, err := selectTargets(r.db, children, op, true)
	if err != nil {
		return err
	}
	for i, c := range children {
		if mask[i] {
			fn(c)
		}
	}
	return nil
}

// clamp forces every live die below (mi) or above (ma) Num onto Num.
func (r *resolver) clamp(dice []ExprIdx, op SetOperation) error {
	for _, die := range dice {
		if !r.db.Get(die).Kept {
			continue
		}
		t, err := Total(r.db, die)
		if err != nil {
			return err
		}
		c := compareNum(t, op.Num)
		if (op.Op == SetOpMin && c < 0) || (op.Op == SetOpMax && c > 0) {
			r.forceValue(die, op.Num)
		}
	}
	return nil
}
