package hir

import (
	"fmt"
	"iter"

	"fortio.org/safecast"

	"diceroll/internal/random"
	"diceroll/internal/source"
)

// Database is the append-only arena owning every expression of one roll.
// Indices are never reused; pointers returned by Get stay valid across Alloc.
type Database struct {
	exprs []*Expression
	ctx   *random.Context
}

// NewDatabase creates an empty arena rolling from ctx.
func NewDatabase(ctx *random.Context) *Database {
	return &Database{
		exprs: make([]*Expression, 0, 32),
		ctx:   ctx,
	}
}

// Alloc appends e and returns its index (1-based).
func (db *Database) Alloc(e Expression) ExprIdx {
	node := e
	db.exprs = append(db.exprs, &node)
	n, err := safecast.Conv[uint32](len(db.exprs))
	if err != nil {
		panic(fmt.Errorf("hir arena overflow: %w", err))
	}
	return ExprIdx(n)
}

// Get returns the expression at idx for reading or in-place mutation.
// A zero or foreign index is a programming error and panics.
func (db *Database) Get(idx ExprIdx) *Expression {
	if idx == NoExprIdx || int(idx) > len(db.exprs) {
		panic(fmt.Sprintf("hir: expression index %d out of range (len %d)", idx, len(db.exprs)))
	}
	return db.exprs[idx-1]
}

// Len returns the number of allocated expressions.
func (db *Database) Len() int { return len(db.exprs) }

// Ctx returns the roll context used for lowering and rerolls.
func (db *Database) Ctx() *random.Context { return db.ctx }

// All iterates expressions in allocation order.
func (db *Database) All() iter.Seq2[ExprIdx, *Expression] {
	return func(yield func(ExprIdx, *Expression) bool) {
		for i, e := range db.exprs {
			if !yield(ExprIdx(i+1), e) { //nolint:gosec // bounded by Alloc
				return
			}
		}
	}
}

func (db *Database) allocMissing(span source.Span) ExprIdx {
	return db.Alloc(Expression{Kind: ExprMissing, Kept: false, Span: span, Data: &MissingData{}})
}

func (db *Database) allocLiteral(span source.Span, exploded bool, values ...uint64) ExprIdx {
	return db.Alloc(Expression{
		Kind: ExprLiteral,
		Kept: true,
		Span: span,
		Data: &LiteralData{Values: values, Exploded: exploded},
	})
}

func (db *Database) allocDie(span source.Span, sides uint64, lit ExprIdx) ExprIdx {
	return db.Alloc(Expression{
		Kind: ExprDie,
		Kept: true,
		Span: span,
		Data: &DieData{Sides: sides, Values: []ExprIdx{lit}},
	})
}
