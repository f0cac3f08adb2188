// Package hir provides the roll-time representation of a dice expression.
//
// HIR sits between the AST and the rendered breakdown. Lowering rolls every
// die exactly once while it allocates nodes into a Database; set operations
// then mutate those nodes in place (dropping, rerolling, exploding) and the
// total is a read-only fold over the result.
//
// Nodes never point at each other directly: every link is an ExprIdx into
// the owning Database, so appending rolls never invalidates a reference.
package hir

import "strconv"

// ExprIdx identifies an expression within one Database.
type ExprIdx uint32

// NoExprIdx is the zero sentinel; valid indices start at 1.
const NoExprIdx ExprIdx = 0

// IsValid returns true if the index is non-zero.
func (i ExprIdx) IsValid() bool { return i != NoExprIdx }

func (i ExprIdx) String() string { return "#" + strconv.FormatUint(uint64(i), 10) }
