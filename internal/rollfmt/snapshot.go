package rollfmt

import (
	"diceroll/internal/hir"
)

// NodeSnapshot is one arena node in machine-readable form.
type NodeSnapshot struct {
	Idx      uint32   `json:"idx" msgpack:"idx"`
	Kind     string   `json:"kind" msgpack:"kind"`
	Kept     bool     `json:"kept" msgpack:"kept"`
	Start    uint32   `json:"start" msgpack:"start"`
	End      uint32   `json:"end" msgpack:"end"`
	Op       string   `json:"op,omitempty" msgpack:"op,omitempty"`
	Values   []uint64 `json:"values,omitempty" msgpack:"values,omitempty"`
	Exploded bool     `json:"exploded,omitempty" msgpack:"exploded,omitempty"`
	Count    uint64   `json:"count,omitempty" msgpack:"count,omitempty"`
	Sides    uint64   `json:"sides,omitempty" msgpack:"sides,omitempty"`
	Children []uint32 `json:"children,omitempty" msgpack:"children,omitempty"`
	Ops      []string `json:"ops,omitempty" msgpack:"ops,omitempty"`
}

// Snapshot is the full record of one evaluated expression.
// Total is absent when evaluation failed.
type Snapshot struct {
	Input     string         `json:"input" msgpack:"input"`
	Seed      uint64         `json:"seed" msgpack:"seed"`
	Total     *int64         `json:"total,omitempty" msgpack:"total,omitempty"`
	Error     string         `json:"error,omitempty" msgpack:"error,omitempty"`
	Breakdown string         `json:"breakdown,omitempty" msgpack:"breakdown,omitempty"`
	Root      uint32         `json:"root" msgpack:"root"`
	Nodes     []NodeSnapshot `json:"nodes,omitempty" msgpack:"nodes,omitempty"`
}

// Snap builds the snapshot of an entry.
func Snap(e Entry) Snapshot {
	s := Snapshot{Input: e.Input}
	if e.Err != nil {
		s.Error = e.Err.Error()
	}
	if e.Roll == nil {
		return s
	}
	s.Seed = e.Roll.Seed
	s.Root = uint32(e.Roll.Root)
	if e.ok() {
		total := e.Roll.Total
		s.Total = &total
	}
	if e.Roll.Root.IsValid() {
		s.Breakdown = Breakdown(e.Roll.DB, e.Roll.Root, Options{})
	}

	s.Nodes = make([]NodeSnapshot, 0, e.Roll.DB.Len())
	for idx, expr := range e.Roll.DB.All() {
		s.Nodes = append(s.Nodes, snapNode(idx, expr))
	}
	return s
}

func snapNode(idx hir.ExprIdx, e *hir.Expression) NodeSnapshot {
	n := NodeSnapshot{
		Idx:   uint32(idx),
		Kind:  e.Kind.String(),
		Kept:  e.Kept,
		Start: e.Span.Start,
		End:   e.Span.End,
	}
	switch d := e.Data.(type) {
	case *hir.LiteralData:
		n.Values = d.Values
		n.Exploded = d.Exploded
	case *hir.BinaryData:
		n.Op = d.Op.String()
		n.Children = indices(d.LHS, d.RHS)
	case *hir.UnaryData:
		n.Op = d.Op.String()
		n.Children = indices(d.Expr)
	case *hir.DieData:
		n.Sides = d.Sides
		n.Children = indices(d.Values...)
	case *hir.DiceData:
		n.Count = d.Count
		n.Sides = d.Sides
		n.Children = indices(d.Values...)
		n.Ops = opStrings(d.Ops)
	case *hir.SetData:
		n.Children = indices(d.Items...)
		n.Ops = opStrings(d.Ops)
	}
	return n
}

func indices(ids ...hir.ExprIdx) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

func opStrings(ops []hir.SetOperation) []string {
	if len(ops) == 0 {
		return nil
	}
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}
