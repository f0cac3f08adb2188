package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"diceroll/internal/ast"
	"diceroll/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
}

// FormatASTPretty печатает дерево выражения с псевдографикой.
func FormatASTPretty(w io.Writer, builder *ast.Builder, root ast.ExprID) error {
	return formatExprPretty(w, builder, root, "", "")
}

func formatExprPretty(w io.Writer, builder *ast.Builder, id ast.ExprID, head, prefix string) error {
	expr := builder.Exprs.Get(id)
	if expr == nil {
		_, err := fmt.Fprintf(w, "%sMissing\n", head)
		return err
	}

	label, children := describeExpr(builder, id)
	if _, err := fmt.Fprintf(w, "%s%s (span: %s)\n", head, label, expr.Span); err != nil {
		return err
	}

	var ops []ast.SetOpID
	switch expr.Kind {
	case ast.ExprDice:
		d, _ := builder.Exprs.DiceData(id)
		ops = d.Ops
	case ast.ExprSet:
		s, _ := builder.Exprs.Set(id)
		ops = s.Ops
	}

	total := len(children) + len(ops)
	for i, child := range children {
		branch, next := treeBranch(i == total-1)
		if err := formatExprPretty(w, builder, child, prefix+branch, prefix+next); err != nil {
			return err
		}
	}
	for i, opID := range ops {
		branch, _ := treeBranch(len(children)+i == total-1)
		op := builder.SetOps.Get(opID)
		if _, err := fmt.Fprintf(w, "%s%sSetOp %s (span: %s)\n", prefix, branch, setOpLabel(op), op.Span); err != nil {
			return err
		}
	}
	return nil
}

func treeBranch(last bool) (string, string) {
	if last {
		return "└─ ", "   "
	}
	return "├─ ", "│  "
}

func setOpLabel(op *ast.SetOpData) string {
	if op.NumText == "" {
		return op.Op.String() + op.Sel.String() + "?"
	}
	return op.String()
}

// describeExpr returns the node label and its expression children in order.
func describeExpr(builder *ast.Builder, id ast.ExprID) (string, []ast.ExprID) {
	expr := builder.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := builder.Exprs.Literal(id)
		return "Literal " + lit.Text, nil
	case ast.ExprDice:
		d, _ := builder.Exprs.DiceData(id)
		return "Dice " + d.CountText + "d" + d.SidesText, nil
	case ast.ExprBinary:
		bin, _ := builder.Exprs.Binary(id)
		return "Binary " + bin.Op.String(), []ast.ExprID{bin.Left, bin.Right}
	case ast.ExprUnary:
		un, _ := builder.Exprs.Unary(id)
		return "Unary " + un.Op.String(), []ast.ExprID{un.Operand}
	case ast.ExprGroup:
		g, _ := builder.Exprs.Group(id)
		return "Paren", []ast.ExprID{g.Inner}
	case ast.ExprSet:
		s, _ := builder.Exprs.Set(id)
		return fmt.Sprintf("Set[%d]", len(s.Items)), s.Items
	}
	return expr.Kind.String(), nil
}

// FormatASTJSON пишет дерево выражения одним JSON-документом.
func FormatASTJSON(w io.Writer, builder *ast.Builder, root ast.ExprID) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildExprJSON(builder, root))
}

func buildExprJSON(builder *ast.Builder, id ast.ExprID) ASTNodeOutput {
	expr := builder.Exprs.Get(id)
	if expr == nil {
		return ASTNodeOutput{Type: "Expr", Kind: "Missing"}
	}

	out := ASTNodeOutput{Type: "Expr", Kind: expr.Kind.String(), Span: expr.Span}
	var ops []ast.SetOpID
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := builder.Exprs.Literal(id)
		out.Text = lit.Text
	case ast.ExprDice:
		d, _ := builder.Exprs.DiceData(id)
		out.Text = d.CountText + "d" + d.SidesText
		out.Fields = map[string]any{"count": d.CountText, "sides": d.SidesText}
		ops = d.Ops
	case ast.ExprBinary:
		bin, _ := builder.Exprs.Binary(id)
		out.Text = bin.Op.String()
	case ast.ExprUnary:
		un, _ := builder.Exprs.Unary(id)
		out.Text = un.Op.String()
	case ast.ExprSet:
		s, _ := builder.Exprs.Set(id)
		ops = s.Ops
	}

	_, children := describeExpr(builder, id)
	for _, child := range children {
		out.Children = append(out.Children, buildExprJSON(builder, child))
	}
	for _, opID := range ops {
		op := builder.SetOps.Get(opID)
		out.Children = append(out.Children, ASTNodeOutput{
			Type: "SetOp",
			Kind: op.Op.String(),
			Span: op.Span,
			Text: setOpLabel(op),
			Fields: map[string]any{
				"selector": op.Sel.String(),
				"num":      op.NumText,
			},
		})
	}
	return out
}
