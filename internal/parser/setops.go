package parser

import (
	"diceroll/internal/ast"
	"diceroll/internal/diag"
	"diceroll/internal/token"
)

// parseSetOpsInto разбирает суффиксы "op [sel] num" и прикрепляет их к id,
// расширяя span выражения.
func (p *Parser) parseSetOpsInto(id ast.ExprID) {
	ops := p.parseSetOps()
	if len(ops) == 0 {
		return
	}
	p.arenas.AttachOps(id, ops)
	expr := p.arenas.Exprs.Get(id)
	expr.Span = expr.Span.Cover(p.arenas.SetOps.Get(ops[len(ops)-1]).Span)
}

func (p *Parser) parseSetOps() []ast.SetOpID {
	var ops []ast.SetOpID
	for {
		op, ok := tokenKindToSetOp(p.lx.Peek().Kind)
		if !ok {
			return ops
		}
		opTok := p.advance()
		data := ast.SetOpData{Op: op, Sel: ast.SetSelNumber, Span: opTok.Span}

		if sel, ok := tokenKindToSetSel(p.lx.Peek().Kind); ok {
			selTok := p.advance()
			data.Sel = sel
			data.Span = data.Span.Cover(selTok.Span)
		}

		if p.at(token.Number) {
			num := p.advance()
			data.NumText = num.Text
			data.NumSpan = num.Span
			data.Span = data.Span.Cover(num.Span)
		} else {
			p.expect(token.Number, diag.SynExpectSetNumber)
		}
		ops = append(ops, p.arenas.NewSetOp(data))
	}
}
