package parser

import (
	"strings"

	"diceroll/internal/ast"
	"diceroll/internal/diag"
	"diceroll/internal/source"
	"diceroll/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений.
// Возвращает NoExprID, если операнд так и не нашёлся.
func (p *Parser) parseExpr() ast.ExprID {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов
func (p *Parser) parseBinaryExpr(minPrec int) ast.ExprID {
	left := p.parseUnaryExpr()

	for {
		tok := p.lx.Peek()
		prec := getBinaryOperatorPrec(tok.Kind)
		if prec < 0 || prec < minPrec {
			break
		}
		opTok := p.advance()
		right := p.parseBinaryExpr(prec + 1)

		span := p.spanOf(left, opTok.Span).Cover(opTok.Span).Cover(p.spanOf(right, opTok.Span))
		left = p.arenas.Exprs.NewBinary(span, tokenKindToBinaryOp(opTok.Kind), left, right)
	}

	return left
}

// parseUnaryExpr обрабатывает унарные операторы (префиксы)
func (p *Parser) parseUnaryExpr() ast.ExprID {
	type prefixOp struct {
		op   ast.ExprUnaryOp
		span source.Span
	}

	var prefixes []prefixOp
	for {
		op, ok := getUnaryOperator(p.lx.Peek().Kind)
		if !ok {
			break
		}
		opTok := p.advance()
		prefixes = append(prefixes, prefixOp{op: op, span: opTok.Span})
	}

	expr := p.parsePrimaryExpr()

	// Применяем префиксы справа налево
	for i := len(prefixes) - 1; i >= 0; i-- {
		span := prefixes[i].span.Cover(p.spanOf(expr, prefixes[i].span))
		expr = p.arenas.Exprs.NewUnary(span, prefixes[i].op, expr)
	}
	return expr
}

func (p *Parser) parsePrimaryExpr() ast.ExprID {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Number:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, tok.Text)

	case token.Dice:
		p.advance()
		id := p.arenas.Exprs.NewDice(tok.Span, splitDice(tok))
		p.parseSetOpsInto(id)
		return id

	case token.LParen:
		return p.parseParenOrSet()

	case token.Invalid:
		// лексер уже сообщил об ошибке
		p.advance()
		return ast.NoExprID

	default:
		p.report(diag.SynExpectOperand, diag.SevError, p.getDiagnosticSpan(), expectedMessage(operandStarters, tok))
		// не съедаем токены, которые кто-то выше умеет обработать
		switch tok.Kind {
		case token.EOF, token.RParen, token.Comma, token.Plus, token.Star, token.Slash:
		default:
			p.advance()
		}
		return ast.NoExprID
	}
}

// parseParenOrSet разбирает "(x)", "()", "(x,)" и "(a, b, ...)".
func (p *Parser) parseParenOrSet() ast.ExprID {
	open := p.advance()

	if p.at(token.RParen) {
		closeTok := p.advance()
		id := p.arenas.Exprs.NewSet(open.Span.Cover(closeTok.Span), nil, nil)
		p.parseSetOpsInto(id)
		return id
	}

	first := p.parseExpr()
	if !p.at(token.Comma) {
		closeSpan := p.expectClose(open)
		id := p.arenas.Exprs.NewGroup(open.Span.Cover(closeSpan), first)
		if p.lx.Peek().Kind.IsSetOp() {
			opSpan := p.lx.Peek().Span
			p.parseSetOps()
			p.report(diag.SynSetOpOnGroup, diag.SevError, opSpan,
				"set operations apply to dice and sets; write '(x,)' for a one-item set")
		}
		return id
	}

	items := []ast.ExprID{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RParen) {
			break // висячая запятая: "(x,)"
		}
		items = append(items, p.parseExpr())
	}
	closeSpan := p.expectClose(open)
	id := p.arenas.Exprs.NewSet(open.Span.Cover(closeSpan), items, nil)
	p.parseSetOpsInto(id)
	return id
}

// expectClose съедает ')' или сообщает о незакрытой скобке.
func (p *Parser) expectClose(open token.Token) source.Span {
	if p.at(token.RParen) {
		return p.advance().Span
	}
	sp := p.getDiagnosticSpan()
	p.reportWithNotes(diag.SynUnclosedParen, diag.SevError, sp,
		expectedMessage([]token.Kind{token.RParen}, p.lx.Peek()),
		[]diag.Note{{Span: open.Span, Msg: "unclosed '(' opened here"}})
	return p.lastSpan
}

// spanOf returns the span of id, or fallback when the operand is missing.
func (p *Parser) spanOf(id ast.ExprID, fallback source.Span) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return fallback
}

// splitDice делит текст "3d6" на count/sides вместе со спанами.
func splitDice(tok token.Token) ast.ExprDiceData {
	i := strings.IndexByte(tok.Text, 'd')
	// лексер гарантирует наличие 'd'
	cut := tok.Span.Start + uint32(i)
	return ast.ExprDiceData{
		CountText: tok.Text[:i],
		CountSpan: source.Span{File: tok.Span.File, Start: tok.Span.Start, End: cut},
		SidesText: tok.Text[i+1:],
		SidesSpan: source.Span{File: tok.Span.File, Start: cut + 1, End: tok.Span.End},
	}
}
