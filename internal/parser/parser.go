package parser

import (
	"diceroll/internal/ast"
	"diceroll/internal/diag"
	"diceroll/internal/lexer"
	"diceroll/internal/source"
	"diceroll/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	// Root is NoExprID only for empty input.
	Root   ast.ExprID
	Errors uint
}

// Parser: состояние парсера на одно выражение
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseExpr: входная точка для разбора одного выражения.
// Разбор никогда не прерывается: отсутствующие операнды остаются NoExprID,
// а ошибки уходят в opts.Reporter.
func ParseExpr(lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	first := lx.Peek()
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		opts:     opts,
		lastSpan: source.Span{File: first.Span.File, Start: first.Span.Start, End: first.Span.Start},
	}

	root := ast.NoExprID
	if first.Kind == token.EOF {
		p.report(diag.SynExpectOperand, diag.SevError, first.Span, expectedMessage(operandStarters, first))
	} else {
		root = p.parseExpr()
	}
	p.drainTrailing()

	return Result{Root: root, Errors: p.opts.CurrentErrors}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// drainTrailing reports the first token left after a complete expression
// and skips everything up to EOF.
func (p *Parser) drainTrailing() {
	reported := false
	for !p.at(token.EOF) {
		tok := p.advance()
		if reported || tok.Kind == token.Invalid {
			continue
		}
		expected := []token.Kind{token.Plus, token.Minus, token.Star, token.Slash}
		if tok.Kind == token.RParen {
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "unmatched ')'")
		} else {
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, expectedMessage(expected, tok))
		}
		reported = true
	}
}
