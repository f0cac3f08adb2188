package parser

import (
	"strings"

	"diceroll/internal/diag"
	"diceroll/internal/source"
	"diceroll/internal/token"
)

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan: для EOF указываем на позицию сразу после последнего токена
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect: ожидаем конкретный токен. Если нет, репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, expectedMessage([]token.Kind{k}, p.lx.Peek()))
	return token.Token{Kind: token.Invalid, Span: diagSpan}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	return p.reportWithNotes(code, sev, sp, msg, nil)
}

func (p *Parser) reportWithNotes(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) bool {
	if sev == diag.SevError {
		full := p.opts.Enough()
		p.opts.CurrentErrors++
		if full {
			return false // достигли максимального количества ошибок
		}
	}
	if p.opts.Reporter == nil {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, notes)
	return true
}

// expectedMessage формирует "expected A, B, or C, but found D".
// Для EOF часть "but found" опускается.
func expectedMessage(expected []token.Kind, found token.Token) string {
	var sb strings.Builder
	sb.WriteString("expected ")
	n := len(expected)
	for i, k := range expected {
		switch {
		case i == 0:
		case i == n-1 && n == 2:
			sb.WriteString(" or ")
		case i == n-1:
			sb.WriteString(", or ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(k.Describe())
	}
	if found.Kind != token.EOF {
		sb.WriteString(", but found ")
		if found.Kind == token.Invalid {
			sb.WriteString("'" + found.Text + "'")
		} else {
			sb.WriteString(found.Kind.Describe())
		}
	}
	return sb.String()
}
