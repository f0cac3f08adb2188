package lexer

import (
	"fmt"

	"diceroll/internal/diag"
	"diceroll/internal/token"
)

// Операторы над наборами: жадно, сначала двухбуквенные (rr ro ra mi ma),
// затем однобуквенные (k p e h l).
func (lx *Lexer) scanSetWord() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try2('r', 'r'):
		return lx.emit(start, token.OpReroll)
	case lx.try2('r', 'o'):
		return lx.emit(start, token.OpRerollOnce)
	case lx.try2('r', 'a'):
		return lx.emit(start, token.OpRerollAdd)
	case lx.try2('m', 'i'):
		return lx.emit(start, token.OpMin)
	case lx.try2('m', 'a'):
		return lx.emit(start, token.OpMax)
	}

	switch lx.cursor.Bump() {
	case 'k':
		return lx.emit(start, token.OpKeep)
	case 'p':
		return lx.emit(start, token.OpDrop)
	case 'e':
		return lx.emit(start, token.OpExplode)
	case 'h':
		return lx.emit(start, token.SelHighest)
	case 'l':
		return lx.emit(start, token.SelLowest)
	}
	return lx.unknown(start)
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.Peek() >= utf8RuneSelf {
		lx.bumpRune()
		return lx.unknown(start)
	}

	switch lx.cursor.Bump() {
	case '+':
		return lx.emit(start, token.Plus)
	case '-':
		return lx.emit(start, token.Minus)
	case '*':
		return lx.emit(start, token.Star)
	case '/':
		return lx.emit(start, token.Slash)
	case '%':
		return lx.emit(start, token.Percent)
	case '(':
		return lx.emit(start, token.LParen)
	case ')':
		return lx.emit(start, token.RParen)
	case ',':
		return lx.emit(start, token.Comma)
	case '>':
		return lx.emit(start, token.SelGreater)
	case '<':
		return lx.emit(start, token.SelLess)
	}
	return lx.unknown(start)
}

func (lx *Lexer) unknown(start Mark) token.Token {
	tok := lx.emit(start, token.Invalid)
	lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unknown character %q", tok.Text))
	return tok
}
