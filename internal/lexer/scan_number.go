package lexer

import (
	"diceroll/internal/diag"
	"diceroll/internal/token"
)

// Числа: [0-9]+. Кости: [0-9]*d[1-9][0-9]* и [0-9]*d%.
// Переполнение здесь не проверяется: текст остаётся в Token.Text,
// а слишком большие значения ловит internal/validate.
func (lx *Lexer) scanNumberOrDice() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if !lx.cursor.Eat('d') {
		return lx.emit(start, token.Number)
	}

	switch b := lx.cursor.Peek(); {
	case b == '%':
		lx.cursor.Bump()
		return lx.emit(start, token.Dice)
	case b >= '1' && b <= '9':
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(start, token.Dice)
	case b == '0':
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		tok := lx.emit(start, token.Invalid)
		lx.errLex(diag.LexBadDice, tok.Span, "dice must have at least one side")
		return tok
	default:
		tok := lx.emit(start, token.Invalid)
		lx.errLex(diag.LexBadDice, tok.Span, "expected number of sides after 'd'")
		return tok
	}
}
