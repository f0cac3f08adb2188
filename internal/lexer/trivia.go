package lexer

import (
	"diceroll/internal/token"
)

// collectLeadingTrivia собирает подряд идущие пробельные символы перед значимым токеном.
// ' ', '\t' коалесцируются в один TriviaSpace, '\n' и '\r' в один TriviaNewline.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t':
			for b2 := lx.cursor.Peek(); b2 == ' ' || b2 == '\t'; b2 = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.holdTrivia(start, token.TriviaSpace)
		case b == '\n' || b == '\r':
			for b2 := lx.cursor.Peek(); b2 == '\n' || b2 == '\r'; b2 = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.holdTrivia(start, token.TriviaNewline)
		default:
			return
		}
	}
}

func (lx *Lexer) holdTrivia(start Mark, kind token.TriviaKind) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}
