package parser

import (
	"diceroll/internal/ast"
	"diceroll/internal/token"
)

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет; унарные связывают сильнее всех.
const (
	precAdditive       = 1 // + -
	precMultiplicative = 2 // * /
)

// operandStarters: токены, с которых может начинаться операнд.
var operandStarters = []token.Kind{token.Number, token.Dice, token.LParen, token.Minus}

// getBinaryOperatorPrec возвращает приоритет оператора или -1.
// Все бинарные операторы левоассоциативны.
func getBinaryOperatorPrec(kind token.Kind) int {
	switch kind {
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash:
		return precMultiplicative
	default:
		return -1
	}
}

func tokenKindToBinaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	case token.Minus:
		return ast.ExprBinarySub
	case token.Star:
		return ast.ExprBinaryMul
	case token.Slash:
		return ast.ExprBinaryDiv
	default:
		return ast.ExprBinaryAdd
	}
}

func getUnaryOperator(kind token.Kind) (ast.ExprUnaryOp, bool) {
	switch kind {
	case token.Minus:
		return ast.ExprUnaryNeg, true
	case token.Plus:
		return ast.ExprUnaryPlus, true
	default:
		return 0, false
	}
}

func tokenKindToSetOp(kind token.Kind) (ast.SetOpKind, bool) {
	switch kind {
	case token.OpKeep:
		return ast.SetOpKeep, true
	case token.OpDrop:
		return ast.SetOpDrop, true
	case token.OpReroll:
		return ast.SetOpReroll, true
	case token.OpRerollOnce:
		return ast.SetOpRerollOnce, true
	case token.OpRerollAdd:
		return ast.SetOpRerollAdd, true
	case token.OpExplode:
		return ast.SetOpExplode, true
	case token.OpMin:
		return ast.SetOpMin, true
	case token.OpMax:
		return ast.SetOpMax, true
	default:
		return 0, false
	}
}

func tokenKindToSetSel(kind token.Kind) (ast.SetSelKind, bool) {
	switch kind {
	case token.SelHighest:
		return ast.SetSelHighest, true
	case token.SelLowest:
		return ast.SetSelLowest, true
	case token.SelGreater:
		return ast.SetSelGreater, true
	case token.SelLess:
		return ast.SetSelLess, true
	default:
		return ast.SetSelNumber, false
	}
}
