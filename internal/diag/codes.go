package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexBadDice     Code = 1002

	// Парсерные
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynExpectOperand   Code = 2002
	SynUnclosedParen   Code = 2003
	SynExpectSetNumber Code = 2004
	SynSetOpOnGroup    Code = 2005

	// Проверка литералов
	ValInfo           Code = 3000
	ValNumberTooLarge Code = 3001

	// Вычисление
	EvlInfo              Code = 4000
	EvlDivideByZero      Code = 4001
	EvlNoValues          Code = 4002
	EvlMissing           Code = 4003
	EvlInvalidSetOp      Code = 4004
	EvlSetOpNotSupported Code = 4005
	EvlRerollLimit       Code = 4006
	EvlZeroSides         Code = 4007
	EvlOverflow          Code = 4008
	EvlTooManyDice       Code = 4009
	EvlTooManySides      Code = 4010
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	LexInfo:              "Lexical information",
	LexUnknownChar:       "Unknown character",
	LexBadDice:           "Malformed dice",
	SynInfo:              "Syntax information",
	SynUnexpectedToken:   "Unexpected token",
	SynExpectOperand:     "Expected operand",
	SynUnclosedParen:     "Unclosed parenthesis",
	SynExpectSetNumber:   "Set operation without number",
	SynSetOpOnGroup:      "Set operation on a parenthesized expression",
	ValInfo:              "Validation information",
	ValNumberTooLarge:    "Number too large",
	EvlInfo:              "Evaluation information",
	EvlDivideByZero:      "Division by zero",
	EvlNoValues:          "No rolled values",
	EvlMissing:           "Missing value",
	EvlInvalidSetOp:      "Invalid set operation",
	EvlSetOpNotSupported: "Set operation not supported on sets",
	EvlRerollLimit:       "Reroll limit reached",
	EvlZeroSides:         "Die without sides",
	EvlOverflow:          "Total overflow",
	EvlTooManyDice:       "Too many dice",
	EvlTooManySides:      "Too many sides",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("VAL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("EVL%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
