package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Number is a run of decimal digits.
	Number
	// Dice is "[count]d<sides>" or "[count]d%".
	Dice

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	LParen  // (
	RParen  // )
	Comma   // ,

	// set operators
	OpKeep       // k
	OpDrop       // p
	OpReroll     // rr
	OpRerollOnce // ro
	OpRerollAdd  // ra
	OpExplode    // e
	OpMin        // mi
	OpMax        // ma

	// set selectors
	SelHighest // h
	SelLowest  // l
	SelGreater // >
	SelLess    // <
)

var kindNames = [...]string{
	Invalid:      "Invalid",
	EOF:          "EOF",
	Number:       "Number",
	Dice:         "Dice",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Percent:      "Percent",
	LParen:       "LParen",
	RParen:       "RParen",
	Comma:        "Comma",
	OpKeep:       "Keep",
	OpDrop:       "Drop",
	OpReroll:     "Reroll",
	OpRerollOnce: "RerollOnce",
	OpRerollAdd:  "RerollAdd",
	OpExplode:    "Explode",
	OpMin:        "Min",
	OpMax:        "Max",
	SelHighest:   "Highest",
	SelLowest:    "Lowest",
	SelGreater:   "Greater",
	SelLess:      "Less",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Describe is the user-facing name used in "expected X, but found Y" messages.
func (k Kind) Describe() string {
	switch k {
	case Number:
		return "number"
	case Dice:
		return "dice"
	case Plus:
		return "'+'"
	case Minus:
		return "'-'"
	case Star:
		return "'*'"
	case Slash:
		return "'/'"
	case Percent:
		return "'%'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case Comma:
		return "','"
	case OpKeep:
		return "'k'"
	case OpDrop:
		return "'p'"
	case OpReroll:
		return "'rr'"
	case OpRerollOnce:
		return "'ro'"
	case OpRerollAdd:
		return "'ra'"
	case OpExplode:
		return "'e'"
	case OpMin:
		return "'mi'"
	case OpMax:
		return "'ma'"
	case SelHighest:
		return "'h'"
	case SelLowest:
		return "'l'"
	case SelGreater:
		return "'>'"
	case SelLess:
		return "'<'"
	case EOF:
		return "end of input"
	default:
		return "invalid token"
	}
}
