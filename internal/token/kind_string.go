package token

import "strconv"

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwFn:      "KwFn",
	KwLet:     "KwLet",
	KwIf:      "KwIf",
	KwElse:    "KwElse",
	KwReturn:  "KwReturn",
	KwTrue:    "KwTrue",
	KwFalse:   "KwFalse",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Percent:   "Percent",
	Assign:    "Assign",
	EqEq:      "EqEq",
	Bang:      "Bang",
	BangEq:    "BangEq",
	Lt:        "Lt",
	LtEq:      "LtEq",
	Gt:        "Gt",
	GtEq:      "GtEq",
	AndAnd:    "AndAnd",
	OrOr:      "OrOr",
	Amp:       "Amp",
	Pipe:      "Pipe",
	Colon:     "Colon",
	Semicolon: "Semicolon",
	Comma:     "Comma",
	Dot:       "Dot",
	Arrow:     "Arrow",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
