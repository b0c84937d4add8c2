package token

import (
	"grove/internal/source"
)

// symbols maps each fixed symbol spelling to its kind. Symbol tokens are the
// only tokens whose Text is fully determined by their Kind.
var symbols = map[string]Kind{
	"+":  Plus,
	"-":  Minus,
	"*":  Star,
	"/":  Slash,
	"%":  Percent,
	"=":  Assign,
	"==": EqEq,
	"!":  Bang,
	"!=": BangEq,
	"<":  Lt,
	"<=": LtEq,
	">":  Gt,
	">=": GtEq,
	"&&": AndAnd,
	"||": OrOr,
	"&":  Amp,
	"|":  Pipe,
	":":  Colon,
	";":  Semicolon,
	",":  Comma,
	".":  Dot,
	"->": Arrow,
	"(":  LParen,
	")":  RParen,
	"{":  LBrace,
	"}":  RBrace,
	"[":  LBracket,
	"]":  RBracket,
}

// SymbolKind returns the kind for a fixed symbol spelling.
func SymbolKind(text string) (Kind, bool) {
	k, ok := symbols[text]
	return k, ok
}

// Symbol constructs a symbol token with the given spelling at the given span.
// Returns false if the spelling is not a recognized symbol.
func Symbol(text string, span source.Span) (Token, bool) {
	k, ok := symbols[text]
	if !ok {
		return Token{}, false
	}
	return Token{Kind: k, Span: span, Text: text}, true
}

// IsSymbol reports whether the token is a fixed-spelling symbol
// (operator, punctuation, or delimiter).
func (t Token) IsSymbol() bool {
	k, ok := symbols[t.Text]
	return ok && k == t.Kind
}

// Is reports whether the token is the symbol with the given spelling.
func (t Token) Is(lit string) bool {
	k, ok := symbols[lit]
	return ok && t.Kind == k
}
