package lexer

import (
	"grove/internal/diag"
	"grove/internal/token"
)

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// scanIdentOrKeyword consumes an identifier and classifies it against the
// keyword table. Identifier texts go through the interner so repeated
// spellings share one allocation.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.interner.MustLookup(lx.interner.InternBytes(lx.cursor.TextFrom(start)))
	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: text}
}

// scanNumber consumes an integer or float literal. A digit run with a single
// '.' followed by more digits is a float; a trailing '.' without digits stays
// with the integer's dot operator.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	kind := token.IntLit
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		kind = token.FloatLit
	}

	// digits immediately followed by ident characters: 12abc
	if !lx.cursor.EOF() && isIdentStartByte(lx.cursor.Peek()) {
		for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		text := string(lx.cursor.TextFrom(start))
		lx.report(diag.LexBadNumber, sp, "malformed numeric literal "+text)
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: string(lx.cursor.TextFrom(start))}
}

// scanString consumes a double-quoted string literal with \-escapes.
// An unterminated literal is reported and cut at end of line or EOF.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		if b == '"' {
			return token.Token{
				Kind: token.StringLit,
				Span: lx.cursor.SpanFrom(start),
				Text: string(lx.cursor.TextFrom(start)),
			}
		}
		if b == '\\' && !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.cursor.TextFrom(start))}
}

// scanOperatorOrPunct consumes one symbol token, longest spelling first.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return token.Token{
			Kind: k,
			Span: lx.cursor.SpanFrom(start),
			Text: string(lx.cursor.TextFrom(start)),
		}
	}

	switch {
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.cursor.TextFrom(start))
	lx.report(diag.LexUnknownChar, sp, "unknown character "+text)
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}

// try2 consumes two bytes if they match exactly.
func (lx *Lexer) try2(b0, b1 byte) bool {
	c0, c1, ok := lx.cursor.Peek2()
	if !ok || c0 != b0 || c1 != b1 {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
