package lexer

import (
	"grove/internal/source"
	"grove/internal/token"
)

type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	interner *source.Interner
	look     *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		opts:     opts,
		interner: source.NewInterner(),
		look:     nil,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.Next()
		lx.look = &tok
	}
	return *lx.look
}

// EmptySpan returns a zero-width span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	pos := lx.cursor.Pos()
	return source.Span{File: lx.file.ID, Start: pos, End: pos}
}

// Tokenize drains the lexer into a slice ending with the EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}
