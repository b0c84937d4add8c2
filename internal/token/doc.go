// Package token defines lexical token kinds for the grove front end.
// Invariants:
//   - Token.Span matches Text exactly (start of first byte .. one past last).
//   - Symbol tokens (operators, punctuation, delimiters) have Text equal to
//     their fixed spelling; Symbol/SymbolKind round-trip over that spelling.
//   - Built-in type names are identifiers; the lexer does not special-case them.
package token
