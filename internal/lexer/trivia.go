package lexer

import (
	"grove/internal/diag"
)

// skipTrivia consumes whitespace and comments before the next significant
// token:
//   - spaces, tabs, newlines
//   - // ... to end of line
//   - /* ... */ with nesting; an unterminated block comment is reported and
//     consumed to EOF
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			lx.cursor.Bump()
			continue
		}

		b0, b1, ok := lx.cursor.Peek2()
		if !ok || b0 != '/' {
			return
		}

		switch b1 {
		case '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case '*':
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth := 1
			for depth > 0 && !lx.cursor.EOF() {
				c0, c1, ok2 := lx.cursor.Peek2()
				switch {
				case ok2 && c0 == '/' && c1 == '*':
					depth++
					lx.cursor.Bump()
					lx.cursor.Bump()
				case ok2 && c0 == '*' && c1 == '/':
					depth--
					lx.cursor.Bump()
					lx.cursor.Bump()
				default:
					lx.cursor.Bump()
				}
			}
			if depth > 0 {
				lx.report(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
			}
		default:
			return
		}
	}
}
