package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"grove/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind      string `json:"kind"`
	Text      string `json:"text,omitempty"`
	StartLine uint32 `json:"startLine"`
	StartCol  uint32 `json:"startCol"`
	EndLine   uint32 `json:"endLine"`
	EndCol    uint32 `json:"endCol"`
}

// FormatTokensPretty prints tokens one per line with their positions.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			tok.Span.Start.Line, tok.Span.Start.Col,
			tok.Span.End.Line, tok.Span.End.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON prints tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			StartLine: tok.Span.Start.Line,
			StartCol:  tok.Span.Start.Col,
			EndLine:   tok.Span.End.Line,
			EndCol:    tok.Span.End.Col,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
