package group

import (
	"strings"

	"grove/internal/emit"
)

// Canonical renders the group in normalized form: the opening delimiter,
// fields joined with a literal ", " regardless of the original separator
// spelling or layout, tokens inside a field joined with single spaces, and
// the closing delimiter. Original whitespace is deliberately discarded;
// diagnostics and snapshots use this form.
func (g *Group) Canonical() string {
	var b strings.Builder
	b.WriteString(g.Delim.Open())
	for i, f := range g.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		for j, e := range f {
			if j > 0 {
				b.WriteByte(' ')
			}
			if e.Sub != nil {
				b.WriteString(e.Sub.Canonical())
			} else {
				b.WriteString(e.Tok.Text)
			}
		}
	}
	b.WriteString(g.Delim.Close())
	return b.String()
}

// SourceText reconstructs the original source text of the group, including
// the original whitespace and newlines. The emitter starts at the opening
// delimiter's position and every token in the run carries its own recorded
// position, so the gaps between tokens come out exactly as written.
func (g *Group) SourceText() string {
	e := emit.New(g.Span.Start)
	for _, tok := range g.Tokens() {
		e.Token(tok)
	}
	return e.String()
}

func (g *Group) String() string {
	return g.Canonical()
}
