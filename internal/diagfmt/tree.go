package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"grove/internal/group"
)

// FormatTree prints a grouped token stream as an indented tree. Groups show
// their delimiter, field count, span, and any construction diagnostic;
// leaves show kind and text.
func FormatTree(w io.Writer, elems []group.Elem) error {
	return writeTree(w, elems, 0)
}

func writeTree(w io.Writer, elems []group.Elem, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, e := range elems {
		if e.Sub == nil {
			if _, err := fmt.Fprintf(w, "%s%s %q at %s\n", indent, e.Tok.Kind, e.Tok.Text, e.Tok.Span); err != nil {
				return err
			}
			continue
		}
		g := e.Sub
		fmt.Fprintf(w, "%sgroup %q %d field(s) at %s", indent, g.Delim.Open(), len(g.Fields), g.Span)
		if g.Err != "" {
			fmt.Fprintf(w, "  !%s", g.Err)
		}
		fmt.Fprintln(w)
		for i, f := range g.Fields {
			fmt.Fprintf(w, "%s  field %d:\n", indent, i)
			if err := writeTree(w, f, depth+2); err != nil {
				return err
			}
		}
	}
	return nil
}
