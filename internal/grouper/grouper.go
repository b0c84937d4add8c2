// Package grouper turns a flat token stream into a tree of tokens and
// balanced delimiter groups. It owns the scanning: group.New only checks the
// partition it is handed.
package grouper

import (
	"fmt"

	"grove/internal/diag"
	"grove/internal/group"
	"grove/internal/source"
	"grove/internal/token"
)

type Options struct {
	// Reporter receives grouping diagnostics; nil drops them.
	Reporter diag.Reporter
}

// frame is one open delimiter waiting for its closer.
type frame struct {
	open   token.Token
	delim  group.Delim
	fields []group.Field
	seps   []token.Token
	cur    group.Field
}

// Run groups a token stream. A trailing EOF token is ignored. Malformed
// input (stray closers, mismatched or unclosed delimiters) is reported and
// repaired with the closest balanced reading, so the result is always a
// usable tree.
func Run(toks []token.Token, opts Options) []group.Elem {
	g := &grouper{opts: opts}
	g.stack = append(g.stack, frame{}) // bottom frame holds the top-level stream

	for _, tok := range toks {
		switch {
		case tok.Kind == token.EOF:
			// nothing
		case group.IsOpen(tok):
			g.push(tok)
		case group.IsClose(tok):
			g.close(tok)
		case tok.Kind == token.Comma && len(g.stack) > 1:
			g.separator(tok)
		default:
			g.elem(group.TokElem(tok))
		}
	}

	// unclosed delimiters: close everything at the end of the stream
	for len(g.stack) > 1 {
		top := &g.stack[len(g.stack)-1]
		if g.opts.Reporter != nil {
			g.opts.Reporter.Report(diag.GrpUnclosedDelimiter, diag.SevError, top.open.Span,
				fmt.Sprintf("unclosed %q, expected %q", top.open.Text, top.delim.Close()), nil)
		}
		end := top.open.Span.End
		if n := len(top.cur); n > 0 {
			end = top.cur[n-1].Span().End
		} else if n := len(top.seps); n > 0 {
			end = top.seps[n-1].Span.End
		} else if n := len(top.fields); n > 0 {
			f := top.fields[n-1]
			end = f[len(f)-1].Span().End
		}
		g.finish(end)
	}

	return g.stack[0].cur
}

type grouper struct {
	opts  Options
	stack []frame
}

func (g *grouper) top() *frame {
	return &g.stack[len(g.stack)-1]
}

func (g *grouper) elem(e group.Elem) {
	t := g.top()
	t.cur = append(t.cur, e)
}

func (g *grouper) push(open token.Token) {
	d, ok := group.DelimOf(open.Text)
	if !ok {
		// IsOpen guarantees one of the three spellings
		panic(fmt.Errorf("internal: open token %q has no delimiter", open.Text))
	}
	g.stack = append(g.stack, frame{open: open, delim: d})
}

// separator ends the current field. Empty fields are not recorded: the
// resulting separator surplus is what group.New diagnoses, which turns
// doubled and trailing separators into one uniform excess-separator error.
func (g *grouper) separator(sep token.Token) {
	t := g.top()
	if len(t.cur) > 0 {
		t.fields = append(t.fields, t.cur)
		t.cur = nil
	}
	t.seps = append(t.seps, sep)
}

func (g *grouper) close(closer token.Token) {
	if len(g.stack) == 1 {
		if g.opts.Reporter != nil {
			g.opts.Reporter.Report(diag.GrpStrayCloser, diag.SevError, closer.Span,
				fmt.Sprintf("%q has no matching opener", closer.Text), nil)
		}
		g.elem(group.TokElem(closer))
		return
	}

	t := g.top()
	if opener, err := group.Matching(closer.Text); err != nil || opener != t.open.Text {
		if g.opts.Reporter != nil {
			diag.ReportError(g.opts.Reporter, diag.GrpMismatchedDelimiter, closer.Span,
				fmt.Sprintf("%q does not match %q", closer.Text, t.open.Text)).
				WithNote(t.open.Span, "opened here").
				Emit()
		}
		// repair: treat it as the closer of the innermost open group
	}
	g.finish(closer.Span.End)
}

// finish pops the top frame into a group ending at the given position and
// appends it to the enclosing frame.
func (g *grouper) finish(end source.Pos) {
	t := g.top()
	if len(t.cur) > 0 {
		t.fields = append(t.fields, t.cur)
		t.cur = nil
	}

	span := source.Span{File: t.open.Span.File, Start: t.open.Span.Start, End: end}
	grp, err := group.New(t.delim, t.fields, t.seps, span)
	if err != nil {
		// the frame discipline above cannot produce a separator deficit
		panic(err)
	}
	if grp.Err != "" && g.opts.Reporter != nil {
		expected := len(grp.Fields) - 1
		if expected < 0 {
			expected = 0
		}
		g.opts.Reporter.Report(diag.GrpExcessSeparator, diag.SevError, grp.Seps[expected].Span, grp.Err, nil)
	}

	g.stack = g.stack[:len(g.stack)-1]
	g.elem(group.GroupElem(grp))
}
