package grouper

import (
	"strings"
	"testing"

	"grove/internal/diag"
	"grove/internal/emit"
	"grove/internal/group"
	"grove/internal/lexer"
	"grove/internal/source"
	"grove/internal/token"
)

// groupSrc lexes and groups a source string, collecting grouping diagnostics
// only; the inputs below are lexically clean.
func groupSrc(t *testing.T, src string) ([]group.Elem, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.gr", []byte(src))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{})
	bag := diag.NewBag(64)
	elems := Run(toks, Options{Reporter: diag.BagReporter{Bag: bag}})
	return elems, bag
}

func codesOf(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func onlyGroup(t *testing.T, elems []group.Elem) *group.Group {
	t.Helper()
	if len(elems) != 1 || elems[0].Sub == nil {
		t.Fatalf("want a single group element, got %v", elems)
	}
	return elems[0].Sub
}

func TestRun_Flat(t *testing.T) {
	elems, bag := groupSrc(t, "let x = 1")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(elems) != 4 {
		t.Fatalf("got %d elements, want 4", len(elems))
	}
	for _, e := range elems {
		if e.IsGroup() {
			t.Fatalf("flat stream produced a group: %v", e)
		}
	}
}

func TestRun_SimpleGroup(t *testing.T) {
	elems, bag := groupSrc(t, "(a, b)")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	g := onlyGroup(t, elems)
	if !g.Shape(group.DelimParen, 2) {
		t.Fatalf("shape mismatch: %v fields=%d", g.Delim, len(g.Fields))
	}
	if len(g.Seps) != 1 {
		t.Fatalf("seps = %d, want 1", len(g.Seps))
	}
	if g.Err != "" {
		t.Fatalf("unexpected construction diagnostic: %q", g.Err)
	}
	if got := g.Canonical(); got != "(a, b)" {
		t.Errorf("Canonical() = %q, want %q", got, "(a, b)")
	}
}

func TestRun_Nesting(t *testing.T) {
	elems, bag := groupSrc(t, "f(x, [1, 2], {y})")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(elems) != 2 {
		t.Fatalf("got %d elements, want ident + group", len(elems))
	}
	call := elems[1].Sub
	if call == nil || !call.Shape(group.DelimParen, 3) {
		t.Fatalf("call group malformed: %v", elems[1])
	}

	if !call.Fields[1][0].Sub.Shape(group.DelimBracket, 2) {
		t.Error("second argument should be a two-field bracket group")
	}
	if !call.Fields[2][0].Sub.Shape(group.DelimBrace, 1) {
		t.Error("third argument should be a one-field brace group")
	}
}

func TestRun_CommasOutsideGroupsAreTokens(t *testing.T) {
	elems, bag := groupSrc(t, "a, b")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if len(elems) != 3 || elems[1].Tok.Kind != token.Comma {
		t.Fatalf("top-level comma should stay a token, got %v", elems)
	}
}

func TestRun_ExcessSeparators(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"trailing", "(a,)", "expected 0, got 1"},
		{"leading", "(,a)", "expected 0, got 1"},
		{"doubled", "(a,,b)", "expected 1, got 2"},
		{"only separator", "(,)", "expected 0, got 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems, bag := groupSrc(t, tt.src)
			g := onlyGroup(t, elems)
			if g.Err == "" {
				t.Fatal("expected a construction diagnostic")
			}
			if !strings.Contains(g.Err, tt.want) {
				t.Errorf("Err = %q, missing %q", g.Err, tt.want)
			}
			if got := codesOf(bag); len(got) != 1 || got[0] != diag.GrpExcessSeparator {
				t.Errorf("codes = %v, want one GrpExcessSeparator", got)
			}
		})
	}
}

func TestRun_StrayCloser(t *testing.T) {
	elems, bag := groupSrc(t, "a ) b")
	if got := codesOf(bag); len(got) != 1 || got[0] != diag.GrpStrayCloser {
		t.Fatalf("codes = %v, want one GrpStrayCloser", got)
	}
	// the closer survives as a plain token
	if len(elems) != 3 || elems[1].Tok.Kind != token.RParen {
		t.Fatalf("got %v", elems)
	}
}

func TestRun_MismatchedCloser(t *testing.T) {
	elems, bag := groupSrc(t, "(a]")
	if got := codesOf(bag); len(got) != 1 || got[0] != diag.GrpMismatchedDelimiter {
		t.Fatalf("codes = %v, want one GrpMismatchedDelimiter", got)
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "opened here" {
		t.Errorf("mismatch diagnostic should point at the opener, got %v", d.Notes)
	}
	// repaired as the closer of the innermost group
	g := onlyGroup(t, elems)
	if !g.Shape(group.DelimParen, 1) {
		t.Errorf("repaired group malformed: %v fields=%d", g.Delim, len(g.Fields))
	}
}

func TestRun_Unclosed(t *testing.T) {
	elems, bag := groupSrc(t, "f(a, b")
	if got := codesOf(bag); len(got) != 1 || got[0] != diag.GrpUnclosedDelimiter {
		t.Fatalf("codes = %v, want one GrpUnclosedDelimiter", got)
	}
	if len(elems) != 2 {
		t.Fatalf("got %d elements", len(elems))
	}
	g := elems[1].Sub
	if g == nil || !g.Shape(group.DelimParen, 2) {
		t.Fatalf("unclosed group should still carry both fields: %v", elems[1])
	}
	// closed at the last element
	if g.Span.End != (source.Pos{Line: 1, Col: 7}) {
		t.Errorf("span end = %v, want 1:7", g.Span.End)
	}
}

func TestRun_UnclosedNested(t *testing.T) {
	_, bag := groupSrc(t, "([")
	if got := codesOf(bag); len(got) != 2 {
		t.Fatalf("codes = %v, want two GrpUnclosedDelimiter", got)
	}
	for _, c := range codesOf(bag) {
		if c != diag.GrpUnclosedDelimiter {
			t.Errorf("code = %v, want GrpUnclosedDelimiter", c)
		}
	}
}

func TestRun_EOFOnlyStream(t *testing.T) {
	elems, bag := groupSrc(t, "")
	if len(elems) != 0 || bag.Len() != 0 {
		t.Fatalf("got %v, %v", elems, bag.Items())
	}
}

// Lexing, grouping, then re-emitting from recorded positions reproduces the
// original text for comment-free sources with space/newline layout.
func TestRun_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"simple call", "f(a, b)"},
		{"odd spacing", "f( a ,  b )"},
		{"nested", "m[{k, v}, (x)]"},
		{"multi-line", "fn main() {\n  let x = 1\n  f(x, 2)\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elems, bag := groupSrc(t, tt.src)
			if bag.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", bag.Items())
			}
			e := emit.New(source.Pos{Line: 1, Col: 1})
			for _, el := range elems {
				if el.Sub != nil {
					for _, tok := range el.Sub.Tokens() {
						e.Token(tok)
					}
				} else {
					e.Token(el.Tok)
				}
			}
			if got := e.String(); got != tt.src {
				t.Errorf("round trip:\n got %q\nwant %q", got, tt.src)
			}
		})
	}
}
