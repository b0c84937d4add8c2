package diagfmt

import (
	"encoding/json"
	"strings"
	"testing"

	"grove/internal/diag"
	"grove/internal/source"
)

func bagWithOne(fs *source.FileSet) *diag.Bag {
	id := fs.AddVirtual("main.gr", []byte("let x = 1\nf(a,,b)\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.GrpExcessSeparator,
		Message:  `"(" group has excess separator ",": expected 1, got 2`,
		Primary: source.Span{
			File:  id,
			Start: source.Pos{Line: 2, Col: 5},
			End:   source.Pos{Line: 2, Col: 6},
		},
	})
	return bag
}

func TestPretty(t *testing.T) {
	fs := source.NewFileSet()
	bag := bagWithOne(fs)

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	out := b.String()

	for _, want := range []string{
		"main.gr:2:5: ERROR GRP2004:",
		"expected 1, got 2",
		"f(a,,b)",
		"^",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPretty_UnderlineSpansToken(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.gr", []byte("foo bar\n"))
	bag := diag.NewBag(8)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "m",
		Primary: source.Span{
			File:  id,
			Start: source.Pos{Line: 1, Col: 5},
			End:   source.Pos{Line: 1, Col: 8},
		},
	})

	var b strings.Builder
	Pretty(&b, bag, fs, PrettyOpts{})
	if !strings.Contains(b.String(), "    ^~~") {
		t.Errorf("underline should cover \"bar\":\n%s", b.String())
	}
}

func TestPretty_Notes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.gr", []byte("(a]\n"))
	bag := diag.NewBag(8)
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.GrpMismatchedDelimiter,
		Message:  `"]" does not match "("`,
		Primary: source.Span{
			File:  id,
			Start: source.Pos{Line: 1, Col: 3},
			End:   source.Pos{Line: 1, Col: 4},
		},
	}
	d = d.WithNote(source.Span{
		File:  id,
		Start: source.Pos{Line: 1, Col: 1},
		End:   source.Pos{Line: 1, Col: 2},
	}, "opened here")
	bag.Add(d)

	var without strings.Builder
	Pretty(&without, bag, fs, PrettyOpts{})
	if strings.Contains(without.String(), "opened here") {
		t.Error("notes printed without ShowNotes")
	}

	var with strings.Builder
	Pretty(&with, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(with.String(), "main.gr:1:1: INFO: opened here") {
		t.Errorf("note heading missing:\n%s", with.String())
	}
}

func TestJSON(t *testing.T) {
	fs := source.NewFileSet()
	bag := bagWithOne(fs)

	var b strings.Builder
	if err := JSON(&b, bag, fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}

	var out []struct {
		Severity string `json:"severity"`
		Code     string `json:"code"`
		Span     struct {
			File      string `json:"file"`
			StartLine uint32 `json:"startLine"`
			StartCol  uint32 `json:"startCol"`
		} `json:"span"`
	}
	if err := json.Unmarshal([]byte(b.String()), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, b.String())
	}
	if len(out) != 1 {
		t.Fatalf("got %d diagnostics", len(out))
	}
	if out[0].Code != "GRP2004" || out[0].Severity != "ERROR" {
		t.Errorf("got %+v", out[0])
	}
	if out[0].Span.File != "main.gr" || out[0].Span.StartLine != 2 || out[0].Span.StartCol != 5 {
		t.Errorf("span = %+v", out[0].Span)
	}
}

func TestJSON_Max(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("main.gr", nil)
	bag := diag.NewBag(8)
	for i := 0; i < 3; i++ {
		bag.Add(diag.Diagnostic{Code: diag.LexUnknownChar})
	}

	var b strings.Builder
	if err := JSON(&b, bag, fs, JSONOpts{Max: 2}); err != nil {
		t.Fatal(err)
	}
	var out []json.RawMessage
	if err := json.Unmarshal([]byte(b.String()), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Errorf("got %d diagnostics, want 2", len(out))
	}
	if bag.Len() != 3 {
		t.Error("Max must not mutate the bag")
	}
}
