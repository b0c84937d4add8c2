package diag

import (
	"testing"

	"grove/internal/source"
)

func at(file source.FileID, line, col uint32) source.Span {
	return source.Span{
		File:  file,
		Start: source.Pos{Line: line, Col: col},
		End:   source.Pos{Line: line, Col: col + 1},
	}
}

func TestBagAddHonorsLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Code: LexUnknownChar}) || !b.Add(Diagnostic{Code: LexBadNumber}) {
		t.Fatal("adds under the limit must succeed")
	}
	if b.Add(Diagnostic{Code: LexInfo}) {
		t.Error("add over the limit must be dropped")
	}
	if b.Len() != 2 || b.Cap() != 2 {
		t.Errorf("Len = %d, Cap = %d", b.Len(), b.Cap())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	b := NewBag(8)
	if b.HasErrors() || b.HasWarnings() {
		t.Fatal("empty bag reports findings")
	}
	b.Add(Diagnostic{Severity: SevInfo})
	if b.HasWarnings() {
		t.Error("info must not count as warning")
	}
	b.Add(Diagnostic{Severity: SevWarning})
	if !b.HasWarnings() || b.HasErrors() {
		t.Error("warning classification wrong")
	}
	b.Add(Diagnostic{Severity: SevError})
	if !b.HasErrors() {
		t.Error("error not detected")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(8)
	b.Add(Diagnostic{Code: GrpStrayCloser, Severity: SevError, Primary: at(1, 3, 1)})
	b.Add(Diagnostic{Code: LexUnknownChar, Severity: SevError, Primary: at(0, 2, 5)})
	b.Add(Diagnostic{Code: LexBadNumber, Severity: SevWarning, Primary: at(0, 2, 5)})
	b.Add(Diagnostic{Code: LexUnknownChar, Severity: SevError, Primary: at(0, 1, 1)})

	b.Sort()
	items := b.Items()
	if items[0].Primary.Start != (source.Pos{Line: 1, Col: 1}) {
		t.Errorf("first after sort: %v", items[0])
	}
	// same position: errors before warnings
	if items[1].Severity != SevError || items[2].Severity != SevWarning {
		t.Errorf("severity order wrong: %v then %v", items[1].Severity, items[2].Severity)
	}
	if items[3].Primary.File != 1 {
		t.Errorf("file order wrong: %v", items[3])
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(8)
	d := Diagnostic{Code: GrpUnclosedDelimiter, Primary: at(0, 1, 1)}
	b.Add(d)
	b.Add(d)
	b.Add(Diagnostic{Code: GrpUnclosedDelimiter, Primary: at(0, 2, 1)})
	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("after Dedup Len = %d, want 2", b.Len())
	}
}

func TestBagMergeGrows(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Code: LexInfo})
	other := NewBag(2)
	other.Add(Diagnostic{Code: GrpInfo})
	other.Add(Diagnostic{Code: IOInfo})

	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("Len = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Cap = %d, must cover merged items", a.Cap())
	}
}

func TestCodeIDAndTitle(t *testing.T) {
	tests := []struct {
		code  Code
		id    string
		title string
	}{
		{LexUnknownChar, "LEX1001", "unknown character"},
		{GrpExcessSeparator, "GRP2004", "excess separator"},
		{IOReadFailure, "IO4001", "failed to read source file"},
		{UnknownCode, "E0000", "unknown diagnostic"},
		{Code(9999), "E0000", "unknown diagnostic"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.id)
		}
		if got := tt.code.Title(); got != tt.title {
			t.Errorf("Title(%d) = %q, want %q", tt.code, got, tt.title)
		}
	}
}

func TestReportBuilder(t *testing.T) {
	bag := NewBag(4)
	r := BagReporter{Bag: bag}

	b := ReportError(r, GrpMismatchedDelimiter, at(0, 1, 2), "\"]\" does not match \"(\"")
	b.WithNote(at(0, 1, 1), "opened here")
	b.Emit()
	b.Emit() // second Emit is a no-op

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != SevError || d.Code != GrpMismatchedDelimiter {
		t.Errorf("got %v %v", d.Severity, d.Code)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "opened here" {
		t.Errorf("notes = %v", d.Notes)
	}
}

func TestNilReportBuilderIsSafe(t *testing.T) {
	var b *ReportBuilder
	b.WithNote(source.Span{}, "x")
	b.Emit()
	if d := b.Diagnostic(); d.Code != UnknownCode {
		t.Errorf("nil builder diagnostic = %v", d)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})

	sp := at(0, 1, 1)
	r.Report(LexUnknownChar, SevError, sp, "unknown character $", nil)
	r.Report(LexUnknownChar, SevError, sp, "unknown character $", nil)
	r.Report(LexUnknownChar, SevError, at(0, 1, 5), "unknown character $", nil)
	r.Report(LexUnknownChar, SevError, sp, "unknown character @", nil)

	if bag.Len() != 3 {
		t.Errorf("Len = %d, want 3 (one duplicate suppressed)", bag.Len())
	}
}
