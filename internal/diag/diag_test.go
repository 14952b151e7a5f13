package diag

import (
	"testing"

	"rill/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(SynUnexpectedToken, span(0, 0, 1), "one")) {
		t.Fatal("first add must succeed")
	}
	if !b.Add(NewError(SynUnexpectedToken, span(0, 1, 2), "two")) {
		t.Fatal("second add must succeed")
	}
	if b.Add(NewError(SynUnexpectedToken, span(0, 2, 3), "three")) {
		t.Fatal("add beyond the limit must fail")
	}
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
}

func TestBagHasErrorsAndWarnings(t *testing.T) {
	b := NewBag(10)
	if b.HasErrors() || b.HasWarnings() {
		t.Fatal("empty bag must be clean")
	}
	b.Add(NewWarning(SynEmptyStatement, span(0, 0, 1), "empty statement"))
	if b.HasErrors() {
		t.Error("warning must not count as error")
	}
	if !b.HasWarnings() {
		t.Error("warning must count as warning")
	}
	b.Add(NewError(SynUnexpectedToken, span(0, 1, 2), "oops"))
	if !b.HasErrors() {
		t.Error("error must count as error")
	}
}

func TestBagSortIsDeterministic(t *testing.T) {
	b := NewBag(10)
	b.Add(NewWarning(SynEmptyStatement, span(1, 5, 6), "w"))
	b.Add(NewError(SynUnexpectedToken, span(0, 9, 10), "late"))
	b.Add(NewError(LexError, span(0, 2, 3), "early"))
	b.Add(NewError(SynUnexpectedToken, span(1, 5, 6), "e"))
	b.Sort()

	items := b.Items()
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Errorf("file 0 diagnostics out of order: %v", items)
	}
	// внутри одного span ошибка идёт раньше предупреждения
	if items[2].Message != "e" || items[3].Message != "w" {
		t.Errorf("severity order broken: %q then %q", items[2].Message, items[3].Message)
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexError, span(0, 0, 1), "a"))
	b := NewBag(1)
	b.Add(NewError(LexError, span(0, 1, 2), "b"))
	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("merged len = %d, want 2", a.Len())
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	d := NewError(SynUnexpectedToken, span(0, 3, 4), "dup")
	b.Add(d)
	b.Add(d)
	b.Add(NewError(SynUnexpectedToken, span(0, 3, 4), "other message"))
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("after dedup len = %d, want 2", b.Len())
	}
}

func TestCodeIDs(t *testing.T) {
	tests := []struct {
		code Code
		id   string
	}{
		{LexError, "E000"},
		{SynUnexpectedToken, "E001"},
		{SynIntOverflow, "E002"},
		{SynFloatOverflow, "E003"},
		{SynExpectSemicolon, "E004"},
		{IOLoadFileError, "E005"},
		{SynEmptyStatement, "W000"},
		{ObsTimings, "I000"},
		{Code(4242), "E999"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.id)
		}
	}
}

func TestExpectedRendering(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"`;`"}, "`;`"},
		{[]string{"`;`", "`}`"}, "`;` or `}`"},
		{[]string{"`,`", "`;`", "`}`"}, "`,`, `;` or `}`"},
		{[]string{"`;`", "`;`", "`}`"}, "`;` or `}`"}, // дубликаты схлопываются
	}
	for _, tt := range tests {
		if got := NewExpected(tt.items...).String(); got != tt.want {
			t.Errorf("Expected(%v) = %q, want %q", tt.items, got, tt.want)
		}
	}
}

func TestDedupReporter(t *testing.T) {
	b := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: b})
	d := NewError(SynUnexpectedToken, span(0, 0, 1), "same")
	r.Report(d)
	r.Report(d)
	r.Report(NewError(SynUnexpectedToken, span(0, 0, 1), "different"))
	if b.Len() != 2 {
		t.Fatalf("len = %d, want 2", b.Len())
	}
}

func TestWithNoteAndFix(t *testing.T) {
	d := NewError(SynExpectSemicolon, span(0, 10, 11), "missing `;`").
		WithNote(span(0, 0, 5), "statement starts here").
		WithFix(Fix{
			ID:    "insert-semicolon",
			Title: "insert `;`",
			Edits: []TextEdit{{Span: span(0, 10, 10), NewText: ";"}},
		})
	if len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Fatalf("notes=%d fixes=%d", len(d.Notes), len(d.Fixes))
	}
	if d.Fixes[0].Edits[0].NewText != ";" {
		t.Errorf("fix edit = %+v", d.Fixes[0].Edits[0])
	}
}
