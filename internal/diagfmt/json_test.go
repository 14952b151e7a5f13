package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"rill/internal/diag"
	"rill/internal/source"
)

func testBag(f *source.File) *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedToken,
		source.Span{File: f.ID, Start: 0, End: 3}, "unexpected"))
	bag.Add(diag.NewError(diag.SynExpectSemicolon,
		source.Span{File: f.ID, Start: 5, End: 5}, "expected `;` after statement").
		WithNote(source.Span{File: f.ID, Start: 0, End: 3}, "statement starts here").
		WithFix(diag.Fix{
			ID:    "insert-semicolon",
			Title: "insert `;`",
			Edits: []diag.TextEdit{{Span: source.Span{File: f.ID, Start: 5, End: 5}, NewText: ";"}},
		}))
	return bag
}

func TestBuildDiagnosticsOutput(t *testing.T) {
	fs, f := fixtureFile(t, "var x\n")
	bag := testBag(f)

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{
		IncludePositions: true,
		IncludeNotes:     true,
		IncludeFixes:     true,
	})

	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}

	first := out.Diagnostics[0]
	if first.Code != "E001" || first.Severity != "ERROR" {
		t.Errorf("first = %s %s", first.Severity, first.Code)
	}
	if first.Location.File != "demo.rl" || first.Location.StartByte != 0 || first.Location.EndByte != 3 {
		t.Errorf("location = %+v", first.Location)
	}
	if first.Location.StartLine != 1 || first.Location.StartCol != 1 {
		t.Errorf("positions = %+v", first.Location)
	}

	second := out.Diagnostics[1]
	if len(second.Notes) != 1 || second.Notes[0].Message != "statement starts here" {
		t.Errorf("notes = %+v", second.Notes)
	}
	if len(second.Fixes) != 1 || second.Fixes[0].ID != "insert-semicolon" {
		t.Fatalf("fixes = %+v", second.Fixes)
	}
	if len(second.Fixes[0].Edits) != 1 || second.Fixes[0].Edits[0].NewText != ";" {
		t.Errorf("edits = %+v", second.Fixes[0].Edits)
	}
}

func TestBuildDiagnosticsOutputOmissions(t *testing.T) {
	fs, f := fixtureFile(t, "var x\n")
	bag := testBag(f)

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})

	if out.Diagnostics[0].Location.StartLine != 0 {
		t.Error("positions must be omitted without IncludePositions")
	}
	if len(out.Diagnostics[1].Notes) != 0 {
		t.Error("notes must be omitted without IncludeNotes")
	}
	if len(out.Diagnostics[1].Fixes) != 0 {
		t.Error("fixes must be omitted without IncludeFixes")
	}
}

func TestBuildDiagnosticsOutputMax(t *testing.T) {
	fs, f := fixtureFile(t, "var x\n")
	bag := testBag(f)

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Errorf("max truncation failed: count = %d", out.Count)
	}
}

func TestBuildDiagnosticsOutputTimingsNotes(t *testing.T) {
	// нота диагностики таймингов попадает в вывод и без IncludeNotes
	fs, f := fixtureFile(t, "\n")
	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevInfo, diag.ObsTimings,
		source.Span{File: f.ID}, "phase timings").
		WithNote(source.Span{File: f.ID}, `{"total_ms":1.5}`))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if len(out.Diagnostics) != 1 || len(out.Diagnostics[0].Notes) != 1 {
		t.Fatalf("timings note dropped: %+v", out.Diagnostics)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	fs, f := fixtureFile(t, "var x\n")
	bag := testBag(f)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Count != 2 {
		t.Errorf("count = %d", decoded.Count)
	}
}
