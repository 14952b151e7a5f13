package fix

import (
	"os"
	"path/filepath"
	"testing"

	"rill/internal/diag"
	"rill/internal/source"
)

func writeTempSource(t *testing.T, content string) (string, *source.FileSet, source.FileID) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return path, fs, id
}

func readBack(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func semiDiag(file source.FileID, at uint32) diag.Diagnostic {
	span := source.Span{File: file, Start: at, End: at}
	return diag.NewError(diag.SynExpectSemicolon, span, "expected `;` after statement").
		WithFix(InsertSemicolon(source.Span{File: file, Start: at, End: at}))
}

func TestApplyInsertSemicolon(t *testing.T) {
	path, fs, id := writeTempSource(t, "fun f() { g()\n}\n")

	result, err := Apply(fs, []diag.Diagnostic{semiDiag(id, 13)}, ApplyOptions{Mode: ApplyModeOnce})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(result.Applied) != 1 || result.Applied[0].ID != "insert-semicolon" {
		t.Fatalf("applied = %+v", result.Applied)
	}
	if got := readBack(t, path); got != "fun f() { g();\n}\n" {
		t.Errorf("file after fix = %q", got)
	}
}

func TestApplyAllMultipleEdits(t *testing.T) {
	path, fs, id := writeTempSource(t, "a()\nb()\n")

	diags := []diag.Diagnostic{
		semiDiag(id, 3),
		semiDiag(id, 7),
	}
	result, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(result.Applied) != 2 {
		t.Fatalf("applied = %+v", result.Applied)
	}
	if got := readBack(t, path); got != "a();\nb();\n" {
		t.Errorf("file after fixes = %q", got)
	}
	if len(result.FileChanges) != 1 || result.FileChanges[0].EditCount != 2 {
		t.Errorf("changes = %+v", result.FileChanges)
	}
}

func TestApplyByID(t *testing.T) {
	path, fs, id := writeTempSource(t, "x\ny\n")

	diags := []diag.Diagnostic{
		diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 1}, "first").
			WithFix(ReplaceSpan("rename-x", "rename x", source.Span{File: id, Start: 0, End: 1}, "z", "x")),
		diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 2, End: 3}, "second").
			WithFix(ReplaceSpan("rename-y", "rename y", source.Span{File: id, Start: 2, End: 3}, "w", "y")),
	}

	result, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeID, TargetID: "rename-y"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(result.Applied) != 1 || result.Applied[0].ID != "rename-y" {
		t.Fatalf("applied = %+v", result.Applied)
	}
	if got := readBack(t, path); got != "x\nw\n" {
		t.Errorf("file = %q", got)
	}
}

func TestApplyUnknownID(t *testing.T) {
	_, fs, id := writeTempSource(t, "x\n")
	diags := []diag.Diagnostic{semiDiag(id, 1)}

	result, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeID, TargetID: "nope"})
	if err == nil {
		t.Fatal("expected ErrNoFixes")
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Reason != "fix id not found" {
		t.Errorf("skipped = %+v", result.Skipped)
	}
}

func TestApplyOldTextGuard(t *testing.T) {
	path, fs, id := writeTempSource(t, "abc\n")

	d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 3}, "msg").
		WithFix(ReplaceSpan("swap", "swap", source.Span{File: id, Start: 0, End: 3}, "xyz", "DIFFERENT"))

	result, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeOnce})
	if err == nil {
		t.Fatal("guarded edit must not apply")
	}
	if len(result.Skipped) != 1 {
		t.Fatalf("skipped = %+v", result.Skipped)
	}
	if got := readBack(t, path); got != "abc\n" {
		t.Errorf("file must be untouched, got %q", got)
	}
}

func TestApplySkipsVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("virtual.rl", []byte("g()\n"))

	_, err := Apply(fs, []diag.Diagnostic{semiDiag(id, 3)}, ApplyOptions{Mode: ApplyModeOnce})
	if err == nil {
		t.Fatal("virtual file fix must be skipped")
	}
}

func TestApplyConflictingFixes(t *testing.T) {
	path, fs, id := writeTempSource(t, "abcdef\n")

	span := source.Span{File: id, Start: 0, End: 3}
	diags := []diag.Diagnostic{
		diag.NewError(diag.SynUnexpectedToken, span, "msg").
			WithFix(ReplaceSpan("first", "first", span, "AAA", "abc")).
			WithFix(ReplaceSpan("second", "second", span, "BBB", "abc")),
	}

	result, err := Apply(fs, diags, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// второй fix конфликтует с уже применённым первым
	if len(result.Applied) != 1 || len(result.Skipped) != 1 {
		t.Fatalf("applied = %+v, skipped = %+v", result.Applied, result.Skipped)
	}
	if got := readBack(t, path); got != "AAAdef\n" {
		t.Errorf("file = %q", got)
	}
}

func TestApplyEmptyDiagnostics(t *testing.T) {
	_, fs, _ := writeTempSource(t, "x\n")
	_, err := Apply(fs, nil, ApplyOptions{Mode: ApplyModeAll})
	if err == nil {
		t.Fatal("expected ErrNoFixes")
	}
}

func TestDeleteSpanBuilder(t *testing.T) {
	path, fs, id := writeTempSource(t, "x;;\n")

	d := diag.NewWarning(diag.SynEmptyStatement, source.Span{File: id, Start: 2, End: 3}, "empty statement").
		WithFix(DeleteSpan("drop-semicolon", "drop `;`", source.Span{File: id, Start: 2, End: 3}, ";"))

	if _, err := Apply(fs, []diag.Diagnostic{d}, ApplyOptions{Mode: ApplyModeOnce}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := readBack(t, path); got != "x;\n" {
		t.Errorf("file = %q", got)
	}
}
