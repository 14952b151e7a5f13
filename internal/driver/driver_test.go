package driver

import (
	"os"
	"path/filepath"
	"testing"

	"rill/internal/diag"
	"rill/internal/observ"
	"rill/internal/source"
	"rill/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.rl", "var x = 1;\n")

	res, err := Tokenize(path, 16)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(res.Tokens) == 0 {
		t.Fatal("no tokens")
	}
	if res.Tokens[0].Kind != token.KwVar {
		t.Errorf("first token = %v, want KwVar", res.Tokens[0].Kind)
	}
	if last := res.Tokens[len(res.Tokens)-1]; last.Kind != token.EOF {
		t.Errorf("last token = %v, want EOF", last.Kind)
	}
	if res.Bag.Len() != 0 {
		t.Errorf("clean source produced %d diagnostics", res.Bag.Len())
	}
}

func TestTokenizeForwardsLexErrors(t *testing.T) {
	path := writeSource(t, t.TempDir(), "bad.rl", "var x = @;\n")

	res, err := Tokenize(path, 16)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.Bag.Len() == 0 {
		t.Fatal("lexical error must land in the bag")
	}
	if got := res.Bag.Items()[0].Code; got != diag.LexError {
		t.Errorf("code = %v, want LexError", got)
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "nope.rl"), 16); err == nil {
		t.Fatal("missing file must be an error")
	}
}

func TestParseFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.rl", "fun main() {\n    var x = 1;\n}\n")

	res, err := Parse(path, 16)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.AST == nil || len(res.AST.Items) != 1 {
		t.Fatalf("items = %v", res.AST)
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestParseMissingSemicolon(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.rl", "fun main() {\n    var x = 1\n}\n")

	res, err := Parse(path, 16)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code == diag.SynExpectSemicolon {
			found = true
		}
	}
	if !found {
		t.Errorf("want E004, got %v", res.Bag.Items())
	}
}

func TestAppendTimings(t *testing.T) {
	timer := observ.NewTimer()
	timer.Track("parse", func() {})

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.SynExpectSemicolon, source.Span{End: 1}, "expected `;`"))

	// Лимит исчерпан, но I000 всё равно должна попасть в отчёт.
	AppendTimings(bag, timer, 0)
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
	last := bag.Items()[1]
	if last.Code != diag.ObsTimings || last.Severity != diag.SevInfo {
		t.Errorf("last = %+v", last)
	}
	if len(last.Notes) == 0 {
		t.Error("timings diagnostic must carry a JSON note")
	}
}
