package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"rill/internal/lexer"
	"rill/internal/source"
)

func TestFormatTokensPretty(t *testing.T) {
	fs, f := fixtureFile(t, "fun main() {}\n")
	interner := source.NewInterner()
	tokens := lexer.Tokenize(f, interner)

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"KwFun", "Ident", `"main"`, "LParen", "RBrace", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "at 1:1-1:4") {
		t.Errorf("positions missing:\n%s", out)
	}
}

func TestFormatTokensPrettyError(t *testing.T) {
	fs, f := fixtureFile(t, "@\n")
	tokens := lexer.Tokenize(f, source.NewInterner())

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	if !strings.Contains(buf.String(), "error: unexpected character") {
		t.Errorf("lexical error not shown:\n%s", buf.String())
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, f := fixtureFile(t, "var x = 1;\n")
	tokens := lexer.Tokenize(f, source.NewInterner())

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}

	var decoded []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) == 0 || decoded[0].Kind != "KwVar" {
		t.Fatalf("decoded = %+v", decoded)
	}
	if decoded[len(decoded)-1].Kind != "EOF" {
		t.Errorf("last token = %+v", decoded[len(decoded)-1])
	}
	// текст идентификатора сохраняется
	found := false
	for _, tok := range decoded {
		if tok.Kind == "Ident" && tok.Text == "x" {
			found = true
		}
	}
	if !found {
		t.Error("identifier text lost in JSON dump")
	}
}
