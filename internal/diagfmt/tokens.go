package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"rill/internal/source"
	"rill/internal/token"
)

// TokenOutput — сериализуемое представление одного токена.
type TokenOutput struct {
	Kind   string      `json:"kind"`
	Text   string      `json:"text,omitempty"`
	Char   string      `json:"char,omitempty"`
	Span   source.Span `json:"span"`
	Error  string      `json:"error,omitempty"`
	Global bool        `json:"global,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())

		switch {
		case tok.Kind == token.CharLit:
			fmt.Fprintf(w, " %q", tok.Char)
		case tok.Text != "":
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if tok.Kind == token.Error {
			fmt.Fprintf(w, " (error: %s)", tok.Bad)
		}
		if tok.Kind == token.DocComment && tok.Global {
			fmt.Fprintf(w, " (global)")
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	var output []TokenOutput

	for _, tok := range tokens {
		tokenOut := TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Span:   tok.Span,
			Global: tok.Global,
		}
		if tok.Kind == token.CharLit {
			tokenOut.Char = string(tok.Char)
		}
		if tok.Kind == token.Error {
			tokenOut.Error = tok.Bad.String()
		}

		output = append(output, tokenOut)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
