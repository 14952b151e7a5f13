package fuzztests

import (
	"testing"

	"rill/internal/lexer"
	"rill/internal/source"
	"rill/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.rl", input)
		file := fs.Get(fileID)

		interner := source.NewInterner()
		lx := lexer.New(file, interner)
		var prevEnd uint32
		for {
			tok := lx.Next()
			if tok.Span.Start > tok.Span.End {
				t.Fatalf("inverted token span %v", tok.Span)
			}
			if tok.Span.Start < prevEnd {
				t.Fatalf("token span %v overlaps previous end %d", tok.Span, prevEnd)
			}
			prevEnd = tok.Span.End
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}
