// Package driver orchestrates the lex/parse pipelines: single files,
// parallel directories, the disk cache and timing diagnostics.
package driver

import (
	"rill/internal/diag"
	"rill/internal/lexer"
	"rill/internal/source"
	"rill/internal/token"
)

// TokenizeResult — результат токенизации одного файла.
type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *source.Interner
	Tokens   []token.Token
	Bag      *diag.Bag
}

// Tokenize loads one file and turns it into a token slice. Лексические
// ошибки приходят Error-токенами; для отчёта они дублируются в Bag
// кодом E000.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	interner := source.NewInterner()
	bag := diag.NewBag(maxDiagnostics)

	tokens := lexer.Tokenize(file, interner)
	for _, tok := range tokens {
		if tok.Kind == token.Error {
			bag.Add(diag.NewError(diag.LexError, tok.Span, tok.Bad.String()))
		}
	}

	return &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Interner: interner,
		Tokens:   tokens,
		Bag:      bag,
	}, nil
}
