package driver

import (
	"fortio.org/safecast"

	"rill/internal/ast"
	"rill/internal/diag"
	"rill/internal/parser"
	"rill/internal/source"
)

// ParseResult — результат разбора одного файла.
type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Interner *source.Interner
	AST      *ast.File
	Bag      *diag.Bag
}

// Parse loads one file and parses it into an owned tree.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	interner := source.NewInterner()
	bag := diag.NewBag(maxDiagnostics)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	tree := parser.ParseFile(file, interner, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  diag.BagReporter{Bag: bag},
	})

	return &ParseResult{
		FileSet:  fs,
		File:     file,
		Interner: interner,
		AST:      tree,
		Bag:      bag,
	}, nil
}
