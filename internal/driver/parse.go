package driver

import (
	"fortio.org/safecast"

	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/lexer"
	"ape/internal/parser"
	"ape/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Bag     *diag.Bag
}

// Parse loads one file and runs the lexer and parser over it.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}
	toks := lexer.New(file, lexer.Options{Reporter: reporter}).Lex()

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	result := parser.Parse(toks, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: result.Builder,
		Bag:     bag,
	}, nil
}
