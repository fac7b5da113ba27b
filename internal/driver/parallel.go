package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/lexer"
	"ape/internal/parser"
	"ape/internal/source"
	"ape/internal/token"
)

// TokenizeDirResult holds the tokenization outcome of one file.
type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
}

// ParseDirResult holds the parse outcome of one file.
type ParseDirResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder
	Bag     *diag.Bag
}

// listApeFiles returns the sorted list of all *.ape files under dir.
func listApeFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".ape") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order
	sort.Strings(files)
	return files, nil
}

// loadAll preloads all files into a fresh FileSet. Load failures are kept
// per path so the workers can surface them as diagnostics.
func loadAll(dir string, files []string) (*source.FileSet, map[string]source.FileID, map[string]error) {
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileSet, fileIDs, loadErrors
}

func loadErrorDiag(bag *diag.Bag, err error) {
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOLoadFileError,
		Message:  "failed to load file: " + err.Error(),
		Primary:  source.Span{},
	})
}

// TokenizeDir tokenizes all *.ape files under dir in parallel.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := listApeFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet, fileIDs, loadErrors := loadAll(dir, files)

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// per-index slots, no mutex needed
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				loadErrorDiag(bag, loadErr)
				results[i] = TokenizeDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			lx := lexer.New(fileSet.Get(fileID), lexer.Options{
				Reporter: &diag.BagReporter{Bag: bag},
			})

			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: lx.Lex(),
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDir parses all *.ape files under dir in parallel. Each file gets its
// own AST builder; ids are only meaningful within one file.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []ParseDirResult, error) {
	files, err := listApeFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet, fileIDs, loadErrors := loadAll(dir, files)

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, nil, fmt.Errorf("maxDiagnostics overflow: %w", err)
	}

	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				loadErrorDiag(bag, loadErr)
				results[i] = ParseDirResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			reporter := &diag.BagReporter{Bag: bag}
			toks := lexer.New(fileSet.Get(fileID), lexer.Options{Reporter: reporter}).Lex()

			result := parser.Parse(toks, parser.Options{
				Reporter:  reporter,
				MaxErrors: maxErrors,
			})

			results[i] = ParseDirResult{
				Path:    path,
				FileID:  fileID,
				Builder: result.Builder,
				Bag:     bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
