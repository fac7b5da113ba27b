package driver

import (
	"context"
	"fmt"
	"runtime"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"ape/internal/diag"
	"ape/internal/lexer"
	"ape/internal/parser"
	"ape/internal/project"
	"ape/internal/source"
)

// CheckFileResult holds the check outcome of one file. Cached marks a file
// skipped because the cache already knows this exact content is clean.
type CheckFileResult struct {
	Path       string
	FileID     source.FileID
	Bag        *diag.Bag
	Cached     bool
	TokenCount uint32
	StmtCount  uint32
	ExprCount  uint32
}

// CheckDirResult is the aggregate outcome of checking a directory.
type CheckDirResult struct {
	FileSet *source.FileSet
	Files   []CheckFileResult
	Project *diag.Bag // directory-level diagnostics
}

// CheckDir lexes and parses every *.ape file under dir in parallel,
// consulting cache (when non-nil) to skip files whose content already
// checked clean.
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int, cache *DiskCache) (*CheckDirResult, error) {
	files, err := listApeFiles(dir)
	if err != nil {
		return nil, err
	}

	projectBag := diag.NewBag(maxDiagnostics)
	if len(files) == 0 {
		projectBag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.ProjNoSources,
			Message:  "no .ape source files found under " + dir,
			Primary:  source.Span{},
		})
		return &CheckDirResult{
			FileSet: source.NewFileSetWithBase(dir),
			Project: projectBag,
		}, nil
	}

	fileSet, fileIDs, loadErrors := loadAll(dir, files)

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, fmt.Errorf("maxDiagnostics overflow: %w", err)
	}

	results := make([]CheckFileResult, len(files))

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
				results[i] = CheckFileResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)
			key := project.Digest(file.Hash)

			var cached DiskPayload
			if hit, err := cache.Get(key, &cached); err == nil && hit && cached.Clean {
				results[i] = CheckFileResult{
					Path:       path,
					FileID:     fileID,
					Bag:        bag,
					Cached:     true,
					TokenCount: cached.TokenCount,
					StmtCount:  cached.StmtCount,
					ExprCount:  cached.ExprCount,
				}
				return nil
			}

			reporter := &diag.BagReporter{Bag: bag}
			toks := lexer.New(file, lexer.Options{Reporter: reporter}).Lex()
			parsed := parser.Parse(toks, parser.Options{
				Reporter:  reporter,
				MaxErrors: maxErrors,
			})

			result := CheckFileResult{
				Path:       path,
				FileID:     fileID,
				Bag:        bag,
				TokenCount: uint32(len(toks)),
				StmtCount:  parsed.Builder.Stmts.Arena.Len(),
				ExprCount:  parsed.Builder.Exprs.Arena.Len(),
			}
			results[i] = result

			if bag.Len() == 0 {
				_ = cache.Put(key, &DiskPayload{
					Schema:      diskCacheSchemaVersion,
					Path:        path,
					ContentHash: key,
					TokenCount:  result.TokenCount,
					StmtCount:   result.StmtCount,
					ExprCount:   result.ExprCount,
					Clean:       true,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return &CheckDirResult{FileSet: fileSet, Files: results, Project: projectBag}, err
	}
	return &CheckDirResult{FileSet: fileSet, Files: results, Project: projectBag}, nil
}
