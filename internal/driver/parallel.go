package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"relex/internal/translate"
)

// DirResult is the outcome for one file of a directory translation.
// Err carries per-file failures so one broken file does not hide the
// rest of the batch.
type DirResult struct {
	Path   string
	Result *Result
	Err    error
}

// listSourceFiles returns the sorted list of *.rb files under dir that
// have a sibling token-stream file.
func listSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".rb") {
			return nil
		}
		if _, err := os.Stat(TokensPathFor(path)); err != nil {
			// Sources without a token stream are not translation inputs.
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order regardless of filesystem traversal.
	sort.Strings(files)
	return files, nil
}

// TranslateDir translates every eligible source file under dir in
// parallel. Results are ordered by path; per-file translation failures
// land in DirResult.Err, the returned error covers traversal and
// cancellation only.
func TranslateDir(ctx context.Context, dir string, opts translate.Options, jobs int) ([]DirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns its slot; no mutex needed.
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := TranslateFile(path, TokensPathFor(path), opts)
			results[i] = DirResult{Path: path, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
