package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"mtlgen/internal/extract"
	"mtlgen/internal/gen"
	"mtlgen/internal/groups"
	"mtlgen/internal/scanner"
	"mtlgen/internal/source"
)

// scanned is the per-document result of the parallel front half.
type scanned struct {
	decls   []extract.Decl
	markers []extract.Marker
}

// RunParallel strips and extracts documents concurrently, then resolves and
// generates sequentially. Group merging is a commutative set union, so the
// output is byte-identical to Run for the same documents.
func RunParallel(ctx context.Context, docs []source.Document, moduleName string, jobs int) (string, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(docs) {
		jobs = len(docs)
	}
	if jobs <= 1 {
		return Run(docs, moduleName)
	}

	// Each goroutine owns its result slot; no mutex needed.
	results := make([]scanned, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range docs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			stripped := scanner.Strip(docs[i].Text())
			decls, markers := extract.Scan(stripped)
			results[i] = scanned{decls: decls, markers: markers}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	table := groups.NewTable()
	for i := range docs {
		if err := groups.Resolve(docs[i].Path, results[i].decls, results[i].markers, table); err != nil {
			return "", fmt.Errorf("resolving shader groups: %w", err)
		}
	}
	return gen.Generate(table, moduleName), nil
}

// RunFiles loads the given files from disk and runs the pipeline over them.
// A file that cannot be read aborts the whole run with no output.
func RunFiles(ctx context.Context, paths []string, moduleName string, jobs int) (string, error) {
	ds := source.NewDocSet()
	for _, p := range paths {
		if _, err := ds.Load(p); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
	}
	return RunParallel(ctx, ds.Docs(), moduleName, jobs)
}
