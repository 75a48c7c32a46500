// Package driver composes the generation pipeline: scan each document for
// comments, extract declarations and markers, resolve groups, and emit the
// generated source. Output is all-or-nothing: any resolution error aborts
// the run before a single byte of output exists.
package driver

import (
	"fmt"

	"mtlgen/internal/extract"
	"mtlgen/internal/gen"
	"mtlgen/internal/groups"
	"mtlgen/internal/scanner"
	"mtlgen/internal/source"
)

// Run processes the documents sequentially and returns the generated text.
// An empty document set, or documents with no shader functions, yield the
// sentinel output rather than an error.
func Run(docs []source.Document, moduleName string) (string, error) {
	table := groups.NewTable()
	for i := range docs {
		doc := &docs[i]
		stripped := scanner.Strip(doc.Text())
		decls, markers := extract.Scan(stripped)
		if err := groups.Resolve(doc.Path, decls, markers, table); err != nil {
			return "", fmt.Errorf("resolving shader groups: %w", err)
		}
	}
	return gen.Generate(table, moduleName), nil
}

// Strip runs only the comment-removal stage over one file, for inspection.
func Strip(path string) (string, error) {
	ds := source.NewDocSet()
	id, err := ds.Load(path)
	if err != nil {
		return "", err
	}
	return scanner.Strip(ds.Get(id).Text()), nil
}
