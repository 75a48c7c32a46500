package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// DocSet manages the collection of shader documents for one generation run.
type DocSet struct {
	docs  []Document
	index map[string]DocID // normalized path -> id
}

// NewDocSet creates a new empty DocSet.
func NewDocSet() *DocSet {
	return &DocSet{
		docs:  make([]Document, 0),
		index: make(map[string]DocID),
	}
}

// Add stores a document from normalized bytes and returns a new DocID.
// It always creates a new DocID even if a document with the same path
// already exists; the path index points at the latest version.
func (ds *DocSet) Add(path string, content []byte, flags DocFlags) DocID {
	normalizedPath := normalizePath(path)

	lenDocs, err := safecast.Conv[uint32](len(ds.docs))
	if err != nil {
		panic(fmt.Errorf("doc count overflow: %w", err))
	}
	id := DocID(lenDocs)
	ds.docs = append(ds.docs, Document{
		ID:      id,
		Path:    normalizedPath,
		Content: content,
		Flags:   flags,
	})
	ds.index[normalizedPath] = id
	return id
}

// Load reads a document from disk, strips a UTF-8 BOM, normalizes CRLF
// line endings, and calls Add.
func (ds *DocSet) Load(path string) (DocID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := DocFlags(0)
	if hadBOM {
		flags |= DocHadBOM
	}
	if hadCRLF {
		flags |= DocNormalizedCRLF
	}
	return ds.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory document (stdin, test) with the DocVirtual flag.
func (ds *DocSet) AddVirtual(name string, content []byte) DocID {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return ds.Add(name, content, DocVirtual)
}

// Get returns the document for the given ID.
func (ds *DocSet) Get(id DocID) *Document {
	return &ds.docs[id]
}

// ByPath returns the latest document for a path, if one was added.
func (ds *DocSet) ByPath(path string) (*Document, bool) {
	if id, ok := ds.index[normalizePath(path)]; ok {
		return &ds.docs[id], true
	}
	return nil, false
}

// Len returns the number of documents in the set.
func (ds *DocSet) Len() int {
	return len(ds.docs)
}

// Docs returns the documents in insertion order.
// The returned slice is the internal array; callers must not modify it.
func (ds *DocSet) Docs() []Document {
	return ds.docs
}
