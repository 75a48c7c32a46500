package source

type (
	// DocID uniquely identifies a document within a DocSet.
	DocID uint32
	// DocFlags encodes metadata about how a document was obtained.
	DocFlags uint8
)

const (
	// DocVirtual indicates the document was added from memory (test, stdin).
	DocVirtual DocFlags = 1 << iota
	DocHadBOM
	DocNormalizedCRLF
)

// Document is one shader source: an opaque text blob plus the origin path
// used in diagnostics. Immutable once added to a DocSet.
type Document struct {
	ID      DocID
	Path    string
	Content []byte
	Flags   DocFlags
}

// Text returns the document content as a string.
func (d *Document) Text() string {
	return string(d.Content)
}
