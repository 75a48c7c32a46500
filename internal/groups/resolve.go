package groups

import (
	"fmt"
	"strings"

	"mtlgen/internal/extract"
)

// NameError reports an invalid custom group name in a marker comment.
// It aborts the whole generation run: no output is produced.
type NameError struct {
	Doc  string // origin document path
	Line uint32 // 0-based marker line in the scanned text
	Name string // offending name, trimmed
	Bad  rune   // first invalid character, 0 when the name is empty
}

func (e *NameError) Error() string {
	if e.Bad == 0 {
		return fmt.Sprintf("%s:%d: empty shader group name", e.Doc, e.Line+1)
	}
	return fmt.Sprintf("%s:%d: invalid shader group name %q: invalid character %q",
		e.Doc, e.Line+1, e.Name, e.Bad)
}

// ValidateName checks a candidate custom group name: after trimming it must
// be non-empty and consist solely of basic Latin letters. Returns the
// trimmed name, or the first offending rune.
func ValidateName(raw string) (name string, bad rune, ok bool) {
	name = strings.TrimSpace(raw)
	if name == "" {
		return name, 0, false
	}
	for _, r := range name {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return name, r, false
		}
	}
	return name, 0, true
}

// Resolve determines the group of every declaration in one document and
// adds the (group, name) pairs to the table. A declaration belongs to the
// nearest preceding marker's group if there is one, otherwise to its
// qualifier's default group. docPath is used in error reporting only.
func Resolve(docPath string, decls []extract.Decl, markers []extract.Marker, table *Table) error {
	for _, d := range decls {
		g, err := resolveOne(docPath, d, markers)
		if err != nil {
			return err
		}
		table.Add(g, d.Name)
	}
	return nil
}

func resolveOne(docPath string, d extract.Decl, markers []extract.Marker) (Group, error) {
	// Nearest preceding marker: greatest line <= declaration line.
	best := -1
	for i, m := range markers {
		if m.Line <= d.Line && (best < 0 || m.Line >= markers[best].Line) {
			best = i
		}
	}
	if best < 0 {
		return ForQualifier(d.Qualifier), nil
	}

	m := markers[best]
	name, bad, ok := ValidateName(m.Name)
	if !ok {
		return Group{}, &NameError{Doc: docPath, Line: m.Line, Name: name, Bad: bad}
	}
	return custom(name), nil
}
