// Package gen emits the generated Swift source for a completed group table.
//
// The output is fully determined by the table contents and the module name:
// groups are emitted in ascending display order and members in ascending
// name order, so byte-identical input sets produce byte-identical output no
// matter how the table was assembled.
package gen

import (
	"fmt"
	"strings"

	"mtlgen/internal/groups"
)

// Sentinel is the entire output when no shader functions were found.
const Sentinel = "// mtlgen: no shader functions found"

// containerSuffix is appended to the module name to form the outer
// namespace enum.
const containerSuffix = "Shaders"

// Generate produces the generated source text for the table. moduleName is
// the caller-supplied prefix for the outer container.
func Generate(table *groups.Table, moduleName string) string {
	if table.Empty() {
		return Sentinel + "\n"
	}

	container := moduleName + containerSuffix
	entries := table.Sorted()

	w := newWriter()
	w.line("// Generated by mtlgen. DO NOT EDIT.")
	w.blank()
	w.line("import Metal")
	w.blank()

	// One nested String-backed enum per group; the implicit raw value of
	// each case is its own name, which is what the accessors below use to
	// look the function up in a library.
	w.line("enum %s {", container)
	w.push()
	for i, e := range entries {
		if i > 0 {
			w.blank()
		}
		w.line("enum %s: String {", e.Group.Display())
		w.push()
		for _, name := range e.Names {
			w.line("case %s", name)
		}
		w.pop()
		w.line("}")
	}
	w.pop()
	w.line("}")
	w.blank()

	w.line("extension MTLLibrary {")
	w.push()
	for i, e := range entries {
		if i > 0 {
			w.blank()
		}
		w.line("func makeFunction(_ shader: %s.%s) -> MTLFunction? {", container, e.Group.Display())
		w.push()
		w.line("return makeFunction(name: shader.rawValue)")
		w.pop()
		w.line("}")
	}
	w.pop()
	w.line("}")

	return w.String()
}

// writer accumulates indented source lines.
type writer struct {
	out    strings.Builder
	indent int
}

func newWriter() *writer {
	return &writer{}
}

func (w *writer) push() { w.indent++ }

func (w *writer) pop() {
	if w.indent > 0 {
		w.indent--
	}
}

func (w *writer) line(format string, args ...any) {
	for range w.indent {
		w.out.WriteString("    ")
	}
	fmt.Fprintf(&w.out, format, args...)
	w.out.WriteByte('\n')
}

func (w *writer) blank() {
	w.out.WriteByte('\n')
}

func (w *writer) String() string {
	return w.out.String()
}
