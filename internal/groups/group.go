// Package groups assigns extracted shader declarations to named groups and
// accumulates them into the table consumed by the code generator.
package groups

import "mtlgen/internal/extract"

// Group identifies one generated enumeration bucket. It is a closed variant:
// one of the qualifier-derived defaults, or a validated custom name from a
// marker comment. Groups compare and sort by their display string.
type Group struct {
	kind groupKind
	name string // display name, set only for custom groups
}

type groupKind uint8

const (
	kindUnknown groupKind = iota
	kindVertex
	kindFragment
	kindCompute
	kindCustom
)

// Default groups.
var (
	Vertex   = Group{kind: kindVertex}
	Fragment = Group{kind: kindFragment}
	Compute  = Group{kind: kindCompute}
	Unknown  = Group{kind: kindUnknown}
)

// ForQualifier returns the default group for a declaration qualifier.
// Kernel and compute functions share the compute group.
func ForQualifier(q extract.Qualifier) Group {
	switch q {
	case extract.QualifierVertex:
		return Vertex
	case extract.QualifierFragment:
		return Fragment
	case extract.QualifierKernel, extract.QualifierCompute:
		return Compute
	}
	return Unknown
}

// Display returns the identifier the generator uses for this group.
func (g Group) Display() string {
	switch g.kind {
	case kindVertex:
		return "MTLVertexShader"
	case kindFragment:
		return "MTLFragmentShader"
	case kindCompute:
		return "MTLComputeShader"
	case kindCustom:
		return g.name
	}
	return "MTLUnknownShader"
}

// custom returns the group for a validated custom name. A custom name that
// spells a default display string folds into that default, so the generator
// never emits two enumerations with the same name.
func custom(name string) Group {
	switch name {
	case "MTLVertexShader":
		return Vertex
	case "MTLFragmentShader":
		return Fragment
	case "MTLComputeShader":
		return Compute
	case "MTLUnknownShader":
		return Unknown
	}
	return Group{kind: kindCustom, name: name}
}
