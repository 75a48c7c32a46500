package extract

// Qualifier marks a shader function's role, taken from the keyword that
// opens its declaration.
type Qualifier uint8

const (
	QualifierUnknown Qualifier = iota
	QualifierVertex
	QualifierFragment
	QualifierKernel
	QualifierCompute
)

func (q Qualifier) String() string {
	switch q {
	case QualifierVertex:
		return "vertex"
	case QualifierFragment:
		return "fragment"
	case QualifierKernel:
		return "kernel"
	case QualifierCompute:
		return "compute"
	}
	return "unknown"
}

// qualifierFromKeyword maps a source keyword to its Qualifier.
func qualifierFromKeyword(word string) (Qualifier, bool) {
	switch word {
	case "vertex":
		return QualifierVertex, true
	case "fragment":
		return QualifierFragment, true
	case "kernel":
		return QualifierKernel, true
	case "compute":
		return QualifierCompute, true
	}
	return QualifierUnknown, false
}
