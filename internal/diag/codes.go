package diag

import "fmt"

// Code is a compact, stable identifier for a diagnostic kind.
type Code uint16

const (
	UnknownCode Code = 0

	// Generation
	GenInvalidGroupName Code = 1001
	GenNoShaders        Code = 1002

	// Caller IO
	IOReadFailed  Code = 4001
	IOWriteFailed Code = 4002
)

// ID returns the stable string form of the code.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "UNKNOWN"
}
