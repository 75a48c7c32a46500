package diag

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"mtlgen/internal/groups"
)

// Diagnostic is one renderable finding.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Path     string // origin document, empty when not file-related
	Line     int    // 1-based line, 0 when unknown
	Message  string
}

// FromError converts a pipeline error into a Diagnostic, recovering the
// document position from a group-name error when there is one.
func FromError(err error) Diagnostic {
	var nameErr *groups.NameError
	if errors.As(err, &nameErr) {
		msg := fmt.Sprintf("invalid shader group name %q", nameErr.Name)
		if nameErr.Bad == 0 {
			msg = "empty shader group name"
		} else {
			msg += fmt.Sprintf(": invalid character %q", nameErr.Bad)
		}
		return Diagnostic{
			Severity: SevError,
			Code:     GenInvalidGroupName,
			Path:     nameErr.Doc,
			Line:     int(nameErr.Line) + 1,
			Message:  msg,
		}
	}
	return Diagnostic{
		Severity: SevError,
		Code:     IOReadFailed,
		Message:  err.Error(),
	}
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	infoLabel    = color.New(color.FgCyan, color.Bold)
	posLabel     = color.New(color.Bold)
)

// Pretty renders the diagnostic as a single line, colorized when useColor
// is set.
func Pretty(w io.Writer, d Diagnostic, useColor bool) {
	label := d.Severity.String()
	if useColor {
		switch d.Severity {
		case SevError:
			label = errorLabel.Sprint(label)
		case SevWarning:
			label = warningLabel.Sprint(label)
		case SevInfo:
			label = infoLabel.Sprint(label)
		}
	}

	pos := ""
	if d.Path != "" {
		pos = d.Path
		if d.Line > 0 {
			pos = fmt.Sprintf("%s:%d", pos, d.Line)
		}
		if useColor {
			pos = posLabel.Sprint(pos)
		}
		pos += ": "
	}

	fmt.Fprintf(w, "%s%s: %s [%s]\n", pos, label, d.Message, d.Code.ID())
}
