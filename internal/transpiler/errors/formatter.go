package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold).SprintFunc()
	warningLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
	infoLabel    = color.New(color.FgCyan).SprintFunc()
)

// FormatError returns a human-readable error message for terminal output.
func FormatError(e *TranspilerError) string {
	var b strings.Builder

	file := e.File
	if file == "" {
		file = "<source>"
	}

	fmt.Fprintf(&b, "%s [%s] in %s\n", severityLabel(e.Severity), e.Code, file)
	fmt.Fprintf(&b, "Line %d, Column %d:\n", e.Location.Line, e.Location.Column)
	fmt.Fprintf(&b, "  %s\n", e.Message)

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  hint: %s\n", e.Suggestion)
	}

	return b.String()
}

func severityLabel(s ErrorSeverity) string {
	switch s {
	case SeverityError:
		return errorLabel("error")
	case SeverityWarning:
		return warningLabel("warning")
	default:
		return infoLabel("info")
	}
}
