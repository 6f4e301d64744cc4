// Package errors provides structured error handling for the Mahalo
// transpiler. It defines error codes, categories, and formatting for
// terminal output.
package errors

import (
	"encoding/json"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"
)

// ErrorCode is a unique transpiler error code.
type ErrorCode string

// ErrorCategory groups errors by pipeline stage.
type ErrorCategory string

const (
	// CategoryResolve covers module resolution failures (RES001-099)
	CategoryResolve ErrorCategory = "resolve"
	// CategoryDiagnostic covers front-end diagnostics surfaced by the
	// transpiler (DIA100-199)
	CategoryDiagnostic ErrorCategory = "diagnostic"
	// CategoryRewrite covers internal rewrite failures (RWT600-699)
	CategoryRewrite ErrorCategory = "rewrite"
)

// ErrorSeverity indicates how severe an error is.
type ErrorSeverity string

const (
	// SeverityError indicates an error that fails the unit
	SeverityError ErrorSeverity = "error"
	// SeverityWarning indicates a warning
	SeverityWarning ErrorSeverity = "warning"
	// SeverityInfo indicates an informational message
	SeverityInfo ErrorSeverity = "info"
)

// TranspilerError is a structured transpiler error.
type TranspilerError struct {
	// Code is the unique error code (e.g. "RES001")
	Code ErrorCode `json:"code"`
	// Type is a machine-readable error type identifier
	Type string `json:"type"`
	// Category is the error category
	Category ErrorCategory `json:"category"`
	// Severity is the error severity level
	Severity ErrorSeverity `json:"severity"`
	// Message is the primary error message
	Message string `json:"message"`
	// Location is the source location of the error
	Location ast.Position `json:"location"`
	// File is the source file name (optional)
	File string `json:"file,omitempty"`
	// Suggestion provides a hint for fixing the error (optional)
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (e *TranspilerError) Error() string {
	return FormatError(e)
}

// ToJSON returns the error as a JSON string.
func (e *TranspilerError) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WithFile sets the source file name for the error.
func (e *TranspilerError) WithFile(file string) *TranspilerError {
	e.File = file
	return e
}

// WithSuggestion sets a suggestion for fixing the error.
func (e *TranspilerError) WithSuggestion(suggestion string) *TranspilerError {
	e.Suggestion = suggestion
	return e
}

func newError(code ErrorCode, errType string, category ErrorCategory, severity ErrorSeverity, message string, loc ast.Position) *TranspilerError {
	return &TranspilerError{
		Code:     code,
		Type:     errType,
		Category: category,
		Severity: severity,
		Message:  message,
		Location: loc,
	}
}
