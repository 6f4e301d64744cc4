package errors

import (
	"fmt"

	"github.com/mahalo/mahalo-transpiler/internal/transpiler/ast"
)

// Pipeline error codes
const (
	// ErrUnresolvableModule indicates the compiled module specifier could
	// not be located
	ErrUnresolvableModule ErrorCode = "RES001"
	// ErrFrontEndDiagnostic indicates the front end reported an error
	// severity diagnostic
	ErrFrontEndDiagnostic ErrorCode = "DIA100"
	// ErrRewriteFailed indicates an internal rewrite failure
	ErrRewriteFailed ErrorCode = "RWT600"
)

// NewUnresolvableModule creates a RES001 error for a module specifier that
// could not be located. Fatal before any rewriting happens.
func NewUnresolvableModule(specifier string) *TranspilerError {
	return newError(
		ErrUnresolvableModule,
		"unresolvable_module",
		CategoryResolve,
		SeverityError,
		fmt.Sprintf("Cannot resolve module '%s'", specifier),
		ast.Position{Line: 1, Column: 1},
	).WithSuggestion("Check the module specifier and the resolution roots")
}

// NewFrontEndDiagnostic creates a DIA100 error carrying a front-end
// diagnostic message verbatim.
func NewFrontEndDiagnostic(loc ast.Position, message string) *TranspilerError {
	return newError(
		ErrFrontEndDiagnostic,
		"front_end_diagnostic",
		CategoryDiagnostic,
		SeverityError,
		message,
		loc,
	)
}

// NewRewriteFailed creates a RWT600 error.
func NewRewriteFailed(loc ast.Position, reason string) *TranspilerError {
	return newError(
		ErrRewriteFailed,
		"rewrite_failed",
		CategoryRewrite,
		SeverityError,
		fmt.Sprintf("Rewrite failed: %s", reason),
		loc,
	).WithSuggestion("This is likely a transpiler bug - please report it")
}
