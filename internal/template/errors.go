package template

import (
	"errors"
	"fmt"
)

// Errors returned by template compilation.
var (
	// ErrUnknownVariable indicates a template references an unregistered variable.
	ErrUnknownVariable = errors.New("unknown template variable")

	// ErrUnbalancedBraces indicates a ${...} reference is never closed.
	ErrUnbalancedBraces = errors.New("unbalanced braces in template")

	// ErrDuplicateVariable indicates a variable name was registered twice.
	ErrDuplicateVariable = errors.New("variable already registered")
)

// ParseError reports a template compilation failure with its position.
type ParseError struct {
	// Offset is the byte offset into the template where the error occurred.
	Offset int
	// Variable is the variable name involved, if any.
	Variable string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("template parse error at offset %d: %v: %s", e.Offset, e.Err, e.Variable)
	}
	return fmt.Sprintf("template parse error at offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
