package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrNoLines indicates the configuration defines no widget lines.
	ErrNoLines = errors.New("config defines no lines")

	// ErrEmptyTemplate indicates a line has an empty template.
	ErrEmptyTemplate = errors.New("line template is empty")

	// ErrBadInterval indicates a non-positive refresh interval.
	ErrBadInterval = errors.New("refresh interval must be positive")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
