// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loaden

import (
	"fmt"
)

// Parser decodes raw config file bytes into a document tree of
// map[string]any mappings, []any sequences and scalars. Empty input
// must decode to nil rather than an error.
type Parser interface {
	Parse(b []byte) (any, error)
}

// ParseError occurs when a config file is not syntactically valid
// for its format.
type ParseError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("failed to parse config file %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e ParseError) Unwrap() error {
	return e.Cause
}

// InvalidShapeError occurs when a config file parses successfully but
// its top level is not a mapping.
type InvalidShapeError struct {
	Path string

	// Type is the Go type of the value actually found at the top level.
	Type string
}

// Error implements the error interface.
func (e InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid config file %s: top level must be a mapping, got %s", e.Path, e.Type)
}
