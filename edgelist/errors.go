// SPDX-License-Identifier: MIT

package edgelist

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine indicates a line without exactly two fields.
	ErrMalformedLine = errors.New("edgelist: expected two fields per line")

	// ErrBadVertexID indicates a field that is not a base-10 int64.
	ErrBadVertexID = errors.New("edgelist: invalid vertex id")
)

// ParseError pins a failure to its 1-based line number.
type ParseError struct {
	Line int
	Text string
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
