// SPDX-License-Identifier: MIT

package rank

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGraph indicates Build received a nil Source.
	ErrNilGraph = errors.New("rank: nil graph")

	// ErrEmptyGraph indicates the Source has no vertices; nothing to solve.
	ErrEmptyGraph = errors.New("rank: empty graph")

	// ErrUnknownVertex indicates the Source reported an edge or degree for a
	// vertex outside its own vertex set.
	ErrUnknownVertex = errors.New("rank: unknown vertex")

	// ErrDuplicateVertex indicates Source.Vertices() listed an ID twice.
	ErrDuplicateVertex = errors.New("rank: duplicate vertex")

	// ErrBadDamping indicates a damping factor outside [0,1] or NaN.
	ErrBadDamping = errors.New("rank: damping must lie in [0,1]")

	// ErrBadStage indicates a lifecycle method was called out of order.
	ErrBadStage = errors.New("rank: operation not allowed in current stage")

	// ErrSolved indicates a mutator was called after Solve.
	ErrSolved = errors.New("rank: model already solved")

	// ErrNonConvergence is informational: the budget ran out before delta ≤ epsilon.
	ErrNonConvergence = errors.New("rank: power iteration did not converge")
)

// rankErrorf wraps err with an operation tag, preserving it for errors.Is.
func rankErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
