// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_path.go - Path(n): the directed chain 0→1→…→n-1.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The last vertex is dangling.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the directed path on n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
