// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_complete.go - Complete(n): every ordered pair (i,j) with i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Edges are emitted for i asc, then j asc.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete directed graph on n vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		addVertices(g, cfg, n)

		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
