// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_star.go - Star(n): hub index 0 with n-1 leaves linking to it.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges run leaf → hub for leaves 1..n-1, in ascending order. The hub
//     has no out-links and is therefore dangling.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	hubIndex     = 0
)

// Star returns a Constructor for the inward star on n vertices.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, i, hubIndex); err != nil {
				return err
			}
		}

		return nil
	}
}
