// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_cycle.go - Cycle(n): the directed ring 0→1→…→n-1→0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges are emitted for i = 0..n-1 as i → (i+1)%n.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the directed n-cycle. Every vertex has
// out-degree 1, so its stationary distribution is uniform.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
