// SPDX-License-Identifier: MIT
// Package: lvrank/builder
//
// impl_random_sparse.go - RandomSparse(n, p): directed Erdős–Rényi sampling.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and needs none.
//   - Ordered pairs are trialed for i asc, then j asc. Diagonal pairs are
//     trialed only under WithSelfLoops.
//   - All n vertices are added, so isolated and dangling vertices survive.
//
// Complexity: O(n) vertices + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that keeps each admissible ordered pair
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addVertices(g, cfg, n)

		var (
			i, j int
			keep bool
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				switch {
				case rng == nil:
					keep = p == probMax
				default:
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
