// SPDX-License-Identifier: MIT
// Package matrix - generic power method.
//
// Purpose:
//   - Estimate the dominant eigenvector of a square matrix by repeated
//     multiplication v_{k+1} = M·v_k.
//   - Stay opaque to ranking semantics: no normalization inside the loop,
//     so a column-stochastic M preserves the mass of v by itself.
//
// Determinism:
//   - Fixed MatVec loop order; each step allocates a fresh vector, so the
//     previous iterate is never read while being overwritten.

package matrix

import "fmt"

const opPowerIterate = "PowerIterate"

// PowerResult is the outcome of PowerIterate.
type PowerResult struct {
	// Vector is the last computed iterate M·v_{k-1}.
	Vector []float64

	// Iterations counts the matrix-vector multiplies performed (≥ 1).
	Iterations int

	// Delta is ‖v_k − v_{k-1}‖₂ of the final step.
	Delta float64

	// Converged is true when Delta ≤ tol stopped the loop; false when the
	// iteration budget ran out first.
	Converged bool
}

// PowerOption customizes a single PowerIterate call.
type PowerOption func(*powerConfig)

type powerConfig struct {
	observe func(iter int, delta float64)
}

// WithObserver registers f to be called after every iteration with the
// 1-based iteration number and that step's delta. f must not retain or
// mutate matrix state; it is meant for logging and metrics.
func WithObserver(f func(iter int, delta float64)) PowerOption {
	return func(c *powerConfig) { c.observe = f }
}

// PowerIterate runs the power method on m starting from v0.
// MAIN DESCRIPTION:
//   - Repeats v_{k+1} = m·v_k and delta_k = ‖v_{k+1} − v_k‖₂, stopping when
//     delta_k ≤ tol or k ≥ maxIter, and returns the last computed vector.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square), v0 (len == Cols), tol and maxIter.
//   - Stage 2: loop; the first iteration always executes (initial delta is +Inf).
//   - Stage 3: report iterations, final delta and whether tol was reached.
//
// Behavior highlights:
//   - v0 is never written; every iterate is a freshly allocated slice.
//   - A fixed point (m·v0 == v0) terminates after exactly one iteration with delta 0.
//   - maxIter = 1 always returns after exactly one multiply.
//   - Non-convergence is NOT an error: Converged=false and the vector is still returned.
//
// Inputs:
//   - m      : square matrix (n×n).
//   - v0     : start vector, len n.
//   - tol    : finite, ≥ 0.
//   - maxIter: ≥ 1.
//   - opts   : WithObserver for per-step diagnostics.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square or len(v0) != n),
//     ErrNaNInf / ErrBadIterations (tol/maxIter).
//
// Complexity:
//   - Time O(k·n²) for k iterations, Space O(n) per live iterate.
func PowerIterate(m Matrix, v0 []float64, tol float64, maxIter int, opts ...PowerOption) (PowerResult, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return PowerResult{}, matrixErrorf(opPowerIterate, err)
	}
	if err := ValidateVecLen(v0, m.Cols()); err != nil {
		return PowerResult{}, matrixErrorf(opPowerIterate, err)
	}
	if err := ValidateIterationParams(tol, maxIter); err != nil {
		return PowerResult{}, matrixErrorf(opPowerIterate, err)
	}
	var cfg powerConfig
	for _, o := range opts {
		o(&cfg)
	}

	var (
		prev  = v0 // read-only; never mutated
		next  []float64
		delta float64
		k     int
		err   error
	)
	for {
		next, err = MatVec(m, prev)
		if err != nil {
			return PowerResult{}, matrixErrorf(opPowerIterate, fmt.Errorf("iteration %d: %w", k+1, err))
		}
		delta = euclidean(next, prev)
		prev = next // ownership moves to the next step
		k++
		if cfg.observe != nil {
			cfg.observe(k, delta)
		}
		if delta <= tol {
			return PowerResult{Vector: prev, Iterations: k, Delta: delta, Converged: true}, nil
		}
		if k >= maxIter {
			return PowerResult{Vector: prev, Iterations: k, Delta: delta, Converged: false}, nil
		}
	}
}
