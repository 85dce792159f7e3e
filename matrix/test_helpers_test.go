// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
)

// floatTol is the absolute tolerance for floating-point comparisons in tests.
const floatTol = 1e-12

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths and assert that
// fast path == fallback.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
// Fatal test failure if lengths mismatch or Set fails.
func NewFilledDense(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	if len(vals) != r*c {
		tb.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(tb, r, c)
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := d.Set(i, j, vals[i*c+j]); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomStochastic BUILDS an n×n column-stochastic *Dense from seed.
// Each column is a random non-negative vector normalized to sum 1.
func RandomStochastic(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := MustDense(tb, n, n)
	col := make([]float64, n)
	var i, j int
	var sum float64
	for j = 0; j < n; j++ {
		sum = 0
		for i = 0; i < n; i++ {
			col[i] = rng.Float64() + 1e-3 // strictly positive ⇒ primitive chain
			sum += col[i]
		}
		for i = 0; i < n; i++ {
			if err := d.Set(i, j, col[i]/sum); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return d
}

// Uniform RETURNS a length-n vector filled with 1/n.
func Uniform(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1.0 / float64(n)
	}

	return v
}

// SumOf RETURNS Σ v[i].
func SumOf(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}

	return s
}
