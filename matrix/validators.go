// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/stochastic checks here.
//
// Determinism & Performance:
//  - All checks are pure and deterministic; only IsColumnStochastic allocates (column sums).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilMatrix catches both a nil interface and a typed-nil *Dense stored in it.
func isNilMatrix(m Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return true
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil (including a typed-nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateIterationParams checks the power-method budget: tol finite and ≥ 0,
// maxIter ≥ 1.
// Complexity: O(1).
func ValidateIterationParams(tol float64, maxIter int) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateIterationParams: tol", ErrNaNInf)
	}
	if tol < 0 {
		return validatorErrorf("ValidateIterationParams: tol", ErrBadIterations)
	}
	if maxIter < 1 {
		return validatorErrorf("ValidateIterationParams: maxIter", ErrBadIterations)
	}

	return nil
}

// IsColumnStochastic reports whether every column of m sums to 1 within the
// tolerance from opts (DefaultStochasticTol otherwise). When allowZero is true,
// an all-zero column is accepted as well (uncorrected dangling vertex).
//
// Errors: ErrNilMatrix for nil input.
// Complexity: O(r*c) time, O(c) space for the sums.
func IsColumnStochastic(m Matrix, allowZero bool, opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, validatorErrorf("IsColumnStochastic", err)
	}
	o := gatherOptions(opts...)

	var sums []float64
	if d, ok := m.(*Dense); ok {
		sums = d.ColumnSums()
	} else {
		var err error
		if sums, err = columnSumsGeneric(m); err != nil {
			return false, validatorErrorf("IsColumnStochastic", err)
		}
	}

	for _, s := range sums {
		if math.Abs(s-1) <= o.tol {
			continue
		}
		if allowZero && math.Abs(s) <= o.tol {
			continue
		}

		return false, nil
	}

	return true, nil
}

// columnSumsGeneric is the interface path of ColumnSums.
func columnSumsGeneric(m Matrix) ([]float64, error) {
	rows, cols := m.Rows(), m.Cols()
	sums := make([]float64, cols)
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			sums[j] += v
		}
	}

	return sums, nil
}
