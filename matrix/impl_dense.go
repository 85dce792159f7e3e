// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer the in-place mutators the transition model needs (ScaleInPlace,
//     AddInPlace, FillColumn) without exposing the backing slice.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); FillColumn: O(r);
//     ScaleInPlace/AddInPlace/ColumnSums: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"         // method tag used in error wrappers
	ctxSet        = "Set"        // method tag used in error wrappers
	ctxApply      = "Apply"      // method tag used in error wrappers
	ctxFillColumn = "FillColumn" // method tag used in error wrappers
	ctxScale      = "ScaleInPlace"
	ctxAddInPlace = "AddInPlace"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0 for every public constructor)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve numeric policy from opts (defaults from options.go).
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Forbids empty dimensions: a 0×0 transition matrix is an EmptyGraph
//     condition upstream, never a legal Dense.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//   - opts: optional numeric policy (WithNoValidateNaNInf, ...)
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFilled creates an r×c matrix with every element set to v.
// Used for the uniform J/n jump matrix. v must be finite.
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return nil, fmt.Errorf("NewFilled(%d,%d): %w", rows, cols, ErrNaNInf)
	}
	for idx := range m.data { // flat fill, fixed order
		m.data[idx] = v
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap it with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations on the clone do not affect the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// ScaleInPlace multiplies every element by k.
// MAIN DESCRIPTION:
//   - In-place scalar multiply used by the damping mix ((1-d)·M).
//
// Implementation:
//   - Stage 1: reject non-finite k under the numeric policy.
//   - Stage 2: single flat loop 0..r*c-1.
//
// Errors:
//   - ErrNaNInf when k is NaN/±Inf and the policy is enabled.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) ScaleInPlace(k float64) error {
	if m.validateNaNInf && (math.IsNaN(k) || math.IsInf(k, 0)) {
		return fmt.Errorf("Dense.%s: %w", ctxScale, ErrNaNInf)
	}
	for idx := range m.data { // deterministic 0..n-1
		m.data[idx] *= k
	}

	return nil
}

// AddInPlace performs m[i,j] += other[i,j] for identical shapes.
// MAIN DESCRIPTION:
//   - In-place element-wise addition; the receiver is the accumulator.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(m, other).
//   - Stage 2: fast path when other is *Dense (flat loop); else At-based i→j loop.
//
// Behavior highlights:
//   - The receiver is not touched when validation fails.
//   - Aliasing (m.AddInPlace(m)) is legal and doubles every element.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) AddInPlace(other Matrix) error {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxAddInPlace, err)
	}

	// Fast path: flat walk over both buffers.
	if od, ok := other.(*Dense); ok {
		for idx := range m.data {
			m.data[idx] += od.data[idx]
		}

		return nil
	}

	// Fallback: interface path with fixed i→j order.
	var i, j, base int
	var v float64
	var err error
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			v, err = other.At(i, j)
			if err != nil {
				return fmt.Errorf("Dense.%s: %w", ctxAddInPlace, err)
			}
			m.data[base+j] += v
		}
	}

	return nil
}

// FillColumn overwrites every element of column col with v.
// Used to replace dangling (all-zero) columns with the uniform 1/n jump.
//
// Errors:
//   - ErrOutOfRange for an invalid column; ErrNaNInf for non-finite v under policy.
//
// Complexity: O(r).
func (m *Dense) FillColumn(col int, v float64) error {
	if col < 0 || col >= m.c {
		return denseErrorf(ctxFillColumn, 0, col, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxFillColumn, 0, col, ErrNaNInf)
	}
	var i int
	for i = 0; i < m.r; i++ { // stride c down the column
		m.data[i*m.c+col] = v
	}

	return nil
}

// ColumnSums returns s where s[j] = Σ_i m[i,j].
// Row-major accumulation keeps the walk contiguous.
// Complexity: Time O(r*c), Space O(c).
func (m *Dense) ColumnSums() []float64 {
	sums := make([]float64, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			sums[j] += m.data[base+j]
		}
	}

	return sums
}

// IsZeroColumn reports whether every element of column col equals 0.
// Returns ErrOutOfRange for an invalid column.
// Complexity: O(r) worst case; stops at the first non-zero.
func (m *Dense) IsZeroColumn(col int) (bool, error) {
	if col < 0 || col >= m.c {
		return false, denseErrorf("IsZeroColumn", 0, col, ErrOutOfRange)
	}
	var i int
	for i = 0; i < m.r; i++ {
		if m.data[i*m.c+col] != 0 {
			return false, nil
		}
	}

	return true, nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
//
// AI-Hints:
//   - For large matrices prefer printing a few rows/cols or summarize.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int // predeclare loop counters and base offset

	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c            // compute flat base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) { // invoke callback; stop if it returns false
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int // predeclare loop counters and base offset
	var nv float64     // new value

	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c            // base offset for row i
		for j = 0; j < m.c; j++ { // iterate columns
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf) // wrap with coordinates
			}
			m.data[base+j] = nv // write back new value
		}
	}

	return nil
}
