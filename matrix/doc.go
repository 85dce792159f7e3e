// Package matrix offers a dense, row-major linear-algebra primitive and the
// generic power method built on top of it.
//
// The matrix package provides:
//
//   - Dense: a bounds-checked r×c float64 container with O(1) At/Set and
//     in-place ScaleInPlace/AddInPlace/FillColumn mutators.
//   - Kernels: MatVec, Transpose, EuclideanDistance.
//   - PowerIterate: repeated v ← M·v until ‖v_{k+1} − v_k‖₂ ≤ ε or the
//     iteration budget is spent. It knows nothing about graphs; the rank
//     package gives the iterated matrix its random-surfer meaning.
//
// Matrices are best for dense or small graphs where O(n²) memory and
// O(n²) per-iteration cost are acceptable.
//
// See the examples in this package for usage patterns.
package matrix
