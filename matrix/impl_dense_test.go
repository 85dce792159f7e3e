// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 3)                      // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
	r, c := m.Shape()
	require.Equal(t, [2]int{rows, cols}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                             // row index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // deprecated alias still matches

	err = m.Set(0, -1, 4.56)                      // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetRejectsNaNInf checks the default numeric policy and its opt-out.
func TestSetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	loose, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)

	require.NoError(t, m.Set(1, 2, 7.89))   // set element at row 1, column 2
	require.Equal(t, 7.89, MustAt(t, m, 1, 2)) // retrieved value matches set value
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustDense(t, 2, 2)
	_ = m.Set(0, 0, 1.0)
	_ = m.Set(1, 1, 2.0)

	clone := m.Clone()       // clone the matrix
	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))     // original remains unchanged
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0)) // clone reflects new value
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	expected := "[1, 2]\n[3, 4]\n"         // define expected string output
	require.Equal(t, expected, m.String()) // assert String() output matches expected format
}

// TestNewFilled checks the uniform constructor used for J/n.
func TestNewFilled(t *testing.T) {
	m, err := matrix.NewFilled(2, 3, 0.25)
	require.NoError(t, err)
	m.Do(func(i, j int, v float64) bool {
		require.Equal(t, 0.25, v, "cell (%d,%d)", i, j)
		return true
	})

	_, err = matrix.NewFilled(0, 3, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFilled(1, 1, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestScaleInPlace multiplies every element and rejects non-finite factors.
func TestScaleInPlace(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, -2, 3, 0})
	require.NoError(t, m.ScaleInPlace(0.5))
	require.Equal(t, "[0.5, -1]\n[1.5, 0]\n", m.String())

	require.ErrorIs(t, m.ScaleInPlace(math.Inf(1)), matrix.ErrNaNInf)
	require.Equal(t, 0.5, MustAt(t, m, 0, 0)) // untouched on error
}

// TestAddInPlace covers the fast path, the interface fallback and shape errors.
func TestAddInPlace(t *testing.T) {
	tests := []struct {
		name  string
		other func(b *matrix.Dense) matrix.Matrix
	}{
		{"dense", func(b *matrix.Dense) matrix.Matrix { return b }},
		{"fallback", func(b *matrix.Dense) matrix.Matrix { return hide{b} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
			b := NewFilledDense(t, 2, 2, []float64{10, 20, 30, 40})
			require.NoError(t, a.AddInPlace(tc.other(b)))
			require.Equal(t, "[11, 22]\n[33, 44]\n", a.String())
			require.Equal(t, "[10, 20]\n[30, 40]\n", b.String()) // operand untouched
		})
	}

	a := MustDense(t, 2, 2)
	require.ErrorIs(t, a.AddInPlace(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, a.AddInPlace(nil), matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	require.ErrorIs(t, a.AddInPlace(typedNil), matrix.ErrNilMatrix)
}

// TestFillColumnAndZeroColumn exercises the dangling-column helpers.
func TestFillColumnAndZeroColumn(t *testing.T) {
	m := NewFilledDense(t, 3, 3, []float64{
		0, 1, 0,
		0, 0, 0,
		0, 0, 1,
	})
	zero, err := m.IsZeroColumn(0)
	require.NoError(t, err)
	require.True(t, zero)
	zero, err = m.IsZeroColumn(1)
	require.NoError(t, err)
	require.False(t, zero)

	require.NoError(t, m.FillColumn(0, 1.0/3))
	require.InDeltaSlice(t, []float64{1, 1, 1}, m.ColumnSums(), floatTol)

	require.ErrorIs(t, m.FillColumn(3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.FillColumn(0, math.NaN()), matrix.ErrNaNInf)
	_, err = m.IsZeroColumn(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestApplyAndDo verifies deterministic row-major visiting and NaN rejection.
func TestApplyAndDo(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, m.Apply(func(i, j int, _ float64) float64 { return float64(i*2 + j) }))

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3 // stop early after three cells
	})
	require.Equal(t, []float64{0, 1, 2}, seen)

	err := m.Apply(func(_, _ int, _ float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
