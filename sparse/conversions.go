// SPDX-License-Identifier: MIT

// Package sparse - conversions to and from dense representations.
//
// Two dense shapes are supported:
//   - [][]float64 row slices (0-based slices, values copied);
//   - gonum mat.Matrix / *mat.Dense, for handing data to gonum's solvers.
//
// Zeros in dense input are skipped, so the result stores exactly the
// non-zero entries.

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromRows builds a matrix from a rectangular row slice.
//
// Errors:
//   - ErrInvalidDimension for no rows or empty rows.
//   - ErrDimensionMismatch for ragged input.
//   - ErrNaNInf under the finite-value policy.
func FromRows(data [][]float64, opts ...Option) (*Matrix, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrInvalidDimension)
	}
	cols := len(data[0])
	m, err := New(len(data), cols, opts...)
	if err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i+1, len(row), cols, ErrDimensionMismatch)
		}
		for j, v := range row {
			if err := m.Insert(i+1, j+1, v); err != nil {
				return nil, matrixErrorf("FromRows", err)
			}
		}
	}

	return m, nil
}

// ToRows returns a dense Rows()×Cols() copy; row i-1 holds matrix row i.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	buf := make([]float64, m.rows*m.cols)
	for i := range out {
		out[i] = buf[i*m.cols : (i+1)*m.cols : (i+1)*m.cols]
	}
	for cell := range m.All() {
		out[cell.Row-1][cell.Col-1] = cell.Value
	}

	return out
}

// FromGonum copies the non-zero entries of a gonum matrix.
// gonum indices are 0-based; entry (i, j) lands at (i+1, j+1).
func FromGonum(a mat.Matrix, opts ...Option) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := New(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := m.Insert(i+1, j+1, a.At(i, j)); err != nil {
				return nil, matrixErrorf("FromGonum", err)
			}
		}
	}

	return m, nil
}

// ToGonum returns a dense gonum copy. A 0×0 matrix yields an empty
// *mat.Dense (IsEmpty reports true), since gonum rejects zero-sized NewDense.
func (m *Matrix) ToGonum() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for cell := range m.All() {
		d.Set(cell.Row-1, cell.Col-1, cell.Value)
	}

	return d
}

// Dims, At and T make *Matrix a read-only gonum mat.Matrix, so it can be
// passed straight to mat.Dense.Mul, mat.Equal and friends. Indices follow
// gonum: 0-based, and At panics on out-of-range access.
var _ mat.Matrix = (*Matrix)(nil)

// Dims returns Rows(), Cols().
func (m *Matrix) Dims() (r, c int) { return m.rows, m.cols }

// At returns the value at 0-based (i, j).
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.cols {
		panic(mat.ErrColAccess)
	}
	v, _ := m.Get(i+1, j+1) // bounds checked above

	return v
}

// T returns a lazy transposed gonum view. Use Transpose for a sparse copy.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }
