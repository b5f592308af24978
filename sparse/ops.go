// SPDX-License-Identifier: MIT

// Package sparse - matrix algebra on top of the public Get/Insert contract.
//
// These helpers deliberately use only Rows/Cols/Get/Insert (and the
// iterators for Transpose/Scale/Equal), so they behave identically for any
// correct container. Results inherit the numeric policy of the first operand.

package sparse

// Sum returns a + b, cell by cell.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch unless a and b share rows and cols.
//   - ErrNaNInf if a sum overflows to ±Inf under the finite-value policy.
//
// Complexity: O(R·C·(k_row)) via Get; zero sums are simply not stored.
func Sum(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf("Sum", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Sum", err)
	}

	out := newMatrix(a.Rows(), a.Cols(), gatherOptions(a.policy()...))
	for i := 1; i <= a.Rows(); i++ {
		for j := 1; j <= a.Cols(); j++ {
			va, _ := a.Get(i, j) // indices are in range by construction
			vb, _ := b.Get(i, j)
			if err := out.Insert(i, j, va+vb); err != nil {
				return nil, matrixErrorf("Sum", err)
			}
		}
	}

	return out, nil
}

// Multiply returns the matrix product a × b (a.Rows() × b.Cols()).
// Each entry is accumulated over k with Get: out[i,j] = Σ_k a[i,k]·b[k,j].
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch unless a.Cols() == b.Rows().
//   - ErrNaNInf if an entry overflows under the finite-value policy.
//
// Complexity: O(R_a · C_b · C_a) Get calls.
func Multiply(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, matrixErrorf("Multiply", err)
	}
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf("Multiply", err)
	}

	out := newMatrix(a.Rows(), b.Cols(), gatherOptions(a.policy()...))
	inner := a.Cols()
	for i := 1; i <= a.Rows(); i++ {
		for j := 1; j <= b.Cols(); j++ {
			var acc float64
			for k := 1; k <= inner; k++ {
				aik, _ := a.Get(i, k)
				if aik == 0 {
					continue
				}
				bkj, _ := b.Get(k, j)
				acc += aik * bkj
			}
			if err := out.Insert(i, j, acc); err != nil {
				return nil, matrixErrorf("Multiply", err)
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ. It walks each column ring of m, so cells of the
// result are appended in row-major order.
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Transpose", err)
	}

	o := gatherOptions(m.policy()...)
	o.capacity = m.Len()
	out := newMatrix(m.Cols(), m.Rows(), o)
	for j := 1; j <= m.Cols(); j++ {
		col, _ := m.Column(j)
		for cell := range col {
			if err := out.Insert(j, cell.Row, cell.Value); err != nil {
				return nil, matrixErrorf("Transpose", err)
			}
		}
	}

	return out, nil
}

// Scale returns alpha·m. alpha == 0 yields an empty matrix of the same shape.
func Scale(m *Matrix, alpha float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Scale", err)
	}

	out := newMatrix(m.Rows(), m.Cols(), gatherOptions(m.policy()...))
	for cell := range m.All() {
		if err := out.Insert(cell.Row, cell.Col, alpha*cell.Value); err != nil {
			return nil, matrixErrorf("Scale", err)
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and the same stored
// cells. Two nil matrices are equal.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.Len() != b.Len() {
		return false
	}

	ca, cb := a.Cursor(), b.Cursor()
	for ca.Next() {
		if !cb.Next() || ca.cell() != cb.cell() {
			return false
		}
	}

	return !cb.Next()
}
