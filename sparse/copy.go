// SPDX-License-Identifier: MIT

package sparse

// Clone returns a deep copy of m: same shape and policy, fresh arena, every
// cell re-inserted in cursor order through Insert. The copy shares no nodes
// with m.
//
// Complexity: O(nnz · (k_row + k_col)); cursor order keeps row appends O(1).
func (m *Matrix) Clone() *Matrix {
	o := gatherOptions(m.policy()...)
	o.capacity = m.count
	out := newMatrix(m.rows, m.cols, o)
	for cell := range m.All() {
		_ = out.Insert(cell.Row, cell.Col, cell.Value) // same shape and policy; cannot fail
	}

	return out
}

// CopyFrom replaces the contents of m with a deep copy of src.
// Dimensions are fixed per instance, so shapes must match. Copying a matrix
// onto itself is a no-op.
//
// Errors:
//   - ErrNilMatrix if src is nil.
//   - ErrDimensionMismatch if shapes differ.
//   - ErrNaNInf if src holds NaN/±Inf and m validates finite values
//     (m is left cleared up to the offending cell).
func (m *Matrix) CopyFrom(src *Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return matrixErrorf("CopyFrom", err)
	}
	if m == src {
		return nil
	}
	if err := ValidateSameShape(m, src); err != nil {
		return matrixErrorf("CopyFrom", err)
	}

	m.Clear()
	for cell := range src.All() {
		if err := m.Insert(cell.Row, cell.Col, cell.Value); err != nil {
			return matrixErrorf("CopyFrom", err)
		}
	}

	return nil
}
