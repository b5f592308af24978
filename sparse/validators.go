// SPDX-License-Identifier: MIT
// Package sparse: centralized validation.
//
// Shape validators return the plain sentinel wrapped with the validator name;
// call sites add their own operation tag. Validate checks the whole node
// topology and is meant for tests, debugging and post-load sanity checks.

package sparse

import "fmt"

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires equal rows and cols. Assumes non-nil operands.
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape requires a.Cols() == b.Rows(). Assumes non-nil operands.
func ValidateMulShape(a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex returns ErrOutOfBounds unless (row, col) is inside m (1-based).
func ValidateIndex(m *Matrix, row, col int) error {
	if !m.inBounds(row, col) {
		return fmt.Errorf("ValidateIndex(%d,%d): %w", row, col, ErrOutOfBounds)
	}

	return nil
}

// ValidateBinary is NotNil(a) → NotNil(b).
func ValidateBinary(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinary", err)
	}

	return nil
}

// Validate walks every ring of m and checks the topology invariants:
//   - the header's down chain visits row sentinels 1..R in order and returns;
//   - the header's right chain visits column sentinels 1..C in order and returns;
//   - each row ring lists cells of that row with strictly increasing columns;
//   - each column ring lists cells of that column with strictly increasing
//     rows, and every one of them was seen in a row ring;
//   - no stored value is 0 and the cell count matches Len().
//
// Every walk is bounded by the arena size, so a broken ring is reported as
// ErrCorrupt instead of looping forever.
//
// Complexity: O(R + C + nnz).
func Validate(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if len(m.nodes) < m.sentinels() {
		return corruptf("arena shorter than sentinel block")
	}
	if h := m.nodes[header]; h.row != 0 || h.col != 0 || h.value != 0 {
		return corruptf("header holds data")
	}

	limit := len(m.nodes)

	// Vertical sentinel ring.
	at := header
	for i := 1; i <= m.rows; i++ {
		at = m.nodes[at].down
		if at != m.rowHead[i] || m.nodes[at].row != i || m.nodes[at].col != 0 {
			return corruptf("row ring: position %d is not row sentinel %d", i, i)
		}
	}
	if m.nodes[at].down != header {
		return corruptf("row ring does not return to header")
	}

	// Horizontal sentinel ring.
	at = header
	for j := 1; j <= m.cols; j++ {
		at = m.nodes[at].right
		if at != m.colHead[j] || m.nodes[at].col != j || m.nodes[at].row != 0 {
			return corruptf("column ring: position %d is not column sentinel %d", j, j)
		}
	}
	if m.nodes[at].right != header {
		return corruptf("column ring does not return to header")
	}

	seen := make([]bool, limit)
	inRows := 0
	for i := 1; i <= m.rows; i++ {
		rs := m.rowHead[i]
		prevCol := 0
		steps := 0
		for n := m.nodes[rs].right; n != rs; n = m.nodes[n].right {
			if steps++; steps > limit {
				return corruptf("row %d ring does not close", i)
			}
			if int(n) < m.sentinels() || int(n) >= limit {
				return corruptf("row %d links to non-cell slot %d", i, n)
			}
			x := m.nodes[n]
			if x.row != i || x.col <= prevCol || x.col > m.cols {
				return corruptf("row %d out of order at (%d,%d)", i, x.row, x.col)
			}
			if x.value == 0 {
				return corruptf("zero stored at (%d,%d)", x.row, x.col)
			}
			seen[n] = true
			prevCol = x.col
			inRows++
		}
	}

	inCols := 0
	for j := 1; j <= m.cols; j++ {
		cs := m.colHead[j]
		prevRow := 0
		steps := 0
		for n := m.nodes[cs].down; n != cs; n = m.nodes[n].down {
			if steps++; steps > limit {
				return corruptf("column %d ring does not close", j)
			}
			if int(n) < m.sentinels() || int(n) >= limit || !seen[n] {
				return corruptf("column %d links to a node missing from row lists", j)
			}
			x := m.nodes[n]
			if x.col != j || x.row <= prevRow {
				return corruptf("column %d out of order at (%d,%d)", j, x.row, x.col)
			}
			prevRow = x.row
			inCols++
		}
	}

	if inRows != inCols || inRows != m.count {
		return corruptf("cell count mismatch: rows=%d cols=%d len=%d", inRows, inCols, m.count)
	}

	return nil
}

func corruptf(format string, args ...any) error {
	return fmt.Errorf("Validate: %s: %w", fmt.Sprintf(format, args...), ErrCorrupt)
}
