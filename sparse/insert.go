// SPDX-License-Identifier: MIT

// Package sparse - insert / lookup / delete.
//
// Every mutation keeps both lists of a cell in sync: a cell is spliced into
// (or unlinked from) its row list and its column list as one step, and both
// links reference the same arena slot.

package sparse

import "math"

const (
	ctxInsert = "Insert"
	ctxGet    = "Get"
	ctxDelete = "Delete"
)

// inBounds reports whether (row, col) addresses a cell of m (1-based, inclusive).
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 1 && row <= m.rows && col >= 1 && col <= m.cols
}

// Insert stores value at (row, col), overwriting any existing cell.
//
// Implementation:
//   - Stage 1: value == 0 is a silent no-op (zeros are never stored).
//   - Stage 2: bounds check; finite-value policy.
//   - Stage 3: scan row `row` from its sentinel while the next column is < col.
//     If the next node is (row, col), overwrite in place and stop.
//   - Stage 4: splice a new cell after the scan position, then splice the same
//     cell into column `col` before the first node whose row is > row.
//
// Errors:
//   - ErrOutOfBounds for row∉[1,Rows()] or col∉[1,Cols()].
//   - ErrNaNInf for NaN/±Inf when the policy is enabled.
//
// Complexity: O(k_row + k_col) where k_* are the stored cells in that row/column.
func (m *Matrix) Insert(row, col int, value float64) error {
	if value == 0 {
		return nil
	}
	if !m.inBounds(row, col) {
		return indexErrorf(ctxInsert, row, col, ErrOutOfBounds)
	}
	if m.validateNaNInf && (math.IsNaN(value) || math.IsInf(value, 0)) {
		return indexErrorf(ctxInsert, row, col, ErrNaNInf)
	}

	rs := m.rowHead[row]
	left := m.rowPredecessor(rs, col)
	if next := m.nodes[left].right; next != rs && m.nodes[next].col == col {
		m.nodes[next].value = value // overwrite; topology unchanged

		return nil
	}

	id := m.alloc(row, col, value)

	// Row list first.
	m.nodes[id].right = m.nodes[left].right
	m.nodes[left].right = id

	// Then the column list, same cell.
	cs := m.colHead[col]
	above := m.colPredecessor(cs, row)
	m.nodes[id].down = m.nodes[above].down
	m.nodes[above].down = id

	m.count++

	return nil
}

// Get returns the value at (row, col), or 0 when nothing is stored there.
// The row scan stops as soon as it passes col, so absence is decided by
// overshoot rather than a full walk of the row.
//
// Errors: ErrOutOfBounds under the same conditions as Insert.
// Complexity: O(k_row).
func (m *Matrix) Get(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, indexErrorf(ctxGet, row, col, ErrOutOfBounds)
	}

	rs := m.rowHead[row]
	for n := m.nodes[rs].right; n != rs; n = m.nodes[n].right {
		c := m.nodes[n].col
		if c == col {
			return m.nodes[n].value, nil
		}
		if c > col {
			break // overshoot
		}
	}

	return 0, nil
}

// Has reports whether a cell is stored at (row, col). Out-of-range indices report false.
func (m *Matrix) Has(row, col int) bool {
	if !m.inBounds(row, col) {
		return false
	}
	rs := m.rowHead[row]
	next := m.nodes[m.rowPredecessor(rs, col)].right

	return next != rs && m.nodes[next].col == col
}

// Delete unlinks the cell at (row, col) from its row and column lists and
// releases its slot. It reports whether a cell was removed.
//
// Errors: ErrOutOfBounds under the same conditions as Insert.
// Complexity: O(k_row + k_col).
func (m *Matrix) Delete(row, col int) (bool, error) {
	if !m.inBounds(row, col) {
		return false, indexErrorf(ctxDelete, row, col, ErrOutOfBounds)
	}

	rs := m.rowHead[row]
	left := m.rowPredecessor(rs, col)
	target := m.nodes[left].right
	if target == rs || m.nodes[target].col != col {
		return false, nil
	}

	cs := m.colHead[col]
	above := m.colPredecessor(cs, row)

	m.nodes[left].right = m.nodes[target].right
	m.nodes[above].down = m.nodes[target].down
	m.release(target)
	m.count--

	return true, nil
}

// rowPredecessor returns the last node of the row ring anchored at rs whose
// column is < col (rs itself when there is none).
func (m *Matrix) rowPredecessor(rs nodeID, col int) nodeID {
	at := rs
	for next := m.nodes[at].right; next != rs && m.nodes[next].col < col; next = m.nodes[at].right {
		at = next
	}

	return at
}

// colPredecessor returns the last node of the column ring anchored at cs whose
// row is < row (cs itself when there is none).
func (m *Matrix) colPredecessor(cs nodeID, row int) nodeID {
	at := cs
	for next := m.nodes[at].down; next != cs && m.nodes[next].row < row; next = m.nodes[at].down {
		at = next
	}

	return at
}

// alloc returns an unlinked cell slot, reusing released slots first.
func (m *Matrix) alloc(row, col int, value float64) nodeID {
	n := node{row: row, col: col, value: value}
	if k := len(m.free); k > 0 {
		id := m.free[k-1]
		m.free = m.free[:k-1]
		m.nodes[id] = n

		return id
	}
	m.nodes = append(m.nodes, n)

	return nodeID(len(m.nodes) - 1)
}

// release zeroes a detached cell slot and queues it for reuse.
func (m *Matrix) release(id nodeID) {
	m.nodes[id] = node{}
	m.free = append(m.free, id)
}
