// SPDX-License-Identifier: MIT

package sparse

// Test-bridge (white-box): helpers that break the topology on purpose so
// Validate can be exercised from sparse_test. Compiled only with tests.

// BreakRowRing_TestOnly makes the last cell of row i point at itself,
// so the row ring never returns to its sentinel.
func BreakRowRing_TestOnly(m *Matrix, i int) {
	rs := m.rowHead[i]
	at := rs
	for m.nodes[at].right != rs {
		at = m.nodes[at].right
	}
	m.nodes[at].right = at
}

// DropFromColumn_TestOnly unlinks the first cell of column j from the column
// ring only, leaving it in its row ring.
func DropFromColumn_TestOnly(m *Matrix, j int) {
	cs := m.colHead[j]
	first := m.nodes[cs].down
	m.nodes[cs].down = m.nodes[first].down
}

// StoreZero_TestOnly overwrites the first cell of row i with 0 behind Insert's back.
func StoreZero_TestOnly(m *Matrix, i int) {
	rs := m.rowHead[i]
	m.nodes[m.nodes[rs].right].value = 0
}

// ArenaLen_TestOnly reports the arena length (sentinels + live and free cell slots).
func ArenaLen_TestOnly(m *Matrix) int { return len(m.nodes) }
