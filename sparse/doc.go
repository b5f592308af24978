// SPDX-License-Identifier: MIT

// Package sparse implements a sparse matrix stored as an orthogonal linked list.
//
// Only non-zero cells are stored. Every cell sits on two circular lists at
// once: the list of its row (ordered by column) and the list of its column
// (ordered by row). Each row and each column is anchored by a sentinel node,
// and a single header node anchors the ring of row sentinels and the ring of
// column sentinels:
//
//	H ──► C1 ──► C2 ──► C3 ──► H
//	│     │      │      │
//	▼     ▼      ▼      ▼
//	R1 ─► (1,1) ──────► (1,3) ─► R1
//	│                   │
//	▼                   ▼
//	R2 ────────► (2,2) ────────► R2
//	│
//	▼
//	H
//
// Traversal never needs the row or column count as a stop condition: every
// loop ends when it comes back to the sentinel it started from.
//
// Nodes live in a per-matrix arena and reference each other by index, so a
// Matrix can be copied, cleared or dropped without any aliasing between
// instances. Indices on the public surface are 1-based and inclusive:
// rows are 1..Rows(), columns are 1..Cols().
//
// Policy:
//   - Insert of 0 is a no-op, never an error.
//   - Get of an absent cell returns 0, never an error.
//   - Out-of-range indices return ErrOutOfBounds; nothing panics on user input.
//   - NaN/±Inf are rejected by default (see WithValidateNaNInf).
//
// A Matrix is not safe for concurrent mutation. Readers may share an
// instance only while no writer is active.
//
// Complexity quicksheet (R rows, C cols, k stored cells in the touched row/column):
//   - New: O(R+C); Insert: O(k_row + k_col); Get: O(k_row); Clear: O(R+C)
//   - Clone: O(nnz · (k_row + k_col)); Print: O(R·C)
package sparse
