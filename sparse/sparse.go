// SPDX-License-Identifier: MIT

// Package sparse - arena layout, construction and accessors.
//
// Arena layout (fixed for the lifetime of an instance):
//
//	slot 0              header (0,0)
//	slots 1..R          row sentinels (i,0)
//	slots R+1..R+C      column sentinels (0,j)
//	slots R+C+1..       cells, recycled through a free list

package sparse

import "fmt"

// nodeID addresses a node inside the owning Matrix arena.
type nodeID int32

// header is always the first arena slot.
const header nodeID = 0

// node is a header, a sentinel or a stored cell.
type node struct {
	row, col int
	value    float64
	right    nodeID // row-successor
	down     nodeID // column-successor
}

// Cell is a stored non-zero entry. Row and Col are 1-based.
type Cell struct {
	Row   int
	Col   int
	Value float64
}

// String renders the cell as "(row,col)=value".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)=%g", c.Row, c.Col, c.Value) }

// Matrix is a rows×cols sparse matrix in orthogonal-list form.
// The zero value is not usable; build instances with New or Empty.
type Matrix struct {
	rows, cols     int
	nodes          []node   // arena; see file header for the layout
	rowHead        []nodeID // rowHead[i] is the sentinel of row i (index 0 unused)
	colHead        []nodeID // colHead[j] is the sentinel of column j (index 0 unused)
	free           []nodeID // released cell slots
	count          int      // stored cells
	validateNaNInf bool
}

// New creates an empty rows×cols matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimension.
//   - Stage 2: allocate the header, the ring of row sentinels and the ring
//     of column sentinels; every sentinel starts as a self-loop.
//
// Complexity: O(rows+cols) time and space.
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimension)
	}

	return newMatrix(rows, cols, gatherOptions(opts...)), nil
}

// Empty returns a 0×0 matrix whose header rings point to the header itself.
// Every Insert/Get on it fails with ErrOutOfBounds.
func Empty(opts ...Option) *Matrix {
	return newMatrix(0, 0, gatherOptions(opts...))
}

// newMatrix builds the sentinel topology; rows/cols may be zero.
func newMatrix(rows, cols int, o options) *Matrix {
	m := &Matrix{
		rows:           rows,
		cols:           cols,
		validateNaNInf: o.validateNaNInf,
	}
	sentinels := m.sentinels()
	m.nodes = make([]node, sentinels, sentinels+o.capacity)
	m.rowHead = make([]nodeID, rows+1)
	m.colHead = make([]nodeID, cols+1)
	m.link()

	return m
}

// link (re)initializes header and sentinels as two rings of self-looping anchors.
func (m *Matrix) link() {
	m.nodes[header] = node{right: header, down: header}

	// Vertical ring: header -> R1 -> ... -> RR -> header.
	prev := header
	for i := 1; i <= m.rows; i++ {
		id := nodeID(i)
		m.nodes[id] = node{row: i, right: id}
		m.nodes[prev].down = id
		m.rowHead[i] = id
		prev = id
	}
	m.nodes[prev].down = header

	// Horizontal ring: header -> C1 -> ... -> CC -> header.
	prev = header
	for j := 1; j <= m.cols; j++ {
		id := nodeID(m.rows + j)
		m.nodes[id] = node{col: j, down: id}
		m.nodes[prev].right = id
		m.colHead[j] = id
		prev = id
	}
	m.nodes[prev].right = header
}

// sentinels is the number of non-cell slots (header + row + column sentinels).
func (m *Matrix) sentinels() int { return 1 + m.rows + m.cols }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns Rows() and Cols().
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns the number of stored (non-zero) cells.
func (m *Matrix) Len() int { return m.count }

// ValidatesNaNInf reports whether Insert rejects NaN/±Inf on this instance.
func (m *Matrix) ValidatesNaNInf() bool { return m.validateNaNInf }

// Clear removes every stored cell and resets each row and column sentinel
// to a self-loop. Header rings and dimensions are untouched; the matrix stays
// usable. Calling Clear repeatedly is safe.
//
// Complexity: O(rows+cols). Cell slots are dropped at once by truncating the arena.
func (m *Matrix) Clear() {
	for i := 1; i <= m.rows; i++ {
		id := m.rowHead[i]
		m.nodes[id].right = id
	}
	for j := 1; j <= m.cols; j++ {
		id := m.colHead[j]
		m.nodes[id].down = id
	}
	m.nodes = m.nodes[:m.sentinels()]
	m.free = m.free[:0]
	m.count = 0
}
