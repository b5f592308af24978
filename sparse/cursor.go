// SPDX-License-Identifier: MIT

// Package sparse - forward cursor over stored cells in row-major order.
//
// A Cursor is an explicit state machine:
//
//	BeforeFirst --Next--> OnCell --Next--> OnCell ... --Next--> Exhausted
//	BeforeFirst --Next--> Exhausted   (no stored cells)
//
// The cursor remembers the sentinel of the row it is walking (owner) and the
// node it is on (cur). Advancing follows the row-successor link; landing on
// the owner means the row is done, so the cursor hops down the vertical ring
// to the next row sentinel and continues from its first cell, skipping empty
// rows, until it finds a cell or comes back to the header.
//
// Any mutation of the matrix (Insert of a new cell, Delete, Clear, CopyFrom)
// invalidates outstanding cursors; overwriting an existing value does not.

package sparse

import "iter"

// CursorState is the position class of a Cursor.
type CursorState uint8

const (
	// BeforeFirst: freshly created, Next has not been called.
	BeforeFirst CursorState = iota
	// OnCell: positioned on a stored cell; Value/Cell are valid.
	OnCell
	// Exhausted: walked past the last stored cell.
	Exhausted
)

// String returns the state name.
func (s CursorState) String() string {
	switch s {
	case BeforeFirst:
		return "before-first"
	case OnCell:
		return "on-cell"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Cursor walks the stored cells of one Matrix in (row, col) order.
type Cursor struct {
	m     *Matrix
	state CursorState
	owner nodeID // sentinel of the row being walked
	cur   nodeID // current node; meaningful only OnCell
}

// Cursor returns a new cursor in the BeforeFirst state.
func (m *Matrix) Cursor() *Cursor {
	return &Cursor{m: m, state: BeforeFirst, owner: header, cur: header}
}

// Begin returns a fresh cursor already advanced to the first stored cell,
// or Exhausted when the matrix holds no cells.
func (m *Matrix) Begin() *Cursor {
	c := m.Cursor()
	c.Next()

	return c
}

// Next advances the cursor and reports whether it is now on a cell.
// Calling Next on an exhausted cursor is a no-op returning false.
func (c *Cursor) Next() bool {
	nodes := c.m.nodes

	switch c.state {
	case Exhausted:
		return false
	case OnCell:
		c.cur = nodes[c.cur].right
		if c.cur != c.owner {
			return true
		}
	case BeforeFirst:
		c.owner = header
	}

	// End of the current row (or start of the walk): hop across row sentinels.
	for {
		c.owner = nodes[c.owner].down
		if c.owner == header {
			c.state = Exhausted
			c.cur = header

			return false
		}
		if first := nodes[c.owner].right; first != c.owner {
			c.cur = first
			c.state = OnCell

			return true
		}
	}
}

// State returns the current state.
func (c *Cursor) State() CursorState { return c.state }

// Valid reports whether the cursor is on a cell.
func (c *Cursor) Valid() bool { return c.state == OnCell }

// Value returns the value of the current cell.
// Errors: ErrCursorState unless the cursor is OnCell.
func (c *Cursor) Value() (float64, error) {
	if c.state != OnCell {
		return 0, matrixErrorf("Cursor.Value("+c.state.String()+")", ErrCursorState)
	}

	return c.m.nodes[c.cur].value, nil
}

// Cell returns the current cell with its position.
// Errors: ErrCursorState unless the cursor is OnCell.
func (c *Cursor) Cell() (Cell, error) {
	if c.state != OnCell {
		return Cell{}, matrixErrorf("Cursor.Cell("+c.state.String()+")", ErrCursorState)
	}

	return c.cell(), nil
}

// cell reads the current node; caller guarantees OnCell.
func (c *Cursor) cell() Cell {
	n := c.m.nodes[c.cur]

	return Cell{Row: n.row, Col: n.col, Value: n.value}
}

// at reports whether the cursor is on the cell (row, col).
func (c *Cursor) at(row, col int) bool {
	if c.state != OnCell {
		return false
	}
	n := c.m.nodes[c.cur]

	return n.row == row && n.col == col
}

// Equal reports whether c and o denote the same logical position:
// same matrix, same state, and (OnCell) the same node in the same row.
// All BeforeFirst cursors of a matrix are equal, as are all Exhausted ones.
func (c *Cursor) Equal(o *Cursor) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.m != o.m || c.state != o.state {
		return false
	}
	if c.state != OnCell {
		return true
	}

	return c.cur == o.cur && c.owner == o.owner
}

// All yields every stored cell in row-major order.
func (m *Matrix) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := m.Cursor(); c.Next(); {
			if !yield(c.cell()) {
				return
			}
		}
	}
}

// Cells returns a snapshot of every stored cell in row-major order.
func (m *Matrix) Cells() []Cell {
	out := make([]Cell, 0, m.count)
	for cell := range m.All() {
		out = append(out, cell)
	}

	return out
}

// Row yields the stored cells of row i in increasing column order.
// Errors: ErrOutOfBounds for i∉[1,Rows()].
func (m *Matrix) Row(i int) (iter.Seq[Cell], error) {
	if i < 1 || i > m.rows {
		return nil, indexErrorf("Row", i, 0, ErrOutOfBounds)
	}
	rs := m.rowHead[i]

	return func(yield func(Cell) bool) {
		for n := m.nodes[rs].right; n != rs; n = m.nodes[n].right {
			x := m.nodes[n]
			if !yield(Cell{Row: x.row, Col: x.col, Value: x.value}) {
				return
			}
		}
	}, nil
}

// Column yields the stored cells of column j in increasing row order by
// walking the column ring.
// Errors: ErrOutOfBounds for j∉[1,Cols()].
func (m *Matrix) Column(j int) (iter.Seq[Cell], error) {
	if j < 1 || j > m.cols {
		return nil, indexErrorf("Column", 0, j, ErrOutOfBounds)
	}
	cs := m.colHead[j]

	return func(yield func(Cell) bool) {
		for n := m.nodes[cs].down; n != cs; n = m.nodes[n].down {
			x := m.nodes[n]
			if !yield(Cell{Row: x.row, Col: x.col, Value: x.value}) {
				return
			}
		}
	}, nil
}
