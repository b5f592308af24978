// SPDX-License-Identifier: MIT

// Package sparse - zero-filled text rendering.
//
// The grid is produced by walking (i, j) over 1..R × 1..C and a single cursor
// side by side: when the cursor sits on (i, j) its value is emitted and the
// cursor advances, otherwise a zero is emitted. This relies on the cursor
// visiting cells in strictly increasing row-major order.

package sparse

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// CellFormatter renders one grid entry. stored is false for zero-filled
// positions (value is then 0).
type CellFormatter func(value float64, stored bool) string

// FormatValue is the default CellFormatter: shortest round-trip %g form,
// and "0" for positions with no stored cell.
func FormatValue(value float64, stored bool) string {
	if !stored {
		return "0"
	}

	return strconv.FormatFloat(value, 'g', -1, 64)
}

// Print writes the full Rows()×Cols() grid to w: entries separated by one
// space, one line per row, zeros for absent cells. A 0×0 matrix writes nothing.
func (m *Matrix) Print(w io.Writer) error {
	return m.Format(w, FormatValue)
}

// Format is Print with a caller-supplied entry formatter (nil means FormatValue).
func (m *Matrix) Format(w io.Writer, f CellFormatter) error {
	if f == nil {
		f = FormatValue
	}
	bw := bufio.NewWriter(w)

	c := m.Begin()
	for i := 1; i <= m.rows; i++ {
		for j := 1; j <= m.cols; j++ {
			if j > 1 {
				_ = bw.WriteByte(' ')
			}
			if c.at(i, j) {
				_, _ = bw.WriteString(f(c.m.nodes[c.cur].value, true))
				c.Next()
			} else {
				_, _ = bw.WriteString(f(0, false))
			}
		}
		_ = bw.WriteByte('\n')
	}

	// bufio errors are sticky; Flush reports the first one.
	return bw.Flush()
}

// String returns the Print grid.
func (m *Matrix) String() string {
	var sb strings.Builder
	_ = m.Print(&sb)

	return sb.String()
}
