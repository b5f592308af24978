// SPDX-License-Identifier: MIT

// Package triplet reads and writes sparse matrices in the plain
// whitespace-separated triple format:
//
//	rows cols
//	row col value
//	row col value
//	...
//
// Indices are 1-based. Blank lines and '#' comments are ignored. A triple
// with value 0 is accepted and stores nothing; a repeated position keeps the
// last value (Insert semantics).
package triplet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/orthosparse/sparse"
)

// ErrSyntax is returned for a malformed header or triple line.
var ErrSyntax = errors.New("triplet: syntax error")

// Read parses a matrix from r. opts are passed to sparse.New.
//
// Errors carry the 1-based line number and wrap ErrSyntax or the sparse
// sentinel raised by the offending line (ErrInvalidDimension, ErrOutOfBounds,
// ErrNaNInf).
func Read(r io.Reader, opts ...sparse.Option) (*sparse.Matrix, error) {
	sc := bufio.NewScanner(r)

	var (
		m    *sparse.Matrix
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(stripComment(sc.Text()))
		if len(fields) == 0 {
			continue
		}

		if m == nil {
			rows, cols, err := parseHeader(fields)
			if err != nil {
				return nil, lineErrorf(line, err)
			}
			if m, err = sparse.New(rows, cols, opts...); err != nil {
				return nil, lineErrorf(line, err)
			}
			continue
		}

		row, col, v, err := parseTriple(fields)
		if err != nil {
			return nil, lineErrorf(line, err)
		}
		if err := m.Insert(row, col, v); err != nil {
			return nil, lineErrorf(line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("triplet: read: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("triplet: missing \"rows cols\" header: %w", ErrSyntax)
	}

	return m, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...sparse.Option) (*sparse.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("triplet: %w", err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Write emits the header and one triple per stored cell in row-major order.
func Write(w io.Writer, m *sparse.Matrix) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("triplet: %w", err)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", m.Rows(), m.Cols())
	for c := range m.All() {
		fmt.Fprintf(bw, "%d %d %s\n", c.Row, c.Col, strconv.FormatFloat(c.Value, 'g', -1, 64))
	}

	return bw.Flush()
}

// WriteFile writes m to path (0644), replacing any existing file.
func WriteFile(path string, m *sparse.Matrix) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("triplet: %w", err)
	}
	if err := Write(f, m); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}

	return s
}

func parseHeader(fields []string) (rows, cols int, err error) {
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("header wants 2 fields, got %d: %w", len(fields), ErrSyntax)
	}
	if rows, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("rows %q: %w", fields[0], ErrSyntax)
	}
	if cols, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("cols %q: %w", fields[1], ErrSyntax)
	}

	return rows, cols, nil
}

func parseTriple(fields []string) (row, col int, v float64, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("triple wants 3 fields, got %d: %w", len(fields), ErrSyntax)
	}
	if row, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("row %q: %w", fields[0], ErrSyntax)
	}
	if col, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, fmt.Errorf("col %q: %w", fields[1], ErrSyntax)
	}
	if v, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("value %q: %w", fields[2], ErrSyntax)
	}

	return row, col, v, nil
}

func lineErrorf(line int, err error) error {
	return fmt.Errorf("triplet: line %d: %w", line, err)
}
