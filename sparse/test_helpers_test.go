// SPDX-License-Identifier: MIT
// Package sparse_test contains shared fixtures.

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthosparse/sparse"
)

// MustNew allocates an r×c matrix or fails the test.
func MustNew(t testing.TB, r, c int, opts ...sparse.Option) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(r, c, opts...)
	require.NoError(t, err)

	return m
}

// MustBuild allocates an r×c matrix and inserts the given cells.
func MustBuild(t testing.TB, r, c int, cells ...sparse.Cell) *sparse.Matrix {
	t.Helper()
	m := MustNew(t, r, c)
	for _, cell := range cells {
		require.NoError(t, m.Insert(cell.Row, cell.Col, cell.Value))
	}

	return m
}

// MustGet reads (i, j) or fails the test.
func MustGet(t testing.TB, m *sparse.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.Get(i, j)
	require.NoError(t, err)

	return v
}

// RequireValid asserts every topology invariant.
func RequireValid(t testing.TB, m *sparse.Matrix) {
	t.Helper()
	require.NoError(t, sparse.Validate(m))
}

// cell is shorthand for sparse.Cell literals in tables.
func cell(r, c int, v float64) sparse.Cell { return sparse.Cell{Row: r, Col: c, Value: v} }
