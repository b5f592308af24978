// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthosparse/sparse"
)

func TestNew_InvalidDimension(t *testing.T) {
	t.Parallel()
	cases := []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}, {3, -2}, {0, 0}}
	for _, tc := range cases {
		m, err := sparse.New(tc.r, tc.c)
		require.ErrorIs(t, err, sparse.ErrInvalidDimension, "New(%d,%d)", tc.r, tc.c)
		require.Nil(t, m)
	}
}

func TestNew_EmptyTopology(t *testing.T) {
	t.Parallel()
	m := MustNew(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 0, m.Len())
	RequireValid(t, m)

	for i := 1; i <= 3; i++ {
		for j := 1; j <= 4; j++ {
			require.Zero(t, MustGet(t, m, i, j))
		}
	}
	require.False(t, m.Begin().Valid())
}

func TestEmpty_DegenerateRings(t *testing.T) {
	t.Parallel()
	m := sparse.Empty()
	r, c := m.Shape()
	require.Zero(t, r)
	require.Zero(t, c)
	RequireValid(t, m)

	require.ErrorIs(t, m.Insert(1, 1, 5), sparse.ErrOutOfBounds)
	_, err := m.Get(1, 1)
	require.ErrorIs(t, err, sparse.ErrOutOfBounds)
	require.Equal(t, sparse.Exhausted, m.Begin().State())
	require.Empty(t, m.String())
}

func TestInsertGet_Basic(t *testing.T) {
	t.Parallel()
	m := MustNew(t, 5, 5)
	require.NoError(t, m.Insert(1, 1, 1))
	require.NoError(t, m.Insert(5, 5, 2))
	require.NoError(t, m.Insert(3, 2, 2))

	require.Equal(t, 1.0, MustGet(t, m, 1, 1))
	require.Equal(t, 2.0, MustGet(t, m, 5, 5))
	require.Equal(t, 2.0, MustGet(t, m, 3, 2))
	require.Zero(t, MustGet(t, m, 3, 3))
	require.Equal(t, 3, m.Len())
	RequireValid(t, m)
}

func TestInsert_OutOfOrderKeepsListsSorted(t *testing.T) {
	t.Parallel()
	m := MustNew(t, 4, 4)
	for _, c := range []sparse.Cell{cell(2, 4, 1), cell(2, 1, 2), cell(2, 3, 3), cell(4, 3, 4), cell(1, 3, 5)} {
		require.NoError(t, m.Insert(c.Row, c.Col, c.Value))
		RequireValid(t, m)
	}

	row2, err := m.Row(2)
	require.NoError(t, err)
	var cols []int
	for c := range row2 {
		cols = append(cols, c.Col)
	}
	require.Equal(t, []int{1, 3, 4}, cols)

	col3, err := m.Column(3)
	require.NoError(t, err)
	var rows []int
	for c := range col3 {
		rows = append(rows, c.Row)
	}
	require.Equal(t, []int{1, 2, 4}, rows)
}

func TestInsert_OverwriteKeepsCount(t *testing.T) {
	t.Parallel()
	m := MustNew(t, 2, 2)
	require.NoError(t, m.Insert(1, 2, 3.5))
	require.NoError(t, m.Insert(1, 2, -7))
	require.Equal(t, -7.0, MustGet(t, m, 1, 2))
	require.Equal(t, 1, m.Len())
	RequireValid(t, m)
}

func TestInsert_ZeroIsNoOp(t *testing.T) {
	t.Parallel()
	m := MustNew(t, 2, 2)
	require.NoError(t, m.Insert(1, 1, 0))
	require.Zero(t, MustGet(t, m, 1, 1))
	require.Zero(t, m.Len())

	// Zero over an existing cell leaves it alone.
	require.NoError(t, m.Insert(2, 2, 4))
	require.NoError(t, m.Insert(2, 2, 0))
	require.Equal(t, 4.0, MustGet(t, m, 2, 2))
	require.Equal(t, 1, m.Len())

	// The zero check comes first, so even out-of-range zeros are silent.
	require.NoError(t, m.Insert(9, 9, 0))
}

func TestInsertGet_OutOfBounds(t *testing.T) {
	t.Parallel()
	m := MustNew(t, 3, 2)
	bad := [][2]int{{0, 1}, {1, 0}, {4, 1}, {1, 3}, {-1, 1}, {1, -5}, {4, 3}}
	for _, ij := range bad {
		err := m.Insert(ij[0], ij[1], 1)
		require.ErrorIs(t, err, sparse.ErrOutOfBounds, "Insert%v", ij)
		_, err = m.Get(ij[0], ij[1])
		require.ErrorIs(t, err, sparse.ErrOutOfBounds, "Get%v", ij)
		_, err = m.Delete(ij[0], ij[1])
		require.ErrorIs(t, err, sparse.ErrOutOfBounds, "Delete%v", ij)
		require.False(t, m.Has(ij[0], ij[1]))
	}
	// Inclusive upper bounds.
	require.NoError(t, m.Insert(3, 2, 1))
	require.Equal(t, 1.0, MustGet(t, m, 3, 2))
}

func TestInsert_NaNInfPolicy(t *testing.T) {
	t.Parallel()
	strict := MustNew(t, 2, 2)
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, strict.Insert(1, 1, v), sparse.ErrNaNInf)
	}
	require.Zero(t, strict.Len())
	require.True(t, strict.ValidatesNaNInf())

	loose := MustNew(t, 2, 2, sparse.WithNoValidateNaNInf())
	require.NoError(t, loose.Insert(1, 1, math.Inf(1)))
	require.NoError(t, loose.Insert(2, 2, math.NaN()))
	require.True(t, math.IsInf(MustGet(t, loose, 1, 1), 1))
	require.True(t, math.IsNaN(MustGet(t, loose, 2, 2)))
	require.Equal(t, 2, loose.Len())
}

func TestWithCapacity_NegativePanics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { sparse.WithCapacity(-1) })
	m := MustNew(t, 2, 2, sparse.WithCapacity(16))
	require.NoError(t, m.Insert(1, 1, 1))
}

func TestDelete(t *testing.T) {
	t.Parallel()
	m := MustBuild(t, 3, 3, cell(1, 1, 1), cell(1, 3, 2), cell(2, 2, 3), cell(3, 3, 4))

	ok, err := m.Delete(1, 2)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = m.Delete(1, 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, MustGet(t, m, 1, 3))
	require.Equal(t, 3, m.Len())
	RequireValid(t, m)

	// Column 3 still reaches (3,3) after (1,3) left it.
	col3, err := m.Column(3)
	require.NoError(t, err)
	var got []sparse.Cell
	for c := range col3 {
		got = append(got, c)
	}
	require.Equal(t, []sparse.Cell{cell(3, 3, 4)}, got)
}

func TestDelete_ReusesSlot(t *testing.T) {
	t.Parallel()
	m := MustBuild(t, 2, 2, cell(1, 1, 1), cell(2, 2, 2))
	before := sparse.ArenaLen_TestOnly(m)

	_, err := m.Delete(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Insert(2, 1, 9))
	require.Equal(t, before, sparse.ArenaLen_TestOnly(m))
	require.Equal(t, 9.0, MustGet(t, m, 2, 1))
	RequireValid(t, m)
}

func TestClear(t *testing.T) {
	t.Parallel()
	m := MustBuild(t, 3, 3, cell(1, 1, 1), cell(2, 3, 2), cell(3, 2, 3))
	m.Clear()
	RequireValid(t, m)
	require.Zero(t, m.Len())
	for i := 1; i <= 3; i++ {
		for j := 1; j <= 3; j++ {
			require.Zero(t, MustGet(t, m, i, j))
		}
	}
	require.Equal(t, sparse.Exhausted, m.Begin().State())

	m.Clear() // idempotent
	RequireValid(t, m)

	// Still insertable with invariants intact.
	require.NoError(t, m.Insert(2, 2, 5))
	require.Equal(t, 5.0, MustGet(t, m, 2, 2))
	require.Equal(t, 1, m.Len())
	RequireValid(t, m)
}

func TestHas(t *testing.T) {
	t.Parallel()
	m := MustBuild(t, 2, 3, cell(2, 2, 1))
	require.True(t, m.Has(2, 2))
	require.False(t, m.Has(2, 1))
	require.False(t, m.Has(2, 3))
	require.False(t, m.Has(1, 2))
}

func TestValidate_DetectsCorruption(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, sparse.Validate(nil), sparse.ErrNilMatrix)

	m := MustBuild(t, 3, 3, cell(1, 1, 1), cell(1, 2, 2))
	sparse.BreakRowRing_TestOnly(m, 1)
	require.ErrorIs(t, sparse.Validate(m), sparse.ErrCorrupt)

	m = MustBuild(t, 3, 3, cell(1, 1, 1), cell(2, 1, 2))
	sparse.DropFromColumn_TestOnly(m, 1)
	require.ErrorIs(t, sparse.Validate(m), sparse.ErrCorrupt)

	m = MustBuild(t, 3, 3, cell(2, 2, 1))
	sparse.StoreZero_TestOnly(m, 2)
	require.ErrorIs(t, sparse.Validate(m), sparse.ErrCorrupt)
}
