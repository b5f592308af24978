// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All public operations return these sentinels (possibly wrapped with an
// operation tag via %w); callers match them with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned by constructors when rows <= 0 or cols <= 0.
	ErrInvalidDimension = errors.New("sparse: dimensions must be > 0")

	// ErrOutOfBounds indicates a row outside [1, Rows()] or a column outside [1, Cols()].
	ErrOutOfBounds = errors.New("sparse: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes
	// (Sum with different shapes, Multiply with a.Cols() != b.Rows(), CopyFrom across shapes).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-value policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix was passed where one is required.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrCursorState is returned when a cursor is dereferenced while not on a cell.
	ErrCursorState = errors.New("sparse: cursor is not on a cell")

	// ErrCorrupt is returned by Validate when a topology invariant does not hold.
	ErrCorrupt = errors.New("sparse: corrupt topology")
)

// matrixErrorf tags err with the operation that detected it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf tags err with the operation and the offending coordinates.
func indexErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", tag, row, col, err)
}
