// SPDX-License-Identifier: MIT
// Package sparse - facade aliases.
//
// Thin, intention-revealing names over the canonical kernels in ops.go.
// No logic lives here.

package sparse

// Add is an alias for Sum: element-wise a + b.
func Add(a, b *Matrix) (*Matrix, error) { return Sum(a, b) }

// Product is an alias for Multiply: a × b.
func Product(a, b *Matrix) (*Matrix, error) { return Multiply(a, b) }

// T is an alias for Transpose.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }

// NewZeros is an alias for New with an explicit name: a rows×cols matrix with no stored cells.
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) { return New(rows, cols, opts...) }

// NewIdentity returns I_n with n stored diagonal cells.
func NewIdentity(n int, opts ...Option) (*Matrix, error) {
	m, err := New(n, n, append(opts, WithCapacity(max(n, 0)))...)
	if err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		_ = m.Insert(i, i, 1) // in range after shape validation
	}

	return m, nil
}
