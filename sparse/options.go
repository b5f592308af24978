// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for new matrices.
//
// Options are resolved once at construction and stored on the instance;
// Clone and the algebra helpers propagate the policy of their (first) operand.

package sparse

// DefaultValidateNaNInf toggles strict finite-value validation on Insert.
const DefaultValidateNaNInf = true

const panicCapacityInvalid = "sparse: WithCapacity: capacity must be >= 0"

// Option mutates construction options.
type Option func(*options)

type options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	capacity       int  // expected number of stored cells (arena pre-allocation)
}

// WithValidateNaNInf sets whether Insert rejects NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf(on bool) Option {
	return func(o *options) { o.validateNaNInf = on }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Stored NaN cells still count as non-zero.
func WithNoValidateNaNInf() Option { return WithValidateNaNInf(false) }

// WithCapacity pre-allocates arena room for n cells.
// Panics when n < 0 (programmer error).
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *options) { o.capacity = n }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// policy returns the options that reproduce m's numeric policy.
func (m *Matrix) policy() []Option {
	return []Option{WithValidateNaNInf(m.validateNaNInf)}
}
