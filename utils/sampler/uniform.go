// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Uniform draws distinct values from [0, length), one at a time.
type Uniform interface {
	Initialize(length uint64)
	// Reset makes every value in the range drawable again.
	Reset()
	// Next returns a value that hasn't been drawn since the last Reset, or
	// ErrOutOfRange once the range is exhausted.
	Next() (uint64, error)
}

// NewUniform returns a new sampler
func NewUniform() Uniform {
	return &uniformReplacer{
		rng: globalRNG,
	}
}

// NewDeterministicUniform returns a new sampler
func NewDeterministicUniform(source Source) Uniform {
	return &uniformReplacer{
		rng: &rng{
			rng: source,
		},
	}
}
