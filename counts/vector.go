// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counts

import (
	safemath "github.com/ava-labs/subsample/utils/math"
)

// Vector is an ordered sequence of non-negative counts. The position of a
// count identifies its bin.
type Vector []uint64

// Sum returns the total number of items in the vector, or an error if the total
// does not fit in a uint64.
func (v Vector) Sum() (uint64, error) {
	return safemath.Sum64(v...)
}

// Clone returns a copy of the vector that shares no memory with [v].
func (v Vector) Clone() Vector {
	if v == nil {
		return Vector{}
	}
	c := make(Vector, len(v))
	copy(c, v)
	return c
}

// NonZero returns the number of bins holding at least one item.
func (v Vector) NonZero() int {
	nonZero := 0
	for _, c := range v {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero
}
