// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// WeightedWithoutReplacement defines how to sample weight without replacement.
// Note that the behavior is to sample the weight without replacement, not the
// indices. So the same index can be drawn as many times as its weight.
type WeightedWithoutReplacement interface {
	Initialize(weights []uint64) error
	// Sample draws [count] units of weight and returns, for each index, how
	// many of the draws landed on it.
	Sample(count uint64) ([]uint64, error)
}

// NewWeightedWithoutReplacement returns a new sampler
func NewWeightedWithoutReplacement() WeightedWithoutReplacement {
	return &weightedWithoutReplacementGeneric{
		u: NewUniform(),
		w: NewWeighted(),
	}
}

// NewDeterministicWeightedWithoutReplacement returns a new sampler
func NewDeterministicWeightedWithoutReplacement(source Source) WeightedWithoutReplacement {
	return &weightedWithoutReplacementGeneric{
		u: NewDeterministicUniform(source),
		w: NewWeighted(),
	}
}
