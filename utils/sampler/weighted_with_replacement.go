// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import safemath "github.com/ava-labs/subsample/utils/math"

var _ WeightedWithReplacement = (*weightedWithReplacement)(nil)

// WeightedWithReplacement defines how to sample indices with replacement,
// where each index is drawn proportionally to its weight.
type WeightedWithReplacement interface {
	Initialize(weights []uint64) error
	// Sample performs [count] independent draws and returns, for each index,
	// how many of the draws landed on it.
	Sample(count uint64) ([]uint64, error)
}

// NewWeightedWithReplacement returns a new sampler
func NewWeightedWithReplacement() WeightedWithReplacement {
	return &weightedWithReplacement{
		rng: globalRNG,
		w:   NewWeighted(),
	}
}

// NewDeterministicWeightedWithReplacement returns a new sampler
func NewDeterministicWeightedWithReplacement(source Source) WeightedWithReplacement {
	return &weightedWithReplacement{
		rng: &rng{
			rng: source,
		},
		w: NewWeighted(),
	}
}

// Each draw takes a value uniformly from [0, totalWeight) and maps it to the
// index that owns it.
//
// Sampling is performed in O(count * log(n)) time, where n is the number of
// weights.
type weightedWithReplacement struct {
	rng         *rng
	w           Weighted
	totalWeight uint64
	numWeights  int
}

func (s *weightedWithReplacement) Initialize(weights []uint64) error {
	totalWeight, err := safemath.Sum64(weights...)
	if err != nil {
		return err
	}
	s.totalWeight = totalWeight
	s.numWeights = len(weights)
	return s.w.Initialize(weights)
}

func (s *weightedWithReplacement) Sample(count uint64) ([]uint64, error) {
	drawn := make([]uint64, s.numWeights)
	if count == 0 {
		return drawn, nil
	}
	if s.totalWeight == 0 {
		return nil, ErrOutOfRange
	}

	for i := uint64(0); i < count; i++ {
		value := s.rng.Uint64Inclusive(s.totalWeight - 1)
		index, err := s.w.Sample(value)
		if err != nil {
			return nil, err
		}
		drawn[index]++
	}
	return drawn, nil
}
