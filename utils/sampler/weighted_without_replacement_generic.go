// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import safemath "github.com/ava-labs/subsample/utils/math"

var _ WeightedWithoutReplacement = (*weightedWithoutReplacementGeneric)(nil)

// weightedWithoutReplacementGeneric treats every unit of weight as a distinct
// item. Items are drawn uniformly without replacement from [0, totalWeight)
// and then mapped back to the index that owns them.
type weightedWithoutReplacementGeneric struct {
	u          Uniform
	w          Weighted
	numWeights int
}

func (s *weightedWithoutReplacementGeneric) Initialize(weights []uint64) error {
	totalWeight, err := safemath.Sum64(weights...)
	if err != nil {
		return err
	}
	s.u.Initialize(totalWeight)
	s.numWeights = len(weights)
	return s.w.Initialize(weights)
}

func (s *weightedWithoutReplacementGeneric) Sample(count uint64) ([]uint64, error) {
	s.u.Reset()

	drawn := make([]uint64, s.numWeights)
	for i := uint64(0); i < count; i++ {
		weight, err := s.u.Next()
		if err != nil {
			return nil, err
		}
		index, err := s.w.Sample(weight)
		if err != nil {
			return nil, err
		}
		drawn[index]++
	}
	return drawn, nil
}
