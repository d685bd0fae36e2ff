// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sort"

	safemath "github.com/ava-labs/subsample/utils/math"
)

var _ Weighted = (*weightedArray)(nil)

// Sampling is performed by executing a binary search over the cumulative
// weights, kept in the order the weights were provided. Index i owns the
// values in [cumulativeWeights[i-1], cumulativeWeights[i]), so an index with
// zero weight owns no values and is never returned.
//
// Initialization takes O(n) time, where n is the number of elements that can
// be sampled.
// Sampling is performed in O(log(n)) time.
type weightedArray struct {
	cumulativeWeights []uint64
}

func (s *weightedArray) Initialize(weights []uint64) error {
	numWeights := len(weights)
	if numWeights <= cap(s.cumulativeWeights) {
		s.cumulativeWeights = s.cumulativeWeights[:numWeights]
	} else {
		s.cumulativeWeights = make([]uint64, numWeights)
	}

	cumulativeWeight := uint64(0)
	for i, weight := range weights {
		newWeight, err := safemath.Add64(cumulativeWeight, weight)
		if err != nil {
			return err
		}
		cumulativeWeight = newWeight
		s.cumulativeWeights[i] = cumulativeWeight
	}
	return nil
}

func (s *weightedArray) Sample(value uint64) (int, error) {
	numWeights := len(s.cumulativeWeights)
	if numWeights == 0 || s.cumulativeWeights[numWeights-1] <= value {
		return 0, ErrOutOfRange
	}

	return sort.Search(numWeights, func(i int) bool {
		return value < s.cumulativeWeights[i]
	}), nil
}
