// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package subsample draws random subsamples of count vectors, either without
// replacement (multivariate hypergeometric) or with replacement (multinomial).
package subsample

import (
	"errors"
	"fmt"

	"github.com/ava-labs/subsample/counts"
	"github.com/ava-labs/subsample/utils/sampler"
)

var (
	ErrEmptyPopulation = errors.New("cannot sample with replacement from a population without items")

	defaultSampler = New()
)

// Sampler draws subsamples from count vectors.
//
// Samplers returned by New are safe for concurrent use. Samplers returned by
// NewDeterministic are only as safe as the provided source.
type Sampler struct {
	newWithoutReplacement func() sampler.WeightedWithoutReplacement
	newWithReplacement    func() sampler.WeightedWithReplacement
}

// New returns a sampler backed by the process-wide random source.
func New() *Sampler {
	return &Sampler{
		newWithoutReplacement: sampler.NewWeightedWithoutReplacement,
		newWithReplacement:    sampler.NewWeightedWithReplacement,
	}
}

// NewDeterministic returns a sampler that draws all of its randomness from
// [source].
func NewDeterministic(source sampler.Source) *Sampler {
	return &Sampler{
		newWithoutReplacement: func() sampler.WeightedWithoutReplacement {
			return sampler.NewDeterministicWeightedWithoutReplacement(source)
		},
		newWithReplacement: func() sampler.WeightedWithReplacement {
			return sampler.NewDeterministicWeightedWithReplacement(source)
		},
	}
}

// Subsample draws [n] items from [v] without replacement and returns how many
// were drawn from each bin. Every subset of [n] items is equally likely.
//
// If [n] is at least the total of [v], a copy of [v] is returned.
func (s *Sampler) Subsample(v counts.Vector, n uint64) (counts.Vector, error) {
	total, err := v.Sum()
	if err != nil {
		return nil, err
	}
	if n >= total {
		return v.Clone(), nil
	}

	// The complement of a uniformly random subset is a uniformly random subset,
	// so when most items are kept it is cheaper to draw the removed ones.
	removed := total - n
	draws := n
	if removed < n {
		draws = removed
	}

	ws := s.newWithoutReplacement()
	if err := ws.Initialize(v); err != nil {
		return nil, err
	}
	drawn, err := ws.Sample(draws)
	if err != nil {
		return nil, err
	}
	if draws == n {
		return drawn, nil
	}

	for i, count := range v {
		drawn[i] = count - drawn[i]
	}
	return drawn, nil
}

// Multinomial performs [n] independent draws from [v], selecting bin i with
// probability v[i]/total, and returns how many draws landed on each bin.
//
// Unlike Subsample, the result always sums to [n] and a bin may receive more
// draws than it originally held.
func (s *Sampler) Multinomial(v counts.Vector, n uint64) (counts.Vector, error) {
	total, err := v.Sum()
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: %d bins are all empty", ErrEmptyPopulation, len(v))
	}

	ws := s.newWithReplacement()
	if err := ws.Initialize(v); err != nil {
		return nil, err
	}
	return ws.Sample(n)
}

// Subsample validates [input] as a count vector and draws [n] items from it
// without replacement using the process-wide random source.
func Subsample(input any, n int) (counts.Vector, error) {
	return sampleInput(defaultSampler.Subsample, input, n)
}

// SubsampleMultinomial validates [input] as a count vector and draws [n] items
// from it with replacement using the process-wide random source.
func SubsampleMultinomial(input any, n int) (counts.Vector, error) {
	return sampleInput(defaultSampler.Multinomial, input, n)
}

func sampleInput(
	sample func(counts.Vector, uint64) (counts.Vector, error),
	input any,
	n int,
) (counts.Vector, error) {
	v, err := counts.Parse(input)
	if err != nil {
		return nil, err
	}
	drawSize, err := counts.DrawSize(n)
	if err != nil {
		return nil, err
	}
	return sample(v, drawSize)
}
