// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "golang.org/x/exp/maps"

type defaultMap map[uint64]uint64

func (m defaultMap) get(key uint64, defaultVal uint64) uint64 {
	if val, ok := m[key]; ok {
		return val
	}
	return defaultVal
}

// uniformReplacer allows for sampling over a uniform distribution without
// replacement.
//
// Sampling is performed by lazily performing an array shuffle of the array
// [0, 1, ..., length - 1]. By performing the swaps lazily, only the displaced
// entries are ever stored, so the full array is never materialized.
//
// Initialization takes O(1) time.
//
// Each draw takes O(1) time and at most one extra map entry.
type uniformReplacer struct {
	rng        *rng
	length     uint64
	drawn      defaultMap
	drawsCount uint64
}

func (s *uniformReplacer) Initialize(length uint64) {
	s.length = length
	s.drawn = make(defaultMap)
	s.drawsCount = 0
}

func (s *uniformReplacer) Reset() {
	maps.Clear(s.drawn)
	s.drawsCount = 0
}

func (s *uniformReplacer) Next() (uint64, error) {
	if s.drawsCount >= s.length {
		return 0, ErrOutOfRange
	}

	draw := s.rng.Uint64Inclusive(s.length-1-s.drawsCount) + s.drawsCount
	ret := s.drawn.get(draw, draw)
	s.drawn[draw] = s.drawn.get(s.drawsCount, s.drawsCount)
	// The slot at drawsCount is never read again.
	delete(s.drawn, s.drawsCount)
	s.drawsCount++

	return ret, nil
}
