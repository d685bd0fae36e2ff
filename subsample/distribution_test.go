// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package subsample

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ava-labs/subsample/counts"
	"github.com/ava-labs/subsample/utils/sampler"
)

const (
	distributionTrials = 30000
	minPValue          = 1e-4
)

// outcomes returns every vector that sums to [n] and is bounded by [v].
func outcomes(v counts.Vector, n uint64) []counts.Vector {
	if len(v) == 0 {
		if n == 0 {
			return []counts.Vector{{}}
		}
		return nil
	}

	var result []counts.Vector
	for c := uint64(0); c <= v[0] && c <= n; c++ {
		for _, rest := range outcomes(v[1:], n-c) {
			outcome := append(counts.Vector{c}, rest...)
			result = append(result, outcome)
		}
	}
	return result
}

// hypergeometricPMF returns the probability of drawing [outcome] from [v]
// without replacement.
func hypergeometricPMF(v, outcome counts.Vector) float64 {
	var total, n int
	p := 1.0
	for i := range v {
		p *= float64(combin.Binomial(int(v[i]), int(outcome[i])))
		total += int(v[i])
		n += int(outcome[i])
	}
	return p / float64(combin.Binomial(total, n))
}

func TestSubsampleIsHypergeometric(t *testing.T) {
	v := counts.Vector{3, 2, 1}

	// n=2 and n=3 draw the kept items, n=4 draws the removed ones.
	for _, n := range []uint64{2, 3, 4} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			require := require.New(t)

			possible := outcomes(v, n)
			index := make(map[string]int, len(possible))
			expected := make([]float64, len(possible))
			for i, outcome := range possible {
				index[fmt.Sprint(outcome)] = i
				expected[i] = hypergeometricPMF(v, outcome) * distributionTrials
			}

			s := NewDeterministic(sampler.NewSource(n))
			observed := make([]float64, len(possible))
			for i := 0; i < distributionTrials; i++ {
				obs, err := s.Subsample(v, n)
				require.NoError(err)

				j, ok := index[fmt.Sprint(obs)]
				require.True(ok, "impossible outcome %v", obs)
				observed[j]++
			}

			chi := stat.ChiSquare(observed, expected)
			pValue := distuv.ChiSquared{K: float64(len(possible) - 1)}.Survival(chi)
			require.Greater(pValue, minPValue, "observed=%v expected=%v", observed, expected)
		})
	}
}

func TestMultinomialBinFrequencies(t *testing.T) {
	require := require.New(t)

	const n = 35

	total, err := richVector.Sum()
	require.NoError(err)

	var (
		bins     []int
		expected []float64
	)
	for i, c := range richVector {
		if c == 0 {
			continue
		}
		bins = append(bins, i)
		expected = append(expected, float64(c)/float64(total)*n*distributionTrials)
	}

	s := NewDeterministic(sampler.NewSource(35))
	observed := make([]float64, len(bins))
	for i := 0; i < distributionTrials; i++ {
		obs, err := s.Multinomial(richVector, n)
		require.NoError(err)
		for j, bin := range bins {
			observed[j] += float64(obs[bin])
		}
	}

	chi := stat.ChiSquare(observed, expected)
	pValue := distuv.ChiSquared{K: float64(len(bins) - 1)}.Survival(chi)
	require.Greater(pValue, minPValue, "observed=%v expected=%v", observed, expected)
}

func TestMultinomialOutcomeFrequencies(t *testing.T) {
	require := require.New(t)

	v := counts.Vector{2, 0, 1}
	// P(2,0,0) = 4/9, P(1,0,1) = 4/9, P(0,0,2) = 1/9
	expectedPMF := map[string]float64{
		"[2 0 0]": 4.0 / 9,
		"[1 0 1]": 4.0 / 9,
		"[0 0 2]": 1.0 / 9,
	}

	s := NewDeterministic(sampler.NewSource(9))
	observedCounts := make(map[string]float64, len(expectedPMF))
	for i := 0; i < distributionTrials; i++ {
		obs, err := s.Multinomial(v, 2)
		require.NoError(err)

		key := fmt.Sprint(obs)
		require.Contains(expectedPMF, key)
		observedCounts[key]++
	}

	var observed, expected []float64
	for key, p := range expectedPMF {
		observed = append(observed, observedCounts[key])
		expected = append(expected, p*distributionTrials)
	}

	chi := stat.ChiSquare(observed, expected)
	pValue := distuv.ChiSquared{K: float64(len(expected) - 1)}.Survival(chi)
	require.Greater(pValue, minPValue, "observed=%v expected=%v", observed, expected)
}
