// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rarefy normalizes the sampling depth of a table of count vectors by
// subsampling every vector to a common number of items.
package rarefy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/subsample/counts"
	"github.com/ava-labs/subsample/subsample"
	"github.com/ava-labs/subsample/utils/logging"
	"github.com/ava-labs/subsample/utils/sampler"
)

const (
	namespace = "rarefy"

	// Spreads per-sample seeds across the seed space.
	seedStride = 0x9e3779b97f4a7c15
)

var (
	ErrInvalidWorkers = errors.New("workers must be positive")
	ErrZeroDepth      = errors.New("rarefaction depth must be positive")
)

type Config struct {
	// Depth is the number of items every sample is subsampled to. If zero, the
	// smallest sample total in the table is used.
	Depth uint64 `json:"depth"`
	// WithReplacement draws items with replacement instead of without.
	WithReplacement bool `json:"withReplacement"`
	// Seed makes the rarefaction reproducible. If zero, every run draws fresh
	// randomness.
	Seed uint64 `json:"seed"`
	// Workers is the maximum number of samples rarefied concurrently.
	Workers int `json:"workers"`
	// KeepShallow keeps samples holding fewer items than the depth, unchanged,
	// rather than dropping them.
	KeepShallow bool `json:"keepShallow"`
}

func (c Config) Verify() error {
	if c.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	return nil
}

// Result of rarefying a table.
type Result struct {
	Depth   uint64   `json:"depth"`
	Counts  Table    `json:"counts"`
	Dropped []string `json:"dropped"`
}

type Rarefier struct {
	log     logging.Logger
	metrics *metrics
	config  Config
}

func New(log logging.Logger, registerer prometheus.Registerer, config Config) (*Rarefier, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}
	m, err := newMetrics(namespace, registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return &Rarefier{
		log:     log,
		metrics: m,
		config:  config,
	}, nil
}

// Rarefy subsamples every sample in [t] to the configured depth.
//
// Samples are processed concurrently, but when a seed is configured each
// sample draws from its own source derived from the seed and the sample's
// position in sorted order, so the result doesn't depend on scheduling.
func (r *Rarefier) Rarefy(ctx context.Context, t Table) (*Result, error) {
	start := time.Now()

	if len(t) == 0 {
		return nil, ErrEmptyTable
	}

	depth := r.config.Depth
	if depth == 0 {
		var err error
		depth, err = Depth(t)
		if err != nil {
			return nil, err
		}
		if depth == 0 {
			return nil, fmt.Errorf("%w: the smallest sample holds no items", ErrZeroDepth)
		}
	}

	ids := t.SampleIDs()
	totals := make([]uint64, len(ids))
	for i, id := range ids {
		total, err := t[id].Sum()
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", id, err)
		}
		totals[i] = total
	}

	var (
		rarefied    = make([]counts.Vector, len(ids))
		eg, egCtx   = errgroup.WithContext(ctx)
		dropped     = []string{}
		numRarefied int
	)
	eg.SetLimit(r.config.Workers)
	for i, id := range ids {
		if totals[i] < depth {
			if !r.config.KeepShallow {
				dropped = append(dropped, id)
				continue
			}
			rarefied[i] = t[id].Clone()
			continue
		}
		if egCtx.Err() != nil {
			break
		}

		i, id := i, id
		numRarefied++
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			v, err := r.rarefy(i, t[id], depth)
			if err != nil {
				return fmt.Errorf("failed to rarefy sample %q: %w", id, err)
			}
			rarefied[i] = v

			r.metrics.vectorsRarefied.Inc()
			r.metrics.itemsDrawn.Add(float64(depth))
			r.log.Debug("rarefied sample",
				zap.String("sampleID", id),
				zap.Uint64("total", totals[i]),
				zap.Uint64("depth", depth),
				zap.Int("richness", t[id].NonZero()),
				zap.Int("rarefiedRichness", v.NonZero()),
			)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Depth:   depth,
		Counts:  make(Table, len(ids)-len(dropped)),
		Dropped: dropped,
	}
	for i, id := range ids {
		if rarefied[i] != nil {
			result.Counts[id] = rarefied[i]
		}
	}

	r.metrics.vectorsDropped.Add(float64(len(dropped)))
	r.metrics.duration.Observe(time.Since(start).Seconds())

	if len(dropped) > 0 {
		r.log.Warn("dropped samples below rarefaction depth",
			zap.Uint64("depth", depth),
			zap.Strings("sampleIDs", dropped),
		)
	}
	r.log.Info("rarefied table",
		zap.Uint64("depth", depth),
		zap.Bool("withReplacement", r.config.WithReplacement),
		zap.Int("numSamples", len(ids)),
		zap.Int("numRarefied", numRarefied),
		zap.Int("numDropped", len(dropped)),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

func (r *Rarefier) rarefy(position int, v counts.Vector, depth uint64) (counts.Vector, error) {
	s := subsample.NewDeterministic(r.source(position))
	if r.config.WithReplacement {
		return s.Multinomial(v, depth)
	}
	return s.Subsample(v, depth)
}

func (r *Rarefier) source(position int) sampler.Source {
	if r.config.Seed == 0 {
		return sampler.NewRandomSource()
	}
	return sampler.NewSource(r.config.Seed + uint64(position)*seedStride)
}
