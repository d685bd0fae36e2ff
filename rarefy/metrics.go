// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rarefy

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/subsample/utils/wrappers"
)

type metrics struct {
	vectorsRarefied prometheus.Counter
	vectorsDropped  prometheus.Counter
	itemsDrawn      prometheus.Counter
	duration        prometheus.Histogram
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		vectorsRarefied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vectors_rarefied",
			Help:      "Number of count vectors subsampled to the rarefaction depth",
		}),
		vectorsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vectors_dropped",
			Help:      "Number of count vectors dropped for holding fewer items than the rarefaction depth",
		}),
		itemsDrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_drawn",
			Help:      "Number of items drawn across all rarefied count vectors",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rarefy_duration",
			Help:      "Time spent rarefying a table (in seconds)",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.vectorsRarefied),
		registerer.Register(m.vectorsDropped),
		registerer.Register(m.itemsDrawn),
		registerer.Register(m.duration),
	)
	if errs.Errored() {
		return nil, errs.Err
	}
	return m, nil
}
