// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ava-labs/subsample/config"
	"github.com/ava-labs/subsample/rarefy"
	"github.com/ava-labs/subsample/utils/logging"
)

const stdinPath = "-"

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func run(
	ctx context.Context,
	log logging.Logger,
	cfg config.Config,
	stdin io.Reader,
	stdout io.Writer,
) error {
	input := stdin
	if cfg.Input != stdinPath {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		input = f
	}

	table, err := rarefy.ReadTable(input, cfg.Format)
	if err != nil {
		return err
	}
	log.Debug("read count table",
		zap.String("input", cfg.Input),
		zap.String("format", cfg.Format),
		zap.Int("numSamples", len(table)),
	)

	r, err := rarefy.New(log, prometheus.NewRegistry(), cfg.Rarefy)
	if err != nil {
		return err
	}
	result, err := r.Rarefy(ctx, table)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to write rarefied table: %w", err)
	}
	return nil
}
