// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rarefy

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/ava-labs/subsample/counts"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrEmptyTable    = errors.New("table has no samples")
	ErrUnknownFormat = errors.New("unknown table format")
	errNotATable     = errors.New("table must map sample IDs to count vectors")
	errTrailingData  = errors.New("unexpected data after table")
	errDuplicateID   = errors.New("duplicate sample ID")
)

// Table maps sample IDs to their count vectors.
type Table map[string]counts.Vector

// SampleIDs returns the IDs of the samples in the table in sorted order.
func (t Table) SampleIDs() []string {
	ids := maps.Keys(t)
	slices.Sort(ids)
	return ids
}

// Depth returns the smallest total across the samples in the table.
func Depth(t Table) (uint64, error) {
	if len(t) == 0 {
		return 0, ErrEmptyTable
	}

	var (
		depth uint64
		first = true
	)
	for _, id := range t.SampleIDs() {
		total, err := t[id].Sum()
		if err != nil {
			return 0, fmt.Errorf("sample %q: %w", id, err)
		}
		if first || total < depth {
			depth = total
			first = false
		}
	}
	return depth, nil
}

// FormatFromPath guesses the format of a table from its file extension.
// Anything that isn't recognizably YAML is treated as JSON.
func FormatFromPath(path string) string {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// ReadTable decodes a table from [r]. The document must be an object mapping
// sample IDs to arrays of counts. Every count vector is validated with
// counts.Parse.
func ReadTable(r io.Reader, format string) (Table, error) {
	var document any
	switch strings.ToLower(format) {
	case FormatJSON:
		decoder := json.NewDecoder(r)
		decoder.UseNumber()
		if err := decoder.Decode(&document); err != nil {
			return nil, fmt.Errorf("failed to decode JSON table: %w", err)
		}
		var trailing any
		if err := decoder.Decode(&trailing); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode JSON table: %w", errTrailingData)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&document); err != nil {
			return nil, fmt.Errorf("failed to decode YAML table: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return ParseTable(document)
}

// ParseTable validates a decoded document as a table. Sample IDs that were
// decoded as numbers, as YAML does for keys like 101, are formatted as
// strings.
func ParseTable(document any) (Table, error) {
	samples, err := sampleMap(document)
	if err != nil {
		return nil, err
	}

	table := make(Table, len(samples))
	for id, input := range samples {
		vector, err := counts.Parse(input)
		if err != nil {
			return nil, fmt.Errorf("sample %q: %w", id, err)
		}
		table[id] = vector
	}
	return table, nil
}

func sampleMap(document any) (map[string]any, error) {
	switch document := document.(type) {
	case map[string]any:
		return document, nil
	case map[any]any:
		samples := make(map[string]any, len(document))
		for key, input := range document {
			switch key.(type) {
			case string, int, int64, uint64:
			default:
				return nil, fmt.Errorf("%w: sample ID %v is a %T", errNotATable, key, key)
			}
			id := fmt.Sprint(key)
			if _, ok := samples[id]; ok {
				return nil, fmt.Errorf("%w: %q", errDuplicateID, id)
			}
			samples[id] = input
		}
		return samples, nil
	default:
		return nil, fmt.Errorf("%w: got %T", errNotATable, document)
	}
}
