// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package counts

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	safemath "github.com/ava-labs/subsample/utils/math"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		expected    Vector
		expectedErr error
	}{
		{
			name:     "ints",
			input:    []int{0, 5, 0},
			expected: Vector{0, 5, 0},
		},
		{
			name:     "uint64s",
			input:    []uint64{2, 0, 1},
			expected: Vector{2, 0, 1},
		},
		{
			name:     "int32 array",
			input:    [3]int32{1, 2, 3},
			expected: Vector{1, 2, 3},
		},
		{
			name:     "vector",
			input:    Vector{4, 4},
			expected: Vector{4, 4},
		},
		{
			name:     "empty",
			input:    []int{},
			expected: Vector{},
		},
		{
			name:     "untyped integers",
			input:    []any{1, int64(2), uint8(3), json.Number("4")},
			expected: Vector{1, 2, 3, 4},
		},
		{
			name:        "two dimensional",
			input:       [][]int{{1, 2, 3}, {4, 5, 6}},
			expectedErr: ErrShape,
		},
		{
			name:        "untyped two dimensional",
			input:       []any{[]any{1, 2, 3}, []any{4, 5, 6}},
			expectedErr: ErrShape,
		},
		{
			name:        "ragged",
			input:       []any{1, []any{2}},
			expectedErr: ErrShape,
		},
		{
			name:        "scalar",
			input:       5,
			expectedErr: ErrShape,
		},
		{
			name:        "nil",
			input:       nil,
			expectedErr: ErrShape,
		},
		{
			name:        "map",
			input:       map[string]int{"a": 1},
			expectedErr: ErrShape,
		},
		{
			name:        "float element",
			input:       []any{1, 2.3, 3},
			expectedErr: ErrType,
		},
		{
			name:        "integral float element",
			input:       []any{1, 2.0, 3},
			expectedErr: ErrType,
		},
		{
			name:        "float slice",
			input:       []float64{1, 2, 3},
			expectedErr: ErrType,
		},
		{
			name:        "empty float slice",
			input:       []float32{},
			expectedErr: ErrType,
		},
		{
			name:        "float json number",
			input:       []any{json.Number("1"), json.Number("2.3")},
			expectedErr: ErrType,
		},
		{
			name:        "integral float json number",
			input:       []any{json.Number("2.0")},
			expectedErr: ErrType,
		},
		{
			name:        "exponent json number",
			input:       []any{json.Number("1e3")},
			expectedErr: ErrType,
		},
		{
			name:        "string element",
			input:       []any{"1"},
			expectedErr: ErrType,
		},
		{
			name:        "bool element",
			input:       []any{true},
			expectedErr: ErrType,
		},
		{
			name:        "nil element",
			input:       []any{1, nil},
			expectedErr: ErrType,
		},
		{
			name:        "negative",
			input:       []int{1, -1},
			expectedErr: ErrNegative,
		},
		{
			name:        "negative json number",
			input:       []any{json.Number("-3")},
			expectedErr: ErrNegative,
		},
		{
			name:     "negative zero json number",
			input:    []any{json.Number("-0")},
			expected: Vector{0},
		},
		{
			name:        "huge json number",
			input:       []any{json.Number("18446744073709551616")},
			expectedErr: safemath.ErrOverflow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			vector, err := Parse(tt.input)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expected, vector)
		})
	}
}

func TestParseCopiesInput(t *testing.T) {
	require := require.New(t)

	input := Vector{1, 2, 3}
	vector, err := Parse(input)
	require.NoError(err)

	vector[0] = 100
	require.Equal(Vector{1, 2, 3}, input)
}

func TestParseDecodedJSON(t *testing.T) {
	tests := []struct {
		name        string
		document    string
		expected    Vector
		expectedErr error
	}{
		{
			name:     "integers",
			document: `[2, 0, 1]`,
			expected: Vector{2, 0, 1},
		},
		{
			name:        "float",
			document:    `[1, 2.3, 3]`,
			expectedErr: ErrType,
		},
		{
			name:        "matrix",
			document:    `[[1, 2, 3], [4, 5, 6]]`,
			expectedErr: ErrShape,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			decoder := json.NewDecoder(bytes.NewBufferString(tt.document))
			decoder.UseNumber()

			var input any
			require.NoError(decoder.Decode(&input))

			vector, err := Parse(input)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expected, vector)
		})
	}
}

func TestParseDecodedYAML(t *testing.T) {
	require := require.New(t)

	var input any
	require.NoError(yaml.Unmarshal([]byte("[2, 0, 1]"), &input))
	vector, err := Parse(input)
	require.NoError(err)
	require.Equal(Vector{2, 0, 1}, vector)

	var floats any
	require.NoError(yaml.Unmarshal([]byte("[2, 0.0, 1]"), &floats))
	_, err = Parse(floats)
	require.ErrorIs(err, ErrType)
}

func TestParseDrawSize(t *testing.T) {
	tests := []struct {
		name        string
		input       any
		expected    uint64
		expectedErr error
	}{
		{
			name:     "int",
			input:    35,
			expected: 35,
		},
		{
			name:     "json number",
			input:    json.Number("2"),
			expected: 2,
		},
		{
			name:        "negative",
			input:       -1,
			expectedErr: ErrNegativeDrawSize,
		},
		{
			name:        "negative json number",
			input:       json.Number("-2"),
			expectedErr: ErrNegativeDrawSize,
		},
		{
			name:        "float",
			input:       2.0,
			expectedErr: ErrType,
		},
		{
			name:        "sequence",
			input:       []int{2},
			expectedErr: ErrType,
		},
		{
			name:        "nil",
			input:       nil,
			expectedErr: ErrType,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			n, err := ParseDrawSize(tt.input)
			require.ErrorIs(err, tt.expectedErr)
			require.Equal(tt.expected, n)
		})
	}
}

func TestDrawSize(t *testing.T) {
	require := require.New(t)

	n, err := DrawSize(4)
	require.NoError(err)
	require.Equal(uint64(4), n)

	_, err = DrawSize(-4)
	require.ErrorIs(err, ErrNegativeDrawSize)
}
