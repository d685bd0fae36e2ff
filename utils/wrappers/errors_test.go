// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrsKeepsFirst(t *testing.T) {
	require := require.New(t)

	errFirst := errors.New("first")
	errSecond := errors.New("second")

	errs := Errs{}
	require.False(errs.Errored())

	errs.Add(nil, nil)
	require.False(errs.Errored())

	errs.Add(nil, errFirst, errSecond)
	require.True(errs.Errored())
	require.ErrorIs(errs.Err, errFirst)

	errs.Add(errSecond)
	require.ErrorIs(errs.Err, errFirst)
}
