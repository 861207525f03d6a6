// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package geoerror

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestMarks(t *testing.T) {
	err := NewInvalidConfigurationf("scale must be positive, got %f", -1.0)
	require.True(t, errors.Is(err, ErrInvalidConfiguration))
	require.False(t, errors.Is(err, ErrUnwritableOrdinate))
	require.Contains(t, err.Error(), "scale must be positive")

	err = errors.Wrap(NewUnwritableOrdinatef("x is %v", "NaN"), "writing point")
	require.True(t, errors.Is(err, ErrUnwritableOrdinate))
	require.Contains(t, errors.FlattenHints(err), "z ordinate may be absent")
}
