// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package geoerror contains the error classes shared by the geometry codec.
// Errors are created with github.com/cockroachdb/errors and marked with one
// of the sentinels below, so callers should test for them with errors.Is.
package geoerror

import "github.com/cockroachdb/errors"

// ErrInvalidConfiguration marks errors caused by an out-of-range codec
// setting, such as a non-positive precision scale or an unsupported output
// dimension.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrUnwritableOrdinate marks errors caused by an attempt to emit a non-finite
// ordinate as text.
var ErrUnwritableOrdinate = errors.New("unwritable ordinate")

// NewInvalidConfigurationf returns a new error marked with
// ErrInvalidConfiguration.
func NewInvalidConfigurationf(format string, args ...interface{}) error {
	return errors.Mark(errors.NewWithDepthf(1, format, args...), ErrInvalidConfiguration)
}

// NewUnwritableOrdinatef returns a new error marked with ErrUnwritableOrdinate.
func NewUnwritableOrdinatef(format string, args ...interface{}) error {
	err := errors.NewWithDepthf(1, format, args...)
	err = errors.WithHint(err, "only the z ordinate may be absent; x and y must be finite")
	return errors.Mark(err, ErrUnwritableOrdinate)
}
