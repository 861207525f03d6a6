// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package wkt reads and writes the Well-Known Text representation of
// geometries.
//
// The Writer emits one space between a keyword and its body and ", " between
// list elements:
//
//	POINT (10 10)
//	POLYGON ((10 10, 10 20, 20 20, 20 15, 10 10))
//	MULTIPOINT ((10 10), (20 20))
//	GEOMETRYCOLLECTION (POINT (10 10), LINESTRING (15 15, 20 20))
//
// Ordinates are rendered by geofmt, so they never use exponent notation.
// Whether a coordinate has a z ordinate is decided per coordinate on both
// sides: a 3D Writer writes z only for coordinates that have one, and the
// Reader gives a coordinate a z only when three numbers are present.
//
// The Reader is a hand-written recursive descent parser with one token of
// lookahead. Keywords are case-insensitive, whitespace including newlines is
// ignored, and numbers may use exponents. The precision model of the
// Reader's factory is applied to each coordinate as it is read.
package wkt
