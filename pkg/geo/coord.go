// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package geo

import (
	"fmt"
	"math"
)

// Coordinate is a 2D or 3D position. An absent z ordinate is stored as NaN;
// whether z is present is decided per coordinate, so a single geometry may
// mix coordinates with and without z.
//
// Note that the zero value has a present z of 0. Use NewCoordinate for 2D
// positions.
type Coordinate struct {
	X, Y, Z float64
}

// NewCoordinate returns a 2D coordinate.
func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: math.NaN()}
}

// NewCoordinateZ returns a 3D coordinate.
func NewCoordinateZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// HasZ returns whether the coordinate carries a z ordinate.
func (c Coordinate) HasZ() bool {
	return !math.IsNaN(c.Z)
}

// Equals2D compares x and y only.
func (c Coordinate) Equals2D(o Coordinate) bool {
	return c.X == o.X && c.Y == o.Y
}

// Equals3D compares all ordinates. Two absent z ordinates are equal.
func (c Coordinate) Equals3D(o Coordinate) bool {
	if !c.Equals2D(o) || c.HasZ() != o.HasZ() {
		return false
	}
	return !c.HasZ() || c.Z == o.Z
}

func (c Coordinate) String() string {
	if c.HasZ() {
		return fmt.Sprintf("(%g, %g, %g)", c.X, c.Y, c.Z)
	}
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

func copyCoords(coords []Coordinate) []Coordinate {
	if len(coords) == 0 {
		return nil
	}
	ret := make([]Coordinate, len(coords))
	copy(ret, coords)
	return ret
}
