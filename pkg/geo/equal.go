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

import "github.com/cockroachdb/errors"

// Equal reports whether two trees are structurally identical: same kinds,
// same child order, and coordinates equal in every ordinate including the
// presence of z.
func Equal(a, b Geometry) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case *Point:
		b := b.(*Point)
		if a.empty || b.empty {
			return a.empty == b.empty
		}
		return a.coord.Equals3D(b.coord)
	case *LineString:
		return coordsEqual(a.coords, b.(*LineString).coords)
	case *LinearRing:
		return coordsEqual(a.coords, b.(*LinearRing).coords)
	case *Polygon:
		b := b.(*Polygon)
		if a.NumRings() != b.NumRings() {
			return false
		}
		for i, n := 0, a.NumRings(); i < n; i++ {
			if !coordsEqual(a.RingN(i).coords, b.RingN(i).coords) {
				return false
			}
		}
		return true
	case *MultiPoint, *MultiLineString, *MultiPolygon, *GeometryCollection:
		ac, bc := a.(Collection), b.(Collection)
		if ac.NumGeometries() != bc.NumGeometries() {
			return false
		}
		for i, n := 0, ac.NumGeometries(); i < n; i++ {
			if !Equal(ac.GeometryN(i), bc.GeometryN(i)) {
				return false
			}
		}
		return true
	default:
		panic(errors.AssertionFailedf("unhandled geometry type %T", a))
	}
}

func coordsEqual(a, b []Coordinate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals3D(b[i]) {
			return false
		}
	}
	return true
}
