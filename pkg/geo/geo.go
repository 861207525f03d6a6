// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package geo contains the planar geometry model shared by the WKT reader and
// writer: coordinates, the eight geometry kinds, precision models and the
// factory that binds coordinates into geometries.
//
// Subpackages are available that operate on these types:
// - geo/wkt reads and writes Well-Known Text.
// - geo/geofmt renders ordinates as magnitude-preserving decimal text.
// - geo/geomconv converts to and from github.com/twpayne/go-geom.
// - geo/geoencode produces EWKT, WKB, GeoJSON, KML and GeoHash output.
// - geo/triangulate holds constraint segments used by triangulation.
//
// Geometries are immutable once constructed. A tree owns its coordinates and
// children exclusively; the factory copies children it is handed.
package geo

import "github.com/cockroachdb/redact"

// Kind is the tag identifying which variant a Geometry is.
type Kind int

// The geometry kinds, in WKT keyword order.
const (
	KindPoint Kind = iota + 1
	KindLineString
	KindLinearRing
	KindPolygon
	KindMultiPoint
	KindMultiLineString
	KindMultiPolygon
	KindGeometryCollection
)

var kindKeywords = [...]string{
	KindPoint:              "POINT",
	KindLineString:         "LINESTRING",
	KindLinearRing:         "LINEARRING",
	KindPolygon:            "POLYGON",
	KindMultiPoint:         "MULTIPOINT",
	KindMultiLineString:    "MULTILINESTRING",
	KindMultiPolygon:       "MULTIPOLYGON",
	KindGeometryCollection: "GEOMETRYCOLLECTION",
}

// String returns the WKT keyword of the kind.
func (k Kind) String() string {
	if k <= 0 || int(k) >= len(kindKeywords) {
		return "UNKNOWN"
	}
	return kindKeywords[k]
}

// SafeValue implements the redact.SafeValue interface. Keywords never carry
// user data.
func (k Kind) SafeValue() {}

var _ redact.SafeValue = Kind(0)

// KindFromKeyword returns the kind named by an upper-case WKT keyword.
func KindFromKeyword(keyword string) (Kind, bool) {
	for k := KindPoint; k <= KindGeometryCollection; k++ {
		if kindKeywords[k] == keyword {
			return k, true
		}
	}
	return 0, false
}

// Geometry is one of *Point, *LineString, *LinearRing, *Polygon,
// *MultiPoint, *MultiLineString, *MultiPolygon or *GeometryCollection. The
// set is closed; code switching over it should handle every kind.
type Geometry interface {
	// Kind returns the variant tag.
	Kind() Kind
	// IsEmpty is true if the geometry has no coordinates.
	IsEmpty() bool
	// NumCoordinates returns the total number of coordinates in the tree.
	NumCoordinates() int
	// Coordinates returns a copy of every coordinate in the tree, in order.
	Coordinates() []Coordinate
	// Envelope returns the 2D bounding box of the geometry.
	Envelope() Envelope

	clone() Geometry
}

// Collection is implemented by the kinds made of child geometries.
type Collection interface {
	Geometry
	NumGeometries() int
	GeometryN(i int) Geometry
}

var (
	_ Collection = (*MultiPoint)(nil)
	_ Collection = (*MultiLineString)(nil)
	_ Collection = (*MultiPolygon)(nil)
	_ Collection = (*GeometryCollection)(nil)
)
