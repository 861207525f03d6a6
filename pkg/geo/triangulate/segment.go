// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package triangulate holds the constraint segments handed to a
// triangulation. Only the segment model lives here; the triangulation
// itself is done elsewhere.
package triangulate

import (
	"fmt"

	"github.com/cockroachdb/wktcodec/pkg/geo"
	"github.com/cockroachdb/wktcodec/pkg/geo/wkt"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy/lineintersector"
)

// Segment is an oriented constraint segment from a start to an end
// coordinate. Data is an arbitrary payload owned by whoever attached it; it
// is never serialized.
type Segment[T any] struct {
	start, end geo.Coordinate
	Data       T
}

// NewSegment returns a segment from start to end with a zero payload.
func NewSegment[T any](start, end geo.Coordinate) *Segment[T] {
	return &Segment[T]{start: start, end: end}
}

// NewSegmentWithData returns a segment from start to end carrying data.
func NewSegmentWithData[T any](start, end geo.Coordinate, data T) *Segment[T] {
	return &Segment[T]{start: start, end: end, Data: data}
}

// NewSegmentFromOrdinates returns a 3D segment from (x1, y1, z1) to
// (x2, y2, z2).
func NewSegmentFromOrdinates[T any](x1, y1, z1, x2, y2, z2 float64) *Segment[T] {
	return NewSegment[T](geo.NewCoordinateZ(x1, y1, z1), geo.NewCoordinateZ(x2, y2, z2))
}

// Start returns the start coordinate.
func (s *Segment[T]) Start() geo.Coordinate { return s.start }

// End returns the end coordinate.
func (s *Segment[T]) End() geo.Coordinate { return s.end }

func (s *Segment[T]) StartX() float64 { return s.start.X }
func (s *Segment[T]) StartY() float64 { return s.start.Y }
func (s *Segment[T]) StartZ() float64 { return s.start.Z }
func (s *Segment[T]) EndX() float64   { return s.end.X }
func (s *Segment[T]) EndY() float64   { return s.end.Y }
func (s *Segment[T]) EndZ() float64   { return s.end.Z }

// EqualsTopologically returns whether s and o join the same two points in
// either orientation. Only x and y are compared.
func (s *Segment[T]) EqualsTopologically(o *Segment[T]) bool {
	return (s.start.Equals2D(o.start) && s.end.Equals2D(o.end)) ||
		(s.start.Equals2D(o.end) && s.end.Equals2D(o.start))
}

// Intersection returns a point where s and o meet, if any. When the segments
// overlap along a stretch, one end of the shared stretch is returned. The
// result is 2D.
func (s *Segment[T]) Intersection(o *Segment[T]) (geo.Coordinate, bool) {
	res := lineintersector.LineIntersectsLine(
		&lineintersector.RobustLineIntersector{},
		toCoord(s.start), toCoord(s.end), toCoord(o.start), toCoord(o.end),
	)
	if !res.HasIntersection() {
		return geo.Coordinate{}, false
	}
	pt := res.Intersection()[0]
	return geo.NewCoordinate(pt[0], pt[1]), true
}

func toCoord(c geo.Coordinate) geom.Coord {
	return geom.Coord{c.X, c.Y}
}

// String renders the segment as a 2D WKT line string.
func (s *Segment[T]) String() string {
	ls := geo.DefaultFactory.NewLineString([]geo.Coordinate{s.start, s.end})
	ret, err := wkt.Marshal(ls)
	if err != nil {
		return fmt.Sprintf("LINESTRING (%g %g, %g %g)", s.start.X, s.start.Y, s.end.X, s.end.Y)
	}
	return ret
}
