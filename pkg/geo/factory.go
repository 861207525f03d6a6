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

// Factory builds geometries, applying its precision model to every
// coordinate as it is bound. Collections are assembled from children that
// were already bound, so their coordinates are copied but not rounded again.
//
// A Factory holds no mutable state and may be shared between goroutines.
type Factory struct {
	pm PrecisionModel
}

// DefaultFactory uses the floating precision model.
var DefaultFactory = NewFactory(Floating())

// NewFactory returns a factory for the given precision model.
func NewFactory(pm PrecisionModel) *Factory {
	return &Factory{pm: pm}
}

// PrecisionModel returns the factory's precision model.
func (f *Factory) PrecisionModel() PrecisionModel {
	return f.pm
}

func (f *Factory) makePrecise(coords []Coordinate) []Coordinate {
	if len(coords) == 0 {
		return nil
	}
	ret := make([]Coordinate, len(coords))
	for i, c := range coords {
		ret[i] = f.pm.MakeCoordinatePrecise(c)
	}
	return ret
}

// NewPoint returns a point at c.
func (f *Factory) NewPoint(c Coordinate) *Point {
	return &Point{coord: f.pm.MakeCoordinatePrecise(c)}
}

// NewPointEmpty returns an empty point.
func (f *Factory) NewPointEmpty() *Point {
	return &Point{empty: true}
}

// NewLineString returns a line string through coords. An empty slice gives
// an empty line string.
func (f *Factory) NewLineString(coords []Coordinate) *LineString {
	return &LineString{coords: f.makePrecise(coords)}
}

// NewLinearRing returns a ring through coords. Closure is not checked.
func (f *Factory) NewLinearRing(coords []Coordinate) *LinearRing {
	return &LinearRing{coords: f.makePrecise(coords)}
}

// NewPolygon returns a polygon with the given shell and holes. A nil shell
// gives an empty polygon, in which case holes are ignored.
func (f *Factory) NewPolygon(shell *LinearRing, holes ...*LinearRing) *Polygon {
	if shell == nil {
		return &Polygon{}
	}
	p := &Polygon{shell: shell.cloneRing()}
	if len(holes) > 0 {
		p.holes = make([]*LinearRing, len(holes))
		for i, h := range holes {
			p.holes[i] = h.cloneRing()
		}
	}
	return p
}

// NewMultiPoint returns a collection of the given points.
func (f *Factory) NewMultiPoint(points ...*Point) *MultiPoint {
	m := &MultiPoint{points: make([]*Point, len(points))}
	for i, p := range points {
		m.points[i] = p.clone().(*Point)
	}
	return m
}

// NewMultiPointFromCoords returns a collection with one point per coordinate.
func (f *Factory) NewMultiPointFromCoords(coords []Coordinate) *MultiPoint {
	m := &MultiPoint{points: make([]*Point, len(coords))}
	for i, c := range coords {
		m.points[i] = f.NewPoint(c)
	}
	return m
}

// NewMultiLineString returns a collection of the given line strings.
func (f *Factory) NewMultiLineString(lines ...*LineString) *MultiLineString {
	m := &MultiLineString{lines: make([]*LineString, len(lines))}
	for i, l := range lines {
		m.lines[i] = l.clone().(*LineString)
	}
	return m
}

// NewMultiPolygon returns a collection of the given polygons.
func (f *Factory) NewMultiPolygon(polygons ...*Polygon) *MultiPolygon {
	m := &MultiPolygon{polygons: make([]*Polygon, len(polygons))}
	for i, p := range polygons {
		m.polygons[i] = p.clone().(*Polygon)
	}
	return m
}

// NewGeometryCollection returns a collection of the given geometries.
func (f *Factory) NewGeometryCollection(geoms ...Geometry) *GeometryCollection {
	c := &GeometryCollection{geoms: make([]Geometry, len(geoms))}
	for i, g := range geoms {
		c.geoms[i] = g.clone()
	}
	return c
}

// The Adopt constructors below build the same geometries as their New
// counterparts but take ownership of the children instead of copying them,
// so a tree assembled bottom-up costs time proportional to its size. The
// caller must not use, mutate or share the children or the slice afterwards.

// AdoptPolygon is like NewPolygon but takes ownership of shell and holes.
func (f *Factory) AdoptPolygon(shell *LinearRing, holes []*LinearRing) *Polygon {
	if shell == nil {
		return &Polygon{}
	}
	if len(holes) == 0 {
		holes = nil
	}
	return &Polygon{shell: shell, holes: holes}
}

// AdoptMultiPoint is like NewMultiPoint but takes ownership of points.
func (f *Factory) AdoptMultiPoint(points []*Point) *MultiPoint {
	return &MultiPoint{points: points}
}

// AdoptMultiLineString is like NewMultiLineString but takes ownership of
// lines.
func (f *Factory) AdoptMultiLineString(lines []*LineString) *MultiLineString {
	return &MultiLineString{lines: lines}
}

// AdoptMultiPolygon is like NewMultiPolygon but takes ownership of polygons.
func (f *Factory) AdoptMultiPolygon(polygons []*Polygon) *MultiPolygon {
	return &MultiPolygon{polygons: polygons}
}

// AdoptGeometryCollection is like NewGeometryCollection but takes ownership
// of geoms.
func (f *Factory) AdoptGeometryCollection(geoms []Geometry) *GeometryCollection {
	return &GeometryCollection{geoms: geoms}
}
