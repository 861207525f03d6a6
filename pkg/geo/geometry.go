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

// Point is a single coordinate, or nothing if empty.
type Point struct {
	coord Coordinate
	empty bool
}

// Kind implements Geometry.
func (p *Point) Kind() Kind { return KindPoint }

// IsEmpty implements Geometry.
func (p *Point) IsEmpty() bool { return p.empty }

// NumCoordinates implements Geometry.
func (p *Point) NumCoordinates() int {
	if p.empty {
		return 0
	}
	return 1
}

// Coordinates implements Geometry.
func (p *Point) Coordinates() []Coordinate {
	if p.empty {
		return nil
	}
	return []Coordinate{p.coord}
}

// Envelope implements Geometry.
func (p *Point) Envelope() Envelope { return envelopeOf(p) }

// Coordinate returns the point's coordinate and false if the point is empty.
func (p *Point) Coordinate() (Coordinate, bool) {
	return p.coord, !p.empty
}

// X returns the x ordinate. It is zero for an empty point.
func (p *Point) X() float64 { return p.coord.X }

// Y returns the y ordinate. It is zero for an empty point.
func (p *Point) Y() float64 { return p.coord.Y }

func (p *Point) clone() Geometry {
	ret := *p
	return &ret
}

// LineString is a sequence of coordinates joined by straight segments.
type LineString struct {
	coords []Coordinate
}

// Kind implements Geometry.
func (l *LineString) Kind() Kind { return KindLineString }

// IsEmpty implements Geometry.
func (l *LineString) IsEmpty() bool { return len(l.coords) == 0 }

// NumCoordinates implements Geometry.
func (l *LineString) NumCoordinates() int { return len(l.coords) }

// Coordinates implements Geometry.
func (l *LineString) Coordinates() []Coordinate { return copyCoords(l.coords) }

// Envelope implements Geometry.
func (l *LineString) Envelope() Envelope { return envelopeOf(l) }

// CoordinateN returns the i-th coordinate.
func (l *LineString) CoordinateN(i int) Coordinate { return l.coords[i] }

func (l *LineString) clone() Geometry {
	return &LineString{coords: copyCoords(l.coords)}
}

// LinearRing is a closed LineString bounding a polygon shell or hole.
// Closure and the minimum of four coordinates are not enforced here.
type LinearRing struct {
	coords []Coordinate
}

// Kind implements Geometry.
func (r *LinearRing) Kind() Kind { return KindLinearRing }

// IsEmpty implements Geometry.
func (r *LinearRing) IsEmpty() bool { return len(r.coords) == 0 }

// NumCoordinates implements Geometry.
func (r *LinearRing) NumCoordinates() int { return len(r.coords) }

// Coordinates implements Geometry.
func (r *LinearRing) Coordinates() []Coordinate { return copyCoords(r.coords) }

// Envelope implements Geometry.
func (r *LinearRing) Envelope() Envelope { return envelopeOf(r) }

// CoordinateN returns the i-th coordinate.
func (r *LinearRing) CoordinateN(i int) Coordinate { return r.coords[i] }

// IsClosed returns whether the ring is empty or its first and last
// coordinates are equal in 2D.
func (r *LinearRing) IsClosed() bool {
	if len(r.coords) == 0 {
		return true
	}
	return r.coords[0].Equals2D(r.coords[len(r.coords)-1])
}

func (r *LinearRing) clone() Geometry {
	return r.cloneRing()
}

func (r *LinearRing) cloneRing() *LinearRing {
	return &LinearRing{coords: copyCoords(r.coords)}
}

// Polygon is a shell ring with zero or more holes. A polygon without a shell
// is empty.
type Polygon struct {
	shell *LinearRing
	holes []*LinearRing
}

// Kind implements Geometry.
func (p *Polygon) Kind() Kind { return KindPolygon }

// IsEmpty implements Geometry.
func (p *Polygon) IsEmpty() bool { return p.shell == nil || p.shell.IsEmpty() }

// NumCoordinates implements Geometry.
func (p *Polygon) NumCoordinates() int {
	if p.shell == nil {
		return 0
	}
	n := p.shell.NumCoordinates()
	for _, h := range p.holes {
		n += h.NumCoordinates()
	}
	return n
}

// Coordinates implements Geometry.
func (p *Polygon) Coordinates() []Coordinate {
	var ret []Coordinate
	for i, n := 0, p.NumRings(); i < n; i++ {
		ret = append(ret, p.RingN(i).coords...)
	}
	return ret
}

// Envelope implements Geometry.
func (p *Polygon) Envelope() Envelope { return envelopeOf(p) }

// Shell returns the exterior ring, or nil for an empty polygon.
func (p *Polygon) Shell() *LinearRing { return p.shell }

// NumHoles returns the number of interior rings.
func (p *Polygon) NumHoles() int { return len(p.holes) }

// Hole returns the i-th interior ring.
func (p *Polygon) Hole(i int) *LinearRing { return p.holes[i] }

// NumRings returns the number of rings including the shell.
func (p *Polygon) NumRings() int {
	if p.shell == nil {
		return 0
	}
	return 1 + len(p.holes)
}

// RingN returns the shell for i == 0 and hole i-1 otherwise.
func (p *Polygon) RingN(i int) *LinearRing {
	if i == 0 {
		return p.shell
	}
	return p.holes[i-1]
}

func (p *Polygon) clone() Geometry {
	ret := &Polygon{}
	if p.shell != nil {
		ret.shell = p.shell.cloneRing()
	}
	if len(p.holes) > 0 {
		ret.holes = make([]*LinearRing, len(p.holes))
		for i, h := range p.holes {
			ret.holes[i] = h.cloneRing()
		}
	}
	return ret
}

// MultiPoint is an ordered collection of points.
type MultiPoint struct {
	points []*Point
}

// Kind implements Geometry.
func (m *MultiPoint) Kind() Kind { return KindMultiPoint }

// IsEmpty implements Geometry.
func (m *MultiPoint) IsEmpty() bool { return collectionIsEmpty(m) }

// NumCoordinates implements Geometry.
func (m *MultiPoint) NumCoordinates() int { return collectionNumCoordinates(m) }

// Coordinates implements Geometry.
func (m *MultiPoint) Coordinates() []Coordinate { return collectionCoordinates(m) }

// Envelope implements Geometry.
func (m *MultiPoint) Envelope() Envelope { return envelopeOf(m) }

// NumGeometries implements Collection.
func (m *MultiPoint) NumGeometries() int { return len(m.points) }

// GeometryN implements Collection.
func (m *MultiPoint) GeometryN(i int) Geometry { return m.points[i] }

// PointN returns the i-th point.
func (m *MultiPoint) PointN(i int) *Point { return m.points[i] }

func (m *MultiPoint) clone() Geometry {
	ret := &MultiPoint{points: make([]*Point, len(m.points))}
	for i, p := range m.points {
		ret.points[i] = p.clone().(*Point)
	}
	return ret
}

// MultiLineString is an ordered collection of line strings.
type MultiLineString struct {
	lines []*LineString
}

// Kind implements Geometry.
func (m *MultiLineString) Kind() Kind { return KindMultiLineString }

// IsEmpty implements Geometry.
func (m *MultiLineString) IsEmpty() bool { return collectionIsEmpty(m) }

// NumCoordinates implements Geometry.
func (m *MultiLineString) NumCoordinates() int { return collectionNumCoordinates(m) }

// Coordinates implements Geometry.
func (m *MultiLineString) Coordinates() []Coordinate { return collectionCoordinates(m) }

// Envelope implements Geometry.
func (m *MultiLineString) Envelope() Envelope { return envelopeOf(m) }

// NumGeometries implements Collection.
func (m *MultiLineString) NumGeometries() int { return len(m.lines) }

// GeometryN implements Collection.
func (m *MultiLineString) GeometryN(i int) Geometry { return m.lines[i] }

// LineStringN returns the i-th line string.
func (m *MultiLineString) LineStringN(i int) *LineString { return m.lines[i] }

func (m *MultiLineString) clone() Geometry {
	ret := &MultiLineString{lines: make([]*LineString, len(m.lines))}
	for i, l := range m.lines {
		ret.lines[i] = l.clone().(*LineString)
	}
	return ret
}

// MultiPolygon is an ordered collection of polygons.
type MultiPolygon struct {
	polygons []*Polygon
}

// Kind implements Geometry.
func (m *MultiPolygon) Kind() Kind { return KindMultiPolygon }

// IsEmpty implements Geometry.
func (m *MultiPolygon) IsEmpty() bool { return collectionIsEmpty(m) }

// NumCoordinates implements Geometry.
func (m *MultiPolygon) NumCoordinates() int { return collectionNumCoordinates(m) }

// Coordinates implements Geometry.
func (m *MultiPolygon) Coordinates() []Coordinate { return collectionCoordinates(m) }

// Envelope implements Geometry.
func (m *MultiPolygon) Envelope() Envelope { return envelopeOf(m) }

// NumGeometries implements Collection.
func (m *MultiPolygon) NumGeometries() int { return len(m.polygons) }

// GeometryN implements Collection.
func (m *MultiPolygon) GeometryN(i int) Geometry { return m.polygons[i] }

// PolygonN returns the i-th polygon.
func (m *MultiPolygon) PolygonN(i int) *Polygon { return m.polygons[i] }

func (m *MultiPolygon) clone() Geometry {
	ret := &MultiPolygon{polygons: make([]*Polygon, len(m.polygons))}
	for i, p := range m.polygons {
		ret.polygons[i] = p.clone().(*Polygon)
	}
	return ret
}

// GeometryCollection is an ordered, heterogeneous collection of geometries.
type GeometryCollection struct {
	geoms []Geometry
}

// Kind implements Geometry.
func (c *GeometryCollection) Kind() Kind { return KindGeometryCollection }

// IsEmpty implements Geometry.
func (c *GeometryCollection) IsEmpty() bool { return collectionIsEmpty(c) }

// NumCoordinates implements Geometry.
func (c *GeometryCollection) NumCoordinates() int { return collectionNumCoordinates(c) }

// Coordinates implements Geometry.
func (c *GeometryCollection) Coordinates() []Coordinate { return collectionCoordinates(c) }

// Envelope implements Geometry.
func (c *GeometryCollection) Envelope() Envelope { return envelopeOf(c) }

// NumGeometries implements Collection.
func (c *GeometryCollection) NumGeometries() int { return len(c.geoms) }

// GeometryN implements Collection.
func (c *GeometryCollection) GeometryN(i int) Geometry { return c.geoms[i] }

func (c *GeometryCollection) clone() Geometry {
	ret := &GeometryCollection{geoms: make([]Geometry, len(c.geoms))}
	for i, g := range c.geoms {
		ret.geoms[i] = g.clone()
	}
	return ret
}

// collectionIsEmpty is true if every child is empty, matching the OGC
// definition. A collection of empty points is itself empty.
func collectionIsEmpty(c Collection) bool {
	for i, n := 0, c.NumGeometries(); i < n; i++ {
		if !c.GeometryN(i).IsEmpty() {
			return false
		}
	}
	return true
}

func collectionNumCoordinates(c Collection) int {
	total := 0
	for i, n := 0, c.NumGeometries(); i < n; i++ {
		total += c.GeometryN(i).NumCoordinates()
	}
	return total
}

func collectionCoordinates(c Collection) []Coordinate {
	var ret []Coordinate
	for i, n := 0, c.NumGeometries(); i < n; i++ {
		ret = append(ret, c.GeometryN(i).Coordinates()...)
	}
	return ret
}
