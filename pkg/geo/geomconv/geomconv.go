// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package geomconv converts between geometries and github.com/twpayne/go-geom
// values, which the binary and JSON encoders operate on.
//
// go-geom uses one layout per geometry. A geometry in which any coordinate
// has a z ordinate is converted with layout XYZ, and coordinates without z get
// NaN in that slot; FromGeom turns NaN back into an absent z. Linear rings
// become line strings, since go-geom's encoders have no standalone ring.
package geomconv

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/geo"
	"github.com/twpayne/go-geom"
)

// LayoutOf returns the go-geom layout ToGeom uses for g.
func LayoutOf(g geo.Geometry) geom.Layout {
	for _, c := range g.Coordinates() {
		if c.HasZ() {
			return geom.XYZ
		}
	}
	return geom.XY
}

// ToGeom converts g to a go-geom geometry.
func ToGeom(g geo.Geometry) (geom.T, error) {
	return toGeom(g, LayoutOf(g))
}

func toGeom(g geo.Geometry, layout geom.Layout) (geom.T, error) {
	switch g := g.(type) {
	case *geo.Point:
		return pointToGeom(g, layout)
	case *geo.LineString:
		return lineToGeom(g.Coordinates(), layout)
	case *geo.LinearRing:
		return lineToGeom(g.Coordinates(), layout)
	case *geo.Polygon:
		return polygonToGeom(g, layout)
	case *geo.MultiPoint:
		ret := geom.NewMultiPoint(layout)
		for i := 0; i < g.NumGeometries(); i++ {
			p, err := pointToGeom(g.PointN(i), layout)
			if err != nil {
				return nil, err
			}
			if err := ret.Push(p); err != nil {
				return nil, errors.Wrap(err, "adding point")
			}
		}
		return ret, nil
	case *geo.MultiLineString:
		ret := geom.NewMultiLineString(layout)
		for i := 0; i < g.NumGeometries(); i++ {
			l, err := lineToGeom(g.LineStringN(i).Coordinates(), layout)
			if err != nil {
				return nil, err
			}
			if err := ret.Push(l); err != nil {
				return nil, errors.Wrap(err, "adding line string")
			}
		}
		return ret, nil
	case *geo.MultiPolygon:
		ret := geom.NewMultiPolygon(layout)
		for i := 0; i < g.NumGeometries(); i++ {
			p, err := polygonToGeom(g.PolygonN(i), layout)
			if err != nil {
				return nil, err
			}
			if err := ret.Push(p); err != nil {
				return nil, errors.Wrap(err, "adding polygon")
			}
		}
		return ret, nil
	case *geo.GeometryCollection:
		ret := geom.NewGeometryCollection()
		for i := 0; i < g.NumGeometries(); i++ {
			child, err := toGeom(g.GeometryN(i), layout)
			if err != nil {
				return nil, err
			}
			if err := ret.Push(child); err != nil {
				return nil, errors.Wrap(err, "adding geometry")
			}
		}
		return ret, nil
	default:
		return nil, errors.AssertionFailedf("unhandled geometry type %T", g)
	}
}

func coordToGeom(c geo.Coordinate, layout geom.Layout) geom.Coord {
	if layout == geom.XYZ {
		return geom.Coord{c.X, c.Y, c.Z}
	}
	return geom.Coord{c.X, c.Y}
}

func coordsToGeom(coords []geo.Coordinate, layout geom.Layout) []geom.Coord {
	ret := make([]geom.Coord, len(coords))
	for i, c := range coords {
		ret[i] = coordToGeom(c, layout)
	}
	return ret
}

func pointToGeom(p *geo.Point, layout geom.Layout) (*geom.Point, error) {
	c, ok := p.Coordinate()
	if !ok {
		return geom.NewPointEmpty(layout), nil
	}
	ret, err := geom.NewPoint(layout).SetCoords(coordToGeom(c, layout))
	return ret, errors.Wrap(err, "building point")
}

func lineToGeom(coords []geo.Coordinate, layout geom.Layout) (*geom.LineString, error) {
	ret, err := geom.NewLineString(layout).SetCoords(coordsToGeom(coords, layout))
	return ret, errors.Wrap(err, "building line string")
}

func polygonToGeom(p *geo.Polygon, layout geom.Layout) (*geom.Polygon, error) {
	rings := make([][]geom.Coord, p.NumRings())
	for i := range rings {
		rings[i] = coordsToGeom(p.RingN(i).Coordinates(), layout)
	}
	ret, err := geom.NewPolygon(layout).SetCoords(rings)
	return ret, errors.Wrap(err, "building polygon")
}

// FromGeom converts t to a geometry built by f, so f's precision model is
// applied. M ordinates are dropped.
func FromGeom(t geom.T, f *geo.Factory) (geo.Geometry, error) {
	switch t := t.(type) {
	case *geom.Point:
		return pointFromGeom(t, f), nil
	case *geom.LineString:
		return f.NewLineString(coordsFromGeom(t.Coords(), t.Layout())), nil
	case *geom.LinearRing:
		return f.NewLinearRing(coordsFromGeom(t.Coords(), t.Layout())), nil
	case *geom.Polygon:
		return polygonFromGeom(t, f), nil
	case *geom.MultiPoint:
		points := make([]*geo.Point, t.NumPoints())
		for i := range points {
			points[i] = pointFromGeom(t.Point(i), f)
		}
		return f.NewMultiPoint(points...), nil
	case *geom.MultiLineString:
		lines := make([]*geo.LineString, t.NumLineStrings())
		for i := range lines {
			lines[i] = f.NewLineString(coordsFromGeom(t.LineString(i).Coords(), t.Layout()))
		}
		return f.NewMultiLineString(lines...), nil
	case *geom.MultiPolygon:
		polys := make([]*geo.Polygon, t.NumPolygons())
		for i := range polys {
			polys[i] = polygonFromGeom(t.Polygon(i), f)
		}
		return f.NewMultiPolygon(polys...), nil
	case *geom.GeometryCollection:
		geoms := make([]geo.Geometry, t.NumGeoms())
		for i := range geoms {
			child, err := FromGeom(t.Geom(i), f)
			if err != nil {
				return nil, err
			}
			geoms[i] = child
		}
		return f.NewGeometryCollection(geoms...), nil
	default:
		return nil, errors.Newf("unsupported go-geom type %T", t)
	}
}

func coordFromGeom(c geom.Coord, layout geom.Layout) geo.Coordinate {
	if zi := layout.ZIndex(); zi != -1 && !math.IsNaN(c[zi]) {
		return geo.NewCoordinateZ(c[0], c[1], c[zi])
	}
	return geo.NewCoordinate(c[0], c[1])
}

func coordsFromGeom(coords []geom.Coord, layout geom.Layout) []geo.Coordinate {
	if len(coords) == 0 {
		return nil
	}
	ret := make([]geo.Coordinate, len(coords))
	for i, c := range coords {
		ret[i] = coordFromGeom(c, layout)
	}
	return ret
}

func pointFromGeom(p *geom.Point, f *geo.Factory) *geo.Point {
	if p.Empty() {
		return f.NewPointEmpty()
	}
	return f.NewPoint(coordFromGeom(p.Coords(), p.Layout()))
}

func polygonFromGeom(p *geom.Polygon, f *geo.Factory) *geo.Polygon {
	if p.NumLinearRings() == 0 {
		return f.NewPolygon(nil)
	}
	shell := f.NewLinearRing(coordsFromGeom(p.LinearRing(0).Coords(), p.Layout()))
	holes := make([]*geo.LinearRing, p.NumLinearRings()-1)
	for i := range holes {
		holes[i] = f.NewLinearRing(coordsFromGeom(p.LinearRing(i+1).Coords(), p.Layout()))
	}
	return f.NewPolygon(shell, holes...)
}
