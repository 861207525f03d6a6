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
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/wktcodec/pkg/geo/geoerror"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	for k := KindPoint; k <= KindGeometryCollection; k++ {
		got, ok := KindFromKeyword(k.String())
		require.True(t, ok)
		require.Equal(t, k, got)
	}
	_, ok := KindFromKeyword("CIRCULARSTRING")
	require.False(t, ok)
	require.Equal(t, "UNKNOWN", Kind(0).String())

	// Keywords are safe for redaction.
	require.Equal(t, "kind POINT", string(redact.Sprintf("kind %v", KindPoint).Redact()))
}

func TestCoordinate(t *testing.T) {
	c2 := NewCoordinate(1, 2)
	c3 := NewCoordinateZ(1, 2, 3)
	require.False(t, c2.HasZ())
	require.True(t, c3.HasZ())
	require.True(t, c2.Equals2D(c3))
	require.False(t, c2.Equals3D(c3))
	require.True(t, c2.Equals3D(NewCoordinate(1, 2)))
	require.Equal(t, "(1, 2)", c2.String())
	require.Equal(t, "(1, 2, 3)", c3.String())
}

func TestFactoryPrecision(t *testing.T) {
	pm, err := NewFixed(1)
	require.NoError(t, err)
	f := NewFactory(pm)

	p := f.NewPoint(NewCoordinate(10.4, 10.5))
	c, ok := p.Coordinate()
	require.True(t, ok)
	require.Equal(t, 10.0, c.X)
	require.Equal(t, 11.0, c.Y)
	require.False(t, c.HasZ())

	// Collections copy children without rounding them again.
	ls := DefaultFactory.NewLineString([]Coordinate{NewCoordinate(0.5, 0.5), NewCoordinate(1.25, 1.25)})
	mls := f.NewMultiLineString(ls)
	require.Equal(t, 0.5, mls.LineStringN(0).CoordinateN(0).X)
	require.NotSame(t, ls, mls.LineStringN(0))
}

func TestFactoryAdopt(t *testing.T) {
	f := DefaultFactory
	pt := f.NewPoint(NewCoordinate(1, 2))
	ls := f.NewLineString([]Coordinate{NewCoordinate(0, 0), NewCoordinate(1, 1)})
	shell := f.NewLinearRing([]Coordinate{
		NewCoordinate(0, 0), NewCoordinate(1, 0), NewCoordinate(1, 1), NewCoordinate(0, 0),
	})
	hole := f.NewLinearRing(nil)

	poly := f.AdoptPolygon(shell, []*LinearRing{hole})
	require.Same(t, shell, poly.Shell())
	require.Same(t, hole, poly.Hole(0))
	require.True(t, Equal(f.NewPolygon(shell, hole), poly))
	require.True(t, f.AdoptPolygon(nil, []*LinearRing{hole}).IsEmpty())
	require.Equal(t, 0, f.AdoptPolygon(nil, []*LinearRing{hole}).NumRings())

	mp := f.AdoptMultiPoint([]*Point{pt})
	require.Same(t, pt, mp.PointN(0))
	require.True(t, Equal(f.NewMultiPoint(pt), mp))

	mls := f.AdoptMultiLineString([]*LineString{ls})
	require.Same(t, ls, mls.LineStringN(0))

	mpoly := f.AdoptMultiPolygon([]*Polygon{poly})
	require.Same(t, poly, mpoly.PolygonN(0))

	gc := f.AdoptGeometryCollection([]Geometry{mp, ls})
	require.Same(t, mp, gc.GeometryN(0))
	require.True(t, Equal(f.NewGeometryCollection(mp, ls), gc))

	// The New constructors still copy.
	require.NotSame(t, mp, f.NewGeometryCollection(mp).GeometryN(0))

	empty := f.AdoptGeometryCollection(nil)
	require.True(t, empty.IsEmpty())
	require.True(t, Equal(f.NewGeometryCollection(), empty))
}

func TestGeometryAccessors(t *testing.T) {
	f := DefaultFactory
	shell := f.NewLinearRing([]Coordinate{
		NewCoordinate(0, 0), NewCoordinate(10, 0), NewCoordinate(10, 10), NewCoordinate(0, 0),
	})
	hole := f.NewLinearRing([]Coordinate{
		NewCoordinate(1, 1), NewCoordinate(2, 1), NewCoordinate(2, 2), NewCoordinate(1, 1),
	})
	poly := f.NewPolygon(shell, hole)
	require.Equal(t, KindPolygon, poly.Kind())
	require.Equal(t, 2, poly.NumRings())
	require.Equal(t, 1, poly.NumHoles())
	require.Equal(t, 8, poly.NumCoordinates())
	require.True(t, poly.Shell().IsClosed())
	require.False(t, poly.IsEmpty())

	empty := f.NewPolygon(nil, hole)
	require.True(t, empty.IsEmpty())
	require.Equal(t, 0, empty.NumRings())
	require.Equal(t, 0, empty.NumCoordinates())

	gc := f.NewGeometryCollection(f.NewPoint(NewCoordinate(5, 5)), poly, f.NewPointEmpty())
	require.Equal(t, 3, gc.NumGeometries())
	require.Equal(t, 9, gc.NumCoordinates())
	require.False(t, gc.IsEmpty())

	mp := f.NewMultiPoint(f.NewPointEmpty(), f.NewPointEmpty())
	require.True(t, mp.IsEmpty())
	require.Equal(t, 2, mp.NumGeometries())

	env := gc.Envelope()
	require.Equal(t, 0.0, env.MinX())
	require.Equal(t, 10.0, env.MaxX())
	x, y := env.Center()
	require.Equal(t, 5.0, x)
	require.Equal(t, 5.0, y)
	require.True(t, f.NewPointEmpty().Envelope().IsEmpty())
	require.Equal(t, "Env[0 : 10, 0 : 10]", env.String())
}

func TestEqual(t *testing.T) {
	f := DefaultFactory
	a := f.NewLineString([]Coordinate{NewCoordinate(1, 1), NewCoordinateZ(2, 2, 2)})
	b := f.NewLineString([]Coordinate{NewCoordinate(1, 1), NewCoordinateZ(2, 2, 2)})
	c := f.NewLineString([]Coordinate{NewCoordinateZ(1, 1, math.NaN()), NewCoordinate(2, 2)})
	r := f.NewLinearRing([]Coordinate{NewCoordinate(1, 1), NewCoordinateZ(2, 2, 2)})

	require.True(t, Equal(a, b))
	require.False(t, Equal(a, c))
	require.False(t, Equal(a, r))
	require.False(t, Equal(
		f.NewMultiPoint(f.NewPoint(NewCoordinate(1, 2)), f.NewPointEmpty()),
		f.NewMultiPointFromCoords([]Coordinate{NewCoordinate(1, 2)}),
	))
	require.True(t, Equal(f.NewPointEmpty(), f.NewPointEmpty()))
	require.False(t, Equal(f.NewPointEmpty(), f.NewPoint(NewCoordinate(0, 0))))
	require.True(t, Equal(f.NewGeometryCollection(a, r), f.NewGeometryCollection(b, r)))
	require.False(t, Equal(f.NewGeometryCollection(a, r), f.NewGeometryCollection(r, a)))
}

func TestPrecisionModel(t *testing.T) {
	testCases := []struct {
		desc     string
		scale    float64
		input    float64
		expected float64
	}{
		{desc: "integers unchanged at scale 1", scale: 1, input: 10, expected: 10},
		{desc: "half rounds up", scale: 1, input: 2.5, expected: 3},
		{desc: "negative half rounds away from zero", scale: 1, input: -2.5, expected: -3},
		{desc: "decimal tie is exact", scale: 100, input: 0.285, expected: 0.29},
		{desc: "three decimals", scale: 1000, input: 1.23456, expected: 1.235},
		{desc: "coarse grid", scale: 0.01, input: 1249, expected: 1200},
		{desc: "negative zero collapses", scale: 1, input: -0.2, expected: 0},
		{desc: "large values keep their double", scale: 1e9, input: 123456789012345678, expected: 123456789012345680},
		{desc: "huge values keep their double", scale: 1e9, input: 123456789012345678000000e9, expected: 123456789012345690000000000000000},
		{desc: "grid value past max float falls back toward zero", scale: 1e-308, input: math.MaxFloat64, expected: 1e308},
		{desc: "grid value past min float falls back toward zero", scale: 1e-308, input: -math.MaxFloat64, expected: -1e308},
		{desc: "representable grid value still rounds half up", scale: 1e-308, input: 6e307, expected: 1e308},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			pm, err := NewFixed(tc.scale)
			require.NoError(t, err)
			got := pm.MakePrecise(tc.input)
			require.Equal(t, tc.expected, got)
			require.False(t, math.Signbit(got) && got == 0)
			// Applying the model twice changes nothing.
			require.Equal(t, got, pm.MakePrecise(got))
		})
	}

	t.Run("floating is identity", func(t *testing.T) {
		pm := Floating()
		require.True(t, pm.IsFloating())
		require.Equal(t, 0.1+0.2, pm.MakePrecise(0.1+0.2))
		require.Equal(t, "Floating", pm.String())
	})

	t.Run("absent z passes through", func(t *testing.T) {
		pm, err := NewFixed(10)
		require.NoError(t, err)
		c := pm.MakeCoordinatePrecise(NewCoordinate(1.04, 1.05))
		require.Equal(t, 1.0, c.X)
		require.Equal(t, 1.1, c.Y)
		require.False(t, c.HasZ())
		require.True(t, math.IsInf(pm.MakePrecise(math.Inf(-1)), -1))
		require.Equal(t, "Fixed (Scale=10)", pm.String())
	})

	for _, scale := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewFixed(scale)
		require.Error(t, err)
		require.True(t, errors.Is(err, geoerror.ErrInvalidConfiguration), "scale %v", scale)
	}
}
