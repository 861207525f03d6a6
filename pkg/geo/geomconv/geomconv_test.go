// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package geomconv

import (
	"math"
	"testing"

	"github.com/cockroachdb/wktcodec/pkg/geo"
	"github.com/cockroachdb/wktcodec/pkg/geo/wkt"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func TestRoundTrip(t *testing.T) {
	testCases := []struct {
		desc   string
		wkt    string
		layout geom.Layout
	}{
		{desc: "point", wkt: "POINT (1 2)", layout: geom.XY},
		{desc: "3D point", wkt: "POINT (1 2 3)", layout: geom.XYZ},
		{desc: "empty point", wkt: "POINT EMPTY", layout: geom.XY},
		{desc: "line string", wkt: "LINESTRING (0 0, 1 1, 2 0)", layout: geom.XY},
		{desc: "mixed z", wkt: "LINESTRING (1 1, 2 2 2)", layout: geom.XYZ},
		{desc: "polygon", wkt: "POLYGON ((0 0, 4 0, 4 4, 0 0), (1 1, 2 1, 2 2, 1 1))", layout: geom.XY},
		{desc: "empty polygon", wkt: "POLYGON EMPTY", layout: geom.XY},
		{desc: "multi point", wkt: "MULTIPOINT ((1 1), (2 2 5))", layout: geom.XYZ},
		{desc: "multi line string", wkt: "MULTILINESTRING ((0 0, 1 1), (2 2, 3 3))", layout: geom.XY},
		{desc: "multi polygon", wkt: "MULTIPOLYGON (((0 0, 1 0, 1 1, 0 0)), ((5 5, 6 5, 6 6, 5 5)))", layout: geom.XY},
		{
			desc:   "geometry collection",
			wkt:    "GEOMETRYCOLLECTION (POINT (1 1), LINESTRING (0 0, 1 1 1), GEOMETRYCOLLECTION EMPTY)",
			layout: geom.XYZ,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			g, err := wkt.Unmarshal(tc.wkt)
			require.NoError(t, err)
			require.Equal(t, tc.layout, LayoutOf(g))

			gt, err := ToGeom(g)
			require.NoError(t, err)
			require.Equal(t, tc.layout, gt.Layout())

			back, err := FromGeom(gt, geo.DefaultFactory)
			require.NoError(t, err)
			require.True(t, geo.Equal(g, back), "expected %s", tc.wkt)
		})
	}
}

func TestMixedZUsesNaN(t *testing.T) {
	g, err := wkt.Unmarshal("LINESTRING (1 1, 2 2 2)")
	require.NoError(t, err)
	gt, err := ToGeom(g)
	require.NoError(t, err)
	flat := gt.FlatCoords()
	require.Len(t, flat, 6)
	require.Equal(t, []float64{1, 1}, flat[:2])
	require.True(t, math.IsNaN(flat[2]))
	require.Equal(t, []float64{2, 2, 2}, flat[3:])
}

func TestLinearRingBecomesLineString(t *testing.T) {
	g, err := wkt.Unmarshal("LINEARRING (0 0, 1 0, 1 1, 0 0)")
	require.NoError(t, err)
	gt, err := ToGeom(g)
	require.NoError(t, err)
	ls, ok := gt.(*geom.LineString)
	require.True(t, ok)
	require.Equal(t, 4, ls.NumCoords())
}

func TestFromGeom(t *testing.T) {
	pm, err := geo.NewFixed(1)
	require.NoError(t, err)
	f := geo.NewFactory(pm)

	// M ordinates are dropped and the precision model applies.
	gt := geom.NewLineStringFlat(geom.XYZM, []float64{1.4, 2.6, 3, 100, 4, 5, math.NaN(), 200})
	g, err := FromGeom(gt, f)
	require.NoError(t, err)
	out, err := wkt.Marshal(g)
	require.NoError(t, err)
	require.Equal(t, "LINESTRING (1 3, 4 5)", out)
	ls := g.(*geo.LineString)
	require.Equal(t, 3.0, ls.CoordinateN(0).Z)
	require.False(t, ls.CoordinateN(1).HasZ())

	ring := geom.NewLinearRingFlat(geom.XY, []float64{0, 0, 1, 0, 1, 1, 0, 0})
	g, err = FromGeom(ring, f)
	require.NoError(t, err)
	require.Equal(t, geo.KindLinearRing, g.Kind())
}
