// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package geoencode converts geometries to and from the formats other GIS
// tools exchange: EWKT, (E)WKB and its hex form, GeoJSON, KML and GeoHash.
// WKT itself is handled by package wkt; the binary and JSON formats go
// through go-geom.
package geoencode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/geo"
	"github.com/cockroachdb/wktcodec/pkg/geo/geomconv"
	"github.com/cockroachdb/wktcodec/pkg/geo/wkt"
	"github.com/pierrre/geohash"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/kml"
	"github.com/twpayne/go-geom/encoding/wkb"
	"github.com/twpayne/go-geom/encoding/wkbcommon"
	"github.com/twpayne/go-geom/encoding/wkbhex"
)

// SRID is a spatial reference system identifier. Zero means unknown.
type SRID int32

// DefaultGeoJSONDecimalDigits is the default number of digits coordinates in GeoJSON.
const DefaultGeoJSONDecimalDigits = 9

// DefaultEWKBEncodingFormat is the byte order used for (E)WKB unless one is
// requested.
var DefaultEWKBEncodingFormat binary.ByteOrder = binary.LittleEndian

// ToWKT writes g as WKT, including z ordinates where present.
func ToWKT(g geo.Geometry, maxSignificantDigits int) (string, error) {
	w, err := wkt.NewWriter(wkt.WithOutputDimension(3), wkt.WithMaxSignificantDigits(maxSignificantDigits))
	if err != nil {
		return "", err
	}
	return w.Write(g)
}

// ToEWKT writes g as WKT prefixed by "SRID=<srid>;" when srid is not zero.
func ToEWKT(g geo.Geometry, srid SRID, maxSignificantDigits int) (string, error) {
	ret, err := ToWKT(g, maxSignificantDigits)
	if err != nil {
		return "", err
	}
	if srid != 0 {
		ret = fmt.Sprintf("%s%d;%s", sridPrefix, srid, ret)
	}
	return ret, nil
}

// ToWKB writes g as WKB. Empty points are encoded with NaN ordinates.
func ToWKB(g geo.Geometry, byteOrder binary.ByteOrder) ([]byte, error) {
	t, err := geomconv.ToGeom(g)
	if err != nil {
		return nil, err
	}
	ret, err := wkb.Marshal(t, byteOrder, wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN))
	return ret, errors.Wrap(err, "encoding WKB")
}

// ToEWKB writes g as EWKB carrying srid.
func ToEWKB(g geo.Geometry, srid SRID, byteOrder binary.ByteOrder) ([]byte, error) {
	t, err := geomconv.ToGeom(g)
	if err != nil {
		return nil, err
	}
	adjustGeomSRID(t, srid)
	ret, err := ewkb.Marshal(t, byteOrder)
	return ret, errors.Wrap(err, "encoding EWKB")
}

// ToWKBHex writes g as upper-case hex-encoded WKB.
func ToWKBHex(g geo.Geometry) (string, error) {
	t, err := geomconv.ToGeom(g)
	if err != nil {
		return "", err
	}
	ret, err := wkbhex.Encode(t, DefaultEWKBEncodingFormat, wkbcommon.WKBOptionEmptyPointHandling(wkbcommon.EmptyPointHandlingNaN))
	if err != nil {
		return "", errors.Wrap(err, "encoding WKB")
	}
	return strings.ToUpper(ret), nil
}

// ToEWKBHex writes g as upper-case hex-encoded EWKB carrying srid. This is
// the form ParseAmbiguousText recognises.
func ToEWKBHex(g geo.Geometry, srid SRID) (string, error) {
	t, err := geomconv.ToGeom(g)
	if err != nil {
		return "", err
	}
	adjustGeomSRID(t, srid)
	ret, err := ewkbhex.Encode(t, DefaultEWKBEncodingFormat)
	if err != nil {
		return "", errors.Wrap(err, "encoding EWKB")
	}
	return strings.ToUpper(ret), nil
}

// GeoJSONFlag maps to the ST_AsGeoJSON flags for PostGIS.
type GeoJSONFlag int

// These should be kept with ST_AsGeoJSON in PostGIS.
// 0: means no option
// 1: GeoJSON BBOX
// 2: GeoJSON Short CRS (e.g EPSG:4326)
// 4: GeoJSON Long CRS (e.g urn:ogc:def:crs:EPSG::4326)
// 8: GeoJSON Short CRS if not EPSG:4326 (default)
const (
	GeoJSONFlagIncludeBBox GeoJSONFlag = 1 << (iota)
	GeoJSONFlagShortCRS
	GeoJSONFlagLongCRS
	GeoJSONFlagShortCRSIfNot4326

	GeoJSONFlagZero = 0
)

// sridToGeoJSONCRS converts an SRID to its CRS GeoJSON form. SRIDs are
// assumed to be EPSG codes.
func sridToGeoJSONCRS(srid SRID, long bool) *geojson.CRS {
	var prop string
	if long {
		prop = fmt.Sprintf("urn:ogc:def:crs:EPSG::%d", srid)
	} else {
		prop = fmt.Sprintf("EPSG:%d", srid)
	}
	return &geojson.CRS{
		Type: "name",
		Properties: map[string]interface{}{
			"name": prop,
		},
	}
}

// ToGeoJSON writes g as a GeoJSON geometry. Coordinates must agree on
// whether they have a z ordinate, since GeoJSON cannot express NaN.
func ToGeoJSON(g geo.Geometry, srid SRID, maxDecimalDigits int, flag GeoJSONFlag) ([]byte, error) {
	t, err := geomconv.ToGeom(g)
	if err != nil {
		return nil, err
	}
	options := []geojson.EncodeGeometryOption{
		geojson.EncodeGeometryWithMaxDecimalDigits(maxDecimalDigits),
	}
	if flag&GeoJSONFlagIncludeBBox != 0 {
		// Do not encoding empty bounding boxes.
		if !g.Envelope().IsEmpty() {
			options = append(options, geojson.EncodeGeometryWithBBox())
		}
	}
	// Take CRS flag in order of precedence.
	if srid != 0 {
		if flag&GeoJSONFlagLongCRS != 0 {
			options = append(options, geojson.EncodeGeometryWithCRS(sridToGeoJSONCRS(srid, true /* long */)))
		} else if flag&GeoJSONFlagShortCRS != 0 {
			options = append(options, geojson.EncodeGeometryWithCRS(sridToGeoJSONCRS(srid, false /* long */)))
		} else if flag&GeoJSONFlagShortCRSIfNot4326 != 0 {
			if srid != 4326 {
				options = append(options, geojson.EncodeGeometryWithCRS(sridToGeoJSONCRS(srid, false /* long */)))
			}
		}
	}

	ret, err := geojson.Marshal(t, options...)
	return ret, errors.Wrap(err, "encoding GeoJSON")
}

// ToKML writes g as a KML geometry element.
func ToKML(g geo.Geometry) (string, error) {
	t, err := geomconv.ToGeom(g)
	if err != nil {
		return "", err
	}
	kmlElement, err := kml.Encode(t)
	if err != nil {
		return "", errors.Wrap(err, "encoding KML")
	}
	var buf bytes.Buffer
	if err := kmlElement.Write(&buf); err != nil {
		return "", errors.Wrap(err, "encoding KML")
	}
	return buf.String(), nil
}

// GeoHashAutoPrecision means to calculate the precision of ToGeoHash
// based on input, up to 32 characters.
const GeoHashAutoPrecision = 0

// GeoHashMaxPrecision is the maximum precision for GeoHashes.
// 20 is picked as doubles have 51 decimals of precision, and each base32 position
// can contain 5 bits of data. As we have two points, we use floor((2 * 51) / 5) = 20.
const GeoHashMaxPrecision = 20

// ToGeoHash returns the GeoHash of the center of g's envelope, treating x as
// longitude and y as latitude. An empty geometry has an empty GeoHash.
func ToGeoHash(g geo.Geometry, p int) (string, error) {
	env := g.Envelope()
	if env.IsEmpty() {
		return "", nil
	}
	if env.MinX() < -180 || env.MaxX() > 180 || env.MinY() < -90 || env.MaxY() > 90 {
		return "", errors.Newf(
			"object has bounds greater than the bounds of lat/lng, got (%f %f, %f %f)",
			env.MinX(), env.MinY(),
			env.MaxX(), env.MaxY(),
		)
	}

	// Get precision using the bounding box if required.
	if p <= GeoHashAutoPrecision {
		p = getPrecisionForEnvelope(env)
	}

	// Support up to 20, which is the same as PostGIS.
	if p > GeoHashMaxPrecision {
		p = GeoHashMaxPrecision
	}

	centerLng, centerLat := env.Center()
	return geohash.Encode(centerLat, centerLng, p), nil
}

// getPrecisionForEnvelope is a function imitating PostGIS's ability to go from
// a world bounding box and truncating a GeoHash to fit the given bounding box.
// The algorithm halves the world bounding box until it intersects with the
// feature bounding box to get a precision that will encompass the entire
// bounding box.
func getPrecisionForEnvelope(env geo.Envelope) int {
	bitPrecision := 0

	// This is a point, for points we use the full bitPrecision.
	if env.MinX() == env.MaxX() && env.MinY() == env.MaxY() {
		return GeoHashMaxPrecision
	}

	// Starts from a world bounding box:
	lonMin := -180.0
	lonMax := 180.0
	latMin := -90.0
	latMax := 90.0

	// Each iteration shrinks the world bounding box by half in the dimension that
	// does not fit, making adjustments each iteration until it intersects with
	// the object bbox.
	for {
		lonWidth := lonMax - lonMin
		latWidth := latMax - latMin
		latMaxDelta, lonMaxDelta, latMinDelta, lonMinDelta := 0.0, 0.0, 0.0, 0.0

		if env.MinX() > lonMin+lonWidth/2.0 {
			lonMinDelta = lonWidth / 2.0
		} else if env.MaxX() < lonMax-lonWidth/2.0 {
			lonMaxDelta = lonWidth / -2.0
		}
		if env.MinY() > latMin+latWidth/2.0 {
			latMinDelta = latWidth / 2.0
		} else if env.MaxY() < latMax-latWidth/2.0 {
			latMaxDelta = latWidth / -2.0
		}

		// Every change we make that splits the box up adds precision.
		// If we detect no change, we've intersected a box and so must exit.
		precisionDelta := 0
		if lonMinDelta != 0.0 || lonMaxDelta != 0.0 {
			lonMin += lonMinDelta
			lonMax += lonMaxDelta
			precisionDelta++
		} else {
			break
		}
		if latMinDelta != 0.0 || latMaxDelta != 0.0 {
			latMin += latMinDelta
			latMax += latMaxDelta
			precisionDelta++
		} else {
			break
		}
		bitPrecision += precisionDelta
	}
	// Each character can represent 5 bits of bitPrecision.
	// As such, divide by 5 to get GeoHash precision.
	return bitPrecision / 5
}

// StringToByteOrder returns the byte order of string.
func StringToByteOrder(s string) binary.ByteOrder {
	switch strings.ToLower(s) {
	case "ndr":
		return binary.LittleEndian
	case "xdr":
		return binary.BigEndian
	default:
		return DefaultEWKBEncodingFormat
	}
}

// adjustGeomSRID adjusts the SRID of a given geom.T.
// Ideally SetSRID is an interface of geom.T, but that is not the case.
func adjustGeomSRID(t geom.T, srid SRID) {
	switch t := t.(type) {
	case *geom.Point:
		t.SetSRID(int(srid))
	case *geom.LineString:
		t.SetSRID(int(srid))
	case *geom.Polygon:
		t.SetSRID(int(srid))
	case *geom.GeometryCollection:
		t.SetSRID(int(srid))
	case *geom.MultiPoint:
		t.SetSRID(int(srid))
	case *geom.MultiLineString:
		t.SetSRID(int(srid))
	case *geom.MultiPolygon:
		t.SetSRID(int(srid))
	default:
		panic(errors.AssertionFailedf("unknown geom type: %T", t))
	}
}
