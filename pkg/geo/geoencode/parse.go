// Copyright 2020 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package geoencode

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/geo"
	"github.com/cockroachdb/wktcodec/pkg/geo/geomconv"
	"github.com/cockroachdb/wktcodec/pkg/geo/wkt"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
)

// ParseAmbiguousText parses a text as a number of different options
// that is available in the geospatial world using the first character as
// a heuristic: hex EWKB, raw EWKB bytes, or EWKT.
// This matches the PostGIS direct cast from a string to GEOMETRY.
func ParseAmbiguousText(r *wkt.Reader, str string, defaultSRID SRID) (geo.Geometry, SRID, error) {
	if len(str) == 0 {
		return nil, 0, errors.New("parsing empty string to geometry")
	}

	// Parse as EWKB hex.
	if str[0] == '0' {
		t, err := ewkbhex.Decode(str)
		if err != nil {
			return nil, 0, errors.Wrap(err, "decoding EWKB hex")
		}
		return fromGeomWithSRID(r.Factory(), t, defaultSRID)
	}

	// Parse as EWKB if it's a byte start.
	if str[0] == 0x00 || str[0] == 0x01 {
		t, err := ewkb.Unmarshal([]byte(str))
		if err != nil {
			return nil, 0, errors.Wrap(err, "decoding EWKB")
		}
		return fromGeomWithSRID(r.Factory(), t, defaultSRID)
	}

	return ParseEWKT(r, str, defaultSRID)
}

func fromGeomWithSRID(f *geo.Factory, t geom.T, defaultSRID SRID) (geo.Geometry, SRID, error) {
	g, err := geomconv.FromGeom(t, f)
	if err != nil {
		return nil, 0, err
	}
	srid := SRID(t.SRID())
	if srid == 0 {
		srid = defaultSRID
	}
	return g, srid, nil
}

const sridPrefix = "SRID="
const sridPrefixLen = len(sridPrefix)

// ParseEWKT parses WKT with an optional "SRID=<n>;" prefix. Without a prefix,
// or with an SRID of zero, defaultSRID is returned.
func ParseEWKT(r *wkt.Reader, str string, defaultSRID SRID) (geo.Geometry, SRID, error) {
	srid := defaultSRID
	if len(str) >= sridPrefixLen && strings.EqualFold(str[:sridPrefixLen], sridPrefix) {
		end := strings.Index(str[sridPrefixLen:], ";")
		if end == -1 {
			return nil, 0, errors.Newf(
				"failed to find ; character with SRID declaration during EWKT decode: %q",
				str,
			)
		}
		sridInt64, err := strconv.ParseInt(str[sridPrefixLen:sridPrefixLen+end], 10, 32)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "parsing SRID in %q", str)
		}
		// Only override the SRID if the SRID is not zero.
		// This is in line with observed PostGIS behavior, where Geography still uses
		// SRID 4326 if a 0 SRID was explicitly made at the beginning.
		if sridInt64 != 0 {
			srid = SRID(sridInt64)
		}
		str = str[sridPrefixLen+end+1:]
	}

	g, err := r.Read(str)
	if err != nil {
		return nil, 0, err
	}
	return g, srid, nil
}
