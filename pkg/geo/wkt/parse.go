// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package wkt

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/geo"
)

// Reader parses WKT into geometries. A Reader has no mutable state and may be
// used from several goroutines at once.
type Reader struct {
	factory          *geo.Factory
	strictDimensions bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithFactory sets the factory, and therefore the precision model, used to
// build parsed geometries. The default is geo.DefaultFactory.
func WithFactory(f *geo.Factory) ReaderOption {
	return func(r *Reader) { r.factory = f }
}

// WithStrictDimensions requires all coordinates of one sequence to have the
// same number of ordinates. By default each coordinate decides for itself
// whether it has a z ordinate, which is what Writer produces for mixed
// input.
func WithStrictDimensions(strict bool) ReaderOption {
	return func(r *Reader) { r.strictDimensions = strict }
}

// NewReader returns a Reader with the given options.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{factory: geo.DefaultFactory}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Factory returns the factory used to build parsed geometries.
func (r *Reader) Factory() *geo.Factory { return r.factory }

// Read parses text. On failure the error is a *ParseError and no geometry is
// returned.
func (r *Reader) Read(text string) (geo.Geometry, error) {
	p := parser{lex: makeWktLex(text), factory: r.factory, strict: r.strictDimensions}
	g, err := p.parse()
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Decode reads all of in and parses it.
func (r *Reader) Decode(in io.Reader) (geo.Geometry, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, in); err != nil {
		return nil, errors.Wrap(err, "reading WKT")
	}
	return r.Read(b.String())
}

// Unmarshal parses text with the default Reader.
func Unmarshal(text string) (geo.Geometry, error) {
	return defaultReader.Read(text)
}

var defaultReader = NewReader()

const (
	keywordEmpty = "EMPTY"
	keywordZ     = "Z"
	keywordM     = "M"
	keywordZM    = "ZM"
)

// noDims means any ordinate count is acceptable.
const noDims = 0

type parser struct {
	lex     *wktLex
	factory *geo.Factory
	strict  bool
}

func (p *parser) parse() (geo.Geometry, error) {
	g, err := p.parseGeometry()
	if err != nil {
		return nil, err
	}
	tok, err := p.lex.nextToken()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokEOF {
		return nil, p.lex.unexpected(tok, "end of input")
	}
	return g, nil
}

// parseGeometry parses a keyword followed by EMPTY or a body.
func (p *parser) parseGeometry() (geo.Geometry, error) {
	tok, err := p.lex.nextToken()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokKeyword {
		return nil, p.lex.unexpected(tok, "geometry keyword")
	}
	kind, wantDims, err := p.parseKind(tok)
	if err != nil {
		return nil, err
	}
	empty, err := p.parseEmpty()
	if err != nil {
		return nil, err
	}

	f := p.factory
	switch kind {
	case geo.KindPoint:
		if empty {
			return f.NewPointEmpty(), nil
		}
		c, err := p.parsePointText(wantDims)
		if err != nil {
			return nil, err
		}
		return f.NewPoint(c), nil
	case geo.KindLineString, geo.KindLinearRing:
		var coords []geo.Coordinate
		if !empty {
			if coords, err = p.parseCoordSeq(wantDims); err != nil {
				return nil, err
			}
		}
		if kind == geo.KindLinearRing {
			return f.NewLinearRing(coords), nil
		}
		return f.NewLineString(coords), nil
	case geo.KindPolygon:
		if empty {
			return f.NewPolygon(nil), nil
		}
		return p.parsePolygonText(wantDims)
	case geo.KindMultiPoint:
		if empty {
			return f.NewMultiPoint(), nil
		}
		return p.parseMultiPointText(wantDims)
	case geo.KindMultiLineString:
		var lines []*geo.LineString
		if !empty {
			err := p.parseList(func() error {
				coords, err := p.parseMemberCoordSeq(wantDims)
				lines = append(lines, f.NewLineString(coords))
				return err
			})
			if err != nil {
				return nil, err
			}
		}
		return f.AdoptMultiLineString(lines), nil
	case geo.KindMultiPolygon:
		var polys []*geo.Polygon
		if !empty {
			err := p.parseList(func() error {
				memberEmpty, err := p.parseEmpty()
				if err != nil || memberEmpty {
					polys = append(polys, f.NewPolygon(nil))
					return err
				}
				poly, err := p.parsePolygonText(wantDims)
				polys = append(polys, poly)
				return err
			})
			if err != nil {
				return nil, err
			}
		}
		return f.AdoptMultiPolygon(polys), nil
	case geo.KindGeometryCollection:
		var geoms []geo.Geometry
		if !empty {
			err := p.parseList(func() error {
				// A bare EMPTY member is read as an empty collection.
				memberEmpty, err := p.parseEmpty()
				if err != nil || memberEmpty {
					geoms = append(geoms, f.AdoptGeometryCollection(nil))
					return err
				}
				g, err := p.parseGeometry()
				geoms = append(geoms, g)
				return err
			})
			if err != nil {
				return nil, err
			}
		}
		return f.AdoptGeometryCollection(geoms), nil
	default:
		return nil, errors.AssertionFailedf("unhandled geometry kind %s", kind)
	}
}

// parseKind resolves a geometry keyword and an optional dimension marker,
// either attached (POINTZ) or separate (POINT Z). It returns the number of
// ordinates each coordinate must have, or noDims.
func (p *parser) parseKind(tok token) (geo.Kind, int, error) {
	name, marker := tok.str, ""
	kind, ok := geo.KindFromKeyword(name)
	if !ok {
		for _, suffix := range []string{keywordZM, keywordZ, keywordM} {
			if k, found := geo.KindFromKeyword(strings.TrimSuffix(name, suffix)); found && strings.HasSuffix(name, suffix) {
				kind, ok, marker = k, true, suffix
				break
			}
		}
	}
	if !ok {
		return 0, 0, p.lex.errorAt(tok.pos, "geometry keyword", tok.describe(),
			"supported types are POINT, LINESTRING, LINEARRING, POLYGON, MULTIPOINT, "+
				"MULTILINESTRING, MULTIPOLYGON and GEOMETRYCOLLECTION")
	}
	if marker == "" {
		next, err := p.lex.peekToken()
		if err != nil {
			return 0, 0, err
		}
		if next.kind == tokKeyword && (next.str == keywordZ || next.str == keywordM || next.str == keywordZM) {
			_, _ = p.lex.nextToken()
			marker = next.str
			tok = next
		}
	}
	switch marker {
	case "":
		return kind, noDims, nil
	case keywordZ:
		return kind, 3, nil
	default:
		return 0, 0, p.lex.errorAt(tok.pos, "Z or no dimension marker", tok.describe(),
			"measure (M) ordinates are not supported")
	}
}

// parseEmpty consumes an EMPTY keyword if one is next.
func (p *parser) parseEmpty() (bool, error) {
	tok, err := p.lex.peekToken()
	if err != nil {
		return false, err
	}
	if tok.kind == tokKeyword && tok.str == keywordEmpty {
		_, _ = p.lex.nextToken()
		return true, nil
	}
	return false, nil
}

func (p *parser) expect(kind tokenKind, expected string) (token, error) {
	tok, err := p.lex.nextToken()
	if err != nil {
		return token{}, err
	}
	if tok.kind != kind {
		return token{}, p.lex.unexpected(tok, expected)
	}
	return tok, nil
}

// parseList parses "(" item {"," item} ")".
func (p *parser) parseList(item func() error) error {
	if _, err := p.expect(tokLParen, `"(" or EMPTY`); err != nil {
		return err
	}
	for {
		if err := item(); err != nil {
			return err
		}
		tok, err := p.lex.nextToken()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokComma:
		case tokRParen:
			return nil
		default:
			return p.lex.unexpected(tok, `"," or ")"`)
		}
	}
}

// dimsTracker enforces a common ordinate count in strict mode.
type dimsTracker struct {
	strict bool
	dims   int
}

func (d *dimsTracker) check(p *parser, pos, dims int) error {
	if !d.strict {
		return nil
	}
	if d.dims == noDims {
		d.dims = dims
		return nil
	}
	if d.dims != dims {
		return p.lex.errorAt(pos, fmt.Sprintf("coordinate with %d ordinates", d.dims),
			fmt.Sprintf("%d ordinates", dims), "mixed dimensionality is not allowed in strict mode")
	}
	return nil
}

// parseCoordinate parses "x y [z]".
func (p *parser) parseCoordinate(wantDims int, tracker *dimsTracker) (geo.Coordinate, error) {
	xTok, err := p.expect(tokNumber, "number")
	if err != nil {
		return geo.Coordinate{}, err
	}
	yTok, err := p.expect(tokNumber, "number")
	if err != nil {
		return geo.Coordinate{}, err
	}
	next, err := p.lex.peekToken()
	if err != nil {
		return geo.Coordinate{}, err
	}
	if next.kind != tokNumber {
		if wantDims == 3 {
			return geo.Coordinate{}, p.lex.unexpected(next, "z ordinate")
		}
		return geo.NewCoordinate(xTok.num, yTok.num), tracker.check(p, xTok.pos, 2)
	}
	_, _ = p.lex.nextToken()
	if extra, err := p.lex.peekToken(); err != nil {
		return geo.Coordinate{}, err
	} else if extra.kind == tokNumber {
		return geo.Coordinate{}, p.lex.errorAt(extra.pos, `"," or ")"`, extra.describe(),
			"coordinates have at most three ordinates (x y z); measures are not supported")
	}
	return geo.NewCoordinateZ(xTok.num, yTok.num, next.num), tracker.check(p, xTok.pos, 3)
}

// parsePointText parses "(" coordinate ")".
func (p *parser) parsePointText(wantDims int) (geo.Coordinate, error) {
	if _, err := p.expect(tokLParen, `"(" or EMPTY`); err != nil {
		return geo.Coordinate{}, err
	}
	c, err := p.parseCoordinate(wantDims, &dimsTracker{})
	if err != nil {
		return geo.Coordinate{}, err
	}
	if _, err := p.expect(tokRParen, `")"`); err != nil {
		return geo.Coordinate{}, err
	}
	return c, nil
}

// parseCoordSeq parses "(" coordinate {"," coordinate} ")".
func (p *parser) parseCoordSeq(wantDims int) ([]geo.Coordinate, error) {
	var coords []geo.Coordinate
	tracker := &dimsTracker{strict: p.strict}
	err := p.parseList(func() error {
		c, err := p.parseCoordinate(wantDims, tracker)
		coords = append(coords, c)
		return err
	})
	return coords, err
}

// parseMemberCoordSeq parses a coordinate sequence that may be EMPTY, as
// found inside polygons and multi line strings.
func (p *parser) parseMemberCoordSeq(wantDims int) ([]geo.Coordinate, error) {
	empty, err := p.parseEmpty()
	if err != nil || empty {
		return nil, err
	}
	return p.parseCoordSeq(wantDims)
}

// parsePolygonText parses "(" ring {"," ring} ")".
func (p *parser) parsePolygonText(wantDims int) (*geo.Polygon, error) {
	var rings []*geo.LinearRing
	err := p.parseList(func() error {
		coords, err := p.parseMemberCoordSeq(wantDims)
		rings = append(rings, p.factory.NewLinearRing(coords))
		return err
	})
	if err != nil {
		return nil, err
	}
	return p.factory.AdoptPolygon(rings[0], rings[1:]), nil
}

// parseMultiPointText parses a list of points, each of which may be
// parenthesised, bare, or EMPTY.
func (p *parser) parseMultiPointText(wantDims int) (*geo.MultiPoint, error) {
	var points []*geo.Point
	tracker := &dimsTracker{strict: p.strict}
	err := p.parseList(func() error {
		tok, err := p.lex.peekToken()
		if err != nil {
			return err
		}
		switch {
		case tok.kind == tokKeyword && tok.str == keywordEmpty:
			_, _ = p.lex.nextToken()
			points = append(points, p.factory.NewPointEmpty())
			return nil
		case tok.kind == tokLParen:
			_, _ = p.lex.nextToken()
			c, err := p.parseCoordinate(wantDims, tracker)
			if err != nil {
				return err
			}
			if _, err := p.expect(tokRParen, `")"`); err != nil {
				return err
			}
			points = append(points, p.factory.NewPoint(c))
			return nil
		default:
			c, err := p.parseCoordinate(wantDims, tracker)
			if err != nil {
				return err
			}
			points = append(points, p.factory.NewPoint(c))
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return p.factory.AdoptMultiPoint(points), nil
}
