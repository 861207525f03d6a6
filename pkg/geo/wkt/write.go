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
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/geo"
	"github.com/cockroachdb/wktcodec/pkg/geo/geoerror"
	"github.com/cockroachdb/wktcodec/pkg/geo/geofmt"
)

// Writer renders geometries as WKT. A Writer is immutable once built and may
// be shared between goroutines.
type Writer struct {
	outputDimension      int
	maxSignificantDigits int
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithOutputDimension sets the maximum number of ordinates written per
// coordinate. It must be 2 or 3. With 3, the z ordinate is written for each
// coordinate that has one.
func WithOutputDimension(dim int) WriterOption {
	return func(w *Writer) { w.outputDimension = dim }
}

// WithMaxSignificantDigits sets the number of significant digits written for
// each ordinate.
func WithMaxSignificantDigits(n int) WriterOption {
	return func(w *Writer) { w.maxSignificantDigits = n }
}

// NewWriter returns a Writer with the given options applied over the
// defaults of 2 dimensions and geofmt.DefaultMaxSignificantDigits.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		outputDimension:      2,
		maxSignificantDigits: geofmt.DefaultMaxSignificantDigits,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.outputDimension != 2 && w.outputDimension != 3 {
		return nil, geoerror.NewInvalidConfigurationf(
			"output dimension must be 2 or 3, got %d", w.outputDimension)
	}
	if err := geofmt.ValidateMaxSignificantDigits(w.maxSignificantDigits); err != nil {
		return nil, err
	}
	return w, nil
}

// OutputDimension returns the configured output dimension.
func (w *Writer) OutputDimension() int { return w.outputDimension }

// MaxSignificantDigits returns the configured digit limit.
func (w *Writer) MaxSignificantDigits() int { return w.maxSignificantDigits }

// Write returns the WKT representation of g.
func (w *Writer) Write(g geo.Geometry) (string, error) {
	buf, err := w.AppendWKT(nil, g)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Encode writes the WKT representation of g to out. Nothing is written if g
// cannot be rendered.
func (w *Writer) Encode(out io.Writer, g geo.Geometry) error {
	buf, err := w.AppendWKT(nil, g)
	if err != nil {
		return err
	}
	_, err = out.Write(buf)
	return errors.Wrap(err, "writing WKT")
}

// AppendWKT appends the WKT representation of g to buf. On error the
// returned slice must be discarded.
func (w *Writer) AppendWKT(buf []byte, g geo.Geometry) ([]byte, error) {
	return w.appendGeometry(buf, g)
}

// Marshal returns the 2D WKT representation of g with the default number of
// significant digits.
func Marshal(g geo.Geometry) (string, error) {
	return defaultWriter.Write(g)
}

var defaultWriter = func() *Writer {
	w, err := NewWriter()
	if err != nil {
		panic(err)
	}
	return w
}()

func (w *Writer) appendGeometry(buf []byte, g geo.Geometry) ([]byte, error) {
	buf = append(buf, g.Kind().String()...)
	buf = append(buf, ' ')
	return w.appendBody(buf, g)
}

// appendBody writes everything after the keyword.
func (w *Writer) appendBody(buf []byte, g geo.Geometry) ([]byte, error) {
	switch g := g.(type) {
	case *geo.Point:
		c, ok := g.Coordinate()
		if !ok {
			return appendEmpty(buf), nil
		}
		buf = append(buf, '(')
		buf, err := w.appendCoordinate(buf, c)
		if err != nil {
			return buf, err
		}
		return append(buf, ')'), nil
	case *geo.LineString:
		return w.appendCoordSeq(buf, g.Coordinates())
	case *geo.LinearRing:
		return w.appendCoordSeq(buf, g.Coordinates())
	case *geo.Polygon:
		if g.NumRings() == 0 {
			return appendEmpty(buf), nil
		}
		return w.appendList(buf, g.NumRings(), func(buf []byte, i int) ([]byte, error) {
			return w.appendCoordSeq(buf, g.RingN(i).Coordinates())
		})
	case *geo.MultiPoint:
		return w.appendList(buf, g.NumGeometries(), func(buf []byte, i int) ([]byte, error) {
			return w.appendBody(buf, g.PointN(i))
		})
	case *geo.MultiLineString:
		return w.appendList(buf, g.NumGeometries(), func(buf []byte, i int) ([]byte, error) {
			return w.appendBody(buf, g.LineStringN(i))
		})
	case *geo.MultiPolygon:
		return w.appendList(buf, g.NumGeometries(), func(buf []byte, i int) ([]byte, error) {
			return w.appendBody(buf, g.PolygonN(i))
		})
	case *geo.GeometryCollection:
		return w.appendList(buf, g.NumGeometries(), func(buf []byte, i int) ([]byte, error) {
			return w.appendGeometry(buf, g.GeometryN(i))
		})
	default:
		return buf, errors.AssertionFailedf("unhandled geometry type %T", g)
	}
}

func appendEmpty(buf []byte) []byte {
	return append(buf, "EMPTY"...)
}

// appendList writes n items as "(a, b, c)", or EMPTY when n is zero.
func (w *Writer) appendList(
	buf []byte, n int, item func(buf []byte, i int) ([]byte, error),
) ([]byte, error) {
	if n == 0 {
		return appendEmpty(buf), nil
	}
	buf = append(buf, '(')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		var err error
		if buf, err = item(buf, i); err != nil {
			return buf, err
		}
	}
	return append(buf, ')'), nil
}

func (w *Writer) appendCoordSeq(buf []byte, coords []geo.Coordinate) ([]byte, error) {
	return w.appendList(buf, len(coords), func(buf []byte, i int) ([]byte, error) {
		return w.appendCoordinate(buf, coords[i])
	})
}

// appendCoordinate writes "x y", or "x y z" when writing in 3D and the
// coordinate has a z ordinate.
func (w *Writer) appendCoordinate(buf []byte, c geo.Coordinate) ([]byte, error) {
	buf, err := w.appendOrdinate(buf, c.X, 'x')
	if err != nil {
		return buf, err
	}
	buf = append(buf, ' ')
	if buf, err = w.appendOrdinate(buf, c.Y, 'y'); err != nil {
		return buf, err
	}
	if w.outputDimension == 3 && c.HasZ() {
		buf = append(buf, ' ')
		if buf, err = w.appendOrdinate(buf, c.Z, 'z'); err != nil {
			return buf, err
		}
	}
	return buf, nil
}

func (w *Writer) appendOrdinate(buf []byte, v float64, name byte) ([]byte, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return buf, geoerror.NewUnwritableOrdinatef("cannot write %c ordinate %v", name, v)
	}
	return geofmt.Append(buf, v, w.maxSignificantDigits)
}
