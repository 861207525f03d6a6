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
	"fmt"

	"github.com/golang/geo/r2"
)

// Envelope is the 2D bounding box of a geometry. The zero value is not
// valid; use EmptyEnvelope.
type Envelope struct {
	rect r2.Rect
}

// EmptyEnvelope returns an envelope containing nothing.
func EmptyEnvelope() Envelope {
	return Envelope{rect: r2.EmptyRect()}
}

// ExpandToInclude returns the envelope grown to contain (x, y).
func (e Envelope) ExpandToInclude(x, y float64) Envelope {
	return Envelope{rect: e.rect.AddPoint(r2.Point{X: x, Y: y})}
}

// IsEmpty returns whether the envelope contains no points.
func (e Envelope) IsEmpty() bool { return e.rect.IsEmpty() }

// MinX returns the lower x bound.
func (e Envelope) MinX() float64 { return e.rect.X.Lo }

// MaxX returns the upper x bound.
func (e Envelope) MaxX() float64 { return e.rect.X.Hi }

// MinY returns the lower y bound.
func (e Envelope) MinY() float64 { return e.rect.Y.Lo }

// MaxY returns the upper y bound.
func (e Envelope) MaxY() float64 { return e.rect.Y.Hi }

// Center returns the midpoint of the envelope.
func (e Envelope) Center() (x, y float64) {
	c := e.rect.Center()
	return c.X, c.Y
}

func (e Envelope) String() string {
	if e.IsEmpty() {
		return "Env[empty]"
	}
	return fmt.Sprintf("Env[%g : %g, %g : %g]", e.MinX(), e.MaxX(), e.MinY(), e.MaxY())
}

func envelopeOf(g Geometry) Envelope {
	env := EmptyEnvelope()
	for _, c := range g.Coordinates() {
		env = env.ExpandToInclude(c.X, c.Y)
	}
	return env
}
