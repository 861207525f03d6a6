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
	"math"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/geo/geoerror"
)

// PrecisionModel controls how ordinates are rounded when they are bound into
// a geometry. A floating model keeps full double precision. A fixed model
// with scale s rounds v to round(v*s)/s, so a scale of 1000 keeps three
// decimal places and a scale of 0.01 rounds to hundreds.
//
// The zero value is the floating model.
type PrecisionModel struct {
	// scale is 0 for the floating model.
	scale float64
}

// Floating returns the model that performs no rounding.
func Floating() PrecisionModel {
	return PrecisionModel{}
}

// NewFixed returns a fixed-scale model. The scale must be positive and
// finite.
func NewFixed(scale float64) (PrecisionModel, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return PrecisionModel{}, errors.WithHint(
			geoerror.NewInvalidConfigurationf("precision model scale must be positive and finite, got %v", scale),
			"use the floating precision model to disable rounding",
		)
	}
	return PrecisionModel{scale: scale}, nil
}

// IsFloating returns whether the model performs no rounding.
func (pm PrecisionModel) IsFloating() bool {
	return pm.scale == 0
}

// Scale returns the scale factor, or 0 for the floating model.
func (pm PrecisionModel) Scale() float64 {
	return pm.scale
}

func (pm PrecisionModel) String() string {
	if pm.IsFloating() {
		return "Floating"
	}
	return fmt.Sprintf("Fixed (Scale=%g)", pm.scale)
}

// precisionCtx is wide enough to hold the exact product of two shortest
// float64 representations.
var precisionCtx = func() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(40)
	ctx.Rounding = apd.RoundHalfUp
	return ctx
}()

// truncatingCtx rounds toward zero. It is used when the nearest grid value
// lies outside the float64 range.
var truncatingCtx = func() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(40)
	ctx.Rounding = apd.RoundDown
	return ctx
}()

// MakePrecise rounds v onto the model's grid. Ties round away from zero.
//
// The arithmetic is done in decimal on the shortest representation of v, so
// that values such as 0.285 at scale 100 become 0.29 rather than suffering
// from the binary expansion 0.28499999... NaN, which marks an absent z, and
// infinities are returned unchanged. If the nearest grid value is too large
// for a float64, the grid value toward zero is returned instead, so a finite
// input always yields a finite result.
func (pm PrecisionModel) MakePrecise(v float64) float64 {
	if pm.IsFloating() || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	ret, err := pm.roundToGrid(precisionCtx, v)
	if err != nil {
		ret, err = pm.roundToGrid(truncatingCtx, v)
	}
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "rounding %v onto grid %v", v, pm.scale))
	}
	if ret == 0 {
		// Rounding -0.0001 to a coarse grid yields -0; keep the sign-free zero.
		return 0
	}
	return ret
}

// roundToGrid computes round(v*scale)/scale in ctx. It returns an error if the
// result does not fit in a float64.
func (pm PrecisionModel) roundToGrid(ctx *apd.Context, v float64) (float64, error) {
	var d, s apd.Decimal
	if _, err := d.SetFloat64(v); err != nil {
		return 0, errors.Wrapf(err, "converting %v to decimal", v)
	}
	if _, err := s.SetFloat64(pm.scale); err != nil {
		return 0, errors.Wrapf(err, "converting scale %v to decimal", pm.scale)
	}
	if _, err := ctx.Mul(&d, &d, &s); err != nil {
		return 0, errors.Wrapf(err, "scaling %v", v)
	}
	if _, err := ctx.RoundToIntegralValue(&d, &d); err != nil {
		return 0, errors.Wrapf(err, "rounding %v", v)
	}
	if _, err := ctx.Quo(&d, &d, &s); err != nil {
		return 0, errors.Wrapf(err, "unscaling %v", v)
	}
	ret, err := d.Float64()
	if err != nil {
		return 0, errors.Wrapf(err, "converting %s to float", &d)
	}
	return ret, nil
}

// MakeCoordinatePrecise applies MakePrecise to every ordinate of c.
func (pm PrecisionModel) MakeCoordinatePrecise(c Coordinate) Coordinate {
	if pm.IsFloating() {
		return c
	}
	return Coordinate{X: pm.MakePrecise(c.X), Y: pm.MakePrecise(c.Y), Z: pm.MakePrecise(c.Z)}
}
