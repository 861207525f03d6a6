// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package geofmt renders ordinates as plain decimal text.
//
// A value is first converted to the shortest digit string that round-trips
// to the same float64. If that string has more digits than allowed, it is
// rounded half-up to the limit and the dropped digits are replaced by zeros,
// so the magnitude of the number is preserved. Exponent notation is never
// produced and the output does not depend on the locale:
//
//	123456789012345678 (stored as 123456789012345680) at 15 digits
//	renders as 123456789012346000.
package geofmt

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/geo/geoerror"
)

// DefaultMaxSignificantDigits is the number of significant digits written
// unless configured otherwise.
const DefaultMaxSignificantDigits = 15

// MaxSignificantDigitsLimit is the largest useful limit: every float64 has a
// shortest representation of at most 17 digits.
const MaxSignificantDigitsLimit = 17

// roundingCtxs[n] rounds half-up to n significant digits.
var roundingCtxs = func() (ret [MaxSignificantDigitsLimit + 1]*apd.Context) {
	for n := 1; n <= MaxSignificantDigitsLimit; n++ {
		ctx := apd.BaseContext.WithPrecision(uint32(n))
		ctx.Rounding = apd.RoundHalfUp
		ret[n] = ctx
	}
	return ret
}()

// ValidateMaxSignificantDigits returns an error marked with
// geoerror.ErrInvalidConfiguration if n is not a usable digit limit.
func ValidateMaxSignificantDigits(n int) error {
	if n < 1 || n > MaxSignificantDigitsLimit {
		return geoerror.NewInvalidConfigurationf(
			"maximum significant digits must be between 1 and %d, got %d", MaxSignificantDigitsLimit, n)
	}
	return nil
}

// Format renders v with at most maxSignificantDigits significant digits.
func Format(v float64, maxSignificantDigits int) (string, error) {
	buf, err := Append(nil, v, maxSignificantDigits)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Append is like Format but appends to buf.
func Append(buf []byte, v float64, maxSignificantDigits int) ([]byte, error) {
	if err := ValidateMaxSignificantDigits(maxSignificantDigits); err != nil {
		return buf, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return buf, geoerror.NewUnwritableOrdinatef("cannot format non-finite value %v", v)
	}
	if v == 0 {
		return append(buf, '0'), nil
	}
	digits, exp, neg := ShortestDigits(v)
	if len(digits) > maxSignificantDigits {
		var err error
		digits, exp, err = roundDigits(digits, exp, maxSignificantDigits)
		if err != nil {
			return buf, err
		}
	}
	return appendFixed(buf, neg, digits, exp), nil
}

// ShortestDigits returns the shortest digit string identifying v among all
// float64 values, together with the decimal exponent exp and sign such that
// |v| == 0.digits * 10^exp. The digit string has no leading or trailing
// zeros, except that zero is reported as "0" with exp 1.
func ShortestDigits(v float64) (digits string, exp int, neg bool) {
	var scratch [32]byte
	s := strconv.AppendFloat(scratch[:0], v, 'e', -1, 64)
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	// s is d[.ddd]e±xx.
	var mantissa []byte
	i := 0
	for ; s[i] != 'e'; i++ {
		if s[i] != '.' {
			mantissa = append(mantissa, s[i])
		}
	}
	e, err := strconv.Atoi(string(s[i+1:]))
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "parsing exponent of %q", s))
	}
	return string(mantissa), e + 1, neg
}

// roundDigits rounds digits half-up to n digits. The returned exponent
// accounts for a carry out of the leading digit, and trailing zeros produced
// by rounding are dropped.
func roundDigits(digits string, exp int, n int) (string, int, error) {
	coeff, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "", 0, errors.NewAssertionErrorWithWrappedErrf(err, "parsing digits %q", digits)
	}
	d := apd.New(coeff, int32(exp-len(digits)))
	if _, err := roundingCtxs[n].Round(d, d); err != nil {
		return "", 0, errors.Wrapf(err, "rounding %s to %d digits", d, n)
	}
	d.Reduce(d)
	rounded := d.Coeff.String()
	return rounded, int(d.Exponent) + len(rounded), nil
}

// appendFixed writes 0.digits * 10^exp in positional notation. Digits past
// the end of the digit string are zero-filled up to the decimal point.
func appendFixed(buf []byte, neg bool, digits string, exp int) []byte {
	if neg {
		buf = append(buf, '-')
	}
	switch {
	case exp <= 0:
		buf = append(buf, '0', '.')
		for i := 0; i < -exp; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, digits...)
	case exp >= len(digits):
		buf = append(buf, digits...)
		for i := len(digits); i < exp; i++ {
			buf = append(buf, '0')
		}
	default:
		buf = append(buf, digits[:exp]...)
		buf = append(buf, '.')
		buf = append(buf, digits[exp:]...)
	}
	return buf
}
