// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

package geofmt

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/wktcodec/pkg/geo/geoerror"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		desc      string
		v         float64
		maxDigits int
		expected  string
	}{
		{desc: "zero", v: 0, maxDigits: 15, expected: "0"},
		{desc: "negative zero", v: math.Copysign(0, -1), maxDigits: 15, expected: "0"},
		{desc: "integer", v: 10, maxDigits: 15, expected: "10"},
		{desc: "small integer", v: 1234, maxDigits: 15, expected: "1234"},
		{desc: "ten billion", v: 10e9, maxDigits: 15, expected: "10000000000"},
		{desc: "fraction", v: 0.1, maxDigits: 15, expected: "0.1"},
		{desc: "mixed", v: 20.15, maxDigits: 15, expected: "20.15"},
		{desc: "negative", v: -0.000123, maxDigits: 15, expected: "-0.000123"},
		{desc: "no exponent for large", v: 1e21, maxDigits: 15, expected: "1000000000000000000000"},
		{desc: "no exponent for small", v: 1.5e-10, maxDigits: 15, expected: "0.00000000015"},
		{desc: "binary noise is trimmed", v: math.Nextafter(0.3, 1), maxDigits: 15, expected: "0.3"},
		{desc: "binary noise kept at 17", v: math.Nextafter(0.3, 1), maxDigits: 17, expected: "0.30000000000000004"},
		{desc: "large number truncation", v: 123456789012345678.0, maxDigits: 15, expected: "123456789012346000"},
		{
			desc:      "extreme magnitude",
			v:         123456789012345690000000000000000.0,
			maxDigits: 15,
			expected:  "123456789012346000000000000000000",
		},
		{desc: "negative large", v: -123456789012345678.0, maxDigits: 15, expected: "-123456789012346000"},
		{desc: "round half up", v: 2.5, maxDigits: 1, expected: "3"},
		{desc: "round down", v: 1.49, maxDigits: 2, expected: "1.5"},
		{desc: "carry into new digit", v: 9.99, maxDigits: 2, expected: "10"},
		{desc: "carry in fraction", v: 0.0999, maxDigits: 2, expected: "0.1"},
		{desc: "rounded fraction", v: 1.23456789, maxDigits: 4, expected: "1.235"},
		{desc: "magnitude kept when rounding integer part", v: 987654.321, maxDigits: 3, expected: "988000"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := Format(tc.v, tc.maxDigits)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)

			buf, err := Append([]byte("x="), tc.v, tc.maxDigits)
			require.NoError(t, err)
			require.Equal(t, "x="+tc.expected, string(buf))
		})
	}
}

func TestFormatErrors(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Format(v, DefaultMaxSignificantDigits)
		require.True(t, errors.Is(err, geoerror.ErrUnwritableOrdinate), "%v", v)
	}
	for _, n := range []int{0, -1, 18} {
		_, err := Format(1, n)
		require.True(t, errors.Is(err, geoerror.ErrInvalidConfiguration), "%d", n)
	}
}

func TestShortestDigits(t *testing.T) {
	testCases := []struct {
		v      float64
		digits string
		exp    int
		neg    bool
	}{
		{v: 1, digits: "1", exp: 1},
		{v: 10, digits: "1", exp: 2},
		{v: 0.015, digits: "15", exp: -1},
		{v: -123.45, digits: "12345", exp: 3, neg: true},
		{v: 123456789012345678, digits: "12345678901234568", exp: 18},
		{v: 0, digits: "0", exp: 1},
	}
	for _, tc := range testCases {
		digits, exp, neg := ShortestDigits(tc.v)
		require.Equal(t, tc.digits, digits, "%v", tc.v)
		require.Equal(t, tc.exp, exp, "%v", tc.v)
		require.Equal(t, tc.neg, neg, "%v", tc.v)
	}
}

func TestFormatProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)

	anyFloat := gen.OneGenOf(
		gen.Float64(),
		gen.Float64Range(-1e6, 1e6),
		gen.Int64().Map(func(i int64) float64 { return float64(i) / 1000 }),
	)

	properties.Property("never uses an exponent or separators", prop.ForAll(
		func(v float64) bool {
			s, err := Format(v, DefaultMaxSignificantDigits)
			if err != nil {
				return false
			}
			return strings.Trim(s, "-0123456789.") == "" && !strings.ContainsAny(s, "eE,")
		},
		anyFloat,
	))

	properties.Property("round trips when the shortest form fits", prop.ForAll(
		func(v float64) bool {
			digits, _, _ := ShortestDigits(v)
			if len(digits) > DefaultMaxSignificantDigits {
				return true
			}
			s, err := Format(v, DefaultMaxSignificantDigits)
			if err != nil {
				return false
			}
			back, err := strconv.ParseFloat(s, 64)
			return err == nil && back == v
		},
		anyFloat,
	))

	properties.Property("always round trips at 17 digits", prop.ForAll(
		func(v float64) bool {
			s, err := Format(v, MaxSignificantDigitsLimit)
			if err != nil {
				return false
			}
			back, err := strconv.ParseFloat(s, 64)
			return err == nil && back == v
		},
		anyFloat,
	))

	properties.Property("magnitude is preserved", prop.ForAll(
		func(v float64) bool {
			if math.Abs(v) < 1 {
				return true
			}
			s, err := Format(v, 3)
			if err != nil {
				return false
			}
			intPart := strings.TrimPrefix(strings.SplitN(s, ".", 2)[0], "-")
			full := strings.TrimPrefix(strings.SplitN(strconv.FormatFloat(v, 'f', -1, 64), ".", 2)[0], "-")
			// Rounding may carry into one extra digit.
			return len(intPart) == len(full) || len(intPart) == len(full)+1
		},
		anyFloat,
	))

	properties.TestingRun(t)
}
