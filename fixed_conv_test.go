// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfix

import (
	"fmt"
	"math"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestFixedString(t *testing.T) {
	type TC struct {
		X    Fixed
		Want string
		Mark error
	}
	tcs := []TC{
		{X: Fixed{}, Want: "0", Mark: oops.New("unexpected")},
		{X: fx(42, 0), Want: "42", Mark: oops.New("unexpected")},
		{X: fx(-42, 0), Want: "-42", Mark: oops.New("unexpected")},
		{X: fx(3, 1), Want: "1.5", Mark: oops.New("unexpected")},
		{X: fx(21845, 16), Want: "0.3333", Mark: oops.New("unexpected")},
		{X: fx(85, 8), Want: "0.33", Mark: oops.New("unexpected")},
		{X: fx(4, 3), Want: "0.5", Mark: oops.New("unexpected")},
		{X: fx(-1, 5), Want: "0", Mark: oops.New("unexpected")},
		{X: fx(31, 5), Want: "1", Mark: oops.New("unexpected")},
		{X: fx(-31, 5), Want: "-1", Mark: oops.New("unexpected")},
		{X: fx(1, 64), Want: "0.0000000000000000001", Mark: oops.New("unexpected")},
	}
	for _, tc := range tcs {
		require.Equal(t, tc.Want, tc.X.String(), tc.Mark)
	}
}

func TestFixedText(t *testing.T) {
	require.Equal(t, "0.33203125", fx(85, 8).Text())
	require.Equal(t, "-0.03125", fx(-1, 5).Text())
	require.Equal(t, "7", fx(7, 0).Text())
	require.Equal(t, "0.000", fx(0, 3).Text())
}

func TestFixedBinaryString(t *testing.T) {
	require.Equal(t, "-1.1", fx(-3, 1).BinaryString())
	require.Equal(t, "101", fx(5, 0).BinaryString())
	require.Equal(t, "0", Fixed{}.BinaryString())
	require.Equal(t, "0.000", fx(0, 3).BinaryString())
	require.Equal(t, "0.0101", fx(5, 4).BinaryString())
}

func TestFixedFormat(t *testing.T) {
	third := fx(21845, 16)
	for _, tc := range []struct {
		format string
		x      Fixed
		want   string
	}{
		{"%v", third, "0.3333"},
		{"%s", third, "0.3333"},
		{"%.3f", third, "0.333"},
		{"%.0f", third, "0"},
		{"%f", third, "0.3333"},
		{"%+v", fx(3, 1), "+1.5"},
		{"%+v", fx(-3, 1), "-1.5"},
		{"%8.2f", fx(3, 1), "    1.50"},
		{"%-6v|", fx(3, 1), "1.5   |"},
		{"%b", fx(5, 4), "0.0101"},
		{"%.2f", fx(-1, 5), "-0.03"},
		{"%.1f", fx(-1, 5), "0.0"},
		{"%x", fx(3, 1), "%!x(bigfix.Fixed=1.5)"},
	} {
		require.Equal(t, tc.want, fmt.Sprintf(tc.format, tc.x), tc.format)
	}
}

func TestParseFixed(t *testing.T) {
	type TC struct {
		S     string
		Prec  uint
		Value string
		Mark  error
	}
	tcs := []TC{
		{S: "0.1", Prec: 8, Value: "26", Mark: oops.New("unexpected")},
		{S: "-2.5", Prec: 1, Value: "-5", Mark: oops.New("unexpected")},
		{S: "42", Prec: 0, Value: "42", Mark: oops.New("unexpected")},
		{S: "+42", Prec: 2, Value: "168", Mark: oops.New("unexpected")},
		{S: ".5", Prec: 4, Value: "8", Mark: oops.New("unexpected")},
		{S: "5.", Prec: 2, Value: "20", Mark: oops.New("unexpected")},
		{S: "0.33203125", Prec: 8, Value: "85", Mark: oops.New("unexpected")},
		{S: "0.9999", Prec: 4, Value: "16", Mark: oops.New("unexpected")},
	}
	for _, tc := range tcs {
		x, err := ParseFixed(tc.S, tc.Prec)
		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.Prec, x.Scale(), tc.Mark)
		require.Equal(t, tc.Value, x.Value().String(), tc.Mark)
	}

	for _, s := range []string{"", ".", "-", "1.2.3", "abc", "1e5", " 1", "--1"} {
		_, err := ParseFixed(s, 10)
		require.ErrorIs(t, err, ErrSyntax, "%q", s)
	}
	_, err := ParseFixed(".", 10)
	require.ErrorContains(t, err, errNoDigits.Error())
	_, err = ParseFixed("1.x", 10)
	require.ErrorContains(t, err, errInvalidDigit.Error())
}

func TestFixedFloat64(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 0.375, 0.1, 1.5, 3, -1e300, 1e300, 5e-324, math.MaxFloat64, math.SmallestNonzeroFloat64 * 3} {
		x, err := FixedFromFloat64(f)
		require.NoError(t, err)
		require.Equal(t, f, x.Float64(), "%g", f)
	}

	x, err := FixedFromFloat64(0.375)
	require.NoError(t, err)
	require.Equal(t, uint(3), x.Scale())
	require.Equal(t, "3", x.Value().String())

	x, err = FixedFromFloat64(3)
	require.NoError(t, err)
	require.Equal(t, uint(0), x.Scale())

	x, err = FixedFromFloat64(0.1)
	require.NoError(t, err)
	require.Equal(t, uint(55), x.Scale())

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FixedFromFloat64(f)
		require.ErrorIs(t, err, ErrNotFinite)
	}

	require.Equal(t, 0.0, fx(1, 2000).Float64())
	require.True(t, math.IsInf(fx(1, 0).ScaleByPowerOfTwo(2000).Float64(), 1))
}
