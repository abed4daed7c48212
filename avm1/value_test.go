// Copyright 2024 The Flashcore Authors
// This file is part of Flashcore.
//
// Flashcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Flashcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Flashcore. If not, see <http://www.gnu.org/licenses/>.

package avm1

import (
	"math"
	"testing"

	"github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

func TestAsBoolVersionSensitivity(t *testing.T) {
	cases := []struct {
		name    string
		v       Value
		version uint8
		want    bool
	}{
		{"undefined", Undefined, 6, false},
		{"null", Null, 6, false},
		{"zero", NewNumber(0), 6, false},
		{"nan", NewNumber(math.NaN()), 6, false},
		{"nonzero", NewNumber(-1), 6, true},
		{"empty string v7", NewString(""), 7, false},
		{"true string v6", NewString("true"), 6, true},
		{"TRUE string v6", NewString("TRUE"), 6, true},
		{"true string v7", NewString("true"), 7, false},
		{"numeric string v7", NewString("12"), 7, true},
		{"numeric string v6", NewString("12"), 6, true},
		{"zero string v6", NewString("0"), 6, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.v.AsBool(c.version))
		})
	}
}

func TestAsBoolIdempotent(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 3)
	for _, version := range []uint8{5, 6, 7, 9} {
		for i := 0; i < 200; i++ {
			var n float64
			var s string
			f.Fuzz(&n)
			f.Fuzz(&s)
			for _, v := range []Value{NewNumber(n), NewString(s), NewBool(i%2 == 0), Undefined, Null} {
				b := v.AsBool(version)
				require.Equal(t, b, NewBool(b).AsBool(version))
			}
		}
	}
}

func TestDecimalStringNonFinite(t *testing.T) {
	require.Equal(t, "Infinity", numberToString(math.Inf(1), 10))
	require.Equal(t, "-Infinity", numberToString(math.Inf(-1), 10))
	require.Equal(t, "NaN", numberToString(math.NaN(), 10))
}

func TestFormatRadixScenarios(t *testing.T) {
	require.Equal(t, "ff", formatRadix(255, 16))
	require.Equal(t, "-ff", formatRadix(-255, 16))
	require.Equal(t, "0", formatRadix(0, 2))
	require.Equal(t, "Infinity", numberToString(math.Inf(1), 10))
	require.Equal(t, "NaN", numberToString(math.NaN(), 10))
	require.Equal(t, "-/0000000000000000000000000000000", formatRadix(math.NaN(), 2))
}

func TestStrictVsAbstractEquals(t *testing.T) {
	act := FromNothing(New(), RootActivationIdentifier("[Test]"), 6, NewScriptObject(nil), nil, nil)
	eq, err := NewNumber(1).AbstractEquals(NewString("1"), act)
	require.NoError(t, err)
	require.True(t, eq)
	require.False(t, NewNumber(1).StrictEquals(NewString("1")))

	eq, err = Null.AbstractEquals(Undefined, act)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestRadixRoundTrip(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for radix := 2; radix <= 36; radix++ {
		for i := 0; i < 50; i++ {
			var x float64
			f.Fuzz(&x)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				continue
			}
			s := formatRadix(x, radix)
			neg := len(s) > 0 && s[0] == '-'
			digits := s
			if neg {
				digits = s[1:]
			}
			var u int64
			for _, c := range digits {
				var d int64
				switch {
				case c >= '0' && c <= '9':
					d = int64(c - '0')
				case c >= 'a' && c <= 'z':
					d = int64(c-'a') + 10
				default:
					t.Fatalf("unexpected digit %q in %q", c, s)
				}
				u = u*int64(radix) + d
			}
			want := f64ToWrappingI32(x)
			got := int32(u)
			if neg {
				got = -got
			}
			require.Equal(t, want, got, "x=%v radix=%d s=%q", x, radix, s)
		}
	}
}
