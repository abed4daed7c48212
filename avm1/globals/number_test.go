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

package globals_test

import (
	"testing"

	"github.com/flashruntime/avm1core/avm1"
	"github.com/flashruntime/avm1core/avm1/avm1test"
	"github.com/stretchr/testify/require"
)

func TestNumberMaxValueConstant(t *testing.T) {
	env := avm1test.New(6, "")
	v, err := env.Activation.Globals().Get("Number", env.Activation)
	require.NoError(t, err)
	ctorObj, ok := v.Object()
	require.True(t, ok)

	maxValue, err := ctorObj.Get("MAX_VALUE", env.Activation)
	require.NoError(t, err)
	s, err := maxValue.CoerceToString(env.Activation)
	require.NoError(t, err)
	require.Equal(t, "1.7976931348623157e+308", s)
}

func TestNumberNaNIsNeverEqualToItself(t *testing.T) {
	env := avm1test.New(6, "")
	v, err := env.Activation.Globals().Get("Number", env.Activation)
	require.NoError(t, err)
	ctorObj, _ := v.Object()

	nan, err := ctorObj.Get("NaN", env.Activation)
	require.NoError(t, err)
	require.False(t, nan.StrictEquals(nan))
}

func TestNumberPositiveInfinityArithmeticIdentity(t *testing.T) {
	env := avm1test.New(6, "")
	v, err := env.Activation.Globals().Get("Number", env.Activation)
	require.NoError(t, err)
	ctorObj, _ := v.Object()

	posInf, err := ctorObj.Get("POSITIVE_INFINITY", env.Activation)
	require.NoError(t, err)
	n, err := posInf.AsNumber(env.Activation)
	require.NoError(t, err)
	require.True(t, avm1.NewNumber(n+1).StrictEquals(posInf))
}

func TestNumberToStringRadix(t *testing.T) {
	env := avm1test.New(6, "")
	v, err := avm1test.Construct(env.Activation, "Number", []avm1.Value{avm1.NewNumber(255)})
	require.NoError(t, err)
	obj, _ := v.Object()

	s, err := avm1test.CallMethod(env.Activation, obj, "toString", []avm1.Value{avm1.NewNumber(16)})
	require.NoError(t, err)
	str, err := s.CoerceToString(env.Activation)
	require.NoError(t, err)
	require.Equal(t, "ff", str)
}

func TestNumberValueOfUnboxes(t *testing.T) {
	env := avm1test.New(6, "")
	v, err := avm1test.Construct(env.Activation, "Number", []avm1.Value{avm1.NewNumber(42)})
	require.NoError(t, err)
	obj, _ := v.Object()

	got, err := avm1test.CallMethod(env.Activation, obj, "valueOf", nil)
	require.NoError(t, err)
	n, err := got.AsNumber(env.Activation)
	require.NoError(t, err)
	require.Equal(t, 42.0, n)
}
