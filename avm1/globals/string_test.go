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

// stringInstance builds a boxed String instance carrying s, bypassing the
// preserved-stub constructor (stringConstructorStub never boxes `this`) so
// method tests can exercise real content.
func stringInstance(t *testing.T, env *avm1test.Env, s string) avm1.Object {
	t.Helper()
	ctorVal, err := env.Activation.Globals().Get("String", env.Activation)
	require.NoError(t, err)
	ctor, ok := ctorVal.Object()
	require.True(t, ok)
	protoVal, err := ctor.Get("prototype", env.Activation)
	require.NoError(t, err)
	proto, ok := protoVal.Object()
	require.True(t, ok)
	return avm1.NewValueObject(proto, avm1.NewString(s))
}

func callStr(t *testing.T, env *avm1test.Env, obj avm1.Object, method string, args ...avm1.Value) string {
	t.Helper()
	v, err := avm1test.CallMethod(env.Activation, obj, method, args)
	require.NoError(t, err)
	s, err := v.CoerceToString(env.Activation)
	require.NoError(t, err)
	return s
}

func TestStringCharAtAndCharCodeAt(t *testing.T) {
	env := avm1test.New(6, "")
	obj := stringInstance(t, env, "hello")
	require.Equal(t, "e", callStr(t, env, obj, "charAt", avm1.NewNumber(1)))

	v, err := avm1test.CallMethod(env.Activation, obj, "charCodeAt", []avm1.Value{avm1.NewNumber(0)})
	require.NoError(t, err)
	n, err := v.AsNumber(env.Activation)
	require.NoError(t, err)
	require.Equal(t, 104.0, n)
}

func TestStringConcat(t *testing.T) {
	env := avm1test.New(6, "")
	obj := stringInstance(t, env, "foo")
	require.Equal(t, "foobar", callStr(t, env, obj, "concat", avm1.NewString("bar")))
}

func TestStringIndexOfAndLastIndexOf(t *testing.T) {
	env := avm1test.New(6, "")
	obj := stringInstance(t, env, "abcabc")

	v, err := avm1test.CallMethod(env.Activation, obj, "indexOf", []avm1.Value{avm1.NewString("bc")})
	require.NoError(t, err)
	n, _ := v.AsNumber(env.Activation)
	require.Equal(t, 1.0, n)

	v, err = avm1test.CallMethod(env.Activation, obj, "lastIndexOf", []avm1.Value{avm1.NewString("bc")})
	require.NoError(t, err)
	n, _ = v.AsNumber(env.Activation)
	require.Equal(t, 4.0, n)
}

func TestStringSliceNegativeIndices(t *testing.T) {
	env := avm1test.New(6, "")
	obj := stringInstance(t, env, "hello world")
	require.Equal(t, "world", callStr(t, env, obj, "slice", avm1.NewNumber(-5)))
}

func TestStringSubstrAndSubstring(t *testing.T) {
	env := avm1test.New(6, "")
	obj := stringInstance(t, env, "abcdef")
	require.Equal(t, "cde", callStr(t, env, obj, "substr", avm1.NewNumber(2), avm1.NewNumber(3)))
	require.Equal(t, "bc", callStr(t, env, obj, "substring", avm1.NewNumber(3), avm1.NewNumber(1)))
}

func TestStringCaseConversion(t *testing.T) {
	env := avm1test.New(6, "")
	obj := stringInstance(t, env, "MixedCase")
	require.Equal(t, "mixedcase", callStr(t, env, obj, "toLowerCase"))
	require.Equal(t, "MIXEDCASE", callStr(t, env, obj, "toUpperCase"))
}

func TestStringSplitLiteral(t *testing.T) {
	env := avm1test.New(6, "")
	obj := stringInstance(t, env, "a,b,c")
	v, err := avm1test.CallMethod(env.Activation, obj, "split", []avm1.Value{avm1.NewString(",")})
	require.NoError(t, err)
	arr, ok := v.Object()
	require.True(t, ok)

	length, err := arr.Get("length", env.Activation)
	require.NoError(t, err)
	n, _ := length.AsNumber(env.Activation)
	require.Equal(t, 3.0, n)

	first, err := arr.Get("0", env.Activation)
	require.NoError(t, err)
	s, err := first.CoerceToString(env.Activation)
	require.NoError(t, err)
	require.Equal(t, "a", s)
}

func TestStringSplitEmptySeparatorSplitsUnits(t *testing.T) {
	env := avm1test.New(6, "")
	obj := stringInstance(t, env, "ab")
	v, err := avm1test.CallMethod(env.Activation, obj, "split", []avm1.Value{avm1.NewString("")})
	require.NoError(t, err)
	arr, ok := v.Object()
	require.True(t, ok)
	length, err := arr.Get("length", env.Activation)
	require.NoError(t, err)
	n, _ := length.AsNumber(env.Activation)
	require.Equal(t, 2.0, n)
}

func TestStringFromCharCode(t *testing.T) {
	env := avm1test.New(6, "")
	obj := stringInstance(t, env, "")
	require.Equal(t, "AB", callStr(t, env, obj, "fromCharCode", avm1.NewNumber(65), avm1.NewNumber(66)))
}
