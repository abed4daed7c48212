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
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestActivation(version uint8) *Activation {
	globals := NewScriptObject(nil)
	return FromNothing(New(WithSwfVersion(version)), RootActivationIdentifier("[Test]"), version, globals, nil, nil)
}

func TestCaseFoldingByVersion(t *testing.T) {
	obj := NewScriptObject(nil)
	actV6 := newTestActivation(6)
	actV7 := newTestActivation(7)

	require.NoError(t, SetProp(obj, "foo", NewNumber(1), actV6))

	v, err := Get(obj, "FOO", actV6)
	require.NoError(t, err)
	require.Equal(t, 1.0, v.n)

	v, err = Get(obj, "FOO", actV7)
	require.NoError(t, err)
	require.True(t, v.IsUndefined())
}

func TestHasOwnPropertyDoesNotTraverseChain(t *testing.T) {
	proto := NewScriptObject(nil)
	proto.DefineValue("inherited", NewNumber(1), EmptyAttributes())
	child := NewScriptObject(proto)

	require.False(t, child.HasOwnProperty("inherited"))
	require.True(t, proto.HasOwnProperty("inherited"))

	act := newTestActivation(6)
	require.True(t, HasProperty(child, "inherited", act))
}

func TestGetWalksPrototypeChain(t *testing.T) {
	proto := NewScriptObject(nil)
	proto.DefineValue("greeting", NewString("hi"), EmptyAttributes())
	child := NewScriptObject(proto)
	act := newTestActivation(6)

	v, err := Get(child, "greeting", act)
	require.NoError(t, err)
	require.Equal(t, "hi", v.s.String())
}

func TestSetPropHonorsReadOnly(t *testing.T) {
	obj := NewScriptObject(nil)
	obj.DefineValue("locked", NewNumber(1), NewAttributes(ReadOnly))
	act := newTestActivation(6)

	require.NoError(t, SetProp(obj, "locked", NewNumber(2), act))
	v, err := Get(obj, "locked", act)
	require.NoError(t, err)
	require.Equal(t, 1.0, v.n)
}

func TestDeleteHonorsDontDelete(t *testing.T) {
	obj := NewScriptObject(nil)
	obj.DefineValue("permanent", NewNumber(1), NewAttributes(DontDelete))
	obj.DefineValue("removable", NewNumber(2), EmptyAttributes())

	require.False(t, obj.Delete("permanent"))
	require.True(t, obj.Delete("removable"))
	require.True(t, obj.HasOwnProperty("permanent"))
	require.False(t, obj.HasOwnProperty("removable"))
}
