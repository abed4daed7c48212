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

func TestErrorConstructorSetsMessage(t *testing.T) {
	env := avm1test.New(6, "")
	v, err := avm1test.Construct(env.Activation, "Error", []avm1.Value{avm1.NewString("boom")})
	require.NoError(t, err)
	obj, ok := v.Object()
	require.True(t, ok)

	msg, err := obj.Get("message", env.Activation)
	require.NoError(t, err)
	s, err := msg.CoerceToString(env.Activation)
	require.NoError(t, err)
	require.Equal(t, "boom", s)
}

func TestErrorToStringJoinsNameAndMessage(t *testing.T) {
	env := avm1test.New(6, "")
	v, err := avm1test.Construct(env.Activation, "Error", []avm1.Value{avm1.NewString("bad input")})
	require.NoError(t, err)
	obj, _ := v.Object()

	s, err := avm1test.CallMethod(env.Activation, obj, "toString", nil)
	require.NoError(t, err)
	str, err := s.CoerceToString(env.Activation)
	require.NoError(t, err)
	require.Contains(t, str, "bad input")
}

func TestErrorConstructorHonorsSuppliedID(t *testing.T) {
	env := avm1test.New(6, "")
	v, err := avm1test.Construct(env.Activation, "Error", []avm1.Value{avm1.NewString("bad ref"), avm1.NewNumber(1069)})
	require.NoError(t, err)
	obj, ok := v.Object()
	require.True(t, ok)

	id, err := obj.Get("id", env.Activation)
	require.NoError(t, err)
	n, err := id.AsNumber(env.Activation)
	require.NoError(t, err)
	require.Equal(t, 1069.0, n)
}

func TestErrorToStringOmitsColonWhenMessageEmpty(t *testing.T) {
	env := avm1test.New(6, "")
	v, err := avm1test.Construct(env.Activation, "Error", nil)
	require.NoError(t, err)
	obj, _ := v.Object()

	s, err := avm1test.CallMethod(env.Activation, obj, "toString", nil)
	require.NoError(t, err)
	str, err := s.CoerceToString(env.Activation)
	require.NoError(t, err)
	require.NotContains(t, str, ":")
}
