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
	"math"
	"testing"

	"github.com/flashruntime/avm1core/avm1"
	"github.com/flashruntime/avm1core/avm1/avm1test"
	"github.com/stretchr/testify/require"
)

func mathObject(t *testing.T, env *avm1test.Env) avm1.Object {
	t.Helper()
	v, err := env.Activation.Globals().Get("Math", env.Activation)
	require.NoError(t, err)
	obj, ok := v.Object()
	require.True(t, ok)
	return obj
}

func TestMathPIConstant(t *testing.T) {
	env := avm1test.New(6, "")
	m := mathObject(t, env)
	v, err := m.Get("PI", env.Activation)
	require.NoError(t, err)
	n, err := v.AsNumber(env.Activation)
	require.NoError(t, err)
	require.Equal(t, math.Pi, n)
}

func TestMathMaxWithNaNPropagates(t *testing.T) {
	env := avm1test.New(6, "")
	m := mathObject(t, env)
	v, err := avm1test.CallMethod(env.Activation, m, "max", []avm1.Value{avm1.NewNumber(1), avm1.NewNumber(math.NaN())})
	require.NoError(t, err)
	n, err := v.AsNumber(env.Activation)
	require.NoError(t, err)
	require.True(t, math.IsNaN(n))
}

func TestMathMinAndMax(t *testing.T) {
	env := avm1test.New(6, "")
	m := mathObject(t, env)
	args := []avm1.Value{avm1.NewNumber(3), avm1.NewNumber(-5), avm1.NewNumber(2)}

	v, err := avm1test.CallMethod(env.Activation, m, "max", args)
	require.NoError(t, err)
	n, _ := v.AsNumber(env.Activation)
	require.Equal(t, 3.0, n)

	v, err = avm1test.CallMethod(env.Activation, m, "min", args)
	require.NoError(t, err)
	n, _ = v.AsNumber(env.Activation)
	require.Equal(t, -5.0, n)
}

func TestMathPowAndSqrt(t *testing.T) {
	env := avm1test.New(6, "")
	m := mathObject(t, env)

	v, err := avm1test.CallMethod(env.Activation, m, "pow", []avm1.Value{avm1.NewNumber(2), avm1.NewNumber(10)})
	require.NoError(t, err)
	n, _ := v.AsNumber(env.Activation)
	require.Equal(t, 1024.0, n)

	v, err = avm1test.CallMethod(env.Activation, m, "sqrt", []avm1.Value{avm1.NewNumber(81)})
	require.NoError(t, err)
	n, _ = v.AsNumber(env.Activation)
	require.Equal(t, 9.0, n)
}

func TestMathAtan2(t *testing.T) {
	env := avm1test.New(6, "")
	m := mathObject(t, env)

	v, err := avm1test.CallMethod(env.Activation, m, "atan2", []avm1.Value{avm1.NewNumber(1), avm1.NewNumber(1)})
	require.NoError(t, err)
	n, _ := v.AsNumber(env.Activation)
	require.InDelta(t, math.Pi/4, n, 1e-12)
}
