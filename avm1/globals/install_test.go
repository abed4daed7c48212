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

func TestInstallExposesEveryGlobal(t *testing.T) {
	env := avm1test.New(6, "")
	for _, name := range []string{"Boolean", "Number", "String", "Error", "Math", "System"} {
		v, err := env.Activation.Globals().Get(name, env.Activation)
		require.NoError(t, err, name)
		require.False(t, v.IsUndefined(), "%s should be defined", name)
	}
}

func TestInstallBoxConstructorsRoundTripThroughCoerceToObject(t *testing.T) {
	env := avm1test.New(6, "")
	for _, v := range []avm1.Value{avm1.NewBool(true), avm1.NewNumber(7), avm1.NewString("hi")} {
		obj, err := v.CoerceToObject(env.Activation)
		require.NoError(t, err)
		box, ok := obj.AsValueObject()
		require.True(t, ok)
		require.True(t, box.Unbox().StrictEquals(v))
	}
}
