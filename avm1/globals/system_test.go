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

	"github.com/flashruntime/avm1core/avm1/avm1test"
	"github.com/stretchr/testify/require"
)

func TestSystemCapabilitiesVersion(t *testing.T) {
	env := avm1test.New(9, "")
	v, err := env.Activation.Globals().Get("System", env.Activation)
	require.NoError(t, err)
	sys, ok := v.Object()
	require.True(t, ok)

	capsVal, err := sys.Get("capabilities", env.Activation)
	require.NoError(t, err)
	caps, ok := capsVal.Object()
	require.True(t, ok)

	versionVal, err := caps.Get("version", env.Activation)
	require.NoError(t, err)
	s, err := versionVal.CoerceToString(env.Activation)
	require.NoError(t, err)
	require.Equal(t, "LNX 9,0,0,0", s)
}
