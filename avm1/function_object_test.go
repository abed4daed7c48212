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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCallIsDepthBoundedThroughFromFunction(t *testing.T) {
	act := newTestActivation(6)
	var fn *FunctionObject
	var calls int
	fn = NewFunctionObject(func(act *Activation, this Object, args []Value) (Value, error) {
		calls++
		return fn.Call(act, this, args)
	}, nil, nil)

	_, err := fn.Call(act, NewScriptObject(nil), nil)
	require.True(t, errors.Is(err, ErrCallStackExhausted))
	require.LessOrEqual(t, calls, maxCallDepth+1)
}

func TestConstructAllocatesFreshReceiverByDefault(t *testing.T) {
	act := newTestActivation(6)
	fn := NewFunctionObject(func(act *Activation, this Object, args []Value) (Value, error) {
		return Undefined, nil
	}, nil, nil)

	v, err := fn.Construct(act, nil)
	require.NoError(t, err)
	obj, ok := v.Object()
	require.True(t, ok)
	_, isBox := obj.AsValueObject()
	require.False(t, isBox)
}
