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

func named(name string) ActionType {
	return ActionType{Kind: ActionMethod, Name: name}
}

func TestActionQueuePriorityOrdering(t *testing.T) {
	q := NewActionQueue()
	q.QueueActions(nil, named("A"), false)
	q.QueueActions(nil, ActionType{Kind: ActionConstruct}, false)
	q.QueueActions(nil, ActionType{Kind: ActionInitialize}, false)
	q.QueueActions(nil, named("D"), false)

	var order []ActionTypeKind
	var names []string
	for {
		a, ok := q.PopAction()
		if !ok {
			break
		}
		order = append(order, a.Action.Kind)
		names = append(names, a.Action.Name)
	}

	require.Equal(t, []ActionTypeKind{ActionInitialize, ActionConstruct, ActionMethod, ActionMethod}, order)
	require.Equal(t, []string{"", "", "A", "D"}, names)
}

func TestActionQueueFIFOWithinBucket(t *testing.T) {
	q := NewActionQueue()
	q.QueueActions(nil, named("first"), false)
	q.QueueActions(nil, named("second"), false)
	q.QueueActions(nil, named("third"), false)

	for _, want := range []string{"first", "second", "third"} {
		a, ok := q.PopAction()
		require.True(t, ok)
		require.Equal(t, want, a.Action.Name)
	}
	_, ok := q.PopAction()
	require.False(t, ok)
}

func TestActionQueueLenAndIsUnload(t *testing.T) {
	q := NewActionQueue()
	require.Equal(t, 0, q.Len())
	q.QueueActions(nil, named("unload-handler"), true)
	require.Equal(t, 1, q.Len())

	a, ok := q.PopAction()
	require.True(t, ok)
	require.True(t, a.IsUnload)
}
