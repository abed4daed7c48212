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

package displayobject

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddChildSetsParentAndOnStage(t *testing.T) {
	root := NewMovieClip("_level0", 0, nil)
	child := NewMovieClip("child", 1, nil)
	root.AddChild(child)

	got, ok := root.Child("child")
	require.True(t, ok)
	require.Same(t, child, got)
	require.Equal(t, root, child.Parent())
	require.True(t, child.OnStage())
}

func TestRemoveChildClearsOnStageButKeepsIdentity(t *testing.T) {
	root := NewMovieClip("_level0", 0, nil)
	child := NewMovieClip("child", 1, nil)
	root.AddChild(child)
	root.RemoveChild("child")

	_, ok := root.Child("child")
	require.False(t, ok)
	require.False(t, child.OnStage())
}

func TestChildrenSortedByAscendingDepth(t *testing.T) {
	root := NewMovieClip("_level0", 0, nil)
	a := NewMovieClip("a", 5, nil)
	b := NewMovieClip("b", 1, nil)
	c := NewMovieClip("c", 3, nil)
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)

	children := root.Children()
	require.Len(t, children, 3)
	require.Equal(t, "b", children[0].InstanceName())
	require.Equal(t, "c", children[1].InstanceName())
	require.Equal(t, "a", children[2].InstanceName())
}

func TestMovieClipVisibleAndPosition(t *testing.T) {
	mc := NewMovieClip("mc", 0, nil)
	require.True(t, mc.Visible())
	mc.SetVisible(false)
	require.False(t, mc.Visible())

	mc.SetPosition(10, 20)
	x, y := mc.Position()
	require.Equal(t, 10.0, x)
	require.Equal(t, 20.0, y)
}

func TestTextFieldTextRoundTrip(t *testing.T) {
	tf := NewTextField("tf", 0, nil)
	require.Equal(t, "", tf.Text())
	tf.SetText("hello")
	require.Equal(t, "hello", tf.Text())
}

func TestStageAsObjectDelegatesToRoot(t *testing.T) {
	root := NewMovieClip("_level0", 0, nil)
	stage := NewStage(root, 11000, 8000)
	require.Equal(t, root.AsObject(), stage.AsObject())

	w, h := stage.FrameSize()
	require.Equal(t, 11000, w)
	require.Equal(t, 8000, h)
}
