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

// Package displayobject implements the minimal slice of the display-list
// hierarchy spec.md keeps in scope: just enough of MovieClip, Stage and
// TextField to anchor an Activation's `this`/base-clip and give queued
// actions a stable identity and depth, per spec.md §3's "Display-object-
// backed objects ... implementing the same capability set" and §1's
// scoping of the rest of the display tree out. It is grounded on
// original_source/core/src/display_object/text.rs's TDisplayObject shape
// (id/depth/base/run_frame), trimmed to what avm1.DisplayObject needs.
package displayobject

import (
	"sort"
	"sync"

	"github.com/flashruntime/avm1core/avm1"
)

// base is the shared state every display object in this package embeds:
// its AVM1 instance name, display-list depth, parent link and whether it
// is still attached to the stage.
type base struct {
	mu      sync.RWMutex
	name    string
	depth   int
	parent  avm1.DisplayObject
	onStage bool
}

// InstanceName returns the AVM1 instance name (`_name`).
func (b *base) InstanceName() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.name
}

// SetInstanceName sets the AVM1 instance name.
func (b *base) SetInstanceName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = name
}

// Depth returns the display-list depth.
func (b *base) Depth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.depth
}

// SetDepth sets the display-list depth.
func (b *base) SetDepth(d int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.depth = d
}

// Parent returns the enclosing display object, or nil at the root.
func (b *base) Parent() avm1.DisplayObject {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.parent
}

// SetParent attaches this object under parent.
func (b *base) SetParent(parent avm1.DisplayObject) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.parent = parent
}

// OnStage reports whether this object is still attached to the display
// list. RemoveFromStage (called by a parent's RemoveChild) clears it;
// is_unload queued actions keep running after it does, everything else
// is silently dropped (spec.md §4.5).
func (b *base) OnStage() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.onStage
}

func (b *base) setOnStage(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onStage = v
}

// MovieClip is a scriptable display-object container: the subset of
// Flash Player's MovieClip needed to anchor VM execution and track
// parent/child identity. It does not implement timeline playback
// (gotoAndPlay, frame scripts) — tag parsing and the frame clock that
// would drive those are out of scope (spec.md §1).
type MovieClip struct {
	base
	obj avm1.Object

	mu       sync.RWMutex
	children map[string]avm1.DisplayObject
	visible  bool
	x, y     float64
}

// NewMovieClip allocates a MovieClip named name at depth, with proto as
// its AVM1 object's prototype (typically MovieClip.prototype).
func NewMovieClip(name string, depth int, proto avm1.Object) *MovieClip {
	mc := &MovieClip{
		children: make(map[string]avm1.DisplayObject),
		visible:  true,
	}
	mc.name = name
	mc.depth = depth
	mc.onStage = true
	mc.obj = avm1.NewScriptObject(proto)
	return mc
}

// AsObject returns the scriptable Object view of this clip.
func (mc *MovieClip) AsObject() avm1.Object { return mc.obj }

// AddChild attaches child under this clip, keyed by its instance name,
// and marks it OnStage.
func (mc *MovieClip) AddChild(child avm1.DisplayObject) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.children[child.InstanceName()] = child
	if setter, ok := child.(interface{ SetParent(avm1.DisplayObject) }); ok {
		setter.SetParent(mc)
	}
	if setter, ok := child.(interface{ setOnStage(bool) }); ok {
		setter.setOnStage(true)
	}
}

// RemoveChild detaches the named child from the display list, marking it
// no longer OnStage. Queued is_unload actions targeting it still run;
// everything else targeting it is dropped at dispatch (spec.md §4.5).
func (mc *MovieClip) RemoveChild(name string) {
	mc.mu.Lock()
	child, ok := mc.children[name]
	if ok {
		delete(mc.children, name)
	}
	mc.mu.Unlock()
	if setter, ok := child.(interface{ setOnStage(bool) }); ok {
		setter.setOnStage(false)
	}
}

// Child looks up a named child.
func (mc *MovieClip) Child(name string) (avm1.DisplayObject, bool) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	c, ok := mc.children[name]
	return c, ok
}

// Children returns every child, ordered by ascending depth (the order
// display-list iteration and _root/_level0-style enumeration uses).
func (mc *MovieClip) Children() []avm1.DisplayObject {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	out := make([]avm1.DisplayObject, 0, len(mc.children))
	for _, c := range mc.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth() < out[j].Depth() })
	return out
}

// Visible reports the clip's `_visible` flag.
func (mc *MovieClip) Visible() bool {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.visible
}

// SetVisible sets the clip's `_visible` flag.
func (mc *MovieClip) SetVisible(v bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.visible = v
}

// Position reports the clip's `_x`/`_y` in twips-as-pixels (stored as
// plain floats; the twips<->pixel scaling a renderer needs is a display
// concern outside this module's scope).
func (mc *MovieClip) Position() (x, y float64) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.x, mc.y
}

// SetPosition sets the clip's `_x`/`_y`.
func (mc *MovieClip) SetPosition(x, y float64) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.x, mc.y = x, y
}

// TextField is a scriptable static/dynamic text display object: enough
// to hold a `text` value and anchor identity, without font/glyph
// rendering (render.Backend's job, out of scope here).
type TextField struct {
	base
	obj avm1.Object

	mu   sync.RWMutex
	text string
}

// NewTextField allocates a TextField named name at depth.
func NewTextField(name string, depth int, proto avm1.Object) *TextField {
	tf := &TextField{}
	tf.name = name
	tf.depth = depth
	tf.onStage = true
	tf.obj = avm1.NewScriptObject(proto)
	return tf
}

// AsObject returns the scriptable Object view of this text field.
func (tf *TextField) AsObject() avm1.Object { return tf.obj }

// Text returns the field's current text content.
func (tf *TextField) Text() string {
	tf.mu.RLock()
	defer tf.mu.RUnlock()
	return tf.text
}

// SetText replaces the field's text content.
func (tf *TextField) SetText(s string) {
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.text = s
}

// Stage anchors the display-object root: the single MovieClip every
// other display object is, directly or transitively, a child of, plus
// the frame dimensions a renderer queries.
type Stage struct {
	base
	Root          *MovieClip
	width, height int
}

// NewStage allocates a Stage rooted at root, with the given frame
// dimensions in twips.
func NewStage(root *MovieClip, width, height int) *Stage {
	s := &Stage{Root: root, width: width, height: height}
	s.name = "_level0"
	s.onStage = true
	return s
}

// AsObject returns the root clip's scriptable Object view — scripts
// addressing `_root`/`_level0` reach the Stage through its root clip.
func (s *Stage) AsObject() avm1.Object { return s.Root.AsObject() }

// FrameSize reports the stage dimensions in twips.
func (s *Stage) FrameSize() (width, height int) { return s.width, s.height }

var (
	_ avm1.DisplayObject = (*MovieClip)(nil)
	_ avm1.DisplayObject = (*TextField)(nil)
	_ avm1.DisplayObject = (*Stage)(nil)
)
