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

// Package render defines the rendering capability this module's host
// integrates with. The VM core never draws anything itself; it reports
// the display list and lets a backend rasterize it.
package render

// ShapeHandle identifies a registered renderable shape/bitmap.
type ShapeHandle uint64

// Backend is the capability a renderer implements.
type Backend interface {
	// RegisterShape uploads shape data and returns a handle, or
	// ok=false if data is malformed.
	RegisterShape(data []byte) (ShapeHandle, bool)
	// FrameSize reports the stage dimensions in twips.
	FrameSize() (width, height int)
	// SetFrameSize updates the stage dimensions.
	SetFrameSize(width, height int)
}

// Null is a Backend that renders nothing, for headless/test use.
type Null struct{ W, H int }

func (Null) RegisterShape([]byte) (ShapeHandle, bool) { return 0, false }
func (n Null) FrameSize() (int, int)                  { return n.W, n.H }
func (n *Null) SetFrameSize(w, h int)                  { n.W, n.H = w, h }

var _ Backend = &Null{}
