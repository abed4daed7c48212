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

// Package ui defines the cursor/mouse-focus capability AVM1's
// `Mouse`/`Selection` globals delegate to.
package ui

// MouseCursor names a cursor shape.
type MouseCursor uint8

const (
	CursorArrow MouseCursor = iota
	CursorHand
	CursorIBeam
	CursorHidden
)

// Backend is the capability a UI host implements.
type Backend interface {
	SetCursor(c MouseCursor)
	SetClipboardContent(text string)
	ClipboardContent() string
}

// Null is a Backend that does nothing, for headless/test use.
type Null struct{}

func (Null) SetCursor(MouseCursor)         {}
func (Null) SetClipboardContent(string)    {}
func (Null) ClipboardContent() string      { return "" }

var _ Backend = Null{}
