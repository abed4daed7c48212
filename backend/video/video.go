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

// Package video defines the embedded-video-decoding capability the
// `Video` display object and NetStream delegate to.
package video

// StreamHandle identifies a registered video stream.
type StreamHandle uint64

// Backend is the capability a video decoder implements.
type Backend interface {
	Register(codec string) (StreamHandle, bool)
	DecodeFrame(h StreamHandle, data []byte) bool
}

// Null decodes nothing, for headless/test use.
type Null struct{}

func (Null) Register(string) (StreamHandle, bool)       { return 0, false }
func (Null) DecodeFrame(StreamHandle, []byte) bool       { return false }

var _ Backend = Null{}
