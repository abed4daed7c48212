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

// Package audio defines the sound-playback capability UpdateContext's
// audio convenience methods delegate to, plus a Null implementation for
// headless/test use. It does not implement an actual mixer or device
// driver — a desktop host wires a real backend in (the shape here is
// informed by original_source's desktop/src/audio.rs, which wraps cpal).
package audio

// Handle identifies a started sound or stream instance.
type Handle uint64

// Transform is a stereo volume/pan transform applied to a playing sound.
type Transform struct {
	LeftToLeft   float32
	LeftToRight  float32
	RightToLeft  float32
	RightToRight float32
}

// Unit is the transform that leaves audio unchanged.
var Unit = Transform{LeftToLeft: 1, RightToRight: 1}

// Backend is the capability UpdateContext's audio convenience methods
// are built on.
type Backend interface {
	// StartSound begins playing soundID with the given transform and
	// returns a Handle, or ok=false if the sound is unknown.
	StartSound(soundID string, transform Transform) (Handle, bool)
	// StartStream begins a streaming sound tied to a display-object
	// identity (streams stop automatically when their clip unloads).
	StartStream(clipID uint64, soundID string, transform Transform) (Handle, bool)
	// Stop stops a single handle.
	Stop(h Handle)
	// StopSoundsWithHandle stops every instance of the sound h was
	// started from.
	StopSoundsWithHandle(h Handle)
	// StopSoundsWithDisplayObject stops every stream tied to clipID.
	StopSoundsWithDisplayObject(clipID uint64)
	// StopAll stops every currently playing sound.
	StopAll()
	// IsPlaying reports whether h is still sounding.
	IsPlaying(h Handle) bool
	// SetTransform updates h's transform.
	SetTransform(h Handle, t Transform)
	// GlobalTransform returns the transform applied on top of every
	// sound's own transform.
	GlobalTransform() Transform
	// SetGlobalTransform replaces the global transform.
	SetGlobalTransform(t Transform)
	// Tick lets the backend do periodic bookkeeping (buffer pumps,
	// finished-handle reclamation); called once per frame.
	Tick()
}

// Null is a Backend that plays nothing; every start call reports
// ok=false, IsPlaying reports false, and GlobalTransform reports Unit
// (SetGlobalTransform is ignored). This is the
// default for the test harness, grounded on test_utils.rs's uniform
// null-backend convention.
type Null struct{}

func (Null) StartSound(string, Transform) (Handle, bool)             { return 0, false }
func (Null) StartStream(uint64, string, Transform) (Handle, bool)    { return 0, false }
func (Null) Stop(Handle)                                             {}
func (Null) StopSoundsWithHandle(Handle)                              {}
func (Null) StopSoundsWithDisplayObject(uint64)                       {}
func (Null) StopAll()                                                 {}
func (Null) IsPlaying(Handle) bool                                    { return false }
func (Null) SetTransform(Handle, Transform)                           {}
func (Null) GlobalTransform() Transform                               { return Unit }
func (Null) SetGlobalTransform(Transform)                             {}
func (Null) Tick()                                                    {}

var _ Backend = Null{}
