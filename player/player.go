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

// Package player implements the update-context split described by
// spec.md §3/§4.6: PlayerData holds everything that is not part of the
// GC-traced object graph (host capability backends and the deadline
// clock); GcRootData holds the roots of the traced graph (the action
// queue, the AVM1/AVM2 VM instances, the stage and root display objects,
// the globals, and the timer and external-interface bookkeeping).
// UpdateContext couples the two
// for the duration of a single operation and is never retained past it.
package player

import (
	"time"

	"github.com/google/uuid"

	"github.com/flashruntime/avm1core/avm1"
	"github.com/flashruntime/avm1core/avm2"
	"github.com/flashruntime/avm1core/backend/audio"
	"github.com/flashruntime/avm1core/backend/locale"
	"github.com/flashruntime/avm1core/backend/log"
	"github.com/flashruntime/avm1core/backend/navigator"
	"github.com/flashruntime/avm1core/backend/render"
	"github.com/flashruntime/avm1core/backend/storage"
	"github.com/flashruntime/avm1core/backend/ui"
	"github.com/flashruntime/avm1core/backend/video"
)

// PlayerData is the non-GC half of UpdateContext: host capabilities and
// per-frame clock state, none of which an AVM1 script can reach a
// reference into.
type PlayerData struct {
	PlayerVersion int

	Audio      audio.Backend
	Render     render.Backend
	UI         ui.Backend
	Navigator  navigator.Backend
	Storage    storage.Backend
	Locale     locale.Backend
	Log        log.Backend
	Video      video.Backend

	UpdateStart           time.Time
	MaxExecutionDuration  time.Duration
	soundTransformsDirty  bool
}

// Expired reports whether the current operation has run past
// MaxExecutionDuration since UpdateStart.
func (p *PlayerData) Expired() bool {
	if p.MaxExecutionDuration <= 0 {
		return false
	}
	return time.Since(p.UpdateStart) > p.MaxExecutionDuration
}

// NullPlayerData builds a PlayerData wired entirely to Null backends,
// the default for the test harness (test_utils.rs's with_avm).
func NullPlayerData() *PlayerData {
	return &PlayerData{
		PlayerVersion:        32,
		Audio:                audio.Null{},
		Render:               &render.Null{W: 550 * 20, H: 400 * 20},
		UI:                   ui.Null{},
		Navigator:            &navigator.Null{},
		Storage:              storage.NewMemory(),
		Locale:               locale.Null{},
		Log:                  log.Null{},
		Video:                video.Null{},
		UpdateStart:          time.Now(),
		MaxExecutionDuration: 15 * time.Second,
	}
}

// TimerHandle identifies a scheduled setInterval/setTimeout callback.
type TimerHandle string

// Timer is one scheduled callback.
type Timer struct {
	Handle   TimerHandle
	Callback avm1.Object
	Args     []avm1.Value
	Interval time.Duration
	Repeats  bool
	NextFire time.Time
}

// Timers tracks every scheduled setInterval/setTimeout callback.
type Timers struct {
	byHandle map[TimerHandle]*Timer
}

// NewTimers allocates an empty Timers table.
func NewTimers() *Timers { return &Timers{byHandle: make(map[TimerHandle]*Timer)} }

// Schedule registers a new timer and returns its handle.
func (t *Timers) Schedule(callback avm1.Object, args []avm1.Value, interval time.Duration, repeats bool) TimerHandle {
	h := TimerHandle(uuid.NewString())
	t.byHandle[h] = &Timer{
		Handle: h, Callback: callback, Args: args, Interval: interval,
		Repeats: repeats, NextFire: time.Now().Add(interval),
	}
	return h
}

// Clear cancels a scheduled timer.
func (t *Timers) Clear(h TimerHandle) { delete(t.byHandle, h) }

// Due returns every timer whose NextFire has passed, advancing repeating
// timers' NextFire and dropping one-shot timers from the table.
func (t *Timers) Due(now time.Time) []*Timer {
	var due []*Timer
	for h, timer := range t.byHandle {
		if timer.NextFire.After(now) {
			continue
		}
		due = append(due, timer)
		if timer.Repeats {
			timer.NextFire = now.Add(timer.Interval)
		} else {
			delete(t.byHandle, h)
		}
	}
	return due
}

// ExternalCall is one pending call queued through ExternalInterface.call.
type ExternalCall struct {
	ID     string
	Method string
	Args   []avm1.Value
}

// ExternalInterface tracks calls queued between AVM1 script and the
// embedding page.
type ExternalInterface struct {
	Available bool
	Pending   []ExternalCall
}

// NewExternalInterface allocates an ExternalInterface with no calls
// pending.
func NewExternalInterface(available bool) *ExternalInterface {
	return &ExternalInterface{Available: available}
}

// Call queues an outbound call and returns its id.
func (e *ExternalInterface) Call(method string, args []avm1.Value) string {
	id := uuid.NewString()
	e.Pending = append(e.Pending, ExternalCall{ID: id, Method: method, Args: args})
	return id
}

// GcRootData is the GC-traced half of UpdateContext: the roots an AVM1
// script can reach references into, plus the VM instances themselves.
type GcRootData struct {
	Stage             avm1.DisplayObject
	Root              avm1.DisplayObject
	Globals           avm1.Object
	ActionQueue       *avm1.ActionQueue
	Avm1              *avm1.Avm1
	Avm2Globals       *avm2.ErrorObject
	Timers            *Timers
	ExternalInterface *ExternalInterface
}

// UpdateContext couples PlayerData and GcRootData for the duration of a
// single operation (one frame tick, one native-function call). It is
// stack-allocated and must not be retained past its call.
type UpdateContext struct {
	*PlayerData
	*GcRootData
}

// New builds an UpdateContext from its two halves. When gc carries an
// Avm1, pd's MaxExecutionDuration is set to that VM's execution budget.
func New(pd *PlayerData, gc *GcRootData) *UpdateContext {
	if gc != nil && gc.Avm1 != nil {
		pd.MaxExecutionDuration = gc.Avm1.ExecutionBudget()
	}
	return &UpdateContext{PlayerData: pd, GcRootData: gc}
}

// Reborrow returns a shallow copy of ctx sharing the same PlayerData and
// GcRootData pointers, the Go analogue of context.rs's `reborrow`: a
// nested call can pass this copy to a callee without the caller losing
// its own handle to the same state (there is no aliasing hazard in Go
// the way there is in Rust's borrow checker, but keeping the same
// call shape documents the handoff and keeps a future multi-context
// host, e.g. split across goroutines per movie, drop-in compatible).
func (ctx *UpdateContext) Reborrow() *UpdateContext {
	return &UpdateContext{PlayerData: ctx.PlayerData, GcRootData: ctx.GcRootData}
}

// --- Audio convenience methods, grounded on context.rs's inherent impls ---

// StartSound begins playing soundID with the given transform.
func (ctx *UpdateContext) StartSound(soundID string, transform audio.Transform) (audio.Handle, bool) {
	return ctx.Audio.StartSound(soundID, transform)
}

// StartStream begins a streaming sound tied to a display object.
func (ctx *UpdateContext) StartStream(clipID uint64, soundID string, transform audio.Transform) (audio.Handle, bool) {
	return ctx.Audio.StartStream(clipID, soundID, transform)
}

// StopSound stops a single sound handle.
func (ctx *UpdateContext) StopSound(h audio.Handle) { ctx.Audio.Stop(h) }

// StopSoundsWithHandle stops every instance started from the same sound
// as h.
func (ctx *UpdateContext) StopSoundsWithHandle(h audio.Handle) { ctx.Audio.StopSoundsWithHandle(h) }

// StopSoundsWithDisplayObject stops every stream tied to clipID.
func (ctx *UpdateContext) StopSoundsWithDisplayObject(clipID uint64) {
	ctx.Audio.StopSoundsWithDisplayObject(clipID)
}

// StopAllSounds stops every currently playing sound.
func (ctx *UpdateContext) StopAllSounds() { ctx.Audio.StopAll() }

// IsSoundPlayingWithHandle reports whether h is still sounding.
func (ctx *UpdateContext) IsSoundPlayingWithHandle(h audio.Handle) bool {
	return ctx.Audio.IsPlaying(h)
}

// GlobalSoundTransform returns the transform applied on top of every
// sound's own transform.
func (ctx *UpdateContext) GlobalSoundTransform() audio.Transform { return ctx.Audio.GlobalTransform() }

// SetGlobalSoundTransform replaces the global sound transform.
func (ctx *UpdateContext) SetGlobalSoundTransform(t audio.Transform) { ctx.Audio.SetGlobalTransform(t) }

// UpdateSounds lets the audio backend perform its per-frame bookkeeping.
func (ctx *UpdateContext) UpdateSounds() { ctx.Audio.Tick() }

// SetSoundTransformsDirty records that the playing sounds' transforms
// have changed. It only sets a flag on PlayerData; UpdateSounds and the
// rest of this package do not read that flag, so no transform is
// reapplied because of it.
func (ctx *UpdateContext) SetSoundTransformsDirty() {
	ctx.soundTransformsDirty = true
}
