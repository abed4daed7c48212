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

// Package avm1test is the Go analogue of test_utils.rs's with_avm: it
// assembles a minimal in-arena player (an UpdateContext over Null host
// backends, a root MovieClip, a Stage, and the installed native
// globals) and hands the caller a ready root Activation, so a unit test
// can exercise real coercion/property/call semantics without a SWF
// loader.
package avm1test

import (
	"github.com/flashruntime/avm1core/avm1"
	"github.com/flashruntime/avm1core/avm1/globals"
	"github.com/flashruntime/avm1core/displayobject"
	"github.com/flashruntime/avm1core/player"
)

// Env is the harness's assembled state: the root Activation a test calls
// into, and the UpdateContext backing it for assertions against the
// action queue, timers, or host backends.
type Env struct {
	Activation *avm1.Activation
	Context    *player.UpdateContext
	Root       *displayobject.MovieClip
	Stage      *displayobject.Stage
}

// New assembles a harness at the given SWF version, labeling the root
// activation label (test_utils.rs's "[Test]" by default when label is
// empty).
func New(version uint8, label string) *Env {
	if label == "" {
		label = "[Test]"
	}
	vm := avm1.New(avm1.WithSwfVersion(version))
	globalsObj := globals.Install(vm)

	root := displayobject.NewMovieClip("_level0", 0, nil)
	stage := displayobject.NewStage(root, 550*20, 400*20)

	pd := player.NullPlayerData()
	gc := &player.GcRootData{
		Stage:             stage,
		Root:              root,
		Globals:           globalsObj,
		ActionQueue:       avm1.NewActionQueue(),
		Avm1:              vm,
		Timers:            player.NewTimers(),
		ExternalInterface: player.NewExternalInterface(false),
	}
	ctx := player.New(pd, gc)

	id := avm1.RootActivationIdentifier(label)
	act := avm1.FromNothing(vm, id, version, globalsObj, root, avm1.NullBytecodeInterpreter{})

	return &Env{Activation: act, Context: ctx, Root: root, Stage: stage}
}

// WithActivation is a one-shot convenience form of New for tests that
// don't need the surrounding Env: it builds a harness at version and
// runs fn with the resulting Activation.
func WithActivation(version uint8, fn func(act *avm1.Activation) error) error {
	env := New(version, "")
	return fn(env.Activation)
}

// CallMethod looks up name on target (walking the prototype chain like
// any script call would) and, if it resolves to a function, invokes it
// with args — the shape test_method! expands to in test_utils.rs.
func CallMethod(act *avm1.Activation, target avm1.Object, name string, args []avm1.Value) (avm1.Value, error) {
	v, err := target.Get(name, act)
	if err != nil {
		return avm1.Undefined, err
	}
	fn, ok := v.Object()
	if !ok {
		return avm1.Undefined, avm1.ErrNoSuchMethod
	}
	callable, ok := fn.(*avm1.FunctionObject)
	if !ok {
		return avm1.Undefined, avm1.ErrNoSuchMethod
	}
	return callable.Call(act, target, args)
}

// Construct looks up name as a constructor on globals (e.g. "Boolean",
// "Number", "String") and invokes it with `new` semantics.
func Construct(act *avm1.Activation, name string, args []avm1.Value) (avm1.Value, error) {
	v, err := act.Globals().Get(name, act)
	if err != nil {
		return avm1.Undefined, err
	}
	fn, ok := v.Object()
	if !ok {
		return avm1.Undefined, avm1.ErrNotConstructible
	}
	callable, ok := fn.(*avm1.FunctionObject)
	if !ok {
		return avm1.Undefined, avm1.ErrNotConstructible
	}
	return callable.Construct(act, args)
}
