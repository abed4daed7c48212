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

package player

import (
	"fmt"

	"github.com/flashruntime/avm1core/avm1"
)

// RunQueue drains every action currently queued on ctx.ActionQueue,
// highest priority first, dispatching each through a fresh Activation.
// This is the per-tick data flow spec.md describes: the frame loop
// queues actions during display-list processing, then calls RunQueue
// once to execute them all before rendering.
func RunQueue(ctx *UpdateContext, interp avm1.BytecodeInterpreter) error {
	for {
		if ctx.Expired() {
			return avm1.ErrBudgetExceeded
		}
		queued, ok := ctx.ActionQueue.PopAction()
		if !ok {
			return nil
		}
		if !queued.IsUnload && queued.Clip != nil && !queued.Clip.OnStage() {
			continue
		}
		if err := dispatch(ctx, interp, queued); err != nil {
			ctx.Log.Error(fmt.Sprintf("avm1: action %v failed: %v", queued.Action.Kind, err))
		}
	}
}

func dispatch(ctx *UpdateContext, interp avm1.BytecodeInterpreter, queued avm1.QueuedAction) error {
	id := avm1.RootActivationIdentifier(actionLabel(queued.Action))
	act := avm1.FromNothing(ctx.Avm1, id, ctx.Avm1.Version(), ctx.Globals, queued.Clip, interp)

	_, err := act.Run(ctx.Log.Error, func() (avm1.Value, error) {
		switch queued.Action.Kind {
		case avm1.ActionNormal, avm1.ActionInitialize:
			return interp.Execute(act, queued.Action.Bytecode, clipObject(queued.Clip), nil)
		case avm1.ActionConstruct:
			fn, ok := queued.Action.Constructor.(*avm1.FunctionObject)
			if !ok {
				return avm1.Undefined, avm1.ErrNotConstructible
			}
			return fn.Construct(act, nil)
		case avm1.ActionMethod, avm1.ActionCallable2:
			return callMethod(act, queued.Action)
		case avm1.ActionNotifyListeners:
			return notifyListeners(act, queued.Action)
		default:
			return avm1.Undefined, fmt.Errorf("avm1: unknown action kind %d", queued.Action.Kind)
		}
	})
	return err
}

func callMethod(act *avm1.Activation, action avm1.ActionType) (avm1.Value, error) {
	target := action.Object
	if target == nil {
		target = action.Callable
	}
	if target == nil {
		return avm1.Undefined, avm1.ErrNoSuchMethod
	}
	v, err := target.Get(action.Name, act)
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
	return callable.Call(act, target, action.Args)
}

func notifyListeners(act *avm1.Activation, action avm1.ActionType) (avm1.Value, error) {
	if action.Listener == nil {
		return avm1.Undefined, nil
	}
	v, err := action.Listener.Get(action.Name, act)
	if err != nil {
		return avm1.Undefined, err
	}
	fn, ok := v.Object()
	if !ok {
		return avm1.Undefined, nil
	}
	callable, ok := fn.(*avm1.FunctionObject)
	if !ok {
		return avm1.Undefined, nil
	}
	return callable.Call(act, action.Listener, action.Args)
}

func actionLabel(a avm1.ActionType) string {
	switch a.Kind {
	case avm1.ActionNormal:
		return "frame"
	case avm1.ActionInitialize:
		return "init"
	case avm1.ActionConstruct:
		return "construct"
	case avm1.ActionMethod:
		return "method:" + a.Name
	case avm1.ActionNotifyListeners:
		return "notify:" + a.Name
	case avm1.ActionCallable2:
		return "callable2"
	default:
		return "action"
	}
}

func clipObject(clip avm1.DisplayObject) avm1.Object {
	if clip == nil {
		return nil
	}
	return clip.AsObject()
}
