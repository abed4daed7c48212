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
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-stack/stack"
	"golang.org/x/time/rate"
)

// ActivationIdentifier names an activation for diagnostics (panic traces,
// call-stack-exhausted errors), the way test_utils.rs names its root
// activation "[Test]".
type ActivationIdentifier struct {
	label  string
	parent *ActivationIdentifier
	depth  int
}

// RootActivationIdentifier names the outermost activation of a call tree.
func RootActivationIdentifier(label string) ActivationIdentifier {
	return ActivationIdentifier{label: label}
}

// Child derives a nested identifier for a call made from within this
// activation, incrementing the depth counter ErrCallStackExhausted
// guards against.
func (id ActivationIdentifier) Child(label string) ActivationIdentifier {
	parent := id
	return ActivationIdentifier{label: label, parent: &parent, depth: id.depth + 1}
}

func (id ActivationIdentifier) String() string {
	if id.parent == nil {
		return id.label
	}
	return fmt.Sprintf("%s/%s", id.parent.String(), id.label)
}

// BytecodeInterpreter is the host capability that runs decoded AVM1
// bytecode bodies (ActionBody). This module never parses SWF tags, so it
// cannot build one itself; a host (the movie loader) supplies it.
type BytecodeInterpreter interface {
	Execute(act *Activation, body ActionBody, this Object, args []Value) (Value, error)
}

// NullBytecodeInterpreter rejects every action body with
// ErrBytecodeUnavailable, the default for headless/test use.
type NullBytecodeInterpreter struct{}

func (NullBytecodeInterpreter) Execute(act *Activation, body ActionBody, this Object, args []Value) (Value, error) {
	return Undefined, fmt.Errorf("%w: action %q", ErrBytecodeUnavailable, body.Name)
}

const maxCallDepth = 256

// Activation is one call frame: the receiver, the scope chain searched
// for unqualified identifier resolution, the arguments, the owning
// display clip, and the SWF version governing coercion rules for this
// call. Activations are created per call and do not outlive it.
type Activation struct {
	this       Object
	scopeChain []Object
	args       []Value
	id         ActivationIdentifier
	version    uint8
	globals    Object
	baseClip   DisplayObject
	vm         *Avm1
	interp     BytecodeInterpreter
	limiter    *rate.Limiter
}

// FromNothing builds a root activation with no caller — the entry point
// for running a movie's first frame, and the shape
// avm1test.WithActivation hands back to callers.
func FromNothing(vm *Avm1, id ActivationIdentifier, version uint8, globals Object, baseClip DisplayObject, interp BytecodeInterpreter) *Activation {
	if interp == nil {
		interp = NullBytecodeInterpreter{}
	}
	return &Activation{
		this:       globals,
		scopeChain: []Object{globals},
		id:         id,
		version:    version,
		globals:    globals,
		baseClip:   baseClip,
		vm:         vm,
		interp:     interp,
		limiter:    rate.NewLimiter(rate.Every(10*time.Millisecond), 1),
	}
}

// FromFunction derives a child activation for a call to fn with this/args,
// inheriting the parent's version, globals, interpreter and budget
// limiter, and guarding against runaway recursion.
func (a *Activation) FromFunction(label string, this Object, args []Value) (*Activation, error) {
	if a.id.depth+1 >= maxCallDepth {
		return nil, ErrCallStackExhausted
	}
	child := &Activation{
		this:       this,
		scopeChain: append(append([]Object(nil), a.scopeChain...), this),
		args:       args,
		id:         a.id.Child(label),
		version:    a.version,
		globals:    a.globals,
		baseClip:   a.baseClip,
		vm:         a.vm,
		interp:     a.interp,
		limiter:    a.limiter,
	}
	return child, nil
}

// This returns the call's receiver.
func (a *Activation) This() Object { return a.this }

// Version reports the SWF version governing this call's coercion rules.
func (a *Activation) Version() uint8 { return a.version }

// Globals returns the global object.
func (a *Activation) Globals() Object { return a.globals }

// BaseClip returns the display object that owns this activation.
func (a *Activation) BaseClip() DisplayObject { return a.baseClip }

// VM returns the owning Avm1 instance.
func (a *Activation) VM() *Avm1 { return a.vm }

// Args returns the call's arguments.
func (a *Activation) Args() []Value { return a.args }

// ResolveIdentifier walks the scope chain from the innermost scope
// outward to the globals looking for name,
// returning the first object that has it as an own or inherited
// property.
func (a *Activation) ResolveIdentifier(name string) (Value, Object, bool) {
	for i := len(a.scopeChain) - 1; i >= 0; i-- {
		scope := a.scopeChain[i]
		if scope.HasProperty(name, a) {
			v, err := scope.Get(name, a)
			if err != nil {
				continue
			}
			return v, scope, true
		}
	}
	return Undefined, nil, false
}

// Deadline reports whether the current operation has exceeded its
// configured execution budget. player.PlayerData (and the UpdateContext
// that embeds it) implements this.
type Deadline interface {
	Expired() bool
}

// PollBudget checks deadline, but only when the activation's rate
// limiter allows it; a call arriving sooner than the limiter permits
// returns nil without checking and without blocking. Long-running native functions
// that loop internally (e.g. a user sort comparator called many times)
// should call this periodically instead of checking the deadline on
// every iteration. Takes the Deadline interface rather than a concrete
// player.UpdateContext to avoid a package cycle (player already imports
// avm1 for Object/Value/ActionQueue).
func (a *Activation) PollBudget(deadline Deadline) error {
	if !a.limiter.Allow() {
		return nil
	}
	if deadline.Expired() {
		return ErrBudgetExceeded
	}
	return nil
}

// Run invokes fn with the given receiver/args, recovering any panic and
// translating it into ErrInternalFault with a call-trace and a
// go-spew dump of the activation's `this` logged through logf,
// mirroring probe-lang's vm.go top-level recover-to-error boundary.
func (a *Activation) Run(logf func(string), fn func() (Value, error)) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			trace := stack.Trace().TrimRuntime()
			if logf != nil {
				logf(fmt.Sprintf("avm1: panic in activation %s: %v\n%s\nthis=%s",
					a.id, r, trace, spew.Sdump(a.this)))
			}
			result = Undefined
			err = fmt.Errorf("%w: %v", ErrInternalFault, r)
		}
	}()
	return fn()
}
