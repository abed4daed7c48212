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
)

// BoxConstructor builds the boxed-object form of a primitive Value
// (`new Boolean(...)`, `new Number(...)`, `new String(...)`). The
// avm1/globals package registers these against an Avm1 instance when it
// installs the global object, since this package doesn't itself know
// about any particular global's prototype.
type BoxConstructor func(act *Activation, val Value) (Object, error)

// Avm1 is the per-movie VM instance: the SWF version governing coercion
// rules, the shared string interner, the call-depth/budget limits, and
// the boxing hooks the value-coercion path needs to build wrapper
// objects for primitives.
type Avm1 struct {
	version        uint8
	interner       *Interner
	boxCtors       map[Kind]BoxConstructor
	executionBudget time.Duration
}

// Option configures an Avm1 at construction time, the functional-options
// idiom this module borrows for VM construction (see SPEC_FULL.md).
type Option func(*Avm1)

// WithSwfVersion sets the SWF version governing coercion and name
// normalization for every Activation rooted on this VM.
func WithSwfVersion(version uint8) Option {
	return func(a *Avm1) { a.version = version }
}

// WithExecutionBudget sets the wall-clock budget UpdateContext.Expired
// checks against. The default is 15 seconds, matching test_utils.rs's
// `max_execution_duration`.
func WithExecutionBudget(d time.Duration) Option {
	return func(a *Avm1) { a.executionBudget = d }
}

// WithInterner stores in as the VM's Interner in place of the shared
// package-level one. Nothing in this package reads the stored Interner:
// NewString and number-to-string conversion always use the shared
// package-level table and cache.
func WithInterner(in *Interner) Option {
	return func(a *Avm1) { a.interner = in }
}

// New constructs an Avm1 instance. Defaults: SWF version 6 (pre-
// case-sensitive-names threshold), a 15-second execution budget, and the
// shared package-level string interner.
func New(opts ...Option) *Avm1 {
	a := &Avm1{
		version:         6,
		interner:        globalInterner,
		boxCtors:        make(map[Kind]BoxConstructor),
		executionBudget: 15 * time.Second,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Version reports the configured SWF version.
func (a *Avm1) Version() uint8 { return a.version }

// ExecutionBudget reports the configured wall-clock execution budget.
func (a *Avm1) ExecutionBudget() time.Duration { return a.executionBudget }

// RegisterBoxConstructor wires up how CoerceToObject boxes a primitive of
// the given kind. avm1/globals calls this once per primitive global
// (Boolean, Number, String) when it installs the global object.
func (a *Avm1) RegisterBoxConstructor(kind Kind, ctor BoxConstructor) {
	a.boxCtors[kind] = ctor
}

// boxPrimitive implements the CoerceToObject path for non-object values.
func (a *Avm1) boxPrimitive(act *Activation, v Value) (Object, error) {
	ctor, ok := a.boxCtors[v.kind]
	if !ok {
		return nil, fmt.Errorf("%w: no box constructor registered for %s", ErrNotCoercible, v.kind)
	}
	return ctor(act, v)
}
