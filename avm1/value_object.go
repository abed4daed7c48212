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

import "sync"

// ValueObject is the box `new Boolean(...)`, `new Number(...)` and
// `new String(...)` produce: an ordinary object that additionally carries
// a single primitive Value, unwrapped by Unbox and replaced by Replace.
type ValueObject struct {
	ScriptObjectData
	mu  sync.RWMutex
	val Value
}

// EmptyValueBox allocates a ValueObject with no primitive set yet
// (Undefined), matching the original's `ValueObject::empty_box` used to
// build each global's `.prototype`, which is itself a value box that
// never gets a primitive assigned.
func EmptyValueBox(proto Object) *ValueObject {
	return &ValueObject{ScriptObjectData: NewScriptObjectData(proto, "Object"), val: Undefined}
}

// NewValueObject allocates a ValueObject boxing val.
func NewValueObject(proto Object, val Value) *ValueObject {
	return &ValueObject{ScriptObjectData: NewScriptObjectData(proto, "Object"), val: val}
}

// Unbox returns the boxed primitive.
func (v *ValueObject) Unbox() Value {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

// Replace overwrites the boxed primitive — used by the Boolean/Number
// constructors when called with `new` to populate `this`.
func (v *ValueObject) Replace(val Value) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.val = val
}

// AsValueObject reports this object as its own ValueObject view.
func (v *ValueObject) AsValueObject() (*ValueObject, bool) { return v, true }

func (v *ValueObject) Get(name string, act *Activation) (Value, error) { return Get(v, name, act) }
func (v *ValueObject) SetProp(name string, val Value, act *Activation) error {
	return SetProp(v, name, val, act)
}
func (v *ValueObject) HasProperty(name string, act *Activation) bool {
	return HasProperty(v, name, act)
}
