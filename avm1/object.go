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
	"errors"
	"sort"
	"sync"

	"golang.org/x/text/cases"
)

var (
	// ErrNoSuchMethod is returned when Call targets a property that isn't
	// a function.
	ErrNoSuchMethod = errors.New("avm1: no such method")
	// ErrNotConstructible is returned when Construct targets a non-function.
	ErrNotConstructible = errors.New("avm1: value is not constructible")
)

// caseFolder normalizes a property name the way lookups before SWF 7 do:
// Unicode case folding so `a.FOO` and `a.foo` compare equal. SWF 7 and
// later are case-sensitive and names compare by exact byte equality.
var caseFolder = cases.Fold()

func namesEqualFold(a, b string) bool {
	return caseFolder.String(a) == caseFolder.String(b)
}

// Object is the capability every AVM1 value of kind Object implements:
// property access, enumeration, deletion, and (for functions) calling and
// construction. ScriptObject is the base implementation; ValueObject and
// FunctionObject embed it and extend behavior.
type Object interface {
	// Get looks up name along the prototype chain, invoking an accessor's
	// getter through act if present.
	Get(name string, act *Activation) (Value, error)
	// SetProp assigns name, invoking an accessor's setter through act if
	// present. A ReadOnly own property or accessor without a setter is a
	// silent no-op, matching Flash Player's lenient property semantics.
	SetProp(name string, val Value, act *Activation) error
	// HasProperty reports whether name resolves anywhere on the
	// prototype chain.
	HasProperty(name string, act *Activation) bool
	// HasOwnProperty reports whether name is defined directly on this
	// object, not inherited.
	HasOwnProperty(name string) bool
	// Delete removes an own property, honoring DontDelete. Reports
	// whether the property was removed.
	Delete(name string) bool
	// IterProperties returns own property names in definition order,
	// optionally limited to enumerable ones.
	IterProperties(enumerableOnly bool) []string
	// DefineValue installs a data property directly, bypassing setters.
	DefineValue(name string, val Value, attrs Attributes)
	// ForceSetFunction installs a native-backed function property,
	// bypassing setters — the idiom the globals packages use to wire up
	// prototype methods.
	ForceSetFunction(name string, fn NativeFunction, attrs Attributes, fnProto Object)
	// Proto returns the object's prototype, or nil at the chain's root.
	Proto() Object
	// SetProto replaces the object's prototype.
	SetProto(proto Object)
	// Class reports the object's internal [[Class]] tag (e.g. "Object",
	// "Array", "Function").
	Class() string
	// AsValueObject returns the ValueObject view of this object and true
	// if it boxes a primitive (Boolean/Number/String wrapper).
	AsValueObject() (*ValueObject, bool)
}

// ScriptObjectData is the shared state every Object implementation in
// this package embeds: the own-property table, the prototype link and
// the [[Class]] tag.
type ScriptObjectData struct {
	mu    sync.RWMutex
	props map[string]*Property
	order []string
	proto Object
	class string
}

// NewScriptObjectData creates an empty own-property table with the given
// prototype and class tag.
func NewScriptObjectData(proto Object, class string) ScriptObjectData {
	return ScriptObjectData{props: make(map[string]*Property), proto: proto, class: class}
}

// ScriptObject is the plain object implementation: no special [[Call]] or
// boxed-primitive behavior, just a property table and a prototype link.
type ScriptObject struct {
	ScriptObjectData
}

// NewScriptObject allocates a plain object with the given prototype.
func NewScriptObject(proto Object) *ScriptObject {
	return &ScriptObject{ScriptObjectData: NewScriptObjectData(proto, "Object")}
}

func (o *ScriptObjectData) ownProperty(name string) (*Property, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	p, ok := o.props[name]
	return p, ok
}

// ownPropertyFold resolves name to an own property the way script-level
// lookup does: an exact match always wins; below SWF 7, a case-insensitive
// scan over existing keys is tried next, so `O.foo = 1; O.FOO` finds the
// property stored under "foo". Returns the property's actual stored key
// alongside it so callers can overwrite in place rather than creating a
// second, differently-cased entry.
func (o *ScriptObjectData) ownPropertyFold(name string, version uint8) (*Property, string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if p, ok := o.props[name]; ok {
		return p, name, true
	}
	if version >= 7 {
		return nil, "", false
	}
	for key, p := range o.props {
		if namesEqualFold(key, name) {
			return p, key, true
		}
	}
	return nil, "", false
}

func (o *ScriptObjectData) setOwnProperty(name string, p *Property) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, exists := o.props[name]; !exists {
		o.order = append(o.order, name)
	}
	o.props[name] = p
}

// Proto returns the prototype link.
func (o *ScriptObjectData) Proto() Object { return o.proto }

// SetProto replaces the prototype link.
func (o *ScriptObjectData) SetProto(proto Object) { o.proto = proto }

// Class reports the [[Class]] tag.
func (o *ScriptObjectData) Class() string { return o.class }

// AsValueObject reports false: plain ScriptObjects never box a primitive.
func (o *ScriptObjectData) AsValueObject() (*ValueObject, bool) { return nil, false }

// DefineValue installs name as a data property, bypassing any existing
// accessor's setter.
func (o *ScriptObjectData) DefineValue(name string, val Value, attrs Attributes) {
	o.setOwnProperty(name, NewDataProperty(val, attrs))
}

// ForceSetFunction installs name as a native function property.
func (o *ScriptObjectData) ForceSetFunction(name string, fn NativeFunction, attrs Attributes, fnProto Object) {
	f := NewFunctionObject(fn, fnProto, nil)
	o.setOwnProperty(name, NewDataProperty(NewObject(f), attrs))
}

// HasOwnProperty reports whether name is a direct own property, by exact
// name. Script-level lookup (Get/SetProp/HasProperty) applies SWF-version
// case folding on top of this; this method is the version-agnostic,
// host-facing form used for structural/debugging queries.
func (o *ScriptObjectData) HasOwnProperty(name string) bool {
	_, ok := o.ownProperty(name)
	return ok
}

// hasOwnPropertyFold is HasOwnProperty's script-semantics counterpart: it
// folds per version the same way ownPropertyFold does.
func (o *ScriptObjectData) hasOwnPropertyFold(name string, version uint8) bool {
	_, _, ok := o.ownPropertyFold(name, version)
	return ok
}

// Delete removes name if present and not DontDelete.
func (o *ScriptObjectData) Delete(name string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	p, ok := o.props[name]
	if !ok || !p.isDeletable() {
		return false
	}
	delete(o.props, name)
	for i, n := range o.order {
		if n == name {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return true
}

// IterProperties lists own property names in definition order.
func (o *ScriptObjectData) IterProperties(enumerableOnly bool) []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	names := make([]string, 0, len(o.order))
	for _, n := range o.order {
		if enumerableOnly && !o.props[n].isEnumerable() {
			continue
		}
		names = append(names, n)
	}
	return names
}

// HasProperty walks the prototype chain starting at self looking for
// name. It is a free function (not a ScriptObjectData method) because
// walking the chain needs the outer Object to call HasOwnProperty/Proto
// polymorphically — a ScriptObjectData value can't be copied safely
// (it embeds a sync.RWMutex) to synthesize one.
func HasProperty(self Object, name string, act *Activation) bool {
	version := act.Version()
	cur := self
	for cur != nil {
		if so := scriptObjectDataOf(cur); so != nil {
			if so.hasOwnPropertyFold(name, version) {
				return true
			}
		} else if cur.HasOwnProperty(name) {
			return true
		}
		cur = cur.Proto()
	}
	return false
}

// Get resolves name along the prototype chain starting at self, so
// accessor getters receive the correct receiver.
func Get(self Object, name string, act *Activation) (Value, error) {
	version := act.Version()
	cur := self
	for cur != nil {
		if so := scriptObjectDataOf(cur); so != nil {
			if p, _, ok := so.ownPropertyFold(name, version); ok {
				if p.kind == propertyData {
					return p.value, nil
				}
				if p.getter == nil {
					return Undefined, nil
				}
				return p.getter.Call(act, self, nil)
			}
		}
		cur = cur.Proto()
	}
	return Undefined, nil
}

// SetProp assigns name on self, honoring accessor setters and ReadOnly
// own properties found anywhere on the chain, and otherwise creating (or
// overwriting) an own data property on self.
func SetProp(self Object, name string, val Value, act *Activation) error {
	version := act.Version()
	cur := self
	for cur != nil {
		if so := scriptObjectDataOf(cur); so != nil {
			if p, storedKey, ok := so.ownPropertyFold(name, version); ok {
				switch {
				case p.kind == propertyAccessor:
					if p.setter == nil {
						return nil
					}
					_, err := p.setter.Call(act, self, []Value{val})
					return err
				case !p.isWritable():
					return nil
				case cur == self:
					so.setOwnProperty(storedKey, NewDataProperty(val, p.attrs))
					return nil
				}
				break
			}
		}
		cur = cur.Proto()
	}
	if so := scriptObjectDataOf(self); so != nil {
		so.setOwnProperty(name, NewDataProperty(val, EmptyAttributes()))
	}
	return nil
}

// Get implements Object.Get for a plain ScriptObject.
func (o *ScriptObject) Get(name string, act *Activation) (Value, error) { return Get(o, name, act) }

// SetProp implements Object.SetProp for a plain ScriptObject.
func (o *ScriptObject) SetProp(name string, val Value, act *Activation) error {
	return SetProp(o, name, val, act)
}

// HasProperty implements Object.HasProperty for a plain ScriptObject.
func (o *ScriptObject) HasProperty(name string, act *Activation) bool {
	return HasProperty(o, name, act)
}

// scriptObjectDataOf extracts the embedded ScriptObjectData from any
// Object implementation in this package, so the shared Get/SetProp/
// HasProperty walkers can reach own-property tables through embedding.
func scriptObjectDataOf(o Object) *ScriptObjectData {
	switch v := o.(type) {
	case *ScriptObject:
		return &v.ScriptObjectData
	case *ValueObject:
		return &v.ScriptObjectData
	case *FunctionObject:
		return &v.ScriptObjectData
	default:
		return nil
	}
}

// sortedNames returns a sorted copy of names, for when a deterministic
// enumeration order matters.
func sortedNames(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
