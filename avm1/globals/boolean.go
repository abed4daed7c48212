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

package globals

import "github.com/flashruntime/avm1core/avm1"

// booleanConstructor implements `Boolean(x)` / `new Boolean(x)`: coerce the
// first argument (false if absent) through the version-sensitive AsBool
// rule, box it into `this` when called as a constructor, and always return
// the coerced primitive.
func booleanConstructor(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	var arg avm1.Value
	if len(args) > 0 {
		arg = args[0]
	}
	val := avm1.NewBool(arg.AsBool(act.Version()))
	if box, ok := this.AsValueObject(); ok {
		box.Replace(val)
	}
	return val, nil
}

// booleanToString matches boolean.rs's to_string: only a boxed Boolean
// (i.e. `this` came from `new Boolean(...)`) has a sensible string form;
// anything else returns Undefined rather than coercing.
func booleanToString(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	box, ok := this.AsValueObject()
	if !ok {
		return avm1.Undefined, nil
	}
	if box.Unbox().AsBool(act.Version()) {
		return avm1.NewString("true"), nil
	}
	return avm1.NewString("false"), nil
}

// booleanValueOf always returns Undefined, preserving boolean.rs's
// long-standing bug: its value_of never unboxes `this`, unlike Number's.
func booleanValueOf(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	return avm1.Undefined, nil
}

// CreateBooleanProto builds Boolean.prototype: an empty value box (so
// `Boolean.prototype instanceof Boolean` style checks see a boxable
// object) carrying toString/valueOf.
func CreateBooleanProto(objectProto, fnProto avm1.Object) *avm1.ValueObject {
	proto := avm1.EmptyValueBox(objectProto)
	attrs := avm1.NewAttributes(avm1.DontDelete, avm1.ReadOnly, avm1.DontEnum)
	proto.ForceSetFunction("toString", booleanToString, attrs, fnProto)
	proto.ForceSetFunction("valueOf", booleanValueOf, attrs, fnProto)
	return proto
}

// CreateBooleanConstructor builds the `Boolean` global function, wired so
// `new Boolean(x)` allocates a ValueObject receiver.
func CreateBooleanConstructor(fnProto, booleanProto avm1.Object) *avm1.FunctionObject {
	return avm1.NewBoxFunctionObject(booleanConstructor, fnProto, booleanProto)
}
