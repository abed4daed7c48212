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

import (
	"github.com/flashruntime/avm1core/avm1"
	"github.com/flashruntime/avm1core/avm2"
)

// errorConstructor implements AVM1's `Error(message, id)` / `new
// Error(message, id)`: it bridges to avm2's ErrorObject for the canonical
// id/name/message triple (spec.md §4.3's "Error (AVM2)" contract),
// routing both arguments through ErrorObject.Construct so a caller-
// supplied id is honored rather than always forcing Error1000's, then
// copies that state onto the AVM1-visible instance as plain properties.
// AVM1 scripts never see an avm2.ErrorObject directly — this is the one
// point the two value models touch.
func errorConstructor(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	message := ""
	if len(args) > 0 {
		var err error
		message, err = args[0].CoerceToString(act)
		if err != nil {
			return avm1.Undefined, err
		}
	}
	avm2Args := []avm2.Value{avm2.NewString(message)}
	if len(args) > 1 {
		id, err := args[1].AsNumber(act)
		if err != nil {
			return avm1.Undefined, err
		}
		avm2Args = append(avm2Args, avm2.NewNumber(id))
	}
	eo := avm2.FromErrorDef(nil, avm2.Error1000).Construct(avm2Args)
	attrs := avm1.EmptyAttributes()
	this.DefineValue("id", avm1.NewNumber(float64(eo.ID())), attrs)
	this.DefineValue("name", avm1.NewString(eo.Name()), attrs)
	this.DefineValue("message", avm1.NewString(eo.Message()), attrs)
	return avm1.Undefined, nil
}

// errorToString renders "name: message", or just "name" when message is
// empty, matching avm2.ErrorObject.String().
func errorToString(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	name, err := this.Get("name", act)
	if err != nil {
		return avm1.Undefined, err
	}
	message, err := this.Get("message", act)
	if err != nil {
		return avm1.Undefined, err
	}
	nameStr, err := name.CoerceToString(act)
	if err != nil {
		return avm1.Undefined, err
	}
	msgStr, err := message.CoerceToString(act)
	if err != nil {
		return avm1.Undefined, err
	}
	if msgStr == "" {
		return avm1.NewString(nameStr), nil
	}
	return avm1.NewString(nameStr + ": " + msgStr), nil
}

// CreateErrorProto builds Error.prototype: default name "Error", empty
// message, and toString.
func CreateErrorProto(objectProto, fnProto avm1.Object) avm1.Object {
	proto := avm1.NewScriptObject(objectProto)
	attrs := avm1.NewAttributes(avm1.DontDelete, avm1.ReadOnly, avm1.DontEnum)
	proto.DefineValue("name", avm1.NewString(avm2.Error1000.Name), avm1.EmptyAttributes())
	proto.DefineValue("message", avm1.NewString(""), avm1.EmptyAttributes())
	proto.ForceSetFunction("toString", errorToString, attrs, fnProto)
	return proto
}

// CreateErrorConstructor builds the `Error` global function.
func CreateErrorConstructor(fnProto, errorProto avm1.Object) *avm1.FunctionObject {
	return avm1.NewFunctionObject(errorConstructor, fnProto, errorProto)
}
