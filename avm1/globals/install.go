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

// Package globals wires up the native global object: Object/Function's
// bare prototypes, Boolean/Number/String with their box constructors,
// Math, System, and the AVM1-facing Error bridge. spec.md §4.3's two-call
// factory idiom (create_*_object / create_proto) is kept per class.
package globals

import "github.com/flashruntime/avm1core/avm1"

// Install builds the global object for a fresh Avm1 instance: the base
// Object/Function prototypes, every native global spec.md §4.3 names,
// and the primitive box constructors CoerceToObject needs. Returns the
// object a root Activation's scope chain bottoms out on.
func Install(vm *avm1.Avm1) avm1.Object {
	objectProto := avm1.NewScriptObject(nil)
	fnProto := avm1.NewScriptObject(objectProto)

	booleanProto := CreateBooleanProto(objectProto, fnProto)
	booleanCtor := CreateBooleanConstructor(fnProto, booleanProto)

	numberProto := CreateNumberProto(objectProto, fnProto)
	numberCtor := CreateNumberConstructor(fnProto, numberProto)

	stringProto := CreateStringProto(objectProto, fnProto)
	stringCtor := CreateStringConstructor(fnProto, stringProto)

	errorProto := CreateErrorProto(objectProto, fnProto)
	errorCtor := CreateErrorConstructor(fnProto, errorProto)

	mathObj := CreateMathObject(objectProto, fnProto)
	systemObj := CreateSystemObject(objectProto, vm.Version())

	vm.RegisterBoxConstructor(avm1.KindBool, func(act *avm1.Activation, val avm1.Value) (avm1.Object, error) {
		box := avm1.NewValueObject(booleanProto, val)
		return box, nil
	})
	vm.RegisterBoxConstructor(avm1.KindNumber, func(act *avm1.Activation, val avm1.Value) (avm1.Object, error) {
		box := avm1.NewValueObject(numberProto, val)
		return box, nil
	})
	vm.RegisterBoxConstructor(avm1.KindString, func(act *avm1.Activation, val avm1.Value) (avm1.Object, error) {
		box := avm1.NewValueObject(stringProto, val)
		return box, nil
	})

	globalsObj := avm1.NewScriptObject(objectProto)
	attrs := avm1.NewAttributes(avm1.DontEnum)
	globalsObj.DefineValue("Boolean", avm1.NewObject(booleanCtor), attrs)
	globalsObj.DefineValue("Number", avm1.NewObject(numberCtor), attrs)
	globalsObj.DefineValue("String", avm1.NewObject(stringCtor), attrs)
	globalsObj.DefineValue("Error", avm1.NewObject(errorCtor), attrs)
	globalsObj.DefineValue("Math", avm1.NewObject(mathObj), attrs)
	globalsObj.DefineValue("System", avm1.NewObject(systemObj), attrs)
	return globalsObj
}
