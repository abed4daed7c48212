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
	"math"

	"github.com/flashruntime/avm1core/avm1"
)

// numberConstructor implements `Number(x)` / `new Number(x)`: coerce the
// first argument (0 if absent) via ToNumber, box it into `this` when
// called as a constructor, and always return the coerced primitive.
func numberConstructor(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	n := 0.0
	if len(args) > 0 {
		var err error
		n, err = args[0].AsNumber(act)
		if err != nil {
			return avm1.Undefined, err
		}
	}
	val := avm1.NewNumber(n)
	if box, ok := this.AsValueObject(); ok {
		box.Replace(val)
	}
	return val, nil
}

// numberToStringMethod implements Number.prototype.toString(radix?): a
// radix outside [2,36] (including absent/undefined) falls back to decimal
// ToString; otherwise digits are emitted through FormatNumber, which also
// owns the TO_STRING_NANS table for non-finite receivers.
func numberToStringMethod(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	box, ok := this.AsValueObject()
	if !ok {
		return avm1.Undefined, nil
	}
	n, _ := box.Unbox().AsNumber(act)

	radix := 10
	if len(args) > 0 && !args[0].IsUndefined() {
		r, err := args[0].AsNumber(act)
		if err != nil {
			return avm1.Undefined, err
		}
		if !math.IsNaN(r) && int(r) >= 2 && int(r) <= 36 {
			radix = int(r)
		}
	}
	return avm1.NewString(avm1.FormatNumber(n, radix)), nil
}

// numberValueOf unboxes `this` back to its primitive Number, unlike
// Boolean's valueOf.
func numberValueOf(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	box, ok := this.AsValueObject()
	if !ok {
		return avm1.Undefined, nil
	}
	return box.Unbox(), nil
}

// CreateNumberProto builds Number.prototype.
func CreateNumberProto(objectProto, fnProto avm1.Object) *avm1.ValueObject {
	proto := avm1.EmptyValueBox(objectProto)
	attrs := avm1.NewAttributes(avm1.DontDelete, avm1.ReadOnly, avm1.DontEnum)
	proto.ForceSetFunction("toString", numberToStringMethod, attrs, fnProto)
	proto.ForceSetFunction("valueOf", numberValueOf, attrs, fnProto)
	return proto
}

// CreateNumberConstructor builds the `Number` global function, with `new
// Number(x)` allocating a ValueObject receiver and the IEEE-754 class
// constants set directly on the constructor.
func CreateNumberConstructor(fnProto, numberProto avm1.Object) *avm1.FunctionObject {
	ctor := avm1.NewBoxFunctionObject(numberConstructor, fnProto, numberProto)
	attrs := avm1.NewAttributes(avm1.DontDelete, avm1.ReadOnly, avm1.DontEnum)
	ctor.DefineValue("MAX_VALUE", avm1.NewNumber(math.MaxFloat64), attrs)
	// MIN_VALUE matches Flash Player's own number.rs, which sets it to the
	// most-negative finite f64 rather than ECMA-262's smallest positive.
	ctor.DefineValue("MIN_VALUE", avm1.NewNumber(-math.MaxFloat64), attrs)
	ctor.DefineValue("NaN", avm1.NewNumber(math.NaN()), attrs)
	ctor.DefineValue("NEGATIVE_INFINITY", avm1.NewNumber(math.Inf(-1)), attrs)
	ctor.DefineValue("POSITIVE_INFINITY", avm1.NewNumber(math.Inf(1)), attrs)
	return ctor
}
