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
	"math/rand"

	"github.com/flashruntime/avm1core/avm1"
)

// mathUnary wraps a float64->float64 Go math function as a one-argument
// AVM1 native method.
func mathUnary(f func(float64) float64) avm1.NativeFunction {
	return func(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
		n, err := arg(args, 0).AsNumber(act)
		if err != nil {
			return avm1.Undefined, err
		}
		return avm1.NewNumber(f(n)), nil
	}
}

func mathAtan2(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	y, err := arg(args, 0).AsNumber(act)
	if err != nil {
		return avm1.Undefined, err
	}
	x, err := arg(args, 1).AsNumber(act)
	if err != nil {
		return avm1.Undefined, err
	}
	return avm1.NewNumber(math.Atan2(y, x)), nil
}

func mathMax(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	result := math.Inf(-1)
	for _, a := range args {
		n, err := a.AsNumber(act)
		if err != nil {
			return avm1.Undefined, err
		}
		if math.IsNaN(n) {
			return avm1.NewNumber(math.NaN()), nil
		}
		result = math.Max(result, n)
	}
	return avm1.NewNumber(result), nil
}

func mathMin(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	result := math.Inf(1)
	for _, a := range args {
		n, err := a.AsNumber(act)
		if err != nil {
			return avm1.Undefined, err
		}
		if math.IsNaN(n) {
			return avm1.NewNumber(math.NaN()), nil
		}
		result = math.Min(result, n)
	}
	return avm1.NewNumber(result), nil
}

func mathPow(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	base, err := arg(args, 0).AsNumber(act)
	if err != nil {
		return avm1.Undefined, err
	}
	exp, err := arg(args, 1).AsNumber(act)
	if err != nil {
		return avm1.Undefined, err
	}
	return avm1.NewNumber(math.Pow(base, exp)), nil
}

func mathRandom(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	return avm1.NewNumber(rand.Float64()), nil
}

// CreateMathObject builds the `Math` global: a plain object carrying the
// static constants and unary/binary methods ActionScript's Math exposes,
// a thin delegation layer over Go's math package rather than a
// reimplementation (spec.md's ambient-stack guidance to prefer the
// standard library only where no third-party alternative fits: there is
// no ecosystem replacement for these transcendental functions).
func CreateMathObject(objectProto, fnProto avm1.Object) avm1.Object {
	m := avm1.NewScriptObject(objectProto)
	attrs := avm1.NewAttributes(avm1.DontDelete, avm1.ReadOnly, avm1.DontEnum)

	m.DefineValue("E", avm1.NewNumber(math.E), attrs)
	m.DefineValue("LN10", avm1.NewNumber(math.Ln10), attrs)
	m.DefineValue("LN2", avm1.NewNumber(math.Ln2), attrs)
	m.DefineValue("LOG10E", avm1.NewNumber(math.Log10E), attrs)
	m.DefineValue("LOG2E", avm1.NewNumber(math.Log2E), attrs)
	m.DefineValue("PI", avm1.NewNumber(math.Pi), attrs)
	m.DefineValue("SQRT1_2", avm1.NewNumber(math.Sqrt(0.5)), attrs)
	m.DefineValue("SQRT2", avm1.NewNumber(math.Sqrt2), attrs)

	m.ForceSetFunction("abs", mathUnary(math.Abs), attrs, fnProto)
	m.ForceSetFunction("acos", mathUnary(math.Acos), attrs, fnProto)
	m.ForceSetFunction("asin", mathUnary(math.Asin), attrs, fnProto)
	m.ForceSetFunction("atan", mathUnary(math.Atan), attrs, fnProto)
	m.ForceSetFunction("atan2", mathAtan2, attrs, fnProto)
	m.ForceSetFunction("ceil", mathUnary(math.Ceil), attrs, fnProto)
	m.ForceSetFunction("cos", mathUnary(math.Cos), attrs, fnProto)
	m.ForceSetFunction("exp", mathUnary(math.Exp), attrs, fnProto)
	m.ForceSetFunction("floor", mathUnary(math.Floor), attrs, fnProto)
	m.ForceSetFunction("log", mathUnary(math.Log), attrs, fnProto)
	m.ForceSetFunction("max", mathMax, attrs, fnProto)
	m.ForceSetFunction("min", mathMin, attrs, fnProto)
	m.ForceSetFunction("pow", mathPow, attrs, fnProto)
	m.ForceSetFunction("random", mathRandom, attrs, fnProto)
	m.ForceSetFunction("round", mathUnary(math.Round), attrs, fnProto)
	m.ForceSetFunction("sin", mathUnary(math.Sin), attrs, fnProto)
	m.ForceSetFunction("sqrt", mathUnary(math.Sqrt), attrs, fnProto)
	m.ForceSetFunction("tan", mathUnary(math.Tan), attrs, fnProto)

	return m
}
