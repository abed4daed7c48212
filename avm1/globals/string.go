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
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/dlclark/regexp2"
	"github.com/flashruntime/avm1core/avm1"
)

// stringConstructorStub is the `String(x)` / `new String(x)` native
// function. The core has never implemented this constructor: it is a
// stub that always returns Undefined and never boxes `this`, the one
// place this package keeps the original's stubbed behavior rather than
// completing it (spec.md §4.3).
func stringConstructorStub(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	return avm1.Undefined, nil
}

// thisString coerces the method receiver to its string primitive: the
// boxed value for a `new String(...)` instance, or ToString of whatever
// object the method was borrowed onto.
func thisString(act *avm1.Activation, this avm1.Object) (string, error) {
	if box, ok := this.AsValueObject(); ok {
		return box.Unbox().CoerceToString(act)
	}
	return avm1.NewObject(this).CoerceToString(act)
}

func toUnits(s string) []uint16   { return utf16.Encode([]rune(s)) }
func fromUnits(u []uint16) string { return string(utf16.Decode(u)) }

// coerceIndex coerces v to an int the way index/length arguments do:
// Undefined uses def, NaN truncates to 0.
func coerceIndex(act *avm1.Activation, v avm1.Value, def int) (int, error) {
	if v.IsUndefined() {
		return def, nil
	}
	n, err := v.AsNumber(act)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) {
		return 0, nil
	}
	return int(n), nil
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

func arg(args []avm1.Value, i int) avm1.Value {
	if i < len(args) {
		return args[i]
	}
	return avm1.Undefined
}

func stringCharAt(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	units := toUnits(s)
	idx, err := coerceIndex(act, arg(args, 0), 0)
	if err != nil {
		return avm1.Undefined, err
	}
	if idx < 0 || idx >= len(units) {
		return avm1.NewString(""), nil
	}
	return avm1.NewString(fromUnits(units[idx : idx+1])), nil
}

func stringCharCodeAt(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	units := toUnits(s)
	idx, err := coerceIndex(act, arg(args, 0), 0)
	if err != nil {
		return avm1.Undefined, err
	}
	if idx < 0 || idx >= len(units) {
		return avm1.NewNumber(math.NaN()), nil
	}
	return avm1.NewNumber(float64(units[idx])), nil
}

func stringConcat(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	var b strings.Builder
	b.WriteString(s)
	for _, a := range args {
		str, err := a.CoerceToString(act)
		if err != nil {
			return avm1.Undefined, err
		}
		b.WriteString(str)
	}
	return avm1.NewString(b.String()), nil
}

// stringFromCharCode implements String.fromCharCode: each argument is
// coerced to a number and truncated to a 16-bit code unit. Installed on
// the prototype rather than the constructor, mirroring the core's own
// (non-ECMA-standard) placement.
func stringFromCharCode(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	units := make([]uint16, len(args))
	for i, a := range args {
		n, err := a.AsNumber(act)
		if err != nil {
			return avm1.Undefined, err
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			units[i] = 0
			continue
		}
		units[i] = uint16(int64(n))
	}
	return avm1.NewString(fromUnits(units)), nil
}

func stringIndexOf(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	search, err := arg(args, 0).CoerceToString(act)
	if err != nil {
		return avm1.Undefined, err
	}
	start, err := coerceIndex(act, arg(args, 1), 0)
	if err != nil {
		return avm1.Undefined, err
	}
	units, needle := toUnits(s), toUnits(search)
	start = clamp(start, 0, len(units))
	for i := start; i+len(needle) <= len(units); i++ {
		if unitsEqual(units[i:i+len(needle)], needle) {
			return avm1.NewNumber(float64(i)), nil
		}
	}
	return avm1.NewNumber(-1), nil
}

func stringLastIndexOf(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	search, err := arg(args, 0).CoerceToString(act)
	if err != nil {
		return avm1.Undefined, err
	}
	units, needle := toUnits(s), toUnits(search)
	start := len(units)
	if len(args) > 1 && !args[1].IsUndefined() {
		start, err = coerceIndex(act, args[1], len(units))
		if err != nil {
			return avm1.Undefined, err
		}
	}
	start = clamp(start, 0, len(units))
	for i := start; i >= 0; i-- {
		if i+len(needle) > len(units) {
			continue
		}
		if unitsEqual(units[i:i+len(needle)], needle) {
			return avm1.NewNumber(float64(i)), nil
		}
	}
	return avm1.NewNumber(-1), nil
}

func unitsEqual(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringSlice(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	units := toUnits(s)
	start, err := coerceIndex(act, arg(args, 0), 0)
	if err != nil {
		return avm1.Undefined, err
	}
	end, err := coerceIndex(act, arg(args, 1), len(units))
	if err != nil {
		return avm1.Undefined, err
	}
	start, end = relativeIndex(start, len(units)), relativeIndex(end, len(units))
	if start >= end {
		return avm1.NewString(""), nil
	}
	return avm1.NewString(fromUnits(units[start:end])), nil
}

func relativeIndex(i, length int) int {
	if i < 0 {
		i += length
	}
	return clamp(i, 0, length)
}

func stringSubstr(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	units := toUnits(s)
	start, err := coerceIndex(act, arg(args, 0), 0)
	if err != nil {
		return avm1.Undefined, err
	}
	if start < 0 {
		start = clamp(len(units)+start, 0, len(units))
	} else {
		start = clamp(start, 0, len(units))
	}
	length := len(units) - start
	if len(args) > 1 && !args[1].IsUndefined() {
		length, err = coerceIndex(act, args[1], length)
		if err != nil {
			return avm1.Undefined, err
		}
	}
	length = clamp(length, 0, len(units)-start)
	return avm1.NewString(fromUnits(units[start : start+length])), nil
}

func stringSubstring(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	units := toUnits(s)
	start, err := coerceIndex(act, arg(args, 0), 0)
	if err != nil {
		return avm1.Undefined, err
	}
	end, err := coerceIndex(act, arg(args, 1), len(units))
	if err != nil {
		return avm1.Undefined, err
	}
	start, end = clamp(start, 0, len(units)), clamp(end, 0, len(units))
	if start > end {
		start, end = end, start
	}
	return avm1.NewString(fromUnits(units[start:end])), nil
}

func stringToLowerCase(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	return avm1.NewString(strings.ToLower(s)), nil
}

func stringToUpperCase(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	return avm1.NewString(strings.ToUpper(s)), nil
}

// stringSplit implements String.prototype.split(separator?, limit?). A
// separator that coerces to an object carrying a "source" string property
// is treated as a RegExp-like pattern and compiled through regexp2, which
// (unlike Go's RE2-based regexp) supports the backreferences ECMA-262 3
// split patterns can use. A plain separator is a literal substring split.
func stringSplit(act *avm1.Activation, this avm1.Object, args []avm1.Value) (avm1.Value, error) {
	s, err := thisString(act, this)
	if err != nil {
		return avm1.Undefined, err
	}
	sepArg := arg(args, 0)
	if sepArg.IsUndefined() {
		return avm1.NewObject(newIndexedArray([]avm1.Value{avm1.NewString(s)})), nil
	}
	limit := math.MaxInt32
	if len(args) > 1 && !args[1].IsUndefined() {
		n, err := args[1].AsNumber(act)
		if err != nil {
			return avm1.Undefined, err
		}
		if !math.IsNaN(n) {
			limit = int(n)
		}
	}

	if sepObj, ok := sepArg.Object(); ok {
		if src, err := sepObj.Get("source", act); err == nil && src.Kind() == avm1.KindString {
			pattern, _ := src.CoerceToString(act)
			if re, err := regexp2.Compile(pattern, regexp2.None); err == nil {
				parts, err := regexpSplit(re, s, limit)
				if err != nil {
					return avm1.Undefined, err
				}
				return avm1.NewObject(newIndexedArray(stringValues(parts))), nil
			}
		}
	}

	sep, err := sepArg.CoerceToString(act)
	if err != nil {
		return avm1.Undefined, err
	}
	var parts []string
	if sep == "" {
		units := toUnits(s)
		for _, u := range units {
			parts = append(parts, fromUnits([]uint16{u}))
		}
	} else {
		parts = strings.Split(s, sep)
	}
	if limit >= 0 && limit < len(parts) {
		parts = parts[:limit]
	}
	return avm1.NewObject(newIndexedArray(stringValues(parts))), nil
}

func regexpSplit(re *regexp2.Regexp, s string, limit int) ([]string, error) {
	var result []string
	last := 0
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		if limit >= 0 && len(result) >= limit {
			return result, nil
		}
		start, end := m.Index, m.Index+m.Length
		if end < last {
			break
		}
		result = append(result, s[last:start])
		last = end
		next, nextErr := re.FindNextMatch(m)
		if nextErr != nil || next == nil || next.Index <= m.Index && next.Length == m.Length {
			break
		}
		m = next
	}
	result = append(result, s[last:])
	if limit >= 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func stringValues(ss []string) []avm1.Value {
	out := make([]avm1.Value, len(ss))
	for i, s := range ss {
		out[i] = avm1.NewString(s)
	}
	return out
}

// newIndexedArray builds a minimal array-shaped object (numeric own
// properties plus "length"), enough for split's return value without a
// full Array global — this module doesn't implement the Array class.
func newIndexedArray(items []avm1.Value) avm1.Object {
	obj := avm1.NewScriptObject(nil)
	for i, v := range items {
		obj.DefineValue(strconv.Itoa(i), v, avm1.EmptyAttributes())
	}
	obj.DefineValue("length", avm1.NewNumber(float64(len(items))), avm1.EmptyAttributes())
	return obj
}

// CreateStringProto builds String.prototype with every method spec.md
// §4.3 lists, implemented to ECMA-262 3rd edition semantics over 16-bit
// code units rather than left as stubs.
func CreateStringProto(objectProto, fnProto avm1.Object) *avm1.ValueObject {
	proto := avm1.EmptyValueBox(objectProto)
	attrs := avm1.NewAttributes(avm1.DontDelete, avm1.ReadOnly, avm1.DontEnum)
	proto.ForceSetFunction("charAt", stringCharAt, attrs, fnProto)
	proto.ForceSetFunction("charCodeAt", stringCharCodeAt, attrs, fnProto)
	proto.ForceSetFunction("concat", stringConcat, attrs, fnProto)
	proto.ForceSetFunction("fromCharCode", stringFromCharCode, attrs, fnProto)
	proto.ForceSetFunction("indexOf", stringIndexOf, attrs, fnProto)
	proto.ForceSetFunction("lastIndexOf", stringLastIndexOf, attrs, fnProto)
	proto.ForceSetFunction("slice", stringSlice, attrs, fnProto)
	proto.ForceSetFunction("split", stringSplit, attrs, fnProto)
	proto.ForceSetFunction("substr", stringSubstr, attrs, fnProto)
	proto.ForceSetFunction("substring", stringSubstring, attrs, fnProto)
	proto.ForceSetFunction("toLowerCase", stringToLowerCase, attrs, fnProto)
	proto.ForceSetFunction("toUpperCase", stringToUpperCase, attrs, fnProto)
	return proto
}

// CreateStringConstructor builds the `String` global function. `new
// String(x)` allocates a ValueObject receiver like Boolean/Number, even
// though the constructor body itself is the preserved stub.
func CreateStringConstructor(fnProto, stringProto avm1.Object) *avm1.FunctionObject {
	return avm1.NewBoxFunctionObject(stringConstructorStub, fnProto, stringProto)
}
