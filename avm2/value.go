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

// Package avm2 sketches only the subset of the ActionScript 3 VM needed
// to host ErrorObject: a minimal Value and the Error class hierarchy.
// It is deliberately independent of the avm1 package's Value/Object
// types — AVM1 and AVM2 have genuinely distinct value models in Flash
// Player, and this module does not implement cross-VM interop.
package avm2

// Value is AVM2's minimal value union, just enough to carry an Error's
// constructor arguments (id/message) and its stringified form.
type Value struct {
	kind Kind
	n    float64
	s    string
}

// Kind tags a Value's active variant.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindNumber
	KindString
	KindObject
)

var Undefined = Value{kind: KindUndefined}
var Null = Value{kind: KindNull}

func NewNumber(n float64) Value { return Value{kind: KindNumber, n: n} }
func NewString(s string) Value  { return Value{kind: KindString, s: s} }

// AsString coerces v to its string form; objects in this minimal subset
// always stringify through their Error-specific String method, so
// AsString only needs to handle the primitive kinds directly used by
// Error construction.
func (v Value) AsString() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	default:
		return ""
	}
}

// AsNumber coerces v to its numeric form.
func (v Value) AsNumber() float64 {
	if v.kind == KindNumber {
		return v.n
	}
	return 0
}
