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

import mapset "github.com/deckarep/golang-set/v2"

// Attribute is a single member of a property's attribute set.
type Attribute uint8

const (
	// DontEnum excludes the property from for-in enumeration.
	DontEnum Attribute = iota
	// DontDelete rejects the `delete` operator.
	DontDelete
	// ReadOnly rejects property assignment.
	ReadOnly
)

// Attributes is a property's attribute set. An empty set means the
// property is fully enumerable, deletable and writable — Flash Player's
// default for anything defined through ordinary assignment.
type Attributes = mapset.Set[Attribute]

// NewAttributes builds an Attributes set from the given flags.
func NewAttributes(attrs ...Attribute) Attributes {
	return mapset.NewThreadUnsafeSet(attrs...)
}

// EmptyAttributes is the fully-permissive attribute set.
func EmptyAttributes() Attributes { return mapset.NewThreadUnsafeSet[Attribute]() }

// propertyKind distinguishes a plain data property from a getter/setter
// accessor pair.
type propertyKind uint8

const (
	propertyData propertyKind = iota
	propertyAccessor
)

// Property is one entry in an object's own-property table: either a
// stored Value or a getter/setter pair, plus its Attributes.
type Property struct {
	kind   propertyKind
	value  Value
	getter *FunctionObject
	setter *FunctionObject
	attrs  Attributes
}

// NewDataProperty builds a plain data property.
func NewDataProperty(value Value, attrs Attributes) *Property {
	if attrs == nil {
		attrs = EmptyAttributes()
	}
	return &Property{kind: propertyData, value: value, attrs: attrs}
}

// NewAccessorProperty builds a getter/setter property. Either getter or
// setter may be nil (a write-only or read-only virtual property).
func NewAccessorProperty(getter, setter *FunctionObject, attrs Attributes) *Property {
	if attrs == nil {
		attrs = EmptyAttributes()
	}
	return &Property{kind: propertyAccessor, getter: getter, setter: setter, attrs: attrs}
}

func (p *Property) isEnumerable() bool { return !p.attrs.Contains(DontEnum) }
func (p *Property) isDeletable() bool  { return !p.attrs.Contains(DontDelete) }
func (p *Property) isWritable() bool   { return !p.attrs.Contains(ReadOnly) }
