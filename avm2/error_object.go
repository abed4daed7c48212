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

package avm2

// ErrorObjectData is an Error instance's state: its base-class id/name
// (Error, ReferenceError, ...) and the instance message, set at
// construction.
type ErrorObjectData struct {
	Proto   *ErrorObject
	ID      int32
	Name    string
	Message string
}

// ErrorObject is the scriptable Error instance AVM1's `avm1/globals`
// Error global boxes when it needs to raise something AVM2-shaped (the
// two VMs share the Flash Player error-reporting channel even though
// their value models don't otherwise interoperate).
type ErrorObject struct {
	data ErrorObjectData
}

// NewErrorObject allocates an ErrorObject with an explicit id/name/message.
func NewErrorObject(proto *ErrorObject, id int32, name, message string) *ErrorObject {
	return &ErrorObject{data: ErrorObjectData{Proto: proto, ID: id, Name: name, Message: message}}
}

// FromErrorDef allocates an ErrorObject from one of the built-in
// ErrorDefs (Error1000, Error1069, ...).
func FromErrorDef(proto *ErrorObject, def ErrorDef) *ErrorObject {
	return NewErrorObject(proto, def.ID, def.Name, def.Message)
}

// Derive allocates a fresh, blank ErrorObject whose prototype is this
// one — the shape a user-defined `class MyError extends Error`
// subclass's instances take before their own constructor runs.
func (e *ErrorObject) Derive() *ErrorObject {
	return NewErrorObject(e, 0, "", "")
}

// ValueOf returns an Object-kinded Value carrying this error's name
// rather than a primitive (an Error has no primitive form). This
// package's Value has no object slot, so the result holds no reference
// back to the ErrorObject itself.
func (e *ErrorObject) ValueOf() Value {
	return Value{kind: KindObject, s: e.data.Name}
}

// Construct builds a new instance of this Error class: args[0] coerces
// to the message, args[1] coerces to the numeric id, and the new
// object's name is inherited from this class rather than taken from
// args.
func (e *ErrorObject) Construct(args []Value) *ErrorObject {
	message := ""
	if len(args) > 0 {
		message = args[0].AsString()
	}
	var id int32
	if len(args) > 1 {
		id = int32(args[1].AsNumber())
	}
	return NewErrorObject(e, id, e.data.Name, message)
}

// ID reports the Error's numeric identifier.
func (e *ErrorObject) ID() int32 { return e.data.ID }

// Name reports the Error class name (e.g. "ReferenceError").
func (e *ErrorObject) Name() string { return e.data.Name }

// Message reports the instance's message string.
func (e *ErrorObject) Message() string { return e.data.Message }

// String implements fmt.Stringer with the usual "Name: Message" form.
func (e *ErrorObject) String() string {
	if e.data.Message == "" {
		return e.data.Name
	}
	return e.data.Name + ": " + e.data.Message
}
