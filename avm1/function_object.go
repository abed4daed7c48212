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

import "fmt"

// NativeFunction is the signature every host-provided (Go) AVM1 function
// implements: Boolean/Number/String/Math globals, and anything a backend
// wires up through ForceSetFunction.
type NativeFunction func(act *Activation, this Object, args []Value) (Value, error)

// executableKind distinguishes a Go-native function body from one backed
// by already-decoded AVM1 bytecode.
type executableKind uint8

const (
	executableNative executableKind = iota
	executableAction
)

// ActionBody is an opaque reference to decoded AVM1 bytecode: this
// package does not parse SWF tags, so it never inspects the bytes
// itself. A host hands these to a BytecodeInterpreter (see
// activation.go) when the body actually needs to run.
type ActionBody struct {
	Name string
	Data []byte
}

// Executable is a function's callable body: either a Go-native function
// or a reference to bytecode a host-supplied BytecodeInterpreter knows
// how to run.
type Executable struct {
	kind   executableKind
	native NativeFunction
	action *ActionBody
}

// NativeExecutable wraps a Go function as an Executable.
func NativeExecutable(fn NativeFunction) Executable {
	return Executable{kind: executableNative, native: fn}
}

// ActionExecutable wraps a decoded-bytecode reference as an Executable.
func ActionExecutable(body *ActionBody) Executable {
	return Executable{kind: executableAction, action: body}
}

// FunctionObject is a callable/constructible Object: `Boolean`, `Number`,
// `String`, any user-defined function, and anything `ForceSetFunction`
// installs.
type FunctionObject struct {
	ScriptObjectData
	exec Executable
	// alloc overrides how Construct allocates the fresh receiver. Plain
	// functions leave this nil (a ScriptObject); Boolean/Number/String use
	// NewBoxFunctionObject to allocate a ValueObject instead, so `new
	// Boolean(x)` has somewhere to box its coerced value.
	alloc func(proto Object) Object
}

// NewFunctionObject allocates a function backed by fn, with the given
// function prototype (typically Function.prototype) and, if non-nil, a
// "prototype" own property used when the function is invoked with `new`.
func NewFunctionObject(fn NativeFunction, fnProto Object, constructProto Object) *FunctionObject {
	f := &FunctionObject{
		ScriptObjectData: NewScriptObjectData(fnProto, "Function"),
		exec:             NativeExecutable(fn),
	}
	if constructProto != nil {
		f.DefineValue("prototype", NewObject(constructProto), NewAttributes(DontEnum))
	}
	return f
}

// NewBoxFunctionObject allocates a function like NewFunctionObject, except
// `new` allocates a ValueObject (an empty primitive box) as the receiver
// instead of a plain ScriptObject. Boolean, Number and String use this so
// their native constructors can Replace() the box with the coerced value.
func NewBoxFunctionObject(fn NativeFunction, fnProto Object, constructProto Object) *FunctionObject {
	f := NewFunctionObject(fn, fnProto, constructProto)
	f.alloc = func(proto Object) Object { return EmptyValueBox(proto) }
	return f
}

// NewActionFunctionObject allocates a function backed by decoded
// bytecode, run through the host's BytecodeInterpreter.
func NewActionFunctionObject(body *ActionBody, fnProto Object, constructProto Object) *FunctionObject {
	f := &FunctionObject{
		ScriptObjectData: NewScriptObjectData(fnProto, "Function"),
		exec:             ActionExecutable(body),
	}
	if constructProto != nil {
		f.DefineValue("prototype", NewObject(constructProto), NewAttributes(DontEnum))
	}
	return f
}

func (f *FunctionObject) Get(name string, act *Activation) (Value, error) { return Get(f, name, act) }
func (f *FunctionObject) SetProp(name string, val Value, act *Activation) error {
	return SetProp(f, name, val, act)
}
func (f *FunctionObject) HasProperty(name string, act *Activation) bool {
	return HasProperty(f, name, act)
}

// Call invokes the function's body with the given receiver and
// arguments, through a child Activation derived via FromFunction so
// recursive calls are bounded by maxCallDepth just like a bytecode call
// would be.
func (f *FunctionObject) Call(act *Activation, this Object, args []Value) (Value, error) {
	label := "[native]"
	if f.exec.kind == executableAction && f.exec.action != nil {
		label = f.exec.action.Name
	}
	child, err := act.FromFunction(label, this, args)
	if err != nil {
		return Undefined, err
	}
	switch f.exec.kind {
	case executableNative:
		return f.exec.native(child, this, args)
	case executableAction:
		if child.interp == nil {
			return Undefined, ErrBytecodeUnavailable
		}
		return child.interp.Execute(child, *f.exec.action, this, args)
	default:
		return Undefined, fmt.Errorf("avm1: unknown executable kind %d", f.exec.kind)
	}
}

// Construct implements the `new` operator: a fresh object is allocated
// with its prototype taken from the function's own "prototype" property
// (falling back to the plain Object prototype) and passed to Call as
// `this`. If the body returns an object, that replaces the freshly
// allocated one; otherwise the allocated object itself is the result.
func (f *FunctionObject) Construct(act *Activation, args []Value) (Value, error) {
	var proto Object
	if p, err := f.Get("prototype", act); err == nil {
		if po, ok := p.Object(); ok {
			proto = po
		}
	}
	var newObj Object
	if f.alloc != nil {
		newObj = f.alloc(proto)
	} else {
		newObj = NewScriptObject(proto)
	}
	result, err := f.Call(act, newObj, args)
	if err != nil {
		return Undefined, err
	}
	if result.IsObject() {
		return result, nil
	}
	return NewObject(newObj), nil
}
