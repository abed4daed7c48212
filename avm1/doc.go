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

// Package avm1 implements the ActionScript 1 virtual machine core: the
// value model and coercion rules, the prototype-based object model, the
// per-call activation record, the priority-bucketed action queue, and the
// update-context split that separates non-GC player state from the
// GC-traced object graph.
//
// This package does not parse SWF tag data and does not decode AVM1
// bytecode itself; a host supplies already-decoded actions through the
// BytecodeInterpreter capability (see activation.go).
package avm1
