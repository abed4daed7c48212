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

import "errors"

var (
	// ErrBytecodeUnavailable is returned when an action function's body
	// is decoded bytecode but no BytecodeInterpreter was configured to
	// run it. SWF tag parsing (the only source of that bytecode) is out
	// of scope for this module; a host that needs it supplies its own
	// BytecodeInterpreter.
	ErrBytecodeUnavailable = errors.New("avm1: no bytecode interpreter configured")

	// ErrBudgetExceeded is returned when a call exceeds the configured
	// execution budget (wall-clock deadline on UpdateContext).
	ErrBudgetExceeded = errors.New("avm1: execution budget exceeded")

	// ErrInternalFault wraps a recovered panic from native or bytecode
	// execution; it represents a VM-internal invariant violation rather
	// than a well-formed script error.
	ErrInternalFault = errors.New("avm1: internal VM fault")

	// ErrCallStackExhausted is returned when Activation nesting exceeds
	// the fixed maxCallDepth limit (guards against unbounded
	// recursion in user-defined functions).
	ErrCallStackExhausted = errors.New("avm1: call stack exhausted")
)
