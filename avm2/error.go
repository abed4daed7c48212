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

import "errors"

// ErrorDef names a built-in AVM2 error class: its numeric id, class
// name, and default message.
type ErrorDef struct {
	ID      int32
	Name    string
	Message string
}

// Error1000 is the generic Error base (id 1000).
var Error1000 = ErrorDef{ID: 1000, Name: "Error", Message: "The system is out of memory."}

// Error1069 is ReferenceError #1069 ("Property {} not found for {} and
// there is no default value."), the id the original source's ERROR_1001
// constant actually carries (the name is a leftover from an earlier
// numbering — the id is what matters and is preserved as observed).
var Error1069 = ErrorDef{
	ID:      1069,
	Name:    "ReferenceError",
	Message: "Property {} not found for {} and there is no default value.",
}

// ErrNotConstructible mirrors the original's instance initializer, which
// — despite living in the Error-hosting file — is left over Math
// scaffolding that unconditionally rejects construction with a
// TypeError. Preserved for fidelity to the original rather than treated
// as a bug: this module's avm1 side never calls into it, and the
// genuine Error construction path is ErrorObject.Construct in
// error_object.go.
var ErrNotConstructible = errors.New("TypeError: Error #1076: Math is not a constructor.")

// InstanceInit is the direct translation of the original's
// `instance_init`: it always fails. It exists only so a host wiring up
// the sketch can see the same shape the original's class table had.
func InstanceInit() error { return ErrNotConstructible }
