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

// Package locale defines the capability System.capabilities' locale-
// dependent fields delegate to.
package locale

// Backend is the capability a host implements to report locale info.
type Backend interface {
	LanguageCode() string
	Timezone() (name string, offsetMinutes int)
}

// Null reports a fixed "en" / UTC locale, for headless/test use.
type Null struct{}

func (Null) LanguageCode() string                      { return "en" }
func (Null) Timezone() (string, int)                   { return "UTC", 0 }

var _ Backend = Null{}
