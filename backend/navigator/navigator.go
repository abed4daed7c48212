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

// Package navigator defines the capability `getURL`/`fscommand` and
// `ExternalInterface` outbound calls delegate to: opening a URL, posting
// a form, or handing a command to the embedding page. This module never
// performs the navigation itself.
package navigator

// Request describes an outbound navigation request.
type Request struct {
	URL     string
	Target  string
	Method  string // "GET", "POST", or "" for fscommand-style calls
	Vars    map[string]string
}

// Backend is the capability a host implements to act on navigation
// requests queued by AVM1 script.
type Backend interface {
	Navigate(req Request)
}

// Null records nothing and performs no navigation, for headless/test
// use. Recorded requests are retrievable via Requests for assertions.
type Null struct {
	Requests []Request
}

func (n *Null) Navigate(req Request) { n.Requests = append(n.Requests, req) }

var _ Backend = &Null{}
