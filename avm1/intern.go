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

import (
	"encoding/binary"
	"math"
	"strconv"
	"sync"

	"github.com/VictoriaMetrics/fastcache"
)

// InternedString is a canonical, pointer-comparable handle for a string
// Value. Two Values built from equal strings share the same
// InternedString, so StrictEquals on strings is a pointer compare in the
// common case before falling back to a byte compare.
type InternedString struct {
	s string
}

func (is *InternedString) String() string {
	if is == nil {
		return ""
	}
	return is.s
}

// Interner deduplicates the string backing an interned Value and caches
// the shortest round-trip decimal form of recently converted numbers,
// since constant pools tend to reuse both.
type Interner struct {
	mu    sync.Mutex
	table map[string]*InternedString
	nums  *fastcache.Cache
}

// NewInterner creates an Interner with a numeric-conversion cache sized
// for a single movie's worth of constant-pool churn.
func NewInterner(numberCacheBytes int) *Interner {
	return &Interner{
		table: make(map[string]*InternedString),
		nums:  fastcache.New(numberCacheBytes),
	}
}

// globalInterner backs package-level helpers (NewString, numberToString)
// that don't have a per-VM Interner handy. An Interner passed to
// WithInterner is stored on the Avm1 but not consulted: package-level
// string construction and number formatting always go through this
// shared table.
var globalInterner = NewInterner(64 * 1024)

// Intern returns the canonical InternedString for s.
func (in *Interner) Intern(s string) *InternedString {
	in.mu.Lock()
	defer in.mu.Unlock()
	if existing, ok := in.table[s]; ok {
		return existing
	}
	is := &InternedString{s: s}
	in.table[s] = is
	return is
}

// numberToString formats n in the given radix, consulting the decimal
// cache first for the common radix-10 case.
func numberToString(n float64, radix int) string {
	if radix == 10 {
		return globalInterner.decimalString(n)
	}
	return formatRadix(n, radix)
}

// FormatNumber formats n in the given radix the way
// Number.prototype.toString does, including the TO_STRING_NANS table for
// non-finite receivers at radix != 10. Exported for avm1/globals, which
// implements that method.
func FormatNumber(n float64, radix int) string {
	return numberToString(n, radix)
}

func (in *Interner) decimalString(n float64) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	if math.IsInf(n, 1) {
		return "Infinity"
	}
	if math.IsInf(n, -1) {
		return "-Infinity"
	}
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], math.Float64bits(n))
	if cached := in.nums.Get(nil, key[:]); cached != nil {
		return string(cached)
	}
	s := strconv.FormatFloat(n, 'g', -1, 64)
	in.nums.Set(key[:], []byte(s))
	return s
}
