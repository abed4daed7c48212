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

import "math"

// digits is the radix alphabet Number.prototype.toString uses for
// non-decimal bases, lifted verbatim from Flash Player's own table.
const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// toStringNaNs is the bit-exact table Flash Player returns for
// Number.prototype.toString(radix) on a non-finite receiver at a radix
// other than 10, indexed by radix-2 (radix 2..36). This table was
// generated in Flash; there is no known derivation for these strings —
// reproduced exactly as observed.
var toStringNaNs = [35]string{
	"-/0000000000000000000000000000000",
	"-/.//./..././/0.0./0.",
	"-.000000000000000",
	"-/--,,..-,-,0,-",
	"-++-0-.00++-.",
	"-/0,/-,.///*.",
	"-.0000000000",
	"-+,)())-*).",
	"NaN",
	"-&0...0.(.",
	"-,%%.-0(&(",
	"-.(.%&,&&%",
	"-/*+.$&'-.",
	"-$()\x22**%(",
	"-(0000000",
	"-+- )!+,'",
	"--'.( -\x1F.",
	"-.)$+)\x1F--",
	"-/#%/!'.(",
	"-/,0\x1F.#'.",
	"-\x1E\x1C!+%!.",
	"-\x22%\x22\x1B!'*",
	"-%+  \x22+(",
	"-(\x1D\x1A#\x19\x1C\x19",
	"-*\x18\x1D(\x1E\x18\x18",
	"-+\x22\x1F\x19$\x1C%",
	"-,$\x1B\x1A'( ",
	"--\x1F\x1C)'((",
	"-.\x14%*$\x14(",
	"-.#0'\x12$.",
	"-.000000",
	"-/\x1B\x14\x16\x13\x1B.",
	"-/#(\x0F\x16\x15\x16",
	"-/+\x11..\x12\x19",
	"-\x0D\x1E\x1C0\x0D\x1C",
}

// formatRadix implements Number.prototype.toString(radix) for radix != 10.
// Finite values are converted through the wrapping-i32 wire representation
// Flash uses for non-decimal number formatting; non-finite values look up
// toStringNaNs directly instead of going through the normal algorithm.
func formatRadix(n float64, radix int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		idx := radix - 2
		if idx < 0 || idx >= len(toStringNaNs) {
			return "NaN"
		}
		return toStringNaNs[idx]
	}

	v := f64ToWrappingI32(n)
	neg := v < 0
	var u uint32
	if v < 0 {
		u = uint32(-v)
	} else {
		u = uint32(v)
	}

	if u == 0 {
		return "0"
	}

	var buf [64]byte
	pos := len(buf)
	base := uint32(radix)
	for u > 0 {
		pos--
		buf[pos] = digits[u%base]
		u /= base
	}
	s := string(buf[pos:])
	if neg {
		return "-" + s
	}
	return s
}
