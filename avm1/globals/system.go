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

package globals

import (
	"fmt"

	"github.com/flashruntime/avm1core/avm1"
)

// CreateSystemObject builds the `System` global as a thin stub: just
// `System.capabilities.version`, the one property scripts commonly
// branch on, rather than the dozens of real Player capability flags
// (screen resolution, player type, language, ...) that belong to a
// movie loader/host, not this VM core.
func CreateSystemObject(objectProto avm1.Object, version uint8) avm1.Object {
	caps := avm1.NewScriptObject(objectProto)
	attrs := avm1.NewAttributes(avm1.DontDelete, avm1.ReadOnly, avm1.DontEnum)
	caps.DefineValue("version", avm1.NewString(fmt.Sprintf("LNX %d,0,0,0", version)), attrs)

	sys := avm1.NewScriptObject(objectProto)
	sys.DefineValue("capabilities", avm1.NewObject(caps), attrs)
	return sys
}
