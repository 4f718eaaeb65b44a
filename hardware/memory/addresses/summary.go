// This file is part of Govectrex.
//
// Govectrex is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Govectrex is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Govectrex.  If not, see <https://www.gnu.org/licenses/>.

package addresses

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	var area, current Area
	var a, sa uint32

	s := strings.Builder{}

	_, current = MapAddress(0)

	// the loop counter is wider than an address so that the loop can reach
	// the top of memory without overflowing
	for a = 1; a <= uint32(MemtopBIOS); a++ {
		_, area = MapAddress(uint16(a))
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current.String()))
			current = area
			sa = a
		}
	}

	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current.String()))

	return s.String()
}
