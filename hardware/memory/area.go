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

package memory

// Area defines the debugging operations for all memory areas. Addresses are
// normalised before being passed to the Peek() and Poke() functions.
type Area interface {
	Label() string
	Origin() uint16
	Memtop() uint16
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// AreaInfo provides the basic info needed to define a memory area. All memory
// areas embed AreaInfo alongside the implementation of the Area interface.
type AreaInfo struct {
	label  string
	origin uint16
	memtop uint16
}

// Label returns the name of the memory area.
func (a AreaInfo) Label() string {
	return a.label
}

// Origin returns the first address of the memory area.
func (a AreaInfo) Origin() uint16 {
	return a.origin
}

// Memtop returns the last address of the memory area.
func (a AreaInfo) Memtop() uint16 {
	return a.memtop
}
