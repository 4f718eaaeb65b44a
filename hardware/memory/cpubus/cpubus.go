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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The Memory type in the memory package implements this interface and
// maps the address to the correct memory area.
//
// Reads of unmapped addresses return a fill value rather than an error. A CPU
// access can not fail.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Addresses of the interrupt vectors. Each vector is two bytes, most
// significant byte first.
const (
	SWI3  = uint16(0xfff2)
	SWI2  = uint16(0xfff4)
	FIRQ  = uint16(0xfff6)
	IRQ   = uint16(0xfff8)
	SWI   = uint16(0xfffa)
	NMI   = uint16(0xfffc)
	Reset = uint16(0xfffe)
)
