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

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Cartridge:
		return "Cartridge"
	case Unmapped:
		return "Unmapped"
	case RAM:
		return "RAM"
	case VIA:
		return "VIA"
	case VIAAndRAM:
		return "VIA+RAM"
	case BIOS:
		return "BIOS"
	}
	return "undefined"
}

// The different memory areas in the Vectrex.
const (
	Undefined Area = iota
	Cartridge
	Unmapped
	RAM
	VIA
	VIAAndRAM
	BIOS
)

// The origin and memory top for each area of memory.
const (
	OriginCart      = uint16(0x0000)
	MemtopCart      = uint16(0x7fff)
	OriginUnmapped  = uint16(0x8000)
	MemtopUnmapped  = uint16(0xc7ff)
	OriginRAM       = uint16(0xc800)
	MemtopRAM       = uint16(0xcfff)
	OriginVIA       = uint16(0xd000)
	MemtopVIA       = uint16(0xd7ff)
	OriginVIAAndRAM = uint16(0xd800)
	MemtopVIAAndRAM = uint16(0xdfff)
	OriginBIOS      = uint16(0xe000)
	MemtopBIOS      = uint16(0xffff)
)

// Origin of the smaller of the two BIOS images.
const OriginBIOS4K = uint16(0xf000)

// Sizes of the cartridge window and of RAM.
const (
	CartridgeSize = int(MemtopCart-OriginCart) + 1
	RAMSize       = 1024
)

// Masks to apply to RAM and VIA addresses to remove the mirror bits.
const (
	MaskRAM = uint16(RAMSize - 1)
	MaskVIA = uint16(0x000f)
)

// MapAddress translates the address argument from mirror space to primary
// space. For RAM the result is an index into RAM and for the VIA it is the
// register number. Cartridge, BIOS and unmapped addresses are unchanged.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopCart:
		return address, Cartridge
	case address <= MemtopUnmapped:
		return address, Unmapped
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopVIA:
		return address & MaskVIA, VIA
	case address <= MemtopVIAAndRAM:
		return address & MaskVIA, VIAAndRAM
	}
	return address, BIOS
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
