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

import (
	"github.com/jetsetilly/govectrex/curated"
)

// ROM is a read only memory area. It is used for both the BIOS and the
// cartridge. The data may be smaller than the area in which case the
// remainder of the area is unmapped.
type ROM struct {
	AreaInfo

	data []uint8
}

func newROM(label string, origin uint16, memtop uint16) *ROM {
	return &ROM{
		AreaInfo: AreaInfo{
			label:  label,
			origin: origin,
			memtop: memtop,
		},
	}
}

// Size returns the number of bytes in the ROM image.
func (rom *ROM) Size() int {
	return len(rom.data)
}

// Data returns the ROM image. The returned slice should not be altered.
func (rom *ROM) Data() []uint8 {
	return rom.data
}

// read returns the byte at the address and true if the address is covered
// by the ROM image.
func (rom *ROM) read(address uint16) (uint8, bool) {
	if address < rom.origin {
		return 0, false
	}
	idx := int(address - rom.origin)
	if idx >= len(rom.data) {
		return 0, false
	}
	return rom.data[idx], true
}

// Peek is an implementation of the Area interface.
func (rom *ROM) Peek(address uint16) (uint8, error) {
	v, ok := rom.read(address)
	if !ok {
		return 0, curated.Errorf(UnmappedAddress, address)
	}
	return v, nil
}

// Poke is an implementation of the Area interface. Poke writes through to
// the ROM image.
func (rom *ROM) Poke(address uint16, value uint8) error {
	if _, ok := rom.read(address); !ok {
		return curated.Errorf(UnmappedAddress, address)
	}
	rom.data[address-rom.origin] = value
	return nil
}
