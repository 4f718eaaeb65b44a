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
	"encoding/hex"

	"github.com/jetsetilly/govectrex/hardware/memory/addresses"
	"github.com/jetsetilly/govectrex/hardware/preferences"
)

// RAM represents the 1K of static RAM in the Vectrex. It is mirrored twice in
// the RAM area.
type RAM struct {
	AreaInfo

	prefs *preferences.Preferences

	RAM []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM(prefs *preferences.Preferences) *RAM {
	return &RAM{
		AreaInfo: AreaInfo{
			label:  "RAM",
			origin: addresses.OriginRAM,
			memtop: addresses.MemtopRAM,
		},
		prefs: prefs,
		RAM:   make([]uint8, addresses.RAMSize),
	}
}

// Reset contents of RAM.
func (ram *RAM) Reset() {
	for i := range ram.RAM {
		if ram.prefs != nil && ram.prefs.RandomState.Get().(bool) {
			ram.RAM[i] = uint8(ram.prefs.RandSrc.Intn(0xff))
		} else {
			ram.RAM[i] = 0
		}
	}
}

func (ram *RAM) String() string {
	return hex.Dump(ram.RAM)
}

// Peek is an implementation of the Area interface. Address must be
// normalised.
func (ram *RAM) Peek(address uint16) (uint8, error) {
	return ram.RAM[address&addresses.MaskRAM], nil
}

// Poke is an implementation of the Area interface. Address must be
// normalised.
func (ram *RAM) Poke(address uint16, value uint8) error {
	ram.RAM[address&addresses.MaskRAM] = value
	return nil
}
