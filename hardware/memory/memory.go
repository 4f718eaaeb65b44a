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
	"github.com/jetsetilly/govectrex/hardware/memory/addresses"
	"github.com/jetsetilly/govectrex/hardware/preferences"
	"github.com/jetsetilly/govectrex/logger"
)

// Sentinal error patterns.
const (
	BIOSSize          = "memory: bios must be 4096 or 8192 bytes (%d bytes)"
	CartridgeTooLarge = "memory: cartridge too large (%d bytes)"
	UnmappedAddress   = "memory: address is unmapped (%#04x)"
)

// Valid BIOS sizes.
const (
	BIOSSize4K = 4096
	BIOSSize8K = 8192
)

// IO is the interface to the VIA register window. The reg argument is the
// register number in the range 0 to 15.
type IO interface {
	Read(reg uint8) uint8
	Write(reg uint8, data uint8)

	// Peek returns the register value without side effects
	Peek(reg uint8) uint8
}

// Memory is the Vectrex memory bus. It implements the cpubus.Memory
// interface.
type Memory struct {
	prefs *preferences.Preferences

	RAM  *RAM
	BIOS *ROM
	Cart *ROM

	io IO
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(prefs *preferences.Preferences) *Memory {
	return &Memory{
		prefs: prefs,
		RAM:   NewRAM(prefs),
		BIOS:  newROM("BIOS", addresses.OriginBIOS, addresses.MemtopBIOS),
		Cart:  newROM("Cartridge", addresses.OriginCart, addresses.MemtopCart),
	}
}

func (mem *Memory) String() string {
	return mem.RAM.String()
}

// Plumb the IO implementation into the memory bus.
func (mem *Memory) Plumb(io IO) {
	mem.io = io
}

// Reset the contents of RAM. ROM images are unaffected.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
}

// Areas returns the memory areas in address order.
func (mem *Memory) Areas() []Area {
	return []Area{mem.Cart, mem.RAM, mem.BIOS}
}

func (mem *Memory) fill() uint8 {
	if mem.prefs == nil {
		return preferences.DefaultUnmappedFill
	}
	return uint8(mem.prefs.UnmappedFill.Get().(int))
}

// LoadBIOS copies the BIOS image into memory. An 8K image is mapped at
// 0xe000 and a 4K image is mapped at 0xf000.
func (mem *Memory) LoadBIOS(data []uint8) error {
	switch len(data) {
	case BIOSSize8K:
		mem.BIOS.origin = addresses.OriginBIOS
	case BIOSSize4K:
		mem.BIOS.origin = addresses.OriginBIOS4K
	default:
		return curated.Errorf(BIOSSize, len(data))
	}

	mem.BIOS.data = make([]uint8, len(data))
	copy(mem.BIOS.data, data)
	logger.Logf(logger.Allow, "memory", "bios mapped at %#04x", mem.BIOS.origin)

	return nil
}

// LoadCartridge copies the cartridge image into memory at 0x0000. An empty
// image is the same as having no cartridge inserted.
func (mem *Memory) LoadCartridge(data []uint8) error {
	if len(data) > addresses.CartridgeSize {
		return curated.Errorf(CartridgeTooLarge, len(data))
	}

	mem.Cart.data = make([]uint8, len(data))
	copy(mem.Cart.data, data)
	logger.Logf(logger.Allow, "memory", "cartridge of %d bytes", len(data))

	return nil
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	n, area := addresses.MapAddress(address)

	switch area {
	case addresses.Cartridge:
		if v, ok := mem.Cart.read(n); ok {
			return v
		}
	case addresses.BIOS:
		if v, ok := mem.BIOS.read(n); ok {
			return v
		}
	case addresses.RAM:
		return mem.RAM.RAM[n]
	case addresses.VIA, addresses.VIAAndRAM:
		if mem.io != nil {
			return mem.io.Read(uint8(n))
		}
	}

	return mem.fill()
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	n, area := addresses.MapAddress(address)

	switch area {
	case addresses.RAM:
		mem.RAM.RAM[n] = data
	case addresses.VIA:
		if mem.io != nil {
			mem.io.Write(uint8(n), data)
		}
	case addresses.VIAAndRAM:
		// both chips are selected
		mem.RAM.RAM[address&addresses.MaskRAM] = data
		if mem.io != nil {
			mem.io.Write(uint8(n), data)
		}
	default:
		logger.Logf(logger.Allow, "memory", "ignored write to %s (%#04x)", area, address)
	}
}

// Peek returns the value at the address without side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	n, area := addresses.MapAddress(address)

	switch area {
	case addresses.Cartridge:
		if v, err := mem.Cart.Peek(n); err == nil {
			return v
		}
	case addresses.BIOS:
		if v, err := mem.BIOS.Peek(n); err == nil {
			return v
		}
	case addresses.RAM:
		v, _ := mem.RAM.Peek(n)
		return v
	case addresses.VIA, addresses.VIAAndRAM:
		if mem.io != nil {
			return mem.io.Peek(uint8(n))
		}
	}

	return mem.fill()
}

// Poke writes the value to the address without side effects. Writes to the
// cartridge and BIOS areas change the ROM image. Poking an address that is
// not backed by RAM or ROM returns an error.
func (mem *Memory) Poke(address uint16, value uint8) error {
	n, area := addresses.MapAddress(address)

	switch area {
	case addresses.Cartridge:
		return mem.Cart.Poke(n, value)
	case addresses.BIOS:
		return mem.BIOS.Poke(n, value)
	case addresses.RAM:
		return mem.RAM.Poke(n, value)
	case addresses.VIAAndRAM:
		return mem.RAM.Poke(address, value)
	}

	return curated.Errorf(UnmappedAddress, address)
}
