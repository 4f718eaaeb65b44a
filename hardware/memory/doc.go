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

// Package memory implements the Vectrex memory bus. The CPU sees the bus
// through the cpubus.Memory interface:
//
//	    CPU ---- cpu bus ---- MEMORY ---- IO ---- VIA
//	                            |
//	                            |---- RAM
//	                            |
//	                            |---- BIOS
//	                            |
//	                             -<-- Cartridge
//
// The arrow pointing away from the Cartridge indicates that the CPU can only
// read from the cartridge. Writes to the cartridge and to the BIOS are
// ignored.
//
// The VIA is not owned by the memory package. Accesses to the VIA window are
// passed to an implementation of the IO interface, which in the emulator is
// the top level Vectrex type. This allows port writes to be forwarded to the
// analogue hardware as part of the bus write.
//
// Reads of unmapped addresses return a fill value (0x01 by default) and are
// never errors.
//
// Peek() and Poke() are the debugging functions. They reach the whole
// address space without side effects. Poke() writes through to the ROM
// arrays.
package memory
