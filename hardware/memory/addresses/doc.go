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

// Package addresses describes the Vectrex memory map and the register layout
// of the VIA. MapAddress() decides which area an address belongs to and
// normalises the address for that area.
//
// The map is fixed:
//
//	0000 -> 7fff	Cartridge
//	8000 -> c7ff	Unmapped
//	c800 -> cfff	RAM (1K mirrored)
//	d000 -> d7ff	VIA (16 registers mirrored)
//	d800 -> dfff	VIA and RAM
//	e000 -> ffff	BIOS
//
// The BIOS area is mapped according to the size of the BIOS image. See the
// memory package for details.
package addresses
