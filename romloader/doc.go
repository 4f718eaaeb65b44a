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

// Package romloader is used to specify the ROM data that is to be attached to
// the emulated Vectrex. A ROM is either a BIOS image or a cartridge image.
//
// The Load() function handles loading of the data from different sources.
// Local files and data over HTTP are supported.
//
//	ld := romloader.NewLoader("roms/minestorm.bin")
//	err := ld.Load()
//
// After a successful load the Hash field contains the SHA1 of the data. If the
// Hash field was set before the load then it is used to validate the data.
package romloader
