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

// Package instructions defines the 6809 instruction set. There is one
// Definition for every opcode on each of the three opcode pages. Page zero is
// the base page. Pages one and two are selected by the 0x10 and 0x11 prefix
// bytes.
//
// The tables are built once, at package initialisation, and never change.
// Use Lookup() to find the Definition for a page/opcode pair. Opcodes that
// have no definition are returned by Undefined().
package instructions
