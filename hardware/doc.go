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

// Package hardware is the base package for the Vectrex emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Vectrex type is the root of the emulation and owns the CPU, the memory
// bus, the VIA, the beam integrator and the PSG. None of the components hold
// a reference to another. The Vectrex type implements the IO interface of the
// memory package and so all VIA accesses made by the CPU pass through it. This
// is where the analogue circuitry that connects the VIA to the integrator and
// to the PSG is emulated.
//
// The Step() function advances the emulation by one CPU instruction. The
// Run() and RunForFrameCount() functions are loops around Step().
package hardware
