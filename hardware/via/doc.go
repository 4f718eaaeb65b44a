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

// Package via implements the 6522 Versatile Interface Adapter as used in the
// Vectrex. The VIA has two 16 bit timers, an 8 bit shift register and two 8
// bit ports, each with a data direction register.
//
// The VIA knows nothing about what the port bits mean. Port writes are seen
// by the owner of the VIA (the Vectrex type in the hardware package) which
// forwards the port values to the beam integrator and to the PSG.
//
// The VIA is advanced by calling Tick() with the number of CPU cycles that
// have elapsed. The state of the IRQ line is returned by IRQ().
//
// Timer two is one-shot only. When the pulse counting mode is selected in
// the ACR the timer stops counting, because there are no pulses on PB6 in
// the Vectrex.
package via
