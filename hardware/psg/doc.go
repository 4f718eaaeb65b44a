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

// Package psg implements the AY-3-8912 programmable sound generator as found
// in the Vectrex. The PSG has three square wave tone channels, a noise
// generator shared by the channels and an envelope generator.
//
// The PSG is not connected to the CPU bus. It is driven through VIA port A
// (the data bus) and the BDIR and BC1 lines on port B. The SetBus() function
// implements the bus protocol:
//
//	BDIR BC1
//	  0   0   inactive
//	  0   1   read from the latched register
//	  1   0   write to the latched register
//	  1   1   latch register address
//
// The 8 bit IO port of the AY-3-8912 is connected to the four buttons of the
// Vectrex controller.
package psg
