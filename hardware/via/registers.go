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

package via

// Interrupt flag bits in the IFR and IER registers.
const (
	FlagCA2 uint8 = 0x01
	FlagCA1 uint8 = 0x02
	FlagSR  uint8 = 0x04
	FlagCB2 uint8 = 0x08
	FlagCB1 uint8 = 0x10
	FlagT2  uint8 = 0x20
	FlagT1  uint8 = 0x40

	// bit 7 of IFR is derived from the other bits. in the IER it is the
	// set/clear control bit
	FlagIRQ uint8 = 0x80
)

// Bits in the auxiliary control register.
const (
	// T1 drives PB7
	acrT1PB7 uint8 = 0x80

	// T1 free-run (continuous) mode
	acrT1FreeRun uint8 = 0x40

	// T2 counts pulses on PB6 rather than clock cycles
	acrT2PulseCount uint8 = 0x20

	// shift register mode bits
	acrShiftMode uint8 = 0x1c

	// shift register shifts out on CB2
	acrShiftOut uint8 = 0x10
)

// Modes of the CA2 and CB2 control lines as decoded from the PCR. Only the
// manual output modes are used by the Vectrex.
const (
	pcrManualLow  uint8 = 0x06
	pcrManualHigh uint8 = 0x07
)

// portValue returns the effective value of a port. Output bits come from
// the output register and input bits come from the input pins.
func portValue(or uint8, ir uint8, ddr uint8) uint8 {
	return (or & ddr) | (ir & ^ddr)
}
