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

import (
	"fmt"

	"github.com/jetsetilly/govectrex/hardware/memory/addresses"
	"github.com/jetsetilly/govectrex/logger"
)

// VIA implements the 6522 Versatile Interface Adapter.
type VIA struct {
	// output registers
	ORA uint8
	ORB uint8

	// input pins
	IRA uint8
	IRB uint8

	// data direction registers. a set bit means the pin is an output
	DDRA uint8
	DDRB uint8

	T1 Timer1
	T2 Timer2
	SR ShiftRegister

	ACR uint8
	PCR uint8

	// bit 7 of IFR is never stored. see IFRValue()
	IFR uint8
	IER uint8
}

// NewVIA is the preferred method of initialisation for the VIA type.
func NewVIA() *VIA {
	via := &VIA{}
	via.Reset()
	return via
}

// Reset the VIA to its power on state.
func (via *VIA) Reset() {
	*via = VIA{
		IRA: 0xff,
		IRB: 0xff,
	}
}

func (via *VIA) String() string {
	return fmt.Sprintf("ORA=%#02x ORB=%#02x DDRA=%#02x DDRB=%#02x ACR=%#02x PCR=%#02x IFR=%#02x IER=%#02x %s %s %s",
		via.ORA, via.ORB, via.DDRA, via.DDRB, via.ACR, via.PCR, via.IFRValue(), via.IER|FlagIRQ,
		via.T1, via.T2, via.SR)
}

// IFRValue returns the value of the IFR with bit 7 set if any enabled flag is
// set.
func (via *VIA) IFRValue() uint8 {
	if via.IFR&via.IER&0x7f != 0 {
		return via.IFR | FlagIRQ
	}
	return via.IFR
}

// IRQ returns the state of the IRQ output. The CPU's IRQ line is active when
// this returns true.
func (via *VIA) IRQ() bool {
	return via.IFR&via.IER&0x7f != 0
}

// PortA returns the effective value of port A.
func (via *VIA) PortA() uint8 {
	return portValue(via.ORA, via.IRA, via.DDRA)
}

// PortB returns the effective value of port B. When ACR bit 7 is set PB7 is
// driven by timer 1.
func (via *VIA) PortB() uint8 {
	return via.timerPB7(portValue(via.ORB, via.IRB, via.DDRB))
}

// OutputA returns the port A output latch. Circuits that snoop the port see
// the latch whatever the DDR holds.
func (via *VIA) OutputA() uint8 {
	return via.ORA
}

// OutputB returns the port B output latch, with PB7 driven by timer 1 when
// ACR bit 7 is set. The DDR is not applied.
func (via *VIA) OutputB() uint8 {
	return via.timerPB7(via.ORB)
}

func (via *VIA) timerPB7(v uint8) uint8 {
	if via.ACR&acrT1PB7 == acrT1PB7 {
		v &= 0x7f
		if via.T1.PB7 {
			v |= 0x80
		}
	}
	return v
}

// SetInputA sets the value of the port A input pins.
func (via *VIA) SetInputA(v uint8) {
	via.IRA = v
}

// SetInputB sets the value of the port B input pins.
func (via *VIA) SetInputB(v uint8) {
	via.IRB = v
}

// CA2 returns the state of the CA2 output. Only the manual output modes are
// decoded. Other modes leave the line high.
func (via *VIA) CA2() bool {
	return (via.PCR>>1)&0x07 != pcrManualLow
}

// CB2 returns the state of the CB2 output. When the shift register is
// shifting out, CB2 is the shift register output.
func (via *VIA) CB2() bool {
	if via.ACR&acrShiftOut == acrShiftOut {
		return via.SR.CB2
	}
	return (via.PCR>>5)&0x07 != pcrManualLow
}

func (via *VIA) shiftEnabled() bool {
	return via.ACR&acrShiftMode != 0
}

// Tick advances the timers and the shift register by the number of cycles.
func (via *VIA) Tick(cycles int) {
	freeRun := via.ACR&acrT1FreeRun == acrT1FreeRun
	pulseCount := via.ACR&acrT2PulseCount == acrT2PulseCount
	shift := via.shiftEnabled()

	for i := 0; i < cycles; i++ {
		if via.T1.step(freeRun) {
			via.IFR |= FlagT1
		}

		if !pulseCount && via.T2.step() {
			via.IFR |= FlagT2
		}

		if shift && via.SR.Update(1) {
			via.IFR |= FlagSR
		}
	}
}

// Read the VIA register. Some reads have side effects on the IFR.
func (via *VIA) Read(reg uint8) uint8 {
	v := via.Peek(reg)

	switch addresses.ViaRegister(reg & 0x0f) {
	case addresses.ORB:
		via.IFR &^= FlagCB1 | FlagCB2
	case addresses.ORA:
		via.IFR &^= FlagCA1 | FlagCA2
	case addresses.T1CL:
		via.IFR &^= FlagT1
	case addresses.T2CL:
		via.IFR &^= FlagT2
	case addresses.SR:
		via.IFR &^= FlagSR
		via.SR.restart()
	}

	return v
}

// Peek returns the value of the VIA register without side effects.
func (via *VIA) Peek(reg uint8) uint8 {
	switch addresses.ViaRegister(reg & 0x0f) {
	case addresses.ORB:
		return via.PortB()
	case addresses.ORA, addresses.ORANoHandshake:
		return via.PortA()
	case addresses.DDRB:
		return via.DDRB
	case addresses.DDRA:
		return via.DDRA
	case addresses.T1CL:
		return uint8(via.T1.Counter)
	case addresses.T1CH:
		return uint8(via.T1.Counter >> 8)
	case addresses.T1LL:
		return uint8(via.T1.Latch)
	case addresses.T1LH:
		return uint8(via.T1.Latch >> 8)
	case addresses.T2CL:
		return uint8(via.T2.Counter)
	case addresses.T2CH:
		return uint8(via.T2.Counter >> 8)
	case addresses.SR:
		return via.SR.Value
	case addresses.ACR:
		return via.ACR
	case addresses.PCR:
		return via.PCR
	case addresses.IFR:
		return via.IFRValue()
	case addresses.IER:
		return via.IER | FlagIRQ
	}
	return 0
}

// Write the VIA register.
func (via *VIA) Write(reg uint8, data uint8) {
	switch addresses.ViaRegister(reg & 0x0f) {
	case addresses.ORB:
		via.ORB = data
		via.IFR &^= FlagCB1 | FlagCB2
	case addresses.ORA:
		via.ORA = data
		via.IFR &^= FlagCA1 | FlagCA2
	case addresses.ORANoHandshake:
		via.ORA = data
	case addresses.DDRB:
		via.DDRB = data
	case addresses.DDRA:
		via.DDRA = data
	case addresses.T1CL, addresses.T1LL:
		via.T1.Latch = via.T1.Latch&0xff00 | uint16(data)
	case addresses.T1CH:
		via.T1.Latch = via.T1.Latch&0x00ff | uint16(data)<<8
		via.T1.start()
		via.IFR &^= FlagT1
	case addresses.T1LH:
		via.T1.Latch = via.T1.Latch&0x00ff | uint16(data)<<8
		via.IFR &^= FlagT1
	case addresses.T2CL:
		via.T2.LatchLo = data
	case addresses.T2CH:
		via.T2.start(data)
		via.IFR &^= FlagT2
	case addresses.SR:
		via.SR.SetValue(data)
		via.IFR &^= FlagSR
	case addresses.ACR:
		if data&acrT2PulseCount == acrT2PulseCount && via.ACR&acrT2PulseCount == 0 {
			logger.Log(logger.Allow, "via", "T2 pulse counting selected. T2 will not count")
		}
		via.ACR = data
	case addresses.PCR:
		via.PCR = data
	case addresses.IFR:
		via.IFR &^= data & 0x7f
	case addresses.IER:
		if data&FlagIRQ == FlagIRQ {
			via.IER |= data & 0x7f
		} else {
			via.IER &^= data & 0x7f
		}
	}
}
