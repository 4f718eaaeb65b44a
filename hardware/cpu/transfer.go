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

package cpu

import "github.com/jetsetilly/govectrex/hardware/cpu/registers"

// register codes used by the EXG and TFR postbyte. codes below 8 are 16 bit
// registers.
const (
	codeD  = 0x0
	codeX  = 0x1
	codeY  = 0x2
	codeU  = 0x3
	codeS  = 0x4
	codePC = 0x5
	codeA  = 0x8
	codeB  = 0x9
	codeCC = 0xa
	codeDP = 0xb
)

// readTransfer returns the value of the register with the code. an invalid
// code reads as 0xffff.
func (mc *CPU) readTransfer(code uint8) (v uint16, wide bool) {
	switch code {
	case codeD:
		return mc.D(), true
	case codeX:
		return mc.X.Value(), true
	case codeY:
		return mc.Y.Value(), true
	case codeU:
		return mc.U.Value(), true
	case codeS:
		return mc.S.Value(), true
	case codePC:
		return mc.PC.Value(), true
	case codeA:
		return uint16(mc.A.Value()), false
	case codeB:
		return uint16(mc.B.Value()), false
	case codeCC:
		return uint16(mc.CC.Value()), false
	case codeDP:
		return uint16(mc.DP.Value()), false
	}
	return 0xffff, true
}

// writeTransfer loads the register with the code. an 8 bit value written to
// a 16 bit register has a high byte of 0xff. a 16 bit value written to an 8
// bit register is truncated. writes to an invalid code are ignored.
func (mc *CPU) writeTransfer(code uint8, v uint16, wide bool) {
	if code < codeA && !wide {
		v = 0xff00 | (v & 0x00ff)
	}

	switch code {
	case codeD:
		mc.SetD(v)
	case codeX:
		mc.X.Load(v)
	case codeY:
		mc.Y.Load(v)
	case codeU:
		mc.U.Load(v)
	case codeS:
		mc.LoadS(v)
	case codePC:
		mc.PC.Load(v)
	case codeA:
		mc.A.Load(uint8(v))
	case codeB:
		mc.B.Load(uint8(v))
	case codeCC:
		mc.CC.FromValue(uint8(v))
	case codeDP:
		mc.DP.Load(uint8(v))
	}
}

// tfr copies the source register (high nibble of postbyte) to the
// destination register (low nibble).
func (mc *CPU) tfr(postbyte uint8) {
	v, wide := mc.readTransfer(postbyte >> 4)
	mc.writeTransfer(postbyte&0x0f, v, wide)
}

// exg exchanges the two registers named by the postbyte.
func (mc *CPU) exg(postbyte uint8) {
	a, aw := mc.readTransfer(postbyte >> 4)
	b, bw := mc.readTransfer(postbyte & 0x0f)
	mc.writeTransfer(postbyte>>4, b, bw)
	mc.writeTransfer(postbyte&0x0f, a, aw)
}

// stack operations. the stack grows downwards. 16 bit values are pushed low
// byte first so that they appear in memory most significant byte first.

func (mc *CPU) push8(sp *registers.Register16, v uint8) {
	sp.Add(-1)
	mc.write8(sp.Value(), v)
}

func (mc *CPU) push16(sp *registers.Register16, v uint16) {
	mc.push8(sp, uint8(v))
	mc.push8(sp, uint8(v>>8))
}

func (mc *CPU) pull8(sp *registers.Register16) uint8 {
	v := mc.read8(sp.Value())
	sp.Add(1)
	return v
}

func (mc *CPU) pull16(sp *registers.Register16) uint16 {
	hi := mc.pull8(sp)
	lo := mc.pull8(sp)
	return uint16(hi)<<8 | uint16(lo)
}
