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

import "github.com/jetsetilly/govectrex/hardware/cpu/instructions"

// the ALU operates on 8 and 16 bit values. in both cases the values are held
// in a uint16 and the width decides which bit is the sign bit and where the
// carry comes from.

func widthMask(w instructions.Width) (mask uint16, sign uint16) {
	if w == instructions.Word {
		return 0xffff, 0x8000
	}
	return 0x00ff, 0x0080
}

// setNZ sets the negative and zero flags for the result.
func (mc *CPU) setNZ(r uint16, w instructions.Width) {
	mask, sign := widthMask(w)
	mc.CC.Negative = r&sign == sign
	mc.CC.Zero = r&mask == 0
}

// add b to a with optional carry in. sets the H flag for 8 bit additions
// only.
func (mc *CPU) add(a, b uint16, carry bool, w instructions.Width) uint16 {
	mask, sign := widthMask(w)

	c := uint32(0)
	if carry {
		c = 1
	}
	sum := uint32(a&mask) + uint32(b&mask) + c
	r := uint16(sum) & mask

	mc.CC.Carry = sum > uint32(mask)
	mc.CC.Overflow = (a^r)&(b^r)&sign == sign
	if w == instructions.Byte {
		mc.CC.HalfCarry = (a^b^r)&0x10 == 0x10
	}
	mc.setNZ(r, w)

	return r
}

// sub subtracts b from a with optional borrow in. the C flag is set when a
// borrow is required.
func (mc *CPU) sub(a, b uint16, borrow bool, w instructions.Width) uint16 {
	mask, sign := widthMask(w)

	c := uint32(0)
	if borrow {
		c = 1
	}
	a32 := uint32(a & mask)
	b32 := uint32(b & mask)
	r := uint16(a32-b32-c) & mask

	mc.CC.Carry = a32 < b32+c
	mc.CC.Overflow = (a^b)&(a^r)&sign == sign
	mc.setNZ(r, w)

	return r
}

// logic sets the flags for the result of a logical operation or a load/store.
// the V flag is always cleared.
func (mc *CPU) logic(r uint16, w instructions.Width) uint16 {
	mc.setNZ(r, w)
	mc.CC.Overflow = false
	return r
}

// unary performs the single operand read-modify-write operations. C and V are
// affected according to the operator.
func (mc *CPU) unary(op instructions.Operator, v uint8) uint8 {
	var r uint8

	switch op {
	case instructions.NEG:
		return uint8(mc.sub(0, uint16(v), false, instructions.Byte))

	case instructions.COM:
		r = ^v
		mc.CC.Overflow = false
		mc.CC.Carry = true

	case instructions.LSR:
		mc.CC.Carry = v&0x01 == 0x01
		r = v >> 1

	case instructions.ROR:
		r = v >> 1
		if mc.CC.Carry {
			r |= 0x80
		}
		mc.CC.Carry = v&0x01 == 0x01

	case instructions.ASR:
		mc.CC.Carry = v&0x01 == 0x01
		r = (v >> 1) | (v & 0x80)

	case instructions.ASL:
		mc.CC.Carry = v&0x80 == 0x80
		mc.CC.Overflow = (v^(v<<1))&0x80 == 0x80
		r = v << 1

	case instructions.ROL:
		r = v << 1
		if mc.CC.Carry {
			r |= 0x01
		}
		mc.CC.Carry = v&0x80 == 0x80
		mc.CC.Overflow = (v^(v<<1))&0x80 == 0x80

	case instructions.DEC:
		mc.CC.Overflow = v == 0x80
		r = v - 1

	case instructions.INC:
		mc.CC.Overflow = v == 0x7f
		r = v + 1

	case instructions.TST:
		mc.CC.Overflow = false
		r = v

	case instructions.CLR:
		mc.CC.Overflow = false
		mc.CC.Carry = false
		r = 0
	}

	mc.setNZ(uint16(r), instructions.Byte)
	return r
}

// daa adjusts the A register after a BCD addition.
func (mc *CPU) daa() {
	a := mc.A.Value()
	msn := a & 0xf0
	lsn := a & 0x0f

	var adj uint16
	if lsn > 0x09 || mc.CC.HalfCarry {
		adj |= 0x06
	}
	if (msn > 0x80 && lsn > 0x09) || msn > 0x90 || mc.CC.Carry {
		adj |= 0x60
	}

	r := uint16(a) + adj
	mc.CC.Carry = mc.CC.Carry || r > 0xff
	mc.A.Load(uint8(r))
	mc.logic(r&0xff, instructions.Byte)
}

// mul multiplies A and B and stores the result in D. C is bit 7 of the
// result.
func (mc *CPU) mul() {
	r := uint16(mc.A.Value()) * uint16(mc.B.Value())
	mc.SetD(r)
	mc.CC.Zero = r == 0
	mc.CC.Carry = r&0x0080 == 0x0080
}

// sex sign extends B into A.
func (mc *CPU) sex() {
	if mc.B.IsNegative() {
		mc.A.Load(0xff)
	} else {
		mc.A.Load(0x00)
	}
	mc.logic(mc.D(), instructions.Word)
}
