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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/govectrex/test"
)

func TestUnaryFlags(t *testing.T) {
	mc, mem := newCPU(t)

	run := func(opcode uint8, a uint8, carry bool) {
		t.Helper()
		mc.PC.Load(origin)
		mc.A.Load(a)
		mc.CC.Carry = carry
		mem.putInstructions(origin, opcode)
		step(t, mc)
	}

	// CLRA
	run(0x4f, 0x55, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.CC.Negative, false)
	test.ExpectEquality(t, mc.CC.Overflow, false)
	test.ExpectEquality(t, mc.CC.Carry, false)

	// COMA always sets carry
	run(0x43, 0x00, false)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.CC.Negative, true)
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Overflow, false)

	// NEGA of 0x80 overflows
	run(0x40, 0x80, false)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.CC.Overflow, true)
	test.ExpectEquality(t, mc.CC.Negative, true)
	test.ExpectEquality(t, mc.CC.Carry, true)

	// NEGA of zero clears carry
	run(0x40, 0x00, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.CC.Carry, false)
	test.ExpectEquality(t, mc.CC.Zero, true)

	// INCA and DECA do not affect carry
	run(0x4c, 0x7f, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.CC.Overflow, true)
	test.ExpectEquality(t, mc.CC.Carry, true)

	run(0x4a, 0x80, false)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x7f))
	test.ExpectEquality(t, mc.CC.Overflow, true)
	test.ExpectEquality(t, mc.CC.Carry, false)

	run(0x4a, 0x00, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.CC.Overflow, false)
	test.ExpectEquality(t, mc.CC.Carry, true)

	// TSTA clears overflow and leaves carry
	mc.CC.Overflow = true
	run(0x4d, 0x80, true)
	test.ExpectEquality(t, mc.CC.Negative, true)
	test.ExpectEquality(t, mc.CC.Overflow, false)
	test.ExpectEquality(t, mc.CC.Carry, true)

	// ASLA
	run(0x48, 0x40, false)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.CC.Overflow, true)
	test.ExpectEquality(t, mc.CC.Carry, false)

	run(0x48, 0xc0, false)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.CC.Overflow, false)
	test.ExpectEquality(t, mc.CC.Carry, true)

	// RORA rotates carry into bit 7
	run(0x46, 0x01, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Negative, true)

	// ASRA preserves the sign bit
	run(0x47, 0x81, false)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xc0))
	test.ExpectEquality(t, mc.CC.Carry, true)

	// LSRA clears negative
	run(0x44, 0x80, false)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x40))
	test.ExpectEquality(t, mc.CC.Negative, false)
	test.ExpectEquality(t, mc.CC.Carry, false)
}

func TestMemoryUnary(t *testing.T) {
	mc, mem := newCPU(t)

	// INC direct page
	mc.DP.Load(0x20)
	mem.Write(0x2010, 0x41)
	mem.putInstructions(origin, 0x0c, 0x10)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	mem.assert(t, 0x2010, 0x42)

	// CLR extended
	mem.putInstructions(origin+2, 0x7f, 0x20, 0x10)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	mem.assert(t, 0x2010, 0x00)
	test.ExpectEquality(t, mc.CC.Zero, true)
}

func TestArithmeticFlags(t *testing.T) {
	mc, mem := newCPU(t)

	run := func(a uint8, program ...uint8) {
		t.Helper()
		mc.PC.Load(origin)
		mc.A.Load(a)
		mem.putInstructions(origin, program...)
		step(t, mc)
	}

	// ADDA #1
	run(0x7f, 0x8b, 0x01)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.CC.Overflow, true)
	test.ExpectEquality(t, mc.CC.HalfCarry, true)
	test.ExpectEquality(t, mc.CC.Negative, true)
	test.ExpectEquality(t, mc.CC.Carry, false)

	run(0xff, 0x8b, 0x01)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.CC.Overflow, false)

	// ADCA #0 with carry in
	mc.CC.Carry = true
	run(0x0f, 0x89, 0x00)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))
	test.ExpectEquality(t, mc.CC.HalfCarry, true)

	// SUBA #1
	run(0x00, 0x80, 0x01)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Negative, true)

	run(0x80, 0x80, 0x01)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x7f))
	test.ExpectEquality(t, mc.CC.Overflow, true)
	test.ExpectEquality(t, mc.CC.Carry, false)

	// CMPA does not change the register
	run(0x10, 0x81, 0x20)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))
	test.ExpectEquality(t, mc.CC.Carry, true)

	// ANDA clears overflow
	mc.CC.Overflow = true
	run(0xf0, 0x84, 0x0f)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.CC.Overflow, false)

	// ADDD #1
	mc.PC.Load(origin)
	mc.SetD(0xffff)
	mem.putInstructions(origin, 0xc3, 0x00, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.D(), uint16(0x0000))
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Zero, true)

	// CMPX #1
	mc.PC.Load(origin)
	mc.X.Load(0x8000)
	mem.putInstructions(origin, 0x8c, 0x00, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.CC.Overflow, true)
	test.ExpectEquality(t, mc.CC.Negative, false)
	test.ExpectEquality(t, mc.X.Value(), uint16(0x8000))
}

func TestDAA(t *testing.T) {
	mc, mem := newCPU(t)

	// ADDA #1 ; DAA
	mem.putInstructions(origin, 0x8b, 0x01, 0x19)

	mc.A.Load(0x09)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))
	test.ExpectEquality(t, mc.CC.Carry, false)

	mc.PC.Load(origin)
	mc.A.Load(0x99)
	step(t, mc)
	mc.CC.Overflow = true
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.CC.Overflow, false)
}

func TestMulAndSex(t *testing.T) {
	mc, mem := newCPU(t)

	// MUL
	mem.putInstructions(origin, 0x3d)
	mc.A.Load(0x0c)
	mc.B.Load(0x10)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 11)
	test.ExpectEquality(t, mc.D(), uint16(0x00c0))
	test.ExpectEquality(t, mc.CC.Carry, true)
	test.ExpectEquality(t, mc.CC.Zero, false)

	mc.PC.Load(origin)
	mc.A.Load(0x00)
	mc.B.Load(0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.D(), uint16(0x0000))
	test.ExpectEquality(t, mc.CC.Zero, true)
	test.ExpectEquality(t, mc.CC.Carry, false)

	// SEX
	mem.putInstructions(origin, 0x1d)
	mc.PC.Load(origin)
	mc.B.Load(0x80)
	mc.CC.Overflow = true
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.CC.Negative, true)
	test.ExpectEquality(t, mc.CC.Overflow, false)

	mc.PC.Load(origin)
	mc.B.Load(0x7f)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.CC.Negative, false)
}

func TestTransfer(t *testing.T) {
	mc, mem := newCPU(t)

	run := func(opcode uint8, postbyte uint8) {
		t.Helper()
		mc.PC.Load(origin)
		mem.putInstructions(origin, opcode, postbyte)
		step(t, mc)
	}

	// TFR A,X gives a high byte of 0xff
	mc.A.Load(0x12)
	run(0x1f, 0x81)
	test.ExpectEquality(t, mc.X.Value(), uint16(0xff12))

	// TFR X,A truncates
	mc.X.Load(0x1234)
	run(0x1f, 0x18)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x34))

	// EXG A,B
	mc.A.Load(0x01)
	mc.B.Load(0x02)
	run(0x1e, 0x89)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	test.ExpectEquality(t, mc.B.Value(), uint8(0x01))

	// EXG X,Y
	mc.X.Load(0x1111)
	mc.Y.Load(0x2222)
	run(0x1e, 0x12)
	test.ExpectEquality(t, mc.X.Value(), uint16(0x2222))
	test.ExpectEquality(t, mc.Y.Value(), uint16(0x1111))

	// an invalid source reads 0xffff
	run(0x1f, 0x68)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))

	// an invalid destination is ignored
	mc.X.Load(0x4321)
	run(0x1f, 0x16)
	test.ExpectEquality(t, mc.X.Value(), uint16(0x4321))

	// TFR D,PC jumps
	mc.SetD(0x3000)
	run(0x1f, 0x05)
	test.ExpectEquality(t, mc.PC.Value(), uint16(0x3000))
}

func TestLEA(t *testing.T) {
	mc, mem := newCPU(t)

	// LEAX -1,X sets Z when X reaches zero
	mc.X.Load(1)
	mem.putInstructions(origin, 0x30, 0x1f)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), uint16(0))
	test.ExpectEquality(t, mc.CC.Zero, true)

	// LEAU does not affect Z
	mc.PC.Load(origin)
	mc.CC.Zero = false
	mc.U.Load(0x0001)
	mem.putInstructions(origin, 0x33, 0x5f)
	step(t, mc)
	test.ExpectEquality(t, mc.U.Value(), uint16(0))
	test.ExpectEquality(t, mc.CC.Zero, false)
}

// operations covered by the flag truth table
type aluOp int

const (
	aluAdd aluOp = iota
	aluAdc
	aluSub
	aluSbc
	aluCmp
	aluAnd
	aluBit
	aluEor
	aluOr
	aluLd
)

type aluFlags struct {
	n, z, v, c bool
}

// aluReference computes the result and flags of the operation with plain
// integer arithmetic. overflow is decided by the signed range of the result
func aluReference(op aluOp, a int, b int, carry bool, bits int) (int, aluFlags) {
	size := 1 << bits
	sign := size >> 1

	signed := func(v int) int {
		if v&sign == sign {
			return v - size
		}
		return v
	}
	outOfRange := func(v int) bool {
		return v < -sign || v >= sign
	}

	ci := 0
	if carry && (op == aluAdc || op == aluSbc) {
		ci = 1
	}

	var r int
	f := aluFlags{c: carry}

	switch op {
	case aluAdd, aluAdc:
		sum := a + b + ci
		r = sum % size
		f.c = sum >= size
		f.v = outOfRange(signed(a) + signed(b) + ci)
	case aluSub, aluSbc, aluCmp:
		diff := a - b - ci
		r = (diff + size) % size
		f.c = diff < 0
		f.v = outOfRange(signed(a) - signed(b) - ci)
	case aluAnd, aluBit:
		r = a & b
	case aluEor:
		r = a ^ b
	case aluOr:
		r = a | b
	case aluLd:
		r = b
	}

	f.n = r&sign == sign
	f.z = r == 0

	return r, f
}

func TestFlagTruthTable(t *testing.T) {
	boundaries8 := []int{0x00, 0x01, 0x7f, 0x80, 0xff}
	boundaries16 := []int{0x0000, 0x0001, 0x7fff, 0x8000, 0xffff}

	type entry struct {
		mnemonic string
		opcode   []uint8
		op       aluOp
		reg      string
		bits     int
	}

	entries := []entry{
		{"ADDA", []uint8{0x8b}, aluAdd, "A", 8},
		{"ADCA", []uint8{0x89}, aluAdc, "A", 8},
		{"SUBA", []uint8{0x80}, aluSub, "A", 8},
		{"SBCA", []uint8{0x82}, aluSbc, "A", 8},
		{"CMPA", []uint8{0x81}, aluCmp, "A", 8},
		{"ANDA", []uint8{0x84}, aluAnd, "A", 8},
		{"BITA", []uint8{0x85}, aluBit, "A", 8},
		{"EORA", []uint8{0x88}, aluEor, "A", 8},
		{"ORA", []uint8{0x8a}, aluOr, "A", 8},
		{"LDA", []uint8{0x86}, aluLd, "A", 8},
		{"ADDB", []uint8{0xcb}, aluAdd, "B", 8},
		{"ADCB", []uint8{0xc9}, aluAdc, "B", 8},
		{"SUBB", []uint8{0xc0}, aluSub, "B", 8},
		{"SBCB", []uint8{0xc2}, aluSbc, "B", 8},
		{"CMPB", []uint8{0xc1}, aluCmp, "B", 8},
		{"ANDB", []uint8{0xc4}, aluAnd, "B", 8},
		{"BITB", []uint8{0xc5}, aluBit, "B", 8},
		{"EORB", []uint8{0xc8}, aluEor, "B", 8},
		{"ORB", []uint8{0xca}, aluOr, "B", 8},
		{"LDB", []uint8{0xc6}, aluLd, "B", 8},
		{"ADDD", []uint8{0xc3}, aluAdd, "D", 16},
		{"SUBD", []uint8{0x83}, aluSub, "D", 16},
		{"CMPD", []uint8{0x10, 0x83}, aluCmp, "D", 16},
		{"CMPX", []uint8{0x8c}, aluCmp, "X", 16},
		{"CMPY", []uint8{0x10, 0x8c}, aluCmp, "Y", 16},
		{"CMPU", []uint8{0x11, 0x83}, aluCmp, "U", 16},
		{"CMPS", []uint8{0x11, 0x8c}, aluCmp, "S", 16},
		{"LDD", []uint8{0xcc}, aluLd, "D", 16},
		{"LDX", []uint8{0x8e}, aluLd, "X", 16},
		{"LDY", []uint8{0x10, 0x8e}, aluLd, "Y", 16},
		{"LDU", []uint8{0xce}, aluLd, "U", 16},
		{"LDS", []uint8{0x10, 0xce}, aluLd, "S", 16},
	}

	mc, mem := newCPU(t)

	setReg := func(reg string, v int) {
		switch reg {
		case "A":
			mc.A.Load(uint8(v))
		case "B":
			mc.B.Load(uint8(v))
		case "D":
			mc.SetD(uint16(v))
		case "X":
			mc.X.Load(uint16(v))
		case "Y":
			mc.Y.Load(uint16(v))
		case "U":
			mc.U.Load(uint16(v))
		case "S":
			mc.S.Load(uint16(v))
		}
	}

	getReg := func(reg string) int {
		switch reg {
		case "A":
			return int(mc.A.Value())
		case "B":
			return int(mc.B.Value())
		case "D":
			return int(mc.D())
		case "X":
			return int(mc.X.Value())
		case "Y":
			return int(mc.Y.Value())
		case "U":
			return int(mc.U.Value())
		case "S":
			return int(mc.S.Value())
		}
		return -1
	}

	for _, e := range entries {
		boundaries := boundaries8
		if e.bits == 16 {
			boundaries = boundaries16
		}

		for _, a := range boundaries {
			for _, b := range boundaries {
				for _, carry := range []bool{false, true} {
					program := append([]uint8{}, e.opcode...)
					if e.bits == 16 {
						program = append(program, uint8(b>>8), uint8(b))
					} else {
						program = append(program, uint8(b))
					}
					mem.putInstructions(origin, program...)

					mc.PC.Load(origin)
					setReg(e.reg, a)
					mc.CC.Carry = carry
					mc.CC.Overflow = true
					mc.CC.Negative = false
					mc.CC.Zero = false

					step(t, mc)

					r, f := aluReference(e.op, a, b, carry, e.bits)
					if e.op == aluCmp || e.op == aluBit {
						r = a
					}

					tag := []any{e.mnemonic, a, b, carry}
					test.ExpectEquality(t, getReg(e.reg), r, tag...)
					test.ExpectEquality(t, mc.CC.Negative, f.n, tag...)
					test.ExpectEquality(t, mc.CC.Zero, f.z, tag...)
					test.ExpectEquality(t, mc.CC.Overflow, f.v, tag...)
					test.ExpectEquality(t, mc.CC.Carry, f.c, tag...)
				}
			}
		}
	}
}
