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

package instructions

import (
	"fmt"
	"sort"
)

// NumPages is the number of opcode pages.
const NumPages = 3

// Prefix bytes that select opcode pages one and two. A prefix byte is not an
// instruction in its own right.
const (
	Page1Prefix = 0x10
	Page2Prefix = 0x11
)

var pages [NumPages][256]*Definition

// Lookup returns the Definition for the opcode on the specified page. Returns
// nil if the opcode is undefined.
func Lookup(page int, opcode uint8) *Definition {
	if page < 0 || page >= NumPages {
		return nil
	}
	return pages[page][opcode]
}

// IsPrefix returns true if the opcode on page zero is a page prefix.
func IsPrefix(opcode uint8) bool {
	return opcode == Page1Prefix || opcode == Page2Prefix
}

// Defined returns all definitions on the page, ordered by opcode.
func Defined(page int) []*Definition {
	var d []*Definition
	if page < 0 || page >= NumPages {
		return d
	}
	for _, defn := range pages[page] {
		if defn != nil {
			d = append(d, defn)
		}
	}
	sort.Slice(d, func(i, j int) bool {
		return d[i].OpCode < d[j].OpCode
	})
	return d
}

// Undefined returns all opcodes on the page that have no definition. The
// prefix bytes on page zero are not included.
func Undefined(page int) []uint8 {
	var u []uint8
	if page < 0 || page >= NumPages {
		return u
	}
	for op := 0; op < 256; op++ {
		if page == 0 && IsPrefix(uint8(op)) {
			continue
		}
		if pages[page][op] == nil {
			u = append(u, uint8(op))
		}
	}
	return u
}

func effectOf(operator Operator, reg Register) EffectCategory {
	switch operator {
	case ST:
		return Write
	case NEG, COM, LSR, ROR, ASR, ASL, ROL, DEC, INC, CLR:
		if reg == NoRegister {
			return RMW
		}
	case JMP, BRANCH:
		return Flow
	case JSR, BSR, RTS:
		return Subroutine
	case SWI, SWI2, SWI3, RTI, CWAI, WAI, SYNC:
		return Interrupt
	}
	return Read
}

func bytesOf(page int, mode AddressingMode, width Width) int {
	n := 1
	if page > 0 {
		n++
	}
	switch mode {
	case Immediate:
		if width == Word {
			n += 2
		} else {
			n++
		}
	case Direct, Indexed, Relative:
		n++
	case Extended, LongRelative:
		n += 2
	}
	return n
}

func define(page int, opcode uint8, mnemonic string, operator Operator, mode AddressingMode, reg Register, width Width, cycles int) *Definition {
	if pages[page][opcode] != nil {
		panic(fmt.Sprintf("instructions: duplicate definition for %d:%02x", page, opcode))
	}
	if page == 0 && IsPrefix(opcode) {
		panic(fmt.Sprintf("instructions: definition for prefix byte %02x", opcode))
	}

	defn := &Definition{
		Page:           page,
		OpCode:         opcode,
		Mnemonic:       mnemonic,
		Operator:       operator,
		AddressingMode: mode,
		Register:       reg,
		Width:          width,
		Bytes:          bytesOf(page, mode, width),
		Cycles:         cycles,
		Effect:         effectOf(operator, reg),
	}
	pages[page][opcode] = defn
	return defn
}

// the four rows of the accumulator instructions in the top half of page zero.
// the B accumulator rows are 0x40 above the A accumulator rows
var rows = []struct {
	hi   uint8
	mode AddressingMode
}{
	{hi: 0x80, mode: Immediate},
	{hi: 0x90, mode: Direct},
	{hi: 0xa0, mode: Indexed},
	{hi: 0xb0, mode: Extended},
}

func init() {
	definePage0()
	definePage1()
	definePage2()
}

func definePage0() {
	unary := []struct {
		lo       uint8
		mnemonic string
		operator Operator
	}{
		{0x0, "NEG", NEG},
		{0x3, "COM", COM},
		{0x4, "LSR", LSR},
		{0x6, "ROR", ROR},
		{0x7, "ASR", ASR},
		{0x8, "ASL", ASL},
		{0x9, "ROL", ROL},
		{0xa, "DEC", DEC},
		{0xc, "INC", INC},
		{0xd, "TST", TST},
		{0xf, "CLR", CLR},
	}
	for _, u := range unary {
		define(0, 0x00|u.lo, u.mnemonic, u.operator, Direct, NoRegister, Byte, 6)
		define(0, 0x40|u.lo, u.mnemonic+"A", u.operator, Inherent, RegA, Byte, 2)
		define(0, 0x50|u.lo, u.mnemonic+"B", u.operator, Inherent, RegB, Byte, 2)
		define(0, 0x60|u.lo, u.mnemonic, u.operator, Indexed, NoRegister, Byte, 6)
		define(0, 0x70|u.lo, u.mnemonic, u.operator, Extended, NoRegister, Byte, 7)
	}
	define(0, 0x0e, "JMP", JMP, Direct, NoRegister, Word, 3)
	define(0, 0x6e, "JMP", JMP, Indexed, NoRegister, Word, 3)
	define(0, 0x7e, "JMP", JMP, Extended, NoRegister, Word, 4)

	define(0, 0x12, "NOP", NOP, Inherent, NoRegister, Byte, 2)
	define(0, 0x13, "SYNC", SYNC, Inherent, NoRegister, Byte, 4)
	define(0, 0x16, "LBRA", BRANCH, LongRelative, NoRegister, Word, 5).Condition = Always
	define(0, 0x17, "LBSR", BSR, LongRelative, NoRegister, Word, 9)
	define(0, 0x19, "DAA", DAA, Inherent, RegA, Byte, 2)
	define(0, 0x1a, "ORCC", ORCC, Immediate, RegCC, Byte, 3)
	define(0, 0x1c, "ANDCC", ANDCC, Immediate, RegCC, Byte, 3)
	define(0, 0x1d, "SEX", SEX, Inherent, RegD, Word, 2)
	define(0, 0x1e, "EXG", EXG, Immediate, NoRegister, Byte, 8)
	define(0, 0x1f, "TFR", TFR, Immediate, NoRegister, Byte, 6)

	for c := Always; c <= LessOrEqual; c++ {
		define(0, 0x20|uint8(c), "B"+c.String(), BRANCH, Relative, NoRegister, Byte, 3).Condition = c
	}

	define(0, 0x30, "LEAX", LEA, Indexed, RegX, Word, 4)
	define(0, 0x31, "LEAY", LEA, Indexed, RegY, Word, 4)
	define(0, 0x32, "LEAS", LEA, Indexed, RegS, Word, 4)
	define(0, 0x33, "LEAU", LEA, Indexed, RegU, Word, 4)
	define(0, 0x34, "PSHS", PSH, Immediate, RegS, Byte, 5)
	define(0, 0x35, "PULS", PUL, Immediate, RegS, Byte, 5)
	define(0, 0x36, "PSHU", PSH, Immediate, RegU, Byte, 5)
	define(0, 0x37, "PULU", PUL, Immediate, RegU, Byte, 5)
	define(0, 0x39, "RTS", RTS, Inherent, NoRegister, Word, 5)
	define(0, 0x3a, "ABX", ABX, Inherent, RegX, Word, 3)
	define(0, 0x3b, "RTI", RTI, Inherent, NoRegister, Byte, 6)
	define(0, 0x3c, "CWAI", CWAI, Immediate, RegCC, Byte, 20)
	define(0, 0x3d, "MUL", MUL, Inherent, RegD, Word, 11)
	define(0, 0x3e, "WAI", WAI, Inherent, NoRegister, Byte, 19)
	define(0, 0x3f, "SWI", SWI, Inherent, NoRegister, Byte, 19)

	acc := []struct {
		lo       uint8
		mnemonic string
		operator Operator
	}{
		{0x0, "SUB", SUB},
		{0x1, "CMP", CMP},
		{0x2, "SBC", SBC},
		{0x4, "AND", AND},
		{0x5, "BIT", BIT},
		{0x6, "LD", LD},
		{0x7, "ST", ST},
		{0x8, "EOR", EOR},
		{0x9, "ADC", ADC},
		{0xa, "OR", OR},
		{0xb, "ADD", ADD},
	}
	byteCycles := map[AddressingMode]int{Immediate: 2, Direct: 4, Indexed: 4, Extended: 5}
	arithCycles := map[AddressingMode]int{Immediate: 4, Direct: 6, Indexed: 6, Extended: 7}
	loadCycles := map[AddressingMode]int{Immediate: 3, Direct: 5, Indexed: 5, Extended: 6}
	jsrCycles := map[AddressingMode]int{Direct: 7, Indexed: 7, Extended: 8}

	for _, r := range rows {
		hiA := r.hi
		hiB := r.hi + 0x40

		for _, a := range acc {
			if a.operator == ST && r.mode == Immediate {
				continue
			}
			define(0, hiA|a.lo, a.mnemonic+"A", a.operator, r.mode, RegA, Byte, byteCycles[r.mode])
			define(0, hiB|a.lo, a.mnemonic+"B", a.operator, r.mode, RegB, Byte, byteCycles[r.mode])
		}

		define(0, hiA|0x3, "SUBD", SUB, r.mode, RegD, Word, arithCycles[r.mode])
		define(0, hiA|0xc, "CMPX", CMP, r.mode, RegX, Word, arithCycles[r.mode])
		define(0, hiA|0xe, "LDX", LD, r.mode, RegX, Word, loadCycles[r.mode])
		define(0, hiB|0x3, "ADDD", ADD, r.mode, RegD, Word, arithCycles[r.mode])
		define(0, hiB|0xc, "LDD", LD, r.mode, RegD, Word, loadCycles[r.mode])
		define(0, hiB|0xe, "LDU", LD, r.mode, RegU, Word, loadCycles[r.mode])

		if r.mode == Immediate {
			define(0, 0x8d, "BSR", BSR, Relative, NoRegister, Byte, 7)
			continue
		}

		define(0, hiA|0xd, "JSR", JSR, r.mode, NoRegister, Word, jsrCycles[r.mode])
		define(0, hiA|0xf, "STX", ST, r.mode, RegX, Word, loadCycles[r.mode])
		define(0, hiB|0xd, "STD", ST, r.mode, RegD, Word, loadCycles[r.mode])
		define(0, hiB|0xf, "STU", ST, r.mode, RegU, Word, loadCycles[r.mode])
	}
}

// compare instructions on pages one and two take one cycle more than the
// equivalent page zero instruction
var compareCycles = map[AddressingMode]int{Immediate: 5, Direct: 7, Indexed: 7, Extended: 8}

func definePage1() {
	for c := Never; c <= LessOrEqual; c++ {
		define(1, 0x20|uint8(c), "LB"+c.String(), BRANCH, LongRelative, NoRegister, Word, 5).Condition = c
	}

	define(1, 0x3f, "SWI2", SWI2, Inherent, NoRegister, Byte, 20)

	loadCycles := map[AddressingMode]int{Immediate: 4, Direct: 6, Indexed: 6, Extended: 7}

	for _, r := range rows {
		hiA := r.hi
		hiB := r.hi + 0x40

		define(1, hiA|0x3, "CMPD", CMP, r.mode, RegD, Word, compareCycles[r.mode])
		define(1, hiA|0xc, "CMPY", CMP, r.mode, RegY, Word, compareCycles[r.mode])
		define(1, hiA|0xe, "LDY", LD, r.mode, RegY, Word, loadCycles[r.mode])
		define(1, hiB|0xe, "LDS", LD, r.mode, RegS, Word, loadCycles[r.mode])

		if r.mode == Immediate {
			continue
		}

		define(1, hiA|0xf, "STY", ST, r.mode, RegY, Word, loadCycles[r.mode])
		define(1, hiB|0xf, "STS", ST, r.mode, RegS, Word, loadCycles[r.mode])
	}
}

func definePage2() {
	define(2, 0x3f, "SWI3", SWI3, Inherent, NoRegister, Byte, 20)

	for _, r := range rows {
		define(2, r.hi|0x3, "CMPU", CMP, r.mode, RegU, Word, compareCycles[r.mode])
		define(2, r.hi|0xc, "CMPS", CMP, r.mode, RegS, Word, compareCycles[r.mode])
	}
}
