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

import "fmt"

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Inherent AddressingMode = iota
	Immediate
	Direct
	Extended
	Indexed
	Relative
	LongRelative
)

func (m AddressingMode) String() string {
	switch m {
	case Inherent:
		return "Inherent"
	case Immediate:
		return "Immediate"
	case Direct:
		return "Direct"
	case Extended:
		return "Extended"
	case Indexed:
		return "Indexed"
	case Relative:
		return "Relative"
	case LongRelative:
		return "LongRelative"
	}
	return "unknown addressing mode"
}

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// branches and JMP
	Flow

	Subroutine
	Interrupt
)

// Width of the data operated on by an instruction.
type Width int

// List of data widths.
const (
	Byte Width = 8
	Word Width = 16
)

// Register is the register operated on by an instruction. Instructions that
// operate on memory rather than a register use NoRegister.
type Register int

// List of registers that can be the target of an instruction.
const (
	NoRegister Register = iota
	RegA
	RegB
	RegD
	RegX
	RegY
	RegU
	RegS
	RegCC
	RegDP
	RegPC
)

func (r Register) String() string {
	switch r {
	case RegA:
		return "A"
	case RegB:
		return "B"
	case RegD:
		return "D"
	case RegX:
		return "X"
	case RegY:
		return "Y"
	case RegU:
		return "U"
	case RegS:
		return "S"
	case RegCC:
		return "CC"
	case RegDP:
		return "DP"
	case RegPC:
		return "PC"
	}
	return ""
}

// Operator is the operation performed by an instruction. The same Operator is
// shared by all the variations of an instruction. For example, LDA, LDB, LDD
// and LDX all use the LD Operator. The variations are distinguished by the
// Register and Width fields of the Definition.
type Operator int

// List of operators.
const (
	NEG Operator = iota
	COM
	LSR
	ROR
	ASR
	ASL
	ROL
	DEC
	INC
	TST
	JMP
	CLR
	NOP
	SYNC
	DAA
	ORCC
	ANDCC
	SEX
	EXG
	TFR
	BRANCH
	LEA
	PSH
	PUL
	RTS
	ABX
	RTI
	CWAI
	MUL
	SWI
	SWI2
	SWI3
	WAI
	SUB
	CMP
	SBC
	AND
	BIT
	LD
	ST
	EOR
	ADC
	OR
	ADD
	JSR
	BSR
)

// Definition defines each instruction in the instruction set. One per opcode
// per page.
type Definition struct {
	Page     int
	OpCode   uint8
	Mnemonic string

	Operator       Operator
	AddressingMode AddressingMode
	Register       Register
	Width          Width

	// condition for branch instructions. ignored for any other instruction
	Condition Condition

	// number of bytes in the instruction, including the prefix byte for
	// instructions on pages one and two. for indexed instructions this
	// includes the postbyte but not any offset bytes the postbyte calls for
	Bytes int

	// base number of cycles. the CPU adds cycles for indexed addressing,
	// for the number of registers stacked by PSH/PUL, for RTI when the entire
	// register set is unstacked and for taken conditional branches
	Cycles int

	Effect EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%d:%02x %s +%dbytes (%d cycles) [mode=%s effect=%d]",
		defn.Page, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction. BSR and LBSR
// are not branches in this sense.
func (defn Definition) IsBranch() bool {
	return defn.Operator == BRANCH
}

// IsConditional returns true if the instruction is a branch that may not be
// taken.
func (defn Definition) IsConditional() bool {
	return defn.Operator == BRANCH && defn.Condition != Always
}
