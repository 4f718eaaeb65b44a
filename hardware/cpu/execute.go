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

import (
	"github.com/jetsetilly/govectrex/hardware/cpu/instructions"
	"github.com/jetsetilly/govectrex/hardware/memory/cpubus"
)

// getReg returns the value of the register. 8 bit registers are returned in
// the low byte.
func (mc *CPU) getReg(r instructions.Register) uint16 {
	switch r {
	case instructions.RegA:
		return uint16(mc.A.Value())
	case instructions.RegB:
		return uint16(mc.B.Value())
	case instructions.RegD:
		return mc.D()
	case instructions.RegX:
		return mc.X.Value()
	case instructions.RegY:
		return mc.Y.Value()
	case instructions.RegU:
		return mc.U.Value()
	case instructions.RegS:
		return mc.S.Value()
	case instructions.RegPC:
		return mc.PC.Value()
	case instructions.RegCC:
		return uint16(mc.CC.Value())
	case instructions.RegDP:
		return uint16(mc.DP.Value())
	}
	return 0
}

// setReg loads the register with the value. 8 bit registers take the low
// byte.
func (mc *CPU) setReg(r instructions.Register, v uint16) {
	switch r {
	case instructions.RegA:
		mc.A.Load(uint8(v))
	case instructions.RegB:
		mc.B.Load(uint8(v))
	case instructions.RegD:
		mc.SetD(v)
	case instructions.RegX:
		mc.X.Load(v)
	case instructions.RegY:
		mc.Y.Load(v)
	case instructions.RegU:
		mc.U.Load(v)
	case instructions.RegS:
		mc.LoadS(v)
	case instructions.RegPC:
		mc.PC.Load(v)
	case instructions.RegCC:
		mc.CC.FromValue(uint8(v))
	case instructions.RegDP:
		mc.DP.Load(uint8(v))
	}
}

func (mc *CPU) store(defn *instructions.Definition, ea uint16, v uint16) {
	if defn.Width == instructions.Word {
		mc.write16(ea, v)
	} else {
		mc.write8(ea, uint8(v))
	}
}

// execute the decoded instruction. ea is the effective address as returned
// by resolve().
func (mc *CPU) execute(defn *instructions.Definition, ea uint16) {
	reg := defn.Register
	w := defn.Width

	switch defn.Operator {
	case instructions.NEG, instructions.COM, instructions.LSR, instructions.ROR,
		instructions.ASR, instructions.ASL, instructions.ROL, instructions.DEC,
		instructions.INC, instructions.TST, instructions.CLR:
		if reg == instructions.NoRegister {
			r := mc.unary(defn.Operator, mc.read8(ea))
			if defn.Operator != instructions.TST {
				mc.write8(ea, r)
			}
		} else {
			r := mc.unary(defn.Operator, uint8(mc.getReg(reg)))
			if defn.Operator != instructions.TST {
				mc.setReg(reg, uint16(r))
			}
		}

	case instructions.JMP:
		mc.PC.Load(ea)

	case instructions.NOP:

	case instructions.SYNC:
		mc.state = Syncing

	case instructions.DAA:
		mc.daa()

	case instructions.ORCC:
		mc.CC.FromValue(mc.CC.Value() | uint8(mc.LastResult.InstructionData))

	case instructions.ANDCC:
		mc.CC.FromValue(mc.CC.Value() & uint8(mc.LastResult.InstructionData))

	case instructions.SEX:
		mc.sex()

	case instructions.EXG:
		mc.exg(uint8(mc.LastResult.InstructionData))

	case instructions.TFR:
		mc.tfr(uint8(mc.LastResult.InstructionData))

	case instructions.BRANCH:
		if defn.Condition.Evaluate(mc.CC) {
			mc.PC.Load(ea)
			mc.LastResult.BranchTaken = true

			// conditional branches take an extra cycle when taken
			if defn.IsConditional() {
				mc.LastResult.Cycles++
			}
		}

	case instructions.LEA:
		mc.setReg(reg, ea)
		if reg == instructions.RegX || reg == instructions.RegY {
			mc.CC.Zero = ea == 0
		}

	case instructions.PSH:
		mc.pushRegisters(reg, uint8(mc.LastResult.InstructionData))

	case instructions.PUL:
		mc.pullRegisters(reg, uint8(mc.LastResult.InstructionData))

	case instructions.RTS:
		mc.PC.Load(mc.pull16(&mc.S))

	case instructions.ABX:
		mc.X.Load(mc.X.Value() + uint16(mc.B.Value()))

	case instructions.RTI:
		mc.rti()

	case instructions.CWAI:
		mc.CC.FromValue(mc.CC.Value() & uint8(mc.LastResult.InstructionData))
		mc.wait(FrameCWAI)

	case instructions.WAI:
		mc.wait(FrameWAI)

	case instructions.MUL:
		mc.mul()

	case instructions.SWI:
		mc.softwareInterrupt(FrameSWI, cpubus.SWI, true)

	case instructions.SWI2:
		mc.softwareInterrupt(FrameSWI2, cpubus.SWI2, false)

	case instructions.SWI3:
		mc.softwareInterrupt(FrameSWI3, cpubus.SWI3, false)

	case instructions.SUB:
		mc.setReg(reg, mc.sub(mc.getReg(reg), mc.operand(defn, ea), false, w))

	case instructions.CMP:
		mc.sub(mc.getReg(reg), mc.operand(defn, ea), false, w)

	case instructions.SBC:
		mc.setReg(reg, mc.sub(mc.getReg(reg), mc.operand(defn, ea), mc.CC.Carry, w))

	case instructions.AND:
		mc.setReg(reg, mc.logic(mc.getReg(reg)&mc.operand(defn, ea), w))

	case instructions.BIT:
		mc.logic(mc.getReg(reg)&mc.operand(defn, ea), w)

	case instructions.LD:
		mc.setReg(reg, mc.logic(mc.operand(defn, ea), w))

	case instructions.ST:
		mc.store(defn, ea, mc.logic(mc.getReg(reg), w))

	case instructions.EOR:
		mc.setReg(reg, mc.logic(mc.getReg(reg)^mc.operand(defn, ea), w))

	case instructions.OR:
		mc.setReg(reg, mc.logic(mc.getReg(reg)|mc.operand(defn, ea), w))

	case instructions.ADC:
		mc.setReg(reg, mc.add(mc.getReg(reg), mc.operand(defn, ea), mc.CC.Carry, w))

	case instructions.ADD:
		mc.setReg(reg, mc.add(mc.getReg(reg), mc.operand(defn, ea), false, w))

	case instructions.JSR, instructions.BSR:
		mc.push16(&mc.S, mc.PC.Value())
		mc.PC.Load(ea)
	}
}
