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
	"github.com/jetsetilly/govectrex/hardware/cpu/registers"
)

// bits in the PSH/PUL postbyte.
const (
	stackPC    = 0x80
	stackOther = 0x40 // U for PSHS/PULS. S for PSHU/PULU
	stackY     = 0x20
	stackX     = 0x10
	stackDP    = 0x08
	stackB     = 0x04
	stackA     = 0x02
	stackCC    = 0x01
)

// stackPointers returns the stack pointer used by the instruction and the
// "other" stack pointer.
func (mc *CPU) stackPointers(reg instructions.Register) (sp *registers.Register16, other *registers.Register16) {
	if reg == instructions.RegU {
		return &mc.U, &mc.S
	}
	return &mc.S, &mc.U
}

// pushRegisters implements PSHS and PSHU. registers are pushed in the order
// PC, U/S, Y, X, DP, B, A, CC.
func (mc *CPU) pushRegisters(reg instructions.Register, postbyte uint8) {
	sp, other := mc.stackPointers(reg)
	n := 0

	if postbyte&stackPC == stackPC {
		mc.push16(sp, mc.PC.Value())
		n += 2
	}
	if postbyte&stackOther == stackOther {
		mc.push16(sp, other.Value())
		n += 2
	}
	if postbyte&stackY == stackY {
		mc.push16(sp, mc.Y.Value())
		n += 2
	}
	if postbyte&stackX == stackX {
		mc.push16(sp, mc.X.Value())
		n += 2
	}
	if postbyte&stackDP == stackDP {
		mc.push8(sp, mc.DP.Value())
		n++
	}
	if postbyte&stackB == stackB {
		mc.push8(sp, mc.B.Value())
		n++
	}
	if postbyte&stackA == stackA {
		mc.push8(sp, mc.A.Value())
		n++
	}
	if postbyte&stackCC == stackCC {
		mc.push8(sp, mc.CC.Value())
		n++
	}

	mc.LastResult.StackedBytes = n
}

// pullRegisters implements PULS and PULU. registers are pulled in the
// reverse order of pushRegisters().
func (mc *CPU) pullRegisters(reg instructions.Register, postbyte uint8) {
	sp, _ := mc.stackPointers(reg)
	n := 0

	if postbyte&stackCC == stackCC {
		mc.CC.FromValue(mc.pull8(sp))
		n++
	}
	if postbyte&stackA == stackA {
		mc.A.Load(mc.pull8(sp))
		n++
	}
	if postbyte&stackB == stackB {
		mc.B.Load(mc.pull8(sp))
		n++
	}
	if postbyte&stackDP == stackDP {
		mc.DP.Load(mc.pull8(sp))
		n++
	}
	if postbyte&stackX == stackX {
		mc.X.Load(mc.pull16(sp))
		n += 2
	}
	if postbyte&stackY == stackY {
		mc.Y.Load(mc.pull16(sp))
		n += 2
	}
	if postbyte&stackOther == stackOther {
		v := mc.pull16(sp)
		if reg == instructions.RegU {
			mc.LoadS(v)
		} else {
			mc.U.Load(v)
		}
		n += 2
	}
	if postbyte&stackPC == stackPC {
		mc.PC.Load(mc.pull16(sp))
		n += 2
	}

	mc.LastResult.StackedBytes = n
}
