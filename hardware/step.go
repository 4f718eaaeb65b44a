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

package hardware

import (
	"github.com/jetsetilly/govectrex/hardware/memory/addresses"
	"github.com/jetsetilly/govectrex/logger"
)

// Step the emulation forward by one CPU instruction, or by one interrupt
// entry, or by one cycle if the CPU is waiting for an interrupt.
//
// An error is returned if the CPU cannot decode the instruction. The error
// contains the address and the opcode.
func (vec *Vectrex) Step() error {
	err := vec.CPU.ExecuteInstruction()
	if err != nil {
		return err
	}

	cycles := vec.CPU.LastResult.Cycles

	// the VIA is advanced one cycle at a time because the timer and shift
	// register outputs control the beam
	for i := 0; i < cycles; i++ {
		vec.cycle()
	}

	vec.PSG.Update(cycles)
	vec.CPU.SetIRQ(vec.VIA.IRQ())

	if vec.Prefs.RAMWatch.Get().(bool) {
		vec.watchRAM()
	}

	return nil
}

// cycle advances the VIA and the analogue circuitry by one CPU cycle.
func (vec *Vectrex) cycle() {
	vec.analogue.pending++
	vec.Cycles++

	vec.frameCycle++
	if vec.frameCycle >= vec.Prefs.FrameCycles.Get().(int) {
		vec.flushBeam()
		vec.frameCycle = 0
		vec.frame++
	}

	vec.VIA.Tick(1)
	vec.updateAnalogue()
}

// watchRAM logs the first instruction of every period of execution from
// RAM.
func (vec *Vectrex) watchRAM() {
	pc := vec.CPU.PC.Address()
	inRAM := addresses.IsArea(pc, addresses.RAM)
	if inRAM && !vec.inRAM {
		logger.Logf(logger.Allow, "vectrex", "executing from RAM at %#04x", pc)
	}
	vec.inRAM = inRAM
}
