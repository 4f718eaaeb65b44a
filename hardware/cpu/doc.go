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

// Package cpu emulates the 6809E microprocessor found in the Vectrex. The
// CPU executes instructions according to the byte read from the address
// pointed to by the program counter. If that byte is one of the two prefix
// bytes then the following byte is read and looked up on the extended opcode
// page. The instruction definition for that opcode is then used to move
// execution of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface.
//
//	mc := cpu.NewCPU(mem, cpu.TraceConfig{})
//	mc.Reset()
//
//	for {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			return err
//		}
//		cycles += mc.LastResult.Cycles
//	}
//
// Each call to ExecuteInstruction() does one of three things: it services a
// hardware interrupt, it idles for a single cycle because the CPU is waiting
// for an interrupt, or it executes one instruction. The LastResult field
// records which and how many cycles were consumed.
//
// Hardware interrupts are requested with SetIRQ(), SetFIRQ() and
// TriggerNMI(). Interrupts are only ever serviced at instruction boundaries.
//
// An undefined opcode or an illegal indexed addressing postbyte is an error.
// In that case the PC is left at the address of the failing instruction and
// no register is changed.
package cpu
