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
	"github.com/jetsetilly/govectrex/hardware/cpu/execution"
	"github.com/jetsetilly/govectrex/hardware/memory/cpubus"
)

// InterruptState describes what the CPU is doing with regard to interrupts.
type InterruptState int

// List of interrupt states. The Servicing states refer to the innermost
// interrupt currently being serviced.
const (
	Running InterruptState = iota
	Waiting
	Syncing
	ServicingIRQ
	ServicingFIRQ
	ServicingNMI
	ServicingSWI
)

func (s InterruptState) String() string {
	switch s {
	case Running:
		return "Running"
	case Waiting:
		return "Waiting"
	case Syncing:
		return "Syncing"
	case ServicingIRQ:
		return "ServicingIRQ"
	case ServicingFIRQ:
		return "ServicingFIRQ"
	case ServicingNMI:
		return "ServicingNMI"
	case ServicingSWI:
		return "ServicingSWI"
	}
	return ""
}

// cycles taken to service an interrupt.
const (
	fullInterruptCycles    = 19
	partialInterruptCycles = 10

	// registers have already been stacked by WAI or CWAI
	waitingInterruptCycles = 7
)

// SetIRQ sets the state of the IRQ line. The line is level sensitive.
func (mc *CPU) SetIRQ(v bool) {
	mc.irq = v
}

// SetFIRQ sets the state of the FIRQ line. The line is level sensitive.
func (mc *CPU) SetFIRQ(v bool) {
	mc.firq = v
}

// TriggerNMI latches an NMI request. The request is serviced at the next
// instruction boundary. Requests are ignored until the S register has been
// loaded after a reset.
func (mc *CPU) TriggerNMI() {
	if mc.nmiArmed {
		mc.nmiPending = true
	}
}

// State returns the current interrupt state.
func (mc *CPU) State() InterruptState {
	return mc.state
}

// Depth returns the number of interrupts currently being serviced.
func (mc *CPU) Depth() int {
	return len(mc.servicing)
}

// enter a new interrupt service routine.
func (mc *CPU) enter(state InterruptState) {
	mc.servicing = append(mc.servicing, state)
	mc.state = state
}

// leave the innermost interrupt service routine.
func (mc *CPU) leave() {
	if len(mc.servicing) > 0 {
		mc.servicing = mc.servicing[:len(mc.servicing)-1]
	}
	if len(mc.servicing) > 0 {
		mc.state = mc.servicing[len(mc.servicing)-1]
	} else {
		mc.state = Running
	}
}

// checkInterrupts services the highest priority interrupt that is pending
// and not masked. Returns true if an interrupt was serviced.
func (mc *CPU) checkInterrupts() bool {
	switch {
	case mc.nmiPending:
		mc.nmiPending = false
		mc.service(execution.NMI, FrameNMI, ServicingNMI, cpubus.NMI)
	case mc.firq && !mc.CC.FastInterruptMask:
		mc.service(execution.FIRQ, FrameFIRQ, ServicingFIRQ, cpubus.FIRQ)
	case mc.irq && !mc.CC.InterruptMask:
		mc.service(execution.IRQ, FrameIRQ, ServicingIRQ, cpubus.IRQ)
	default:
		// SYNC finishes when an interrupt line is asserted even if the
		// interrupt is masked. execution continues after the SYNC instruction
		if mc.state == Syncing && (mc.irq || mc.firq) {
			mc.state = Running
		}
		return false
	}
	return true
}

// service a hardware interrupt.
func (mc *CPU) service(kind execution.Interrupt, frame FrameKind, state InterruptState, vector uint16) {
	if mc.state == Waiting {
		mc.LastResult.Cycles = waitingInterruptCycles
	} else if kind == execution.FIRQ {
		mc.stackFrame(frame, false)
		mc.LastResult.Cycles = partialInterruptCycles
	} else {
		mc.stackFrame(frame, true)
		mc.LastResult.Cycles = fullInterruptCycles
	}

	mc.CC.InterruptMask = true
	if kind != execution.IRQ {
		mc.CC.FastInterruptMask = true
	}

	mc.PC.Load(mc.read16(vector))
	mc.enter(state)
	mc.LastResult.Interrupt = kind
}

// softwareInterrupt implements the SWI family of instructions. the entire
// register set is always stacked.
func (mc *CPU) softwareInterrupt(frame FrameKind, vector uint16, mask bool) {
	mc.stackFrame(frame, true)
	if mask {
		mc.CC.InterruptMask = true
		mc.CC.FastInterruptMask = true
	}
	mc.PC.Load(mc.read16(vector))
	mc.enter(ServicingSWI)
}

// wait stacks the entire register set and halts the CPU until an interrupt
// arrives. the stacked PC is the address of the instruction following the
// wait instruction.
func (mc *CPU) wait(frame FrameKind) {
	mc.stackFrame(frame, true)
	mc.state = Waiting
}

// rti returns from an interrupt service routine. the entire register set is
// unstacked if the stacked E flag is set.
func (mc *CPU) rti() {
	mc.CC.FromValue(mc.pull8(&mc.S))
	if mc.CC.Entire {
		mc.A.Load(mc.pull8(&mc.S))
		mc.B.Load(mc.pull8(&mc.S))
		mc.DP.Load(mc.pull8(&mc.S))
		mc.X.Load(mc.pull16(&mc.S))
		mc.Y.Load(mc.pull16(&mc.S))
		mc.U.Load(mc.pull16(&mc.S))
		mc.LastResult.EntireUnstacked = true
		mc.LastResult.Cycles += 9
	}
	mc.PC.Load(mc.pull16(&mc.S))

	mc.leave()

	if mc.ShadowStack != nil {
		mc.ShadowStack.pop(mc.PC.Value(), mc.S.Value())
	}
}
