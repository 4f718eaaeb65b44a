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

package execution

import (
	"fmt"

	"github.com/jetsetilly/govectrex/hardware/cpu/instructions"
)

// Interrupt is the hardware interrupt serviced during a step.
type Interrupt int

// List of hardware interrupts.
const (
	NoInterrupt Interrupt = iota
	IRQ
	FIRQ
	NMI
)

func (i Interrupt) String() string {
	switch i {
	case IRQ:
		return "IRQ"
	case FIRQ:
		return "FIRQ"
	case NMI:
		return "NMI"
	}
	return ""
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// A step of the CPU that services a hardware interrupt, or that idles while
// the CPU is waiting for one, has a nil Defn.
type Result struct {
	// the address at which the instruction began, including any prefix byte
	Address uint16

	// opcode page and the opcode itself
	Page   int
	Opcode uint8

	Defn *instructions.Definition

	// the operand of the instruction. for indexed instructions this is the
	// postbyte. for PSH/PUL, EXG and TFR it is the postbyte. for branches it
	// is the offset
	InstructionData uint16

	// the number of bytes read during instruction decode
	ByteCount int

	// the actual number of cycles taken by the instruction
	Cycles int

	// additional bytes and cycles required by the indexed addressing postbyte
	IndexedBytes  int
	IndexedCycles int

	// number of bytes moved by PSH/PUL. each one costs an additional cycle
	StackedBytes int

	// RTI unstacked the entire register set
	EntireUnstacked bool

	// a branch instruction took the branch
	BranchTaken bool

	// hardware interrupt serviced in place of an instruction
	Interrupt Interrupt

	// the CPU idled because it is waiting for an interrupt
	Waiting bool

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	switch {
	case r.Interrupt != NoInterrupt:
		return fmt.Sprintf("%s (%d cycles)", r.Interrupt, r.Cycles)
	case r.Waiting:
		return fmt.Sprintf("waiting (%d cycles)", r.Cycles)
	case r.Defn == nil:
		return fmt.Sprintf("%#04x ???", r.Address)
	}
	return fmt.Sprintf("%#04x %s %#04x (%d cycles)", r.Address, r.Defn.Mnemonic, r.InstructionData, r.Cycles)
}
