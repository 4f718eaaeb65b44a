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
	"fmt"

	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/hardware/cpu/execution"
	"github.com/jetsetilly/govectrex/hardware/cpu/instructions"
	"github.com/jetsetilly/govectrex/hardware/cpu/registers"
	"github.com/jetsetilly/govectrex/hardware/memory/cpubus"
)

// Sentinal error patterns returned by ExecuteInstruction().
const (
	UndefinedOpcode = "cpu: undefined opcode (%#02x) on page %d at (%#04x)"
	IllegalPostbyte = "cpu: illegal indexed postbyte (%#02x) for opcode (%#02x) at (%#04x)"
)

// TraceConfig is used to configure the CPU on creation.
type TraceConfig struct {
	// number of instructions to remember in the trace. zero means no trace
	Depth int
}

// CPU implements the 6809E as found in the Vectrex.
type CPU struct {
	A  registers.Register
	B  registers.Register
	DP registers.Register
	X  registers.Register16
	Y  registers.Register16
	U  registers.Register16
	S  registers.Register16
	PC registers.Register16
	CC registers.ConditionCode

	mem cpubus.Memory

	// result of the most recent call to ExecuteInstruction()
	LastResult execution.Result

	// the most recently executed instructions. nil if the CPU was created
	// with a TraceConfig.Depth of zero
	Trace *Trace

	// ShadowStack records interrupt frames. it is nil unless installed by
	// the caller
	ShadowStack *ShadowStack

	// interrupt request lines
	irq  bool
	firq bool

	// NMI is edge triggered so we latch the request until it is serviced.
	// NMI is disarmed on reset and armed when the S register is first loaded
	nmiPending bool
	nmiArmed   bool

	// interrupt state and nesting
	state     InterruptState
	servicing []InterruptState
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem cpubus.Memory, cfg TraceConfig) *CPU {
	mc := &CPU{
		mem: mem,
		A:   registers.NewRegister(0, "A"),
		B:   registers.NewRegister(0, "B"),
		DP:  registers.NewRegister(0, "DP"),
		X:   registers.NewRegister16(0, "X"),
		Y:   registers.NewRegister16(0, "Y"),
		U:   registers.NewRegister16(0, "U"),
		S:   registers.NewRegister16(0, "S"),
		PC:  registers.NewRegister16(0, "PC"),
	}

	if cfg.Depth > 0 {
		mc.Trace = newTrace(cfg.Depth)
	}

	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s %s %s %s %s %s %s %s=%s",
		mc.PC, mc.A, mc.B, mc.DP, mc.X, mc.Y, mc.U, mc.S, mc.CC.Label(), mc.CC)
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// Reset reinitialises all registers and loads the PC from the reset vector.
// Interrupts are masked and NMI is disarmed until the S register is loaded.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()

	mc.A.Load(0)
	mc.B.Load(0)
	mc.DP.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.U.Load(0)
	mc.S.Load(0)
	mc.CC.Reset()

	mc.irq = false
	mc.firq = false
	mc.nmiPending = false
	mc.nmiArmed = false
	mc.state = Running
	mc.servicing = mc.servicing[:0]

	if mc.Trace != nil {
		mc.Trace.reset()
	}
	if mc.ShadowStack != nil {
		mc.ShadowStack.reset()
	}

	mc.PC.Load(mc.read16(cpubus.Reset))
}

// D returns the value of the D register, which is the A and B registers
// combined.
func (mc *CPU) D() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.B.Value())
}

// SetD loads the A and B registers with a 16 bit value.
func (mc *CPU) SetD(v uint16) {
	mc.A.Load(uint8(v >> 8))
	mc.B.Load(uint8(v))
}

// LoadS loads the system stack pointer. Loading the S register arms the NMI
// line.
func (mc *CPU) LoadS(v uint16) {
	mc.S.Load(v)
	mc.nmiArmed = true
}

// read8 returns the value at the address.
func (mc *CPU) read8(address uint16) uint8 {
	return mc.mem.Read(address)
}

// read16 returns the 16 bit value at the address. the most significant byte
// is at the lower address.
func (mc *CPU) read16(address uint16) uint16 {
	hi := mc.mem.Read(address)
	lo := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write8(address uint16, v uint8) {
	mc.mem.Write(address, v)
}

func (mc *CPU) write16(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v>>8))
	mc.mem.Write(address+1, uint8(v))
}

// fetch8 reads the byte at the PC and advances the PC.
func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// fetch16 reads the 16 bit value at the PC and advances the PC.
func (mc *CPU) fetch16() uint16 {
	hi := mc.fetch8()
	lo := mc.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// ExecuteInstruction steps the CPU forward by one instruction, or services
// an interrupt, or idles for one cycle while waiting for an interrupt. The
// number of cycles consumed is in LastResult.Cycles.
//
// Returns an error matching the UndefinedOpcode or IllegalPostbyte patterns
// if the instruction cannot be decoded. In that case the PC is restored to
// the address of the instruction.
func (mc *CPU) ExecuteInstruction() error {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// interrupts are only serviced on an instruction boundary
	if mc.checkInterrupts() {
		mc.LastResult.Final = true
		return nil
	}

	if mc.state == Waiting || mc.state == Syncing {
		mc.LastResult.Waiting = true
		mc.LastResult.Cycles = 1
		mc.LastResult.Final = true
		return nil
	}

	start := mc.PC.Address()

	page := 0
	opcode := mc.fetch8()
	switch opcode {
	case instructions.Page1Prefix:
		page = 1
		opcode = mc.fetch8()
	case instructions.Page2Prefix:
		page = 2
		opcode = mc.fetch8()
	}

	mc.LastResult.Page = page
	mc.LastResult.Opcode = opcode

	if mc.Trace != nil {
		mc.Trace.add(TraceEntry{PC: start, Page: page, Opcode: opcode})
	}

	defn := instructions.Lookup(page, opcode)
	if defn == nil {
		mc.PC.Load(start)
		return curated.Errorf(UndefinedOpcode, opcode, page, start)
	}
	mc.LastResult.Defn = defn

	ea, err := mc.resolve(defn)
	if err != nil {
		mc.PC.Load(start)
		return err
	}

	mc.execute(defn, ea)

	mc.LastResult.Cycles += defn.Cycles + mc.LastResult.IndexedCycles + mc.LastResult.StackedBytes
	mc.LastResult.Final = true

	return nil
}

// resolve the effective address of the instruction's operand. for immediate
// mode instructions the effective address is the address of the operand
// within the instruction. for relative mode instructions it is the branch
// destination.
func (mc *CPU) resolve(defn *instructions.Definition) (uint16, error) {
	switch defn.AddressingMode {
	case instructions.Inherent:
		return 0, nil

	case instructions.Immediate:
		ea := mc.PC.Address()
		if defn.Width == instructions.Word {
			mc.LastResult.InstructionData = mc.fetch16()
		} else {
			mc.LastResult.InstructionData = uint16(mc.fetch8())
		}
		return ea, nil

	case instructions.Direct:
		lo := mc.fetch8()
		mc.LastResult.InstructionData = uint16(lo)
		return uint16(mc.DP.Value())<<8 | uint16(lo), nil

	case instructions.Extended:
		ea := mc.fetch16()
		mc.LastResult.InstructionData = ea
		return ea, nil

	case instructions.Indexed:
		return mc.indexed()

	case instructions.Relative:
		offset := mc.fetch8()
		mc.LastResult.InstructionData = uint16(offset)
		return mc.PC.Address() + uint16(int8(offset)), nil

	case instructions.LongRelative:
		offset := mc.fetch16()
		mc.LastResult.InstructionData = offset
		return mc.PC.Address() + offset, nil
	}

	panic(fmt.Sprintf("cpu: unknown addressing mode for %s", defn.Mnemonic))
}

// operand returns the value at the effective address for the width of the
// instruction.
func (mc *CPU) operand(defn *instructions.Definition, ea uint16) uint16 {
	if defn.AddressingMode == instructions.Immediate {
		return mc.LastResult.InstructionData
	}
	if defn.Width == instructions.Word {
		return mc.read16(ea)
	}
	return uint16(mc.read8(ea))
}
