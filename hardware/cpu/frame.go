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

import "fmt"

// FrameKind identifies the cause of an interrupt frame being stacked.
type FrameKind int

// List of frame kinds.
const (
	FrameIRQ FrameKind = iota
	FrameFIRQ
	FrameNMI
	FrameSWI
	FrameSWI2
	FrameSWI3
	FrameWAI
	FrameCWAI
)

func (k FrameKind) String() string {
	switch k {
	case FrameIRQ:
		return "IRQ"
	case FrameFIRQ:
		return "FIRQ"
	case FrameNMI:
		return "NMI"
	case FrameSWI:
		return "SWI"
	case FrameSWI2:
		return "SWI2"
	case FrameSWI3:
		return "SWI3"
	case FrameWAI:
		return "WAI"
	case FrameCWAI:
		return "CWAI"
	}
	return "unknown frame"
}

// Frame describes the registers stacked on the S stack by an interrupt or by
// one of the wait instructions.
type Frame struct {
	Kind FrameKind

	// the entire register set was stacked. the alternative is that only PC
	// and CC were stacked
	Full bool

	// the PC value that was stacked
	ReturnPC uint16

	// the value of S after the frame was stacked
	StackPointer uint16

	// the bytes of the frame in the order they were pushed
	Bytes []uint8
}

func (f Frame) String() string {
	return fmt.Sprintf("%s return=%#04x S=%#04x (%d bytes)", f.Kind, f.ReturnPC, f.StackPointer, len(f.Bytes))
}

// size of the stacked frames in bytes.
const (
	FullFrameSize    = 12
	PartialFrameSize = 3
)

// stackFrame pushes the interrupt frame on to the S stack. the E flag is set
// to indicate whether the entire register set was stacked and is itself
// stacked as part of CC.
func (mc *CPU) stackFrame(kind FrameKind, entire bool) {
	mc.CC.Entire = entire

	record := mc.ShadowStack != nil

	var f Frame
	if record {
		f = Frame{
			Kind:     kind,
			Full:     entire,
			ReturnPC: mc.PC.Value(),
		}
		if entire {
			f.Bytes = make([]uint8, 0, FullFrameSize)
		} else {
			f.Bytes = make([]uint8, 0, PartialFrameSize)
		}
	}

	push := func(v uint8) {
		mc.push8(&mc.S, v)
		if record {
			f.Bytes = append(f.Bytes, v)
		}
	}

	push(mc.PC.Lo())
	push(mc.PC.Hi())
	if entire {
		push(mc.U.Lo())
		push(mc.U.Hi())
		push(mc.Y.Lo())
		push(mc.Y.Hi())
		push(mc.X.Lo())
		push(mc.X.Hi())
		push(mc.DP.Value())
		push(mc.B.Value())
		push(mc.A.Value())
	}
	push(mc.CC.Value())

	if record {
		f.StackPointer = mc.S.Value()
		mc.ShadowStack.push(f)
	}
}
