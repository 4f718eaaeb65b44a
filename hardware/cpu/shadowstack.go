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
	"strings"
)

// Mismatch records an RTI that did not return to the address stacked by the
// most recent frame.
type Mismatch struct {
	// the frame that was expected to be unstacked. the zero value if there
	// was no frame
	Expected Frame
	Empty    bool

	// the PC and S after the RTI
	ReturnPC     uint16
	StackPointer uint16
}

func (m Mismatch) String() string {
	if m.Empty {
		return fmt.Sprintf("RTI to %#04x with no frame", m.ReturnPC)
	}
	return fmt.Sprintf("RTI to %#04x expected %#04x (%s)", m.ReturnPC, m.Expected.ReturnPC, m.Expected.Kind)
}

// ShadowStack keeps a copy of every interrupt frame stacked by the CPU and
// checks that each RTI returns to the stacked address. The stack in RAM is
// authoritative. The shadow stack only reports differences.
//
// Install with:
//
//	mc.ShadowStack = cpu.NewShadowStack()
type ShadowStack struct {
	frames     []Frame
	mismatches []Mismatch
}

// NewShadowStack is the preferred method of initialisation for the
// ShadowStack type.
func NewShadowStack() *ShadowStack {
	return &ShadowStack{}
}

func (sh *ShadowStack) reset() {
	sh.frames = sh.frames[:0]
	sh.mismatches = sh.mismatches[:0]
}

func (sh *ShadowStack) push(f Frame) {
	sh.frames = append(sh.frames, f)
}

func (sh *ShadowStack) pop(returnPC uint16, sp uint16) {
	if len(sh.frames) == 0 {
		sh.mismatches = append(sh.mismatches, Mismatch{
			Empty:        true,
			ReturnPC:     returnPC,
			StackPointer: sp,
		})
		return
	}

	f := sh.frames[len(sh.frames)-1]
	sh.frames = sh.frames[:len(sh.frames)-1]

	if f.ReturnPC != returnPC {
		sh.mismatches = append(sh.mismatches, Mismatch{
			Expected:     f,
			ReturnPC:     returnPC,
			StackPointer: sp,
		})
	}
}

// Frames returns the frames currently stacked. The innermost frame is last.
func (sh *ShadowStack) Frames() []Frame {
	return sh.frames
}

// Mismatches returns the list of RTI instructions that did not return to the
// expected address.
func (sh *ShadowStack) Mismatches() []Mismatch {
	return sh.mismatches
}

func (sh *ShadowStack) String() string {
	s := strings.Builder{}
	for i := len(sh.frames) - 1; i >= 0; i-- {
		s.WriteString(sh.frames[i].String())
		s.WriteString("\n")
	}
	return s.String()
}
