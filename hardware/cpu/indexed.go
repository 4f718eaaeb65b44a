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
	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/hardware/cpu/registers"
)

// indexed addressing sub-modes. the value is the low nibble of the postbyte
// when bit 7 of the postbyte is set.
const (
	idxPostInc1    = 0x0
	idxPostInc2    = 0x1
	idxPreDec1     = 0x2
	idxPreDec2     = 0x3
	idxNoOffset    = 0x4
	idxOffsetB     = 0x5
	idxOffsetA     = 0x6
	idxOffset8     = 0x8
	idxOffset16    = 0x9
	idxOffsetD     = 0xb
	idxPCR8        = 0xc
	idxPCR16       = 0xd
	idxExtIndirect = 0xf
)

// additional cycles and bytes for each sub-mode. a value of -1 indicates
// an illegal postbyte. the indirect cycle counts include the cycles for
// the indirection.
var indexedCycles = [16]struct {
	direct   int
	indirect int
	bytes    int
}{
	idxPostInc1:    {direct: 2, indirect: -1},
	idxPostInc2:    {direct: 3, indirect: 6},
	idxPreDec1:     {direct: 2, indirect: -1},
	idxPreDec2:     {direct: 3, indirect: 6},
	idxNoOffset:    {direct: 0, indirect: 3},
	idxOffsetB:     {direct: 1, indirect: 4},
	idxOffsetA:     {direct: 1, indirect: 4},
	0x7:            {direct: -1, indirect: -1},
	idxOffset8:     {direct: 1, indirect: 4, bytes: 1},
	idxOffset16:    {direct: 4, indirect: 7, bytes: 2},
	0xa:            {direct: -1, indirect: -1},
	idxOffsetD:     {direct: 4, indirect: 7},
	idxPCR8:        {direct: 1, indirect: 4, bytes: 1},
	idxPCR16:       {direct: 5, indirect: 8, bytes: 2},
	0xe:            {direct: -1, indirect: -1},
	idxExtIndirect: {direct: -1, indirect: 5, bytes: 2},
}

// indexRegister returns the register selected by bits 5 and 6 of the
// postbyte.
func (mc *CPU) indexRegister(postbyte uint8) *registers.Register16 {
	switch (postbyte >> 5) & 0x03 {
	case 0:
		return &mc.X
	case 1:
		return &mc.Y
	case 2:
		return &mc.U
	}
	return &mc.S
}

// indexed reads the postbyte and any offset bytes and returns the effective
// address. the postbyte is checked before any register is changed so an
// illegal postbyte leaves the CPU as it was.
func (mc *CPU) indexed() (uint16, error) {
	opcode := mc.LastResult.Opcode
	postbyte := mc.fetch8()
	mc.LastResult.InstructionData = uint16(postbyte)

	reg := mc.indexRegister(postbyte)

	// 5 bit signed offset
	if postbyte&0x80 == 0 {
		mc.LastResult.IndexedCycles = 1
		offset := int(postbyte & 0x1f)
		if offset&0x10 == 0x10 {
			offset -= 0x20
		}
		return uint16(int(reg.Value()) + offset), nil
	}

	mode := postbyte & 0x0f
	indirect := postbyte&0x10 == 0x10

	cycles := indexedCycles[mode].direct
	if indirect {
		cycles = indexedCycles[mode].indirect
	}
	if cycles < 0 {
		return 0, curated.Errorf(IllegalPostbyte, postbyte, opcode, mc.LastResult.Address)
	}
	mc.LastResult.IndexedCycles = cycles
	mc.LastResult.IndexedBytes = indexedCycles[mode].bytes

	var ea uint16

	switch mode {
	case idxPostInc1:
		ea = reg.Value()
		reg.Add(1)
	case idxPostInc2:
		ea = reg.Value()
		reg.Add(2)
	case idxPreDec1:
		reg.Add(-1)
		ea = reg.Value()
	case idxPreDec2:
		reg.Add(-2)
		ea = reg.Value()
	case idxNoOffset:
		ea = reg.Value()
	case idxOffsetB:
		ea = reg.Value() + uint16(int8(mc.B.Value()))
	case idxOffsetA:
		ea = reg.Value() + uint16(int8(mc.A.Value()))
	case idxOffset8:
		ea = reg.Value() + uint16(int8(mc.fetch8()))
	case idxOffset16:
		ea = reg.Value() + mc.fetch16()
	case idxOffsetD:
		ea = reg.Value() + mc.D()
	case idxPCR8:
		offset := mc.fetch8()
		ea = mc.PC.Address() + uint16(int8(offset))
	case idxPCR16:
		offset := mc.fetch16()
		ea = mc.PC.Address() + offset
	case idxExtIndirect:
		ea = mc.fetch16()
	}

	if indirect {
		ea = mc.read16(ea)
	}

	return ea, nil
}
