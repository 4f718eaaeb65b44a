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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/govectrex/hardware/cpu"
	"github.com/jetsetilly/govectrex/hardware/cpu/execution"
	"github.com/jetsetilly/govectrex/hardware/memory/cpubus"
	"github.com/jetsetilly/govectrex/test"
)

// origin of test programs. the reset vector points here
const origin = uint16(0x1000)

// initial value of the S register
const stackTop = uint16(0x8000)

type mockMem struct {
	internal [0x10000]uint8
}

func newMockMem() *mockMem {
	mem := &mockMem{}
	mem.putVector(cpubus.Reset, origin)
	return mem
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.Write(vector, uint8(address>>8))
	mem.Write(vector+1, uint8(address))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.Read(address), value, "address", address)
}

// newCPU returns a reset CPU with the S register loaded and the PC at
// origin.
func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc := cpu.NewCPU(mem, cpu.TraceConfig{})
	mc.Reset()
	mc.LoadS(stackTop)
	test.DemandEquality(t, mc.PC.Value(), origin)
	return mc, mem
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mc.LastResult.IsValid())
	return mc.LastResult
}
