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
	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	// interrupt and waiting steps have no definition to check against
	if r.Interrupt != NoInterrupt || r.Waiting {
		if r.Defn != nil {
			return curated.Errorf("cpu: interrupt step has an instruction definition")
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: no instruction definition")
	}

	if r.IndexedBytes != 0 || r.IndexedCycles != 0 {
		if r.Defn.AddressingMode != instructions.Indexed {
			return curated.Errorf("cpu: unexpected indexed cycles for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic)
		}
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes+r.IndexedBytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes+r.IndexedBytes)
	}

	expected := r.Defn.Cycles + r.IndexedCycles + r.StackedBytes
	if r.EntireUnstacked {
		expected += 9
	}
	if r.BranchTaken && r.Defn.IsConditional() {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Mnemonic,
			r.Cycles,
			expected)
	}

	return nil
}
