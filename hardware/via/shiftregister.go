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

package via

import "fmt"

// the length of a complete shift sequence in half-cycles. eight bits are
// shifted out on odd half-cycles followed by a repeat of the last bit.
const shiftSequenceLength = 18

// ShiftRegister is the VIA's 8 bit shift register in shift out mode. The
// Vectrex uses the bits shifted out on CB2 to blank the beam, which is how
// the BIOS draws dotted and patterned lines.
type ShiftRegister struct {
	Value uint8

	// number of half-cycles remaining in the current sequence. zero when
	// the sequence has completed
	HalfCycles int

	// the CB2 output. false means the beam is blanked
	CB2 bool
}

func (sr ShiftRegister) String() string {
	return fmt.Sprintf("SR=%#02x left=%d CB2=%v", sr.Value, sr.HalfCycles, sr.CB2)
}

// SetValue loads the shift register and restarts the shift sequence.
func (sr *ShiftRegister) SetValue(v uint8) {
	sr.Value = v
	sr.HalfCycles = shiftSequenceLength
}

// restart the shift sequence without changing the value.
func (sr *ShiftRegister) restart() {
	sr.HalfCycles = shiftSequenceLength
}

// Active returns true if a shift sequence is in progress.
func (sr *ShiftRegister) Active() bool {
	return sr.HalfCycles > 0
}

// Update advances the shift sequence by the number of half-cycles. Returns
// true if the sequence completed during the update.
func (sr *ShiftRegister) Update(halfCycles int) bool {
	completed := false

	for ; halfCycles > 0 && sr.HalfCycles > 0; halfCycles-- {
		n := shiftSequenceLength - sr.HalfCycles + 1
		sr.HalfCycles--

		switch {
		case n < shiftSequenceLength-1 && n&0x01 == 0x01:
			// rotate left. the bit shifted out is the new CB2 value
			out := sr.Value >> 7
			sr.Value = sr.Value<<1 | out
			sr.CB2 = out == 0x01
		case n == shiftSequenceLength-1:
			// the last bit is repeated. CB2 does not change
		case n == shiftSequenceLength:
			completed = true
		}
	}

	return completed
}
