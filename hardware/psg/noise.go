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

package psg

import "fmt"

// noise is the pseudo-random noise generator shared by the three channels.
type noise struct {
	// 5 bit period
	period uint8

	counter uint8

	// 17 bit linear feedback shift register
	lfsr   uint32
	output bool
}

func (n noise) String() string {
	return fmt.Sprintf("period=%#02x lfsr=%#05x", n.period, n.lfsr)
}

func (n *noise) reset() {
	n.counter = 0
	n.lfsr = 1
	n.output = true
}

// step the noise generator by one noise clock.
func (n *noise) step() {
	n.counter++
	if n.counter < n.period {
		return
	}
	n.counter = 0

	// taps at bits 0 and 3
	fb := (n.lfsr ^ (n.lfsr >> 3)) & 0x01
	n.lfsr = (n.lfsr >> 1) | (fb << 16)
	n.output = n.lfsr&0x01 == 0x01
}
