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

// tone is one of the three square wave generators.
type tone struct {
	// 12 bit period
	period uint16

	counter uint16
	output  bool
}

func (t tone) String() string {
	return fmt.Sprintf("period=%#03x out=%v", t.period, t.output)
}

// step the tone generator by one tone clock. the output toggles every period
// clocks. a period of zero behaves like a period of one.
func (t *tone) step() {
	t.counter++
	if t.counter >= t.period {
		t.counter = 0
		t.output = !t.output
	}
}
