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

// Timer1 is the first of the VIA's two interval timers. It can run in one-shot
// or free-run mode and can drive PB7.
type Timer1 struct {
	Counter uint16
	Latch   uint16

	// a one-shot timer only raises the interrupt flag once after being
	// started
	armed bool

	// the PB7 output of the timer. only visible on the port when ACR bit 7 is
	// set
	PB7 bool
}

func (t Timer1) String() string {
	return fmt.Sprintf("T1=%#04x latch=%#04x armed=%v PB7=%v", t.Counter, t.Latch, t.armed, t.PB7)
}

// start the timer by copying the latch into the counter.
func (t *Timer1) start() {
	t.Counter = t.Latch
	t.armed = true
	t.PB7 = false
}

// step the timer by one cycle. returns true if the timer has expired and the
// interrupt flag should be raised.
func (t *Timer1) step(freeRun bool) bool {
	t.Counter--
	if t.Counter != 0 {
		return false
	}

	if freeRun {
		t.Counter = t.Latch
		t.PB7 = !t.PB7
		return true
	}

	if t.armed {
		t.armed = false
		t.PB7 = true
		return true
	}

	return false
}

// Timer2 is the second of the VIA's interval timers. It is one-shot only.
type Timer2 struct {
	Counter uint16

	// only the low byte of the latch is stored. the high byte is written
	// directly to the counter when the timer is started
	LatchLo uint8

	armed bool
}

func (t Timer2) String() string {
	return fmt.Sprintf("T2=%#04x latch=%#02x armed=%v", t.Counter, t.LatchLo, t.armed)
}

// start the timer with the value hi:LatchLo.
func (t *Timer2) start(hi uint8) {
	t.Counter = uint16(hi)<<8 | uint16(t.LatchLo)
	t.armed = true
}

// step the timer by one cycle. returns true if the timer has expired.
func (t *Timer2) step() bool {
	t.Counter--
	if t.Counter == 0 && t.armed {
		t.armed = false
		return true
	}
	return false
}
