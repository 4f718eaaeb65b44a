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

// bits of the envelope shape register.
const (
	shapeHold      = 0x01
	shapeAlternate = 0x02
	shapeAttack    = 0x04
	shapeContinue  = 0x08
)

// the number of steps in one envelope cycle.
const envelopeSteps = 16

// envelope is the envelope generator. the shape register selects one of the
// ten distinct envelope shapes:
//
//	0-3   \___      8  \\\\      12  ////
//	4-7   /___      9  \___      13  /‾‾‾
//	                10 \/\/      14  /\/\
//	                11 \‾‾‾      15  /___
type envelope struct {
	// 16 bit period
	period uint16
	shape  uint8

	counter uint16

	// position in the current cycle and the direction of the cycle
	pos    int
	attack bool

	// the envelope has finished and the level no longer changes
	holding bool

	level uint8
}

func (e envelope) String() string {
	return fmt.Sprintf("period=%#04x shape=%#x level=%d", e.period, e.shape, e.level)
}

// restart the envelope with the shape.
func (e *envelope) restart(shape uint8) {
	e.shape = shape & 0x0f
	e.counter = 0
	e.pos = 0
	e.attack = e.shape&shapeAttack == shapeAttack
	e.holding = false
	e.setLevel()
}

func (e *envelope) setLevel() {
	if e.attack {
		e.level = uint8(e.pos)
	} else {
		e.level = uint8(envelopeSteps - 1 - e.pos)
	}
}

// step the envelope generator by one envelope clock.
func (e *envelope) step() {
	if e.holding {
		return
	}

	e.counter++
	if e.counter < e.period {
		return
	}
	e.counter = 0

	e.pos++
	if e.pos < envelopeSteps {
		e.setLevel()
		return
	}

	// end of cycle
	if e.shape&shapeContinue == 0 {
		e.holding = true
		e.level = 0
		return
	}

	if e.shape&shapeHold == shapeHold {
		e.holding = true
		final := e.attack
		if e.shape&shapeAlternate == shapeAlternate {
			final = !final
		}
		if final {
			e.level = envelopeSteps - 1
		} else {
			e.level = 0
		}
		return
	}

	if e.shape&shapeAlternate == shapeAlternate {
		e.attack = !e.attack
	}
	e.pos = 0
	e.setLevel()
}
