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

package hardware

// the integrator moves by this fraction of the DAC value every cycle. a DAC
// value of 127 ramped for 255 cycles moves the beam to the edge of the screen
const velocityScale = 1.0 / 128.0

// port B bits used by the analogue circuitry
const (
	pbMuxDisable = 0x01
	pbMuxSelect  = 0x06
	pbComparator = 0x20
	pbRamp       = 0x80
)

// sample and hold channels selected by PB1 and PB2
const (
	muxY = iota
	muxZeroRef
	muxZ
	muxSound
)

// the analogue state between the VIA and the beam integrator.
type analogue struct {
	// sample and hold values
	yHold   int
	zeroRef int
	z       uint8

	// joystick potentiometers in the same order as the mux channels
	pots [4]int8

	// inputs last applied to the integrator
	vx, vy float64
	on     bool
	zero   bool

	// cycles that have elapsed since the integrator was last ticked
	pending int
}

func (a *analogue) reset() {
	pots := a.pots
	*a = analogue{}
	a.pots = pots
}

// dac returns the signed output of the DAC for the value on port A. the DAC
// is an offset binary converter.
func dac(portA uint8) int {
	return int(portA^0x80) - 128
}

// flushBeam moves the beam for the cycles that have elapsed since the
// previous flush.
func (vec *Vectrex) flushBeam() {
	if vec.analogue.pending > 0 {
		vec.Beam.Tick(vec.analogue.pending, vec.frame)
		vec.analogue.pending = 0
	}
}

// updateAnalogue derives the integrator inputs from the VIA output latches.
// the DAC and the mux are wired to the port pins and see the latched value
// whatever the DDR holds. the integrator is only flushed when the inputs
// change.
func (vec *Vectrex) updateAnalogue() {
	a := &vec.analogue

	pa := vec.VIA.OutputA()
	pb := vec.VIA.OutputB()
	d := dac(pa)
	sel := int(pb&pbMuxSelect) >> 1

	if pb&pbMuxDisable == 0 {
		switch sel {
		case muxY:
			a.yHold = d
		case muxZeroRef:
			a.zeroRef = d
		case muxZ:
			if d < 0 {
				d = 0
			}
			z := uint8(d)
			if z != a.z {
				vec.flushBeam()
				a.z = z
				vec.Beam.SetIntensity(z)
			}
		}
	}

	// the comparator compares the selected joystick pot with the DAC
	irb := vec.VIA.IRB &^ pbComparator
	if int(a.pots[sel]) > d {
		irb |= pbComparator
	}
	vec.VIA.SetInputB(irb)

	zero := !vec.VIA.CA2()
	on := vec.VIA.CB2()

	var vx, vy float64
	if pb&pbRamp == 0 && !zero {
		vx = float64(d-a.zeroRef) * velocityScale
		vy = float64(a.yHold-a.zeroRef) * velocityScale
	}

	if vx != a.vx || vy != a.vy || on != a.on || zero != a.zero {
		vec.flushBeam()
		a.vx, a.vy = vx, vy
		a.on = on
		a.zero = zero

		vec.Beam.SetVelocity(vx, vy)
		if on {
			vec.Beam.BeamOn()
		} else {
			vec.Beam.BeamOff()
		}
	}

	if zero {
		vec.Beam.InstantMove(0, 0)
	}
}
