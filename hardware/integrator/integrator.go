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

package integrator

import "fmt"

// Integrator is the state of the beam.
type Integrator struct {
	// position of the beam
	X, Y float64

	// velocity of the beam in units per cycle
	VX, VY float64

	Intensity uint8
	On        bool

	merge bool

	// segments drawn since the last call to TakeSegments()
	segments []Segment
}

// NewIntegrator is the preferred method of initialisation for the Integrator
// type.
func NewIntegrator(merge bool) *Integrator {
	return &Integrator{
		merge: merge,
	}
}

func (in *Integrator) String() string {
	return fmt.Sprintf("pos=(%.2f,%.2f) vel=(%.3f,%.3f) z=%d on=%v segments=%d",
		in.X, in.Y, in.VX, in.VY, in.Intensity, in.On, len(in.segments))
}

// Reset the beam to the centre of the screen. Undrained segments are
// discarded.
func (in *Integrator) Reset() {
	in.X, in.Y = 0, 0
	in.VX, in.VY = 0, 0
	in.Intensity = 0
	in.On = false
	in.segments = nil
}

// SetMerge turns segment merging on or off.
func (in *Integrator) SetMerge(merge bool) {
	in.merge = merge
}

// Merge returns true if segment merging is on.
func (in *Integrator) Merge() bool {
	return in.merge
}

// SetVelocity of the beam.
func (in *Integrator) SetVelocity(vx, vy float64) {
	in.VX = vx
	in.VY = vy
}

// SetIntensity of the beam.
func (in *Integrator) SetIntensity(z uint8) {
	in.Intensity = z
}

// BeamOn unblanks the beam.
func (in *Integrator) BeamOn() {
	in.On = true
}

// BeamOff blanks the beam.
func (in *Integrator) BeamOff() {
	in.On = false
}

// InstantMove places the beam at the position without drawing.
func (in *Integrator) InstantMove(x, y float64) {
	in.X = x
	in.Y = y
}

// Tick moves the beam by its velocity for the number of cycles. A segment is
// emitted if the beam is on and the intensity is above zero.
func (in *Integrator) Tick(cycles int, frame int) {
	if cycles <= 0 {
		return
	}

	x0, y0 := in.X, in.Y
	in.X += in.VX * float64(cycles)
	in.Y += in.VY * float64(cycles)

	if !in.On || in.Intensity == 0 {
		return
	}

	in.emit(Segment{
		X0:        x0,
		Y0:        y0,
		X1:        in.X,
		Y1:        in.Y,
		Intensity: in.Intensity,
		Frame:     frame,
	})
}

func (in *Integrator) emit(s Segment) {
	if in.merge && len(in.segments) > 0 {
		prev := &in.segments[len(in.segments)-1]
		if prev.continues(s) {
			prev.X1 = s.X1
			prev.Y1 = s.Y1
			return
		}
	}
	in.segments = append(in.segments, s)
}

// NumSegments returns the number of segments waiting to be drained.
func (in *Integrator) NumSegments() int {
	return len(in.segments)
}

// TakeSegments returns the segments drawn since the previous call. Ownership
// of the returned slice passes to the caller.
func (in *Integrator) TakeSegments() []Segment {
	s := in.segments
	in.segments = nil
	return s
}
