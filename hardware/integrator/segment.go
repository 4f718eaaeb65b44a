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

import (
	"fmt"
	"math"
)

// Segment is a line drawn by the beam.
type Segment struct {
	X0, Y0    float64
	X1, Y1    float64
	Intensity uint8

	// the frame number in which the segment was drawn
	Frame int
}

func (s Segment) String() string {
	return fmt.Sprintf("(%.2f,%.2f)->(%.2f,%.2f) z=%d frame=%d", s.X0, s.Y0, s.X1, s.Y1, s.Intensity, s.Frame)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.X1-s.X0, s.Y1-s.Y0)
}

// the maximum normalised cross product for two directions to be considered
// parallel.
const collinearEpsilon = 1e-6

// continues returns true if next can be merged into s.
func (s Segment) continues(next Segment) bool {
	if s.Frame != next.Frame || s.Intensity != next.Intensity {
		return false
	}
	if s.X1 != next.X0 || s.Y1 != next.Y0 {
		return false
	}

	ax, ay := s.X1-s.X0, s.Y1-s.Y0
	bx, by := next.X1-next.X0, next.Y1-next.Y0

	la := math.Hypot(ax, ay)
	lb := math.Hypot(bx, by)

	// a zero length segment is a dot at the end or start of the other
	// segment. merging does not change the drawn geometry
	if la == 0 || lb == 0 {
		return true
	}

	cross := (ax*by - ay*bx) / (la * lb)
	dot := ax*bx + ay*by

	return math.Abs(cross) <= collinearEpsilon && dot >= 0
}
