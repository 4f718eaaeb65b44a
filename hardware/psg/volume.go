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

import "math"

// the amplitude of each of the 16 volume levels. the AY volume control is
// logarithmic with each step being half the power of the step above.
var volumeTable [16]float32

func init() {
	volumeTable[0] = 0
	for i := 1; i < 16; i++ {
		volumeTable[i] = float32(1.0 / math.Pow(math.Sqrt2, float64(15-i)))
	}
}

// Volume returns the amplitude of the volume level in the range 0 to 1.
func Volume(level uint8) float32 {
	return volumeTable[level&0x0f]
}
