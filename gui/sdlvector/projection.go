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

package sdlvector

import "github.com/veandco/go-sdl2/sdl"

// the extent of the visible screen in beam units, measured from the centre.
// the Vectrex screen is taller than it is wide
const (
	extentX = 256.0
	extentY = 320.0
)

// the size of the window before scaling
const (
	baseWidth  = 330
	baseHeight = 410
)

// projection converts beam coordinates to window coordinates.
type projection struct {
	width  int32
	height int32
}

func (p projection) point(x, y float64) (int32, int32) {
	px := (x + extentX) / (extentX * 2) * float64(p.width)

	// positive Y on the Vectrex is towards the top of the screen
	py := (extentY - y) / (extentY * 2) * float64(p.height)

	return int32(px), int32(py)
}

// brightness returns the colour component for the beam intensity. a faint
// beam is still visible.
func brightness(intensity uint8) uint8 {
	if intensity >= 0x7f {
		return 0xff
	}
	return uint8(0x40 + int(intensity)*(0xff-0x40)/0x7f)
}

// the key bindings for the first controller's buttons
var buttonKeys = map[sdl.Keycode]uint8{
	sdl.K_a: 0x01,
	sdl.K_s: 0x02,
	sdl.K_d: 0x04,
	sdl.K_f: 0x08,
}

// the deflection of the joystick when a cursor key is held
const deflection = 127
