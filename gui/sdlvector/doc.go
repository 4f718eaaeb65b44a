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

// Package sdlvector draws the beam segments produced by the Vectrex emulation
// in an SDL window. Each segment is drawn as a line with a brightness
// proportional to the segment's intensity.
//
// The window also gathers keyboard input. The A, S, D and F keys are the four
// buttons of the first controller and the cursor keys move its joystick.
package sdlvector
