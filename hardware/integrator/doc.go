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

// Package integrator models the analogue beam integrators of the Vectrex. The
// beam moves with a velocity set by the X and Y DACs and draws a line when it
// is switched on with a non-zero intensity.
//
// Lines are emitted as Segments into a buffer which is drained by the
// renderer with TakeSegments(). The integrator has no idea about the VIA. The
// glue between the VIA outputs and the integrator inputs is in the hardware
// package.
//
// When merging is enabled, a new segment that continues the previous segment
// in the same direction is folded into the previous segment. This reduces the
// number of segments without changing what is drawn.
package integrator
