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

// Package govern defines the states the emulation can be in. The host loops
// in the hardware package use the State type to decide whether to continue
// stepping the machine.
package govern
