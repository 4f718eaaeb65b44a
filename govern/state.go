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

package govern

// State is returned by the continue check of a host loop to say what the
// loop should do next.
type State int

// List of emulation states. Stopped is the zero value and is never a valid
// result of a continue check.
const (
	Stopped State = iota
	Paused
	Running
	Ending
)

var stateNames = map[State]string{
	Stopped: "Stopped",
	Paused:  "Paused",
	Running: "Running",
	Ending:  "Ending",
}

func (s State) String() string {
	return stateNames[s]
}
