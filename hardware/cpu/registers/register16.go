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

package registers

import "fmt"

// Register16 is a 16 bit register. The index registers, the stack pointers
// and the program counter are all of this type.
type Register16 struct {
	label string
	value uint16
}

// NewRegister16 is the preferred method of initialisation for Register16.
func NewRegister16(val uint16, label string) Register16 {
	return Register16{
		value: val,
		label: label,
	}
}

func (r Register16) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Label returns the name of the register.
func (r Register16) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register16) Value() uint16 {
	return r.value
}

// Address is the same as Value(). It reads better when the register is being
// used as a pointer.
func (r Register16) Address() uint16 {
	return r.value
}

// Load value into register.
func (r *Register16) Load(val uint16) {
	r.value = val
}

// Add a signed value to the register. The result wraps around at the 16 bit
// boundary in both directions.
func (r *Register16) Add(val int) {
	r.value = uint16(int(r.value) + val)
}

// Hi returns the most significant byte of the register.
func (r Register16) Hi() uint8 {
	return uint8(r.value >> 8)
}

// Lo returns the least significant byte of the register.
func (r Register16) Lo() uint8 {
	return uint8(r.value)
}
