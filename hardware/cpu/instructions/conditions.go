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

package instructions

import "github.com/jetsetilly/govectrex/hardware/cpu/registers"

// Condition of a branch instruction. The values are the same as the low
// nibble of the short branch opcodes.
type Condition int

// List of branch conditions.
const (
	Always Condition = iota
	Never
	Higher
	LowerOrSame
	CarryClear
	CarrySet
	NotEqual
	Equal
	OverflowClear
	OverflowSet
	Plus
	Minus
	GreaterOrEqual
	Less
	Greater
	LessOrEqual
)

var conditionNames = [...]string{"RA", "RN", "HI", "LS", "CC", "CS", "NE", "EQ", "VC", "VS", "PL", "MI", "GE", "LT", "GT", "LE"}

func (c Condition) String() string {
	if int(c) < len(conditionNames) {
		return conditionNames[c]
	}
	return "??"
}

// Evaluate the condition against the condition code register.
func (c Condition) Evaluate(cc registers.ConditionCode) bool {
	switch c {
	case Always:
		return true
	case Never:
		return false
	case Higher:
		return !cc.Carry && !cc.Zero
	case LowerOrSame:
		return cc.Carry || cc.Zero
	case CarryClear:
		return !cc.Carry
	case CarrySet:
		return cc.Carry
	case NotEqual:
		return !cc.Zero
	case Equal:
		return cc.Zero
	case OverflowClear:
		return !cc.Overflow
	case OverflowSet:
		return cc.Overflow
	case Plus:
		return !cc.Negative
	case Minus:
		return cc.Negative
	case GreaterOrEqual:
		return cc.Negative == cc.Overflow
	case Less:
		return cc.Negative != cc.Overflow
	case Greater:
		return !cc.Zero && cc.Negative == cc.Overflow
	case LessOrEqual:
		return cc.Zero || cc.Negative != cc.Overflow
	}
	return false
}
