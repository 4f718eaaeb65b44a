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

import (
	"strings"
)

// bit positions of each flag in the packed representation of the register.
const (
	FlagEntire            = 0x80
	FlagFastInterruptMask = 0x40
	FlagHalfCarry         = 0x20
	FlagInterruptMask     = 0x10
	FlagNegative          = 0x08
	FlagZero              = 0x04
	FlagOverflow          = 0x02
	FlagCarry             = 0x01
)

// ConditionCode is the special purpose register that stores the flags of the
// CPU.
type ConditionCode struct {
	// the entire register set was stacked by the most recent interrupt
	Entire bool

	// FIRQ is masked when true
	FastInterruptMask bool

	// carry out of bit 3 of an 8 bit addition
	HalfCarry bool

	// IRQ is masked when true
	InterruptMask bool

	Negative bool
	Zero     bool
	Overflow bool
	Carry    bool
}

// Label returns the canonical name for the condition code register.
func (cc ConditionCode) Label() string {
	return "CC"
}

func (cc ConditionCode) String() string {
	s := strings.Builder{}

	flag := func(f bool, set rune) {
		if f {
			s.WriteRune(set)
		} else {
			s.WriteRune(set + ('a' - 'A'))
		}
	}

	flag(cc.Entire, 'E')
	flag(cc.FastInterruptMask, 'F')
	flag(cc.HalfCarry, 'H')
	flag(cc.InterruptMask, 'I')
	flag(cc.Negative, 'N')
	flag(cc.Zero, 'Z')
	flag(cc.Overflow, 'V')
	flag(cc.Carry, 'C')

	return s.String()
}

// Reset flags to the state after a CPU reset. Both interrupt masks are set.
func (cc *ConditionCode) Reset() {
	cc.FromValue(FlagInterruptMask | FlagFastInterruptMask)
}

// Value converts the ConditionCode struct into a value suitable for pushing
// onto the stack.
func (cc ConditionCode) Value() uint8 {
	var v uint8

	if cc.Entire {
		v |= FlagEntire
	}
	if cc.FastInterruptMask {
		v |= FlagFastInterruptMask
	}
	if cc.HalfCarry {
		v |= FlagHalfCarry
	}
	if cc.InterruptMask {
		v |= FlagInterruptMask
	}
	if cc.Negative {
		v |= FlagNegative
	}
	if cc.Zero {
		v |= FlagZero
	}
	if cc.Overflow {
		v |= FlagOverflow
	}
	if cc.Carry {
		v |= FlagCarry
	}

	return v
}

// FromValue converts an 8 bit integer (taken from the stack, for example) to
// the ConditionCode struct receiver.
func (cc *ConditionCode) FromValue(v uint8) {
	cc.Entire = v&FlagEntire == FlagEntire
	cc.FastInterruptMask = v&FlagFastInterruptMask == FlagFastInterruptMask
	cc.HalfCarry = v&FlagHalfCarry == FlagHalfCarry
	cc.InterruptMask = v&FlagInterruptMask == FlagInterruptMask
	cc.Negative = v&FlagNegative == FlagNegative
	cc.Zero = v&FlagZero == FlagZero
	cc.Overflow = v&FlagOverflow == FlagOverflow
	cc.Carry = v&FlagCarry == FlagCarry
}
