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

// Package registers implements the registers of the 6809 CPU. Register is
// the 8 bit type used for the A, B and DP registers. Register16 is used for
// X, Y, U, S and PC. The ConditionCode register stores the flags as
// independent boolean fields and converts to and from the packed byte
// representation when the register is stacked.
//
// Registers do not update the condition code register themselves. That is
// done by the ALU in the cpu package, which knows the width of the operation
// and the flag rules of the instruction.
package registers
