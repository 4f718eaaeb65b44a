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

package addresses

// ViaRegister is the offset of a register in the VIA's 16 byte window.
type ViaRegister uint8

// List of VIA registers.
const (
	ORB ViaRegister = iota
	ORA
	DDRB
	DDRA
	T1CL
	T1CH
	T1LL
	T1LH
	T2CL
	T2CH
	SR
	ACR
	PCR
	IFR
	IER
	ORANoHandshake
)

// ViaRegisterNames are the canonical names of the VIA registers.
var ViaRegisterNames = [16]string{
	"ORB", "ORA", "DDRB", "DDRA",
	"T1C-L", "T1C-H", "T1L-L", "T1L-H",
	"T2C-L", "T2C-H", "SR", "ACR",
	"PCR", "IFR", "IER", "ORA(nh)",
}

func (r ViaRegister) String() string {
	return ViaRegisterNames[r&0x0f]
}
