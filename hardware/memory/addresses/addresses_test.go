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

package addresses_test

import (
	"testing"

	"github.com/jetsetilly/govectrex/hardware/memory/addresses"
	"github.com/jetsetilly/govectrex/test"
)

func TestMapAddress(t *testing.T) {
	type spec struct {
		address    uint16
		normalised uint16
		area       addresses.Area
	}

	for _, s := range []spec{
		{0x0000, 0x0000, addresses.Cartridge},
		{0x7fff, 0x7fff, addresses.Cartridge},
		{0x8000, 0x8000, addresses.Unmapped},
		{0xc7ff, 0xc7ff, addresses.Unmapped},
		{0xc800, 0x0000, addresses.RAM},
		{0xcbff, 0x03ff, addresses.RAM},
		{0xcc00, 0x0000, addresses.RAM},
		{0xcfff, 0x03ff, addresses.RAM},
		{0xd000, 0x0000, addresses.VIA},
		{0xd00f, 0x000f, addresses.VIA},
		{0xd010, 0x0000, addresses.VIA},
		{0xd7fe, 0x000e, addresses.VIA},
		{0xd800, 0x0000, addresses.VIAAndRAM},
		{0xdfff, 0x000f, addresses.VIAAndRAM},
		{0xe000, 0xe000, addresses.BIOS},
		{0xffff, 0xffff, addresses.BIOS},
	} {
		n, a := addresses.MapAddress(s.address)
		test.ExpectEquality(t, n, s.normalised, s.address)
		test.ExpectEquality(t, a, s.area, s.address)
	}

	test.ExpectEquality(t, addresses.IsArea(0xd00e, addresses.VIA), true)
	test.ExpectEquality(t, addresses.IsArea(0xd00e, addresses.RAM), false)
}

func TestSummary(t *testing.T) {
	expected := "0000 -> 7fff\tCartridge\n" +
		"8000 -> c7ff\tUnmapped\n" +
		"c800 -> cfff\tRAM\n" +
		"d000 -> d7ff\tVIA\n" +
		"d800 -> dfff\tVIA+RAM\n" +
		"e000 -> ffff\tBIOS\n"
	test.ExpectEquality(t, addresses.Summary(), expected)
}

func TestViaRegisterNames(t *testing.T) {
	test.ExpectEquality(t, addresses.T2CL.String(), "T2C-L")
	test.ExpectEquality(t, addresses.ORANoHandshake.String(), "ORA(nh)")
	test.ExpectEquality(t, addresses.ViaRegister(0x1e).String(), "IER")
}
