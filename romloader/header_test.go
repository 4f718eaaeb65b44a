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

package romloader_test

import (
	"testing"

	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/romloader"
	"github.com/jetsetilly/govectrex/test"
)

func TestHeader(t *testing.T) {
	data := []byte("g GCE 1983\x80\xfd\x0d")
	data = append(data, 0xf8, 0x50, 0x20, 0xd0)
	data = append(data, []byte("SPACE\x80")...)
	data = append(data, 0xf8, 0x50, 0x10, 0xd0)
	data = append(data, []byte("GAME\x80")...)
	data = append(data, 0x00)

	h, err := romloader.ParseHeader(data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.Copyright, "g GCE 1983")
	test.ExpectEquality(t, h.MusicAddress, uint16(0xfd0d))
	test.DemandEquality(t, len(h.Title), 2)
	test.ExpectEquality(t, h.Title[0], "SPACE")
	test.ExpectEquality(t, h.Title[1], "GAME")
}

func TestNoHeader(t *testing.T) {
	_, err := romloader.ParseHeader([]byte{0x12, 0x12, 0x12})
	test.ExpectEquality(t, curated.Is(err, romloader.NoHeader), true)

	_, err = romloader.ParseHeader([]byte("g GCE 1983"))
	test.ExpectEquality(t, curated.Is(err, romloader.NoHeader), true)
}
