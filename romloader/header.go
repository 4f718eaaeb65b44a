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

package romloader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jetsetilly/govectrex/curated"
)

// NoHeader is returned by ParseHeader() when the data does not start with a
// Vectrex cartridge header.
const NoHeader = "romloader: no cartridge header"

// strings in the header are terminated by this value
const headerTerminator = 0x80

var headerMagic = []byte("g GCE")

// Header is the information at the start of every Vectrex cartridge. The BIOS
// checks for the copyright string before starting the cartridge.
type Header struct {
	Copyright string

	// address of the music played on the title screen
	MusicAddress uint16

	// the lines of the title shown on the title screen
	Title []string
}

func (h Header) String() string {
	return fmt.Sprintf("%s: %s (music at %#04x)", h.Copyright, strings.Join(h.Title, " "), h.MusicAddress)
}

// ParseHeader reads the cartridge header from the start of the data.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if !bytes.HasPrefix(data, headerMagic) {
		return h, curated.Errorf(NoHeader)
	}

	end := bytes.IndexByte(data, headerTerminator)
	if end < 0 || end+3 > len(data) {
		return h, curated.Errorf(NoHeader)
	}
	h.Copyright = string(data[:end])
	h.MusicAddress = uint16(data[end+1])<<8 | uint16(data[end+2])

	// each title line is height, width, y, x and then the text
	p := end + 3
	for p < len(data) && data[p] != 0x00 {
		p += 4
		if p >= len(data) {
			break
		}
		l := bytes.IndexByte(data[p:], headerTerminator)
		if l < 0 {
			return h, curated.Errorf("romloader: unterminated title in cartridge header")
		}
		h.Title = append(h.Title, string(data[p:p+l]))
		p += l + 1
	}

	return h, nil
}
