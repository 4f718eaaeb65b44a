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
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/romloader"
	"github.com/jetsetilly/govectrex/test"
)

// sha1 of the three bytes 0x01 0x02 0x03
const testHash = "7037807198c22a7d2b0807371d763779a84fdfcf"

func writeROM(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.bin")
	err := os.WriteFile(fn, data, 0o644)
	test.DemandSuccess(t, err)
	return fn
}

func TestLoadFile(t *testing.T) {
	fn := writeROM(t, []byte{0x01, 0x02, 0x03})

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.HasLoaded(), false)
	test.ExpectEquality(t, ld.ShortName(), "test")

	err := ld.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, len(ld.Data), 3)
	test.ExpectEquality(t, ld.Hash, testHash)
}

func TestHashValidation(t *testing.T) {
	fn := writeROM(t, []byte{0x01, 0x02, 0x03})

	ld := romloader.NewLoader(fn)
	ld.Hash = testHash
	test.ExpectSuccess(t, ld.Load())

	ld = romloader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, romloader.UnexpectedHash), true)
	test.ExpectEquality(t, ld.HasLoaded(), false)
}

func TestLoadErrors(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, ld.Load())

	ld = romloader.NewLoader(writeROM(t, []byte{}))
	err := ld.Load()
	test.ExpectEquality(t, curated.Is(err, romloader.EmptyROM), true)

	ld = romloader.NewLoader("ftp://example.com/rom.bin")
	err = ld.Load()
	test.ExpectEquality(t, curated.Is(err, romloader.UnsupportedScheme), true)
}

func TestFromData(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	ld := romloader.NewLoaderFromData("embedded", data)
	data[0] = 0xff

	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, ld.Data[0], uint8(0x01))
	test.ExpectEquality(t, ld.Hash, testHash)

	// already loaded data is not reloaded from the non-existent file
	test.ExpectSuccess(t, ld.Load())
}

func TestIsROMFile(t *testing.T) {
	test.ExpectEquality(t, romloader.IsROMFile("game.vec"), true)
	test.ExpectEquality(t, romloader.IsROMFile("game.BIN"), true)
	test.ExpectEquality(t, romloader.IsROMFile("game.txt"), false)
}
