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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/govectrex/curated"
)

// Sentinal error patterns returned by Load().
const (
	UnexpectedHash    = "romloader: unexpected hash value (%s)"
	UnsupportedScheme = "romloader: unsupported URL scheme (%s)"
	EmptyROM          = "romloader: %s is empty"
)

// Loader specifies the ROM to attach to the Vectrex.
type Loader struct {
	// filename of the ROM to load
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData creates a Loader that has already been loaded with data.
// The name is used only for logging.
func NewLoaderFromData(name string, data []byte) Loader {
	ld := Loader{
		Filename: name,
		Data:     make([]byte, len(data)),
	}
	copy(ld.Data, data)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	return ld
}

// FileExtensions is the list of file extensions commonly used for Vectrex ROM
// images.
var FileExtensions = [...]string{".BIN", ".VEC", ".GAM", ".ROM"}

// IsROMFile returns true if the filename has one of the FileExtensions.
func IsROMFile(filename string) bool {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ShortName returns a shortened version of the filename.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the ROM data. Filenames with a URL scheme will use that method to load
// the data.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	if len(ld.Data) == 0 {
		return curated.Errorf(EmptyROM, ld.ShortName())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash

	return nil
}
