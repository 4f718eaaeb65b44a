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

// Package version reports the version of the govectrex binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Govectrex"

// number is set by the linker for numbered releases:
//
//	go build -ldflags "-X github.com/jetsetilly/govectrex/version.number=v0.1.0"
var number string

var (
	version  string
	revision string
)

func init() {
	version, revision = fromBuildInfo(number)
}

// fromBuildInfo derives the version and revision strings from the release
// number and the VCS information embedded by the go tool.
func fromBuildInfo(num string) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case modified:
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case num != "":
		return num, rev
	case vcs:
		// built from a repository without a release number
		return "unreleased", rev
	}

	// built with "go run" or from outside a repository
	return "local", rev
}

// Version returns the version string, the revision string and whether this is a
// numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name with the version and revision
// information.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
