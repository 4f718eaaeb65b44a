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

package modalflag_test

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/govectrex/modalflag"
	"github.com/jetsetilly/govectrex/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")

	test.ExpectEquality(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *testFlag, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"info", "game.vec"})
	md.AddSubModes("RUN", "INFO")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "INFO")

	md.NewMode()
	frames := md.AddInt("frames", 10, "frames")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *frames, 10)
	test.ExpectEquality(t, md.GetArg(0), "game.vec")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: io.Discard}
	md.NewArgs([]string{"game.vec"})
	md.AddSubModes("RUN", "INFO")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.Path(), "RUN")
}

func TestNoHelpAvailable(t *testing.T) {
	var w strings.Builder

	md := modalflag.Modes{Output: &w}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, w.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	var w strings.Builder

	md := modalflag.Modes{Output: &w}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectEquality(t, w.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	var w strings.Builder

	md := modalflag.Modes{Output: &w}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectEquality(t, w.String(), expectedHelp)
}

func TestAdditionalHelp(t *testing.T) {
	var w strings.Builder

	md := modalflag.Modes{Output: &w}
	md.NewArgs([]string{"run", "-help"})
	md.AddSubModes("RUN", "INFO")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)

	md.NewMode()
	md.AddBool("display", false, "draw the beam")
	md.AdditionalHelp("escape quits")

	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage: for RUN mode\n" +
		"  -display\n" +
		"    	draw the beam\n" +
		"\n" +
		"escape quits\n"
	test.ExpectEquality(t, w.String(), expectedHelp)
}
