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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/govectrex/logger"
	"github.com/jetsetilly/govectrex/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "vectrex", "attached BIOS")
	log.Log(logger.Allow, "via", "T2 pulse counting is not supported")

	both := "vectrex: attached BIOS\nvia: T2 pulse counting is not supported\n"

	log.Write(w)
	test.ExpectEquality(t, w.String(), both)

	tail := []struct {
		n        int
		expected string
	}{
		{n: 100, expected: both},
		{n: 2, expected: both},
		{n: 1, expected: "via: T2 pulse counting is not supported\n"},
		{n: 0, expected: ""},
	}

	for _, tl := range tail {
		w.Reset()
		log.Tail(w, tl.n)
		test.ExpectEquality(t, w.String(), tl.expected, tl.n)
	}
}

// odd values of the counter are allowed to log
type oddOnly struct {
	n int
}

func (p oddOnly) AllowLogging() bool {
	return p.n&0x01 == 0x01
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	for n := 0; n < 8; n++ {
		log.Log(oddOnly{n: n}, "cpu", n)
	}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: 1\ncpu: 3\ncpu: 5\ncpu: 7\n")
}

type stringer struct{}

func (_ stringer) String() string {
	return "PC=e000"
}

// errors and Stringers are logged with their Error() and String() results.
// everything else with the %v verb
func TestDetail(t *testing.T) {
	err := errors.New("cpu: undefined opcode")

	details := []struct {
		detail   any
		expected string
	}{
		{detail: err, expected: "tag: cpu: undefined opcode\n"},
		{detail: stringer{}, expected: "tag: PC=e000\n"},
		{detail: 0xe000, expected: "tag: 57344\n"},
		{detail: "plain", expected: "tag: plain\n"},
	}

	for _, d := range details {
		log := logger.NewLogger(10)
		w := &strings.Builder{}
		log.Log(logger.Allow, "tag", d.detail)
		log.Write(w)
		test.ExpectEquality(t, w.String(), d.expected)
	}

	log := logger.NewLogger(10)
	w := &strings.Builder{}
	log.Logf(logger.Allow, "tag", "stopped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stopped: cpu: undefined opcode\n")
}

// adjacent entries with the same tag and detail are collapsed
func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Log(logger.Allow, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail (repeat x3)\n")
}

// entries beyond the maximum are dropped from the front of the log
func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", 1)
	log.Log(logger.Allow, "b", 2)
	log.Log(logger.Allow, "c", 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	r, err := test.NewRingWriter(64)
	test.DemandSuccess(t, err)

	log.SetEcho(r, false)
	log.Log(logger.Allow, "echo", "first")
	log.Log(logger.Flag(false), "echo", "never")
	log.Logf(logger.Flag(true), "echo", "second %d", 2)
	test.ExpectEquality(t, r.String(), "echo: first\necho: second 2\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "echo", "third")
	test.ExpectEquality(t, r.String(), "echo: first\necho: second 2\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "one")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "a: one\n")

	w.Reset()
	log.Log(logger.Allow, "b", "two")
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "b: two\n")

	w.Reset()
	log.WriteRecent(w)
	test.ExpectEquality(t, w.String(), "")
}
