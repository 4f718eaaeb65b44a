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

package cpu

import (
	"fmt"
	"strings"
)

// TraceEntry is a single instruction in the trace.
type TraceEntry struct {
	PC     uint16
	Page   int
	Opcode uint8
}

func (e TraceEntry) String() string {
	if e.Page == 0 {
		return fmt.Sprintf("%04x: %02x", e.PC, e.Opcode)
	}
	return fmt.Sprintf("%04x: %d:%02x", e.PC, e.Page, e.Opcode)
}

// Trace is a ring buffer of the most recently executed instructions.
type Trace struct {
	entries []TraceEntry
	next    int
	full    bool
}

func newTrace(depth int) *Trace {
	return &Trace{
		entries: make([]TraceEntry, depth),
	}
}

func (tr *Trace) reset() {
	tr.next = 0
	tr.full = false
}

func (tr *Trace) add(e TraceEntry) {
	tr.entries[tr.next] = e
	tr.next++
	if tr.next >= len(tr.entries) {
		tr.next = 0
		tr.full = true
	}
}

// Entries returns the trace entries, oldest first.
func (tr *Trace) Entries() []TraceEntry {
	if !tr.full {
		e := make([]TraceEntry, tr.next)
		copy(e, tr.entries[:tr.next])
		return e
	}
	e := make([]TraceEntry, 0, len(tr.entries))
	e = append(e, tr.entries[tr.next:]...)
	e = append(e, tr.entries[:tr.next]...)
	return e
}

func (tr *Trace) String() string {
	s := strings.Builder{}
	for _, e := range tr.Entries() {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return s.String()
}
