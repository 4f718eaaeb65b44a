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

package tracker

import (
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/govectrex/hardware/psg"
)

// the maximum number of entries kept by the tracker
const maxEntries = 1024

// FrameSource is used by the tracker to timestamp entries.
type FrameSource interface {
	Frame() int
}

// Entry is a single write to a PSG register.
type Entry struct {
	Frame    int
	Register uint8
	Value    uint8

	// the tone channel affected by the write. -1 if the register is not
	// specific to a single channel
	Channel int

	Description string
	MusicalNote MusicalNote
}

func (e Entry) String() string {
	if e.MusicalNote != NoMusicalNote {
		return fmt.Sprintf("%6d %-16s %#02x %s", e.Frame, e.Description, e.Value, e.MusicalNote)
	}
	return fmt.Sprintf("%6d %-16s %#02x", e.Frame, e.Description, e.Value)
}

// Tracker implements the psg.Tracker interface and keeps a history of the PSG
// registers over time.
type Tracker struct {
	frames FrameSource

	crit struct {
		section sync.Mutex
		entries []Entry
	}

	// copy of the register values so that writes of an unchanged value are
	// not recorded
	registers [psg.NumRegisters]uint8
}

// NewTracker is the preferred method of initialisation for the Tracker type.
func NewTracker(frames FrameSource) *Tracker {
	tr := &Tracker{
		frames: frames,
	}
	tr.crit.entries = make([]Entry, 0, maxEntries)
	return tr
}

// PSGWrite implements the psg.Tracker interface.
func (tr *Tracker) PSGWrite(reg uint8, data uint8) {
	reg &= 0x0f

	// the envelope shape is recorded even when unchanged because writing it
	// restarts the envelope
	if tr.registers[reg] == data && reg != psg.RegEnvelopeShape {
		return
	}
	tr.registers[reg] = data

	e := Entry{
		Register:    reg,
		Value:       data,
		Channel:     channelOf(reg),
		Description: LookupRegister(reg),
		MusicalNote: NoMusicalNote,
	}

	if tr.frames != nil {
		e.Frame = tr.frames.Frame()
	}

	switch reg {
	case psg.RegToneALo, psg.RegToneAHi, psg.RegToneBLo, psg.RegToneBHi, psg.RegToneCLo, psg.RegToneCHi:
		lo := tr.registers[e.Channel*2]
		hi := tr.registers[e.Channel*2+1]
		e.MusicalNote = LookupMusicalNote(uint16(hi)<<8 | uint16(lo))
	case psg.RegEnvelopeShape:
		e.Description = fmt.Sprintf("%s %s", e.Description, LookupEnvelopeShape(data))
	}

	tr.crit.section.Lock()
	defer tr.crit.section.Unlock()

	tr.crit.entries = append(tr.crit.entries, e)
	if len(tr.crit.entries) > maxEntries {
		tr.crit.entries = tr.crit.entries[1:]
	}
}

// Copy makes a copy of the Tracker entries.
func (tr *Tracker) Copy() []Entry {
	tr.crit.section.Lock()
	defer tr.crit.section.Unlock()

	c := make([]Entry, len(tr.crit.entries))
	copy(c, tr.crit.entries)
	return c
}

// Reset removes all entries.
func (tr *Tracker) Reset() {
	tr.crit.section.Lock()
	defer tr.crit.section.Unlock()

	tr.crit.entries = tr.crit.entries[:0]
	tr.registers = [psg.NumRegisters]uint8{}
}

// Write the most recent entries to output.
func (tr *Tracker) Write(output io.Writer, number int) {
	entries := tr.Copy()
	if number > 0 && number < len(entries) {
		entries = entries[len(entries)-number:]
	}
	for _, e := range entries {
		fmt.Fprintln(output, e.String())
	}
}

func channelOf(reg uint8) int {
	switch reg {
	case psg.RegToneALo, psg.RegToneAHi, psg.RegAmplitudeA:
		return 0
	case psg.RegToneBLo, psg.RegToneBHi, psg.RegAmplitudeB:
		return 1
	case psg.RegToneCLo, psg.RegToneCHi, psg.RegAmplitudeC:
		return 2
	}
	return -1
}
