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
	"math"

	"github.com/jetsetilly/govectrex/hardware/psg"
)

// the PSG is clocked at the CPU frequency
const clockFreq = 1500000.0

// LookupRegister returns the name of the PSG register.
func LookupRegister(reg uint8) string {
	switch reg & 0x0f {
	case psg.RegToneALo:
		return "Tone A fine"
	case psg.RegToneAHi:
		return "Tone A coarse"
	case psg.RegToneBLo:
		return "Tone B fine"
	case psg.RegToneBHi:
		return "Tone B coarse"
	case psg.RegToneCLo:
		return "Tone C fine"
	case psg.RegToneCHi:
		return "Tone C coarse"
	case psg.RegNoisePeriod:
		return "Noise period"
	case psg.RegMixer:
		return "Mixer"
	case psg.RegAmplitudeA:
		return "Amplitude A"
	case psg.RegAmplitudeB:
		return "Amplitude B"
	case psg.RegAmplitudeC:
		return "Amplitude C"
	case psg.RegEnvelopeLo:
		return "Envelope fine"
	case psg.RegEnvelopeHi:
		return "Envelope coarse"
	case psg.RegEnvelopeShape:
		return "Envelope shape"
	case psg.RegIOA:
		return "IO A"
	case psg.RegIOB:
		return "IO B"
	}
	return ""
}

// LookupEnvelopeShape converts the envelope shape register value into a text
// description. The description is the conventional drawing of the shape.
func LookupEnvelopeShape(shape uint8) string {
	switch shape & 0x0f {
	case 0, 1, 2, 3, 9:
		return `\___`
	case 4, 5, 6, 7, 15:
		return `/___`
	case 8:
		return `\\\\`
	case 10:
		return `\/\/`
	case 11:
		return `\¯¯¯`
	case 12:
		return `////`
	case 13:
		return `/¯¯¯`
	case 14:
		return `/\/\`
	}
	return ""
}

// MusicalNote is the nearest musical note for a tone period, in scientific
// pitch notation.
type MusicalNote string

// NoMusicalNote is used when a register write is not related to pitch or when
// the pitch is outside the audible range.
const NoMusicalNote = MusicalNote("-")

var noteNames = [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// ToneFrequency returns the frequency in Hz of a tone channel with the
// period. A period of zero behaves the same as a period of one.
func ToneFrequency(period uint16) float64 {
	period &= 0x0fff
	if period == 0 {
		period = 1
	}
	return clockFreq / (16 * float64(period))
}

// LookupMusicalNote converts a tone period to the nearest musical note.
func LookupMusicalNote(period uint16) MusicalNote {
	f := ToneFrequency(period)
	if f < 20 || f > 20000 {
		return NoMusicalNote
	}

	// MIDI note numbering. A4 is note 69
	n := int(math.Round(12*math.Log2(f/440) + 69))
	return MusicalNote(fmt.Sprintf("%s%d", noteNames[n%12], n/12-1))
}
