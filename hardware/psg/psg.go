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

package psg

import (
	"fmt"
	"strings"
)

// Register numbers.
const (
	RegToneALo uint8 = iota
	RegToneAHi
	RegToneBLo
	RegToneBHi
	RegToneCLo
	RegToneCHi
	RegNoisePeriod
	RegMixer
	RegAmplitudeA
	RegAmplitudeB
	RegAmplitudeC
	RegEnvelopeLo
	RegEnvelopeHi
	RegEnvelopeShape
	RegIOA
	RegIOB
)

// NumRegisters is the number of registers in the PSG.
const NumRegisters = 16

// the bits of each register that are implemented.
var registerMasks = [NumRegisters]uint8{
	0xff, 0x0f, 0xff, 0x0f, 0xff, 0x0f,
	0x1f, 0xff,
	0x1f, 0x1f, 0x1f,
	0xff, 0xff, 0x0f,
	0xff, 0xff,
}

// bits of the mixer register. a set bit disables the source
const (
	mixerTone   = 0x01
	mixerNoise  = 0x08
	mixerIOAOut = 0x40
)

// amplitude register bit that selects the envelope.
const amplitudeEnvelope = 0x10

// the divider for each of the generators, in CPU cycles.
const (
	toneDivider     = 8
	noiseDivider    = 16
	envelopeDivider = 16
)

// Tracker implementations are notified of every write to a PSG register.
type Tracker interface {
	PSGWrite(reg uint8, data uint8)
}

// PSG implements the AY-3-8912.
type PSG struct {
	Registers [NumRegisters]uint8

	// the register selected by the most recent latch address
	Latched uint8

	// the state of the bus control lines
	BDIR bool
	BC1  bool

	// value on the data bus when the PSG is in read mode
	bus uint8

	// button state as presented on the IO port. a set bit means the button
	// is not pressed
	buttons uint8

	channels [3]tone
	noise    noise
	envelope envelope

	// cycles since the last tick of the slowest divider
	clock int

	tracker Tracker
}

// NewPSG is the preferred method of initialisation for the PSG type.
func NewPSG() *PSG {
	psg := &PSG{}
	psg.Reset()
	return psg
}

// Reset the PSG to its power on state.
func (psg *PSG) Reset() {
	tracker := psg.tracker
	*psg = PSG{
		buttons: 0xff,
		tracker: tracker,
	}
	psg.noise.reset()
	psg.envelope.restart(0)
}

func (psg *PSG) String() string {
	s := strings.Builder{}
	for i, ch := range psg.channels {
		s.WriteString(fmt.Sprintf("%c: %s amp=%#02x\n", 'A'+i, ch, psg.Registers[RegAmplitudeA+uint8(i)]))
	}
	s.WriteString(fmt.Sprintf("noise: %s\n", psg.noise))
	s.WriteString(fmt.Sprintf("env: %s\n", psg.envelope))
	s.WriteString(fmt.Sprintf("mixer=%#02x latched=%d", psg.Registers[RegMixer], psg.Latched))
	return s.String()
}

// SetTracker adds a Tracker implementation to the PSG.
func (psg *PSG) SetTracker(tracker Tracker) {
	psg.tracker = tracker
}

// SetButtons sets the state of the four buttons of the first controller and
// the four buttons of the second controller. A set bit means the button is
// pressed.
func (psg *PSG) SetButtons(pressed uint8) {
	psg.buttons = ^pressed
}

// SetBus sets the state of the BDIR and BC1 lines and the value on the data
// bus.
func (psg *PSG) SetBus(bdir bool, bc1 bool, data uint8) {
	psg.BDIR = bdir
	psg.BC1 = bc1

	switch {
	case bdir && bc1:
		psg.Latched = data & 0x0f
	case bdir && !bc1:
		psg.write(psg.Latched, data)
	case !bdir && bc1:
		psg.bus = psg.Peek(psg.Latched)
	}
}

// Read returns the value presented on the data bus in read mode.
func (psg *PSG) Read() uint8 {
	return psg.bus
}

// Peek returns the value of a register without changing the bus.
func (psg *PSG) Peek(reg uint8) uint8 {
	reg &= 0x0f
	if reg == RegIOA && psg.Registers[RegMixer]&mixerIOAOut == 0 {
		return psg.buttons
	}
	return psg.Registers[reg]
}

func (psg *PSG) write(reg uint8, data uint8) {
	reg &= 0x0f
	data &= registerMasks[reg]
	psg.Registers[reg] = data

	switch reg {
	case RegToneALo, RegToneAHi, RegToneBLo, RegToneBHi, RegToneCLo, RegToneCHi:
		ch := reg >> 1
		psg.channels[ch].period = uint16(psg.Registers[ch*2+1])<<8 | uint16(psg.Registers[ch*2])
	case RegNoisePeriod:
		psg.noise.period = data
	case RegEnvelopeLo, RegEnvelopeHi:
		psg.envelope.period = uint16(psg.Registers[RegEnvelopeHi])<<8 | uint16(psg.Registers[RegEnvelopeLo])
	case RegEnvelopeShape:
		psg.envelope.restart(data)
	}

	if psg.tracker != nil {
		psg.tracker.PSGWrite(reg, data)
	}
}

// Update clocks the generators for the number of CPU cycles.
func (psg *PSG) Update(cycles int) {
	for i := 0; i < cycles; i++ {
		psg.clock++
		if psg.clock%toneDivider == 0 {
			for ch := range psg.channels {
				psg.channels[ch].step()
			}
		}
		if psg.clock%noiseDivider == 0 {
			psg.noise.step()
		}
		if psg.clock%envelopeDivider == 0 {
			psg.envelope.step()
			psg.clock = 0
		}
	}
}

// Level returns the volume level of the channel. The level comes from the
// envelope if the envelope is selected in the channel's amplitude register.
func (psg *PSG) Level(channel int) uint8 {
	amp := psg.Registers[int(RegAmplitudeA)+channel]
	if amp&amplitudeEnvelope == amplitudeEnvelope {
		return psg.envelope.level
	}
	return amp & 0x0f
}

// EnvelopeLevel returns the current level of the envelope generator.
func (psg *PSG) EnvelopeLevel() uint8 {
	return psg.envelope.level
}

// ToneOutput returns the current output of the tone generator for the
// channel.
func (psg *PSG) ToneOutput(channel int) bool {
	return psg.channels[channel].output
}

// Sample returns the mixed output of the three channels in the range 0 to 1.
//
// A channel is high when each enabled source is high. A channel with both
// sources disabled is always high and outputs its volume level.
func (psg *PSG) Sample() float32 {
	mixer := psg.Registers[RegMixer]

	var sum float32
	for ch := range psg.channels {
		toneOff := mixer&(mixerTone<<ch) != 0
		noiseOff := mixer&(mixerNoise<<ch) != 0

		out := (psg.channels[ch].output || toneOff) && (psg.noise.output || noiseOff)
		if out {
			sum += Volume(psg.Level(ch))
		}
	}

	return sum / float32(len(psg.channels))
}
