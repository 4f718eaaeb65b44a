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

// Package sdlaudio plays the PSG output through an SDL audio device.
package sdlaudio

import (
	"math"
	"time"

	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// SampleFreq is the frequency at which samples should be passed to SetAudio().
const SampleFreq = 22050

// the buffer length is important to get right. we don't want it to be long
// because we introduce lag between the audio and the display but we don't
// want it too short because we will end up flushing too often.
//
// the following value has been discovered through trial and error. the precise
// value is not critical.
const bufferLength = 512

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// we keep two buffers which we swap after every flush. the other buffer
	// can then be used to fill in the gaps in the audio. see repeatAudio()
	buffer   *[]uint8
	other    *[]uint8
	bufferA  []uint8
	bufferB  []uint8
	bufferCt int

	isBufferEmpty chan bool
	done          chan bool
}

// NewAudio is the preferred method of initialisation for the Audio Type.
func NewAudio() (*Audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud := &Audio{
		isBufferEmpty: make(chan bool),
		done:          make(chan bool),
	}

	aud.bufferA = make([]uint8, bufferLength)
	aud.bufferB = make([]uint8, bufferLength)
	aud.buffer = &aud.bufferA
	aud.other = &aud.bufferB

	spec := &sdl.AudioSpec{
		Freq:     SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	for i := range aud.bufferA {
		aud.bufferA[i] = aud.spec.Silence
	}
	for i := range aud.bufferB {
		aud.bufferB[i] = aud.spec.Silence
	}

	go func() {
		dur := time.Duration(float64(time.Second) * bufferLength / SampleFreq)
		tck := time.NewTicker(dur)
		defer tck.Stop()
		for {
			select {
			case <-tck.C:
				select {
				case aud.isBufferEmpty <- true:
				case <-aud.done:
					return
				}
			case <-aud.done:
				return
			}
		}
	}()

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio adds a PSG sample, in the range 0 to 1, to the audio buffer.
func (aud *Audio) SetAudio(sample float32) error {
	select {
	case <-aud.isBufferEmpty:
		if err := aud.repeatAudio(); err != nil {
			return err
		}
	default:
	}

	s := math.Max(0, math.Min(1, float64(sample)))
	(*aud.buffer)[aud.bufferCt] = aud.spec.Silence + uint8(s*127)
	aud.bufferCt++

	if aud.bufferCt >= len(*aud.buffer) {
		return aud.flushAudio()
	}

	return nil
}

func (aud *Audio) flushAudio() error {
	sdl.ClearQueuedAudio(aud.id)
	err := sdl.QueueAudio(aud.id, *aud.buffer)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}
	aud.bufferCt = 0

	aud.buffer, aud.other = aud.other, aud.buffer

	return nil
}

func (aud *Audio) repeatAudio() error {
	if err := sdl.QueueAudio(aud.id, *aud.other); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}
	return nil
}

// EndMixing flushes the remaining audio and closes the device.
func (aud *Audio) EndMixing() error {
	close(aud.done)
	defer sdl.CloseAudioDevice(aud.id)
	return aud.flushAudio()
}
