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

package wavwriter

import (
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/logger"
)

const bitDepth = 16

// WAV format value for uncompressed PCM data.
const pcmFormat = 1

// WavWriter collects PSG samples and writes them to a mono WAV file.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int

	// number of PSG register writes seen during the recording
	registerWrites int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
	}

	return aw, nil
}

// SetAudio adds a sample to the recording. The sample should be in the range
// 0 to 1. Values outside the range are clamped.
func (aw *WavWriter) SetAudio(sample float32) error {
	s := math.Max(0, math.Min(1, float64(sample)))

	// the PSG output is unipolar. centre it on zero for the signed PCM data
	v := int((s*2 - 1) * math.MaxInt16)

	aw.buffer = append(aw.buffer, v)
	return nil
}

// PSGWrite implements the psg.Tracker interface.
func (aw *WavWriter) PSGWrite(reg uint8, data uint8) {
	aw.registerWrites++
}

// NumSamples returns the number of samples collected so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing writes the collected samples to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, 1, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples (%d PSG register writes) to %s",
		len(aw.buffer), aw.registerWrites, aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards the collected samples.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
	aw.registerWrites = 0
}
