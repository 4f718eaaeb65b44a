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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/govectrex/hardware/psg"
	"github.com/jetsetilly/govectrex/test"
	"github.com/jetsetilly/govectrex/wavwriter"
)

func TestWriteFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, 44100)
	test.DemandSuccess(t, err)

	for i := 0; i < 100; i++ {
		test.ExpectSuccess(t, aw.SetAudio(float32(i%2)))
	}
	test.ExpectEquality(t, aw.NumSamples(), 100)

	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)
	test.ExpectEquality(t, dec.SampleRate, uint32(44100))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))
	test.ExpectEquality(t, dec.NumChans, uint16(1))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 100)
	test.ExpectEquality(t, buf.Data[0], -32767)
	test.ExpectEquality(t, buf.Data[1], 32767)
}

func TestClamping(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "out.wav"), 8000)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio(2.0))
	test.ExpectSuccess(t, aw.SetAudio(-1.0))
	test.ExpectEquality(t, aw.NumSamples(), 2)

	aw.Reset()
	test.ExpectEquality(t, aw.NumSamples(), 0)
}

func TestTracker(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "out.wav"), 8000)
	test.DemandSuccess(t, err)

	// the writer can observe the PSG
	p := psg.NewPSG()
	p.SetTracker(aw)
	p.SetBus(true, true, psg.RegMixer)
	p.SetBus(true, false, 0x3f)

	test.ExpectSuccess(t, aw.EndMixing())
}

func TestBadSampleRate(t *testing.T) {
	_, err := wavwriter.New("out.wav", 0)
	test.ExpectFailure(t, err)
}
