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

package preferences

import (
	"math/rand"
	"time"

	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/prefs"
)

// default values for the hardware preferences.
const (
	DefaultFrameCycles  = 30000
	DefaultUnmappedFill = 0x01
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// coalesce collinear beam segments into a single segment
	Merge prefs.Bool

	// number of (PC, opcode) pairs kept by the CPU trace. zero disables the
	// trace
	TraceDepth prefs.Int

	// number of CPU cycles in a frame. 30000 cycles at 1.5MHz is 50Hz
	FrameCycles prefs.Int

	// log when execution enters RAM
	RAMWatch prefs.Bool

	// value returned by reads of unmapped addresses
	UnmappedFill prefs.Int

	// initialise RAM to random values on reset
	RandomState prefs.Bool

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the preferences are never loaded
// from or saved to disk.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	p.Reseed(0)

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	// defaults must be set before the values are added to the disk so that
	// command line values override them
	err = p.setDefaults()
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("integrator.merge", &p.Merge)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.tracedepth", &p.TraceDepth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vectrex.framecycles", &p.FrameCycles)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vectrex.ramwatch", &p.RAMWatch)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("vectrex.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.unmappedfill", &p.UnmappedFill)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	// frame length must be positive
	p.FrameCycles.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("preferences: frame cycles must be positive (%d)", v)
		}
		return nil
	})

	return p, nil
}

func (p *Preferences) setDefaults() error {
	if err := p.Merge.Set(true); err != nil {
		return err
	}
	if err := p.TraceDepth.Set(0); err != nil {
		return err
	}
	if err := p.FrameCycles.Set(DefaultFrameCycles); err != nil {
		return err
	}
	if err := p.RAMWatch.Set(true); err != nil {
		return err
	}
	if err := p.RandomState.Set(false); err != nil {
		return err
	}
	return p.UnmappedFill.Set(DefaultUnmappedFill)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.setDefaults()
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
