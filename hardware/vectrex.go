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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/govectrex/hardware/cpu"
	"github.com/jetsetilly/govectrex/hardware/integrator"
	"github.com/jetsetilly/govectrex/hardware/memory"
	"github.com/jetsetilly/govectrex/hardware/memory/addresses"
	"github.com/jetsetilly/govectrex/hardware/preferences"
	"github.com/jetsetilly/govectrex/hardware/psg"
	"github.com/jetsetilly/govectrex/hardware/via"
	"github.com/jetsetilly/govectrex/logger"
	"github.com/jetsetilly/govectrex/prefs"
	"github.com/jetsetilly/govectrex/romloader"
)

// Vectrex is the root of the emulated hardware.
type Vectrex struct {
	Prefs *preferences.Preferences

	CPU  *cpu.CPU
	Mem  *memory.Memory
	VIA  *via.VIA
	Beam *integrator.Integrator
	PSG  *psg.PSG

	// the state of the analogue circuitry between the VIA and the beam
	analogue analogue

	// frame counting. a frame is a fixed number of CPU cycles
	frame      int
	frameCycle int

	// total number of cycles since reset
	Cycles uint64

	// the CPU is executing from RAM
	inRAM bool
}

// NewVectrex creates a new Vectrex and everything associated with the
// hardware.
func NewVectrex(p *preferences.Preferences) (*Vectrex, error) {
	vec := &Vectrex{
		Prefs: p,
		VIA:   via.NewVIA(),
		PSG:   psg.NewPSG(),
		Beam:  integrator.NewIntegrator(p.Merge.Get().(bool)),
	}

	vec.Mem = memory.NewMemory(p)
	vec.Mem.Plumb(vec)

	vec.CPU = cpu.NewCPU(vec.Mem, cpu.TraceConfig{
		Depth: p.TraceDepth.Get().(int),
	})

	p.Merge.SetHookPost(func(v prefs.Value) error {
		vec.Beam.SetMerge(v.(bool))
		return nil
	})

	vec.analogue.reset()

	return vec, nil
}

func (vec *Vectrex) String() string {
	return fmt.Sprintf("frame=%d cycles=%d\n%s\n%s\n%s\n%s", vec.frame, vec.Cycles,
		vec.CPU, vec.VIA, vec.Beam, vec.PSG)
}

// AttachBIOS loads the BIOS image. The loader will be loaded if it has not
// been already. The Vectrex is reset after a successful attachment.
func (vec *Vectrex) AttachBIOS(ld romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}
	if err := vec.Mem.LoadBIOS(ld.Data); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "vectrex", "BIOS %s (%s)", ld.ShortName(), ld.Hash)
	vec.Reset()
	return nil
}

// AttachCartridge loads the cartridge image. The Vectrex is reset after a
// successful attachment.
func (vec *Vectrex) AttachCartridge(ld romloader.Loader) error {
	if err := ld.Load(); err != nil {
		return err
	}
	if err := vec.Mem.LoadCartridge(ld.Data); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "vectrex", "cartridge %s (%s)", ld.ShortName(), ld.Hash)
	vec.Reset()
	return nil
}

// Reset the Vectrex. The equivalent of pressing the reset button on the
// console. ROM images are kept.
func (vec *Vectrex) Reset() {
	vec.Mem.Reset()
	vec.VIA.Reset()
	vec.PSG.Reset()
	vec.Beam.Reset()
	vec.analogue.reset()
	vec.frame = 0
	vec.frameCycle = 0
	vec.Cycles = 0
	vec.inRAM = false

	// the CPU must be reset last because it reads the reset vector
	vec.CPU.Reset()

	vec.updateAnalogue()
}

// Read is an implementation of memory.IO.
func (vec *Vectrex) Read(reg uint8) uint8 {
	return vec.VIA.Read(reg)
}

// Peek is an implementation of memory.IO.
func (vec *Vectrex) Peek(reg uint8) uint8 {
	return vec.VIA.Peek(reg)
}

// Write is an implementation of memory.IO. Port writes are seen immediately
// by the PSG and by the analogue circuitry.
func (vec *Vectrex) Write(reg uint8, data uint8) {
	vec.VIA.Write(reg, data)

	switch addresses.ViaRegister(reg & 0x0f) {
	case addresses.ORA, addresses.ORB, addresses.DDRA, addresses.DDRB, addresses.ORANoHandshake:
		vec.updatePSGBus()
	}

	vec.updateAnalogue()
}

// updatePSGBus drives the PSG bus from the VIA output latches. PB4 is BDIR
// and PB3 is BC1. The PSG data bus is port A. In read mode the PSG drives the
// port A input pins.
func (vec *Vectrex) updatePSGBus() {
	b := vec.VIA.OutputB()
	bdir := b&0x10 == 0x10
	bc1 := b&0x08 == 0x08

	vec.PSG.SetBus(bdir, bc1, vec.VIA.OutputA())

	if !bdir && bc1 {
		vec.VIA.SetInputA(vec.PSG.Read())
	} else {
		vec.VIA.SetInputA(0xff)
	}
}

// SetFIRQ sets the state of the FIRQ line. Nothing on the Vectrex board
// drives the line but it is available on the cartridge port.
func (vec *Vectrex) SetFIRQ(v bool) {
	vec.CPU.SetFIRQ(v)
}

// TriggerNMI requests a non-maskable interrupt.
func (vec *Vectrex) TriggerNMI() {
	vec.CPU.TriggerNMI()
}

// SetButtons sets the state of the eight controller buttons. Bits 0 to 3 are
// the buttons of the first controller and bits 4 to 7 are the buttons of the
// second controller. A set bit means the button is pressed.
func (vec *Vectrex) SetButtons(pressed uint8) {
	vec.PSG.SetButtons(pressed)
	vec.updatePSGBus()
}

// SetJoystick sets the position of the joystick for the player (0 or 1).
// Zero is the centre position.
func (vec *Vectrex) SetJoystick(player int, x int8, y int8) {
	if player < 0 || player > 1 {
		logger.Logf(logger.Allow, "vectrex", "no joystick for player %d", player)
		return
	}
	vec.analogue.pots[player*2] = x
	vec.analogue.pots[player*2+1] = y
	vec.updateAnalogue()
}

// TakeSegments returns the beam segments drawn since the previous call.
func (vec *Vectrex) TakeSegments() []integrator.Segment {
	vec.flushBeam()
	return vec.Beam.TakeSegments()
}

// Frame returns the current frame number.
func (vec *Vectrex) Frame() int {
	return vec.frame
}

// AudioSample returns the current output of the PSG in the range 0 to 1.
func (vec *Vectrex) AudioSample() float32 {
	return vec.PSG.Sample()
}
