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

package hardware_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/govern"
	"github.com/jetsetilly/govectrex/hardware"
	"github.com/jetsetilly/govectrex/hardware/cpu"
	"github.com/jetsetilly/govectrex/hardware/memory"
	"github.com/jetsetilly/govectrex/hardware/preferences"
	"github.com/jetsetilly/govectrex/hardware/psg"
	"github.com/jetsetilly/govectrex/logger"
	"github.com/jetsetilly/govectrex/romloader"
	"github.com/jetsetilly/govectrex/test"
)

// handlers are assembled at this offset into the BIOS image (0xe020)
const handlerOffset = 0x20

// assembleBIOS returns an 8K BIOS image with the program at 0xe000. the
// handler, if any, is placed at 0xe020 and the IRQ vector points to it.
func assembleBIOS(program []uint8, handler []uint8) []uint8 {
	bios := make([]uint8, 0x2000)
	copy(bios, program)
	copy(bios[handlerOffset:], handler)

	// IRQ vector
	bios[0x1ff8] = 0xe0
	bios[0x1ff9] = handlerOffset

	// reset vector
	bios[0x1ffe] = 0xe0
	bios[0x1fff] = 0x00

	return bios
}

func newVectrex(t *testing.T, program []uint8, handler []uint8) (*hardware.Vectrex, *preferences.Preferences) {
	t.Helper()

	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)

	vec, err := hardware.NewVectrex(p)
	test.DemandSuccess(t, err)

	err = vec.AttachBIOS(romloader.NewLoaderFromData("test", assembleBIOS(program, handler)))
	test.DemandSuccess(t, err)

	return vec, p
}

// runTo steps the emulation until the PC reaches the address.
func runTo(t *testing.T, vec *hardware.Vectrex, address uint16) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if vec.CPU.PC.Address() == address {
			return
		}
		test.DemandSuccess(t, vec.Step())
	}
	t.Fatalf("PC did not reach %#04x", address)
}

// draws a horizontal line from the centre of the screen. the ramp lasts for
// 104 cycles with a DAC value of 64
var lineProgram = []uint8{
	0x10, 0xce, 0xcb, 0xea, // LDS #$cbea
	0x86, 0xff, // LDA #$ff
	0xb7, 0xd0, 0x03, // STA DDRA
	0x86, 0x9f, // LDA #$9f
	0xb7, 0xd0, 0x02, // STA DDRB
	0x86, 0xcc, // LDA #$cc
	0xb7, 0xd0, 0x0c, // STA PCR (zero and blank)
	0x86, 0x81, // LDA #$81
	0xb7, 0xd0, 0x00, // STA ORB (mux off, no ramp)
	0x86, 0x7f, // LDA #$7f
	0xb7, 0xd0, 0x01, // STA ORA
	0x86, 0x84, // LDA #$84
	0xb7, 0xd0, 0x00, // STA ORB (brightness)
	0x86, 0x81, // LDA #$81
	0xb7, 0xd0, 0x00, // STA ORB (mux off)
	0x7f, 0xd0, 0x01, // CLR ORA
	0x86, 0x82, // LDA #$82
	0xb7, 0xd0, 0x00, // STA ORB (zero reference)
	0x86, 0x80, // LDA #$80
	0xb7, 0xd0, 0x00, // STA ORB (Y axis)
	0x86, 0x81, // LDA #$81
	0xb7, 0xd0, 0x00, // STA ORB (mux off)
	0x86, 0x40, // LDA #$40
	0xb7, 0xd0, 0x01, // STA ORA (X axis)
	0x86, 0xee, // LDA #$ee
	0xb7, 0xd0, 0x0c, // STA PCR (unzero and beam on)
	0x86, 0x01, // LDA #$01
	0xb7, 0xd0, 0x00, // STA ORB (ramp)
	0x86, 0x10, // LDA #$10
	0x4a,       // DECA
	0x26, 0xfd, // BNE $e04a
	0x86, 0x81, // LDA #$81
	0xb7, 0xd0, 0x00, // STA ORB (no ramp)
	0x86, 0xce, // LDA #$ce
	0xb7, 0xd0, 0x0c, // STA PCR (blank)
	0x20, 0xfe, // BRA *
}

const lineProgramEnd = 0xe057

func TestLineDrawing(t *testing.T) {
	vec, _ := newVectrex(t, lineProgram, nil)
	runTo(t, vec, lineProgramEnd)

	segs := vec.TakeSegments()
	test.DemandEquality(t, len(segs), 1)
	test.ExpectEquality(t, segs[0].X0, 0.0)
	test.ExpectEquality(t, segs[0].Y0, 0.0)
	test.ExpectEquality(t, segs[0].X1, 52.0)
	test.ExpectEquality(t, segs[0].Y1, 0.0)
	test.ExpectEquality(t, segs[0].Intensity, uint8(0x7f))
	test.ExpectEquality(t, segs[0].Frame, 0)

	// the beam is blanked so further steps draw nothing
	for i := 0; i < 100; i++ {
		test.DemandSuccess(t, vec.Step())
	}
	test.ExpectEquality(t, len(vec.TakeSegments()), 0)
}

func TestLineDrawingUnmerged(t *testing.T) {
	vec, p := newVectrex(t, lineProgram, nil)

	// the preference change reaches the integrator through the hook
	test.DemandSuccess(t, p.Merge.Set(false))
	test.ExpectEquality(t, vec.Beam.Merge(), false)

	runTo(t, vec, lineProgramEnd)

	// the line is surrounded by the dots drawn while the beam was on and
	// stationary
	segs := vec.TakeSegments()
	test.DemandEquality(t, len(segs), 3)
	test.ExpectEquality(t, segs[0].Length(), 0.0)
	test.ExpectEquality(t, segs[1].X1, 52.0)
	test.ExpectEquality(t, segs[2].Length(), 0.0)
	test.ExpectEquality(t, segs[2].X0, 52.0)
}

func TestTimerInterrupt(t *testing.T) {
	program := []uint8{
		0x10, 0xce, 0xcb, 0xea, // LDS #$cbea
		0x86, 0xc0, // LDA #$c0
		0xb7, 0xd0, 0x0e, // STA IER (enable T1)
		0x86, 0x40, // LDA #$40
		0xb7, 0xd0, 0x0b, // STA ACR (T1 free run)
		0x86, 0xe8, // LDA #$e8
		0xb7, 0xd0, 0x04, // STA T1CL
		0x86, 0x03, // LDA #$03
		0xb7, 0xd0, 0x05, // STA T1CH (1000 cycles)
		0x1c, 0xef, // ANDCC #$ef
		0x20, 0xfe, // BRA *
	}
	handler := []uint8{
		0x7c, 0xc8, 0x00, // INC $c800
		0xb6, 0xd0, 0x04, // LDA T1CL
		0x3b, // RTI
	}

	vec, _ := newVectrex(t, program, handler)

	for vec.Cycles < 10500 {
		test.DemandSuccess(t, vec.Step())
	}

	// the timer was started 27 cycles after reset so the tenth interrupt is
	// at cycle 10027
	test.ExpectEquality(t, vec.Mem.Peek(0xc800), uint8(10))
	test.ExpectEquality(t, vec.CPU.Depth(), 0)
}

func TestPSGThroughPorts(t *testing.T) {
	program := []uint8{
		0x10, 0xce, 0xcb, 0xea, // LDS #$cbea
		0x86, 0xff, // LDA #$ff
		0xb7, 0xd0, 0x03, // STA DDRA
		0x86, 0x9f, // LDA #$9f
		0xb7, 0xd0, 0x02, // STA DDRB
		0x86, 0x08, // LDA #$08
		0xb7, 0xd0, 0x01, // STA ORA
		0x86, 0x19, // LDA #$19
		0xb7, 0xd0, 0x00, // STA ORB (latch address)
		0x86, 0x01, // LDA #$01
		0xb7, 0xd0, 0x00, // STA ORB (inactive)
		0x86, 0x0f, // LDA #$0f
		0xb7, 0xd0, 0x01, // STA ORA
		0x86, 0x11, // LDA #$11
		0xb7, 0xd0, 0x00, // STA ORB (write)
		0x86, 0x01, // LDA #$01
		0xb7, 0xd0, 0x00, // STA ORB (inactive)
		0x86, 0x0e, // LDA #$0e
		0xb7, 0xd0, 0x01, // STA ORA
		0x86, 0x19, // LDA #$19
		0xb7, 0xd0, 0x00, // STA ORB (latch address)
		0x86, 0x01, // LDA #$01
		0xb7, 0xd0, 0x00, // STA ORB (inactive)
		0x7f, 0xd0, 0x03, // CLR DDRA
		0x86, 0x09, // LDA #$09
		0xb7, 0xd0, 0x00, // STA ORB (read)
		0xb6, 0xd0, 0x01, // LDA ORA
		0xb7, 0xc8, 0x00, // STA $c800
		0x86, 0x01, // LDA #$01
		0xb7, 0xd0, 0x00, // STA ORB (inactive)
		0x20, 0xfe, // BRA *
	}

	vec, _ := newVectrex(t, program, nil)
	vec.SetButtons(0x01)

	runTo(t, vec, 0xe000+uint16(len(program))-2)

	test.ExpectEquality(t, vec.PSG.Registers[psg.RegAmplitudeA], uint8(0x0f))
	test.ExpectEquality(t, vec.PSG.Latched, uint8(psg.RegIOA))
	test.ExpectEquality(t, vec.Mem.Peek(0xc800), uint8(0xfe))
}

func TestJoystickComparator(t *testing.T) {
	program := []uint8{
		0x86, 0x06, // LDA #$06
		0xb7, 0xd0, 0x00, // STA ORB (mux on, select 3)
		0x20, 0xfe, // BRA *
	}

	vec, _ := newVectrex(t, program, nil)
	runTo(t, vec, 0xe005)

	// DDRB is still all inputs but the mux sees the latched value. the
	// comparator is against the second joystick's Y pot and the DAC is zero
	test.ExpectEquality(t, vec.VIA.DDRB, uint8(0x00))

	vec.SetJoystick(1, 0, 10)
	test.ExpectEquality(t, vec.VIA.PortB()&0x20, uint8(0x20))

	vec.SetJoystick(1, 0, -10)
	test.ExpectEquality(t, vec.VIA.PortB()&0x20, uint8(0x00))

	// the first joystick is on a different mux channel
	vec.SetJoystick(0, 10, 10)
	test.ExpectEquality(t, vec.VIA.PortB()&0x20, uint8(0x00))
}

// port writes reach the PSG and the DAC whatever the data direction
// registers hold
func TestPortLatchesIgnoreDirection(t *testing.T) {
	program := []uint8{
		0x86, 0x9f, // LDA #$9f
		0xb7, 0xd0, 0x02, // STA DDRB
		0x86, 0x08, // LDA #$08
		0xb7, 0xd0, 0x01, // STA ORA
		0x86, 0x19, // LDA #$19
		0xb7, 0xd0, 0x00, // STA ORB (latch address)
		0x86, 0x01, // LDA #$01
		0xb7, 0xd0, 0x00, // STA ORB (inactive)
		0x86, 0x7f, // LDA #$7f
		0xb7, 0xd0, 0x01, // STA ORA
		0x86, 0x84, // LDA #$84
		0xb7, 0xd0, 0x00, // STA ORB (brightness)
		0x20, 0xfe, // BRA *
	}

	vec, _ := newVectrex(t, program, nil)
	runTo(t, vec, 0xe000+uint16(len(program))-2)

	test.ExpectEquality(t, vec.VIA.DDRA, uint8(0x00))
	test.ExpectEquality(t, vec.PSG.Latched, uint8(psg.RegAmplitudeA))
	test.ExpectEquality(t, vec.Beam.Intensity, uint8(0x7f))
}

func TestUndefinedOpcode(t *testing.T) {
	vec, _ := newVectrex(t, []uint8{0x12, 0x01}, nil)

	err := vec.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.UndefinedOpcode), true)
	test.ExpectEquality(t, vec.CPU.PC.Address(), uint16(0xe001))
}

func TestRunStates(t *testing.T) {
	vec, _ := newVectrex(t, []uint8{0x20, 0xfe}, nil)

	n := 0
	err := vec.Run(func() (govern.State, error) {
		n++
		if n >= hardware.PerformanceBrake {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, vec.Cycles, uint64(hardware.PerformanceBrake*3))
}

func TestRunPaused(t *testing.T) {
	vec, _ := newVectrex(t, []uint8{0x20, 0xfe}, nil)

	// the machine is not stepped while paused
	n := 0
	err := vec.Run(func() (govern.State, error) {
		n++
		switch {
		case n < 5:
			return govern.Running, nil
		case n < 10:
			return govern.Paused, nil
		}
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, vec.Cycles, uint64(5*3))

	// a stopped state is not a valid result of the continue check
	err = vec.Run(func() (govern.State, error) {
		return govern.Stopped, nil
	})
	test.ExpectFailure(t, err)
}

func TestRunForFrameCount(t *testing.T) {
	vec, p := newVectrex(t, []uint8{0x20, 0xfe}, nil)
	test.DemandSuccess(t, p.FrameCycles.Set(1000))

	frames := 0
	err := vec.RunForFrameCount(3, func(frame int) (govern.State, error) {
		frames = frame
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, vec.Frame(), 3)
	test.ExpectEquality(t, frames, 3)
	test.ExpectEquality(t, vec.Cycles >= 3000, true)
}

func TestRAMWatch(t *testing.T) {
	program := []uint8{
		0x86, 0x20, // LDA #$20
		0xb7, 0xc8, 0x00, // STA $c800
		0x86, 0xfe, // LDA #$fe
		0xb7, 0xc8, 0x01, // STA $c801
		0x7e, 0xc8, 0x00, // JMP $c800
	}

	vec, _ := newVectrex(t, program, nil)
	logger.Clear()

	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, vec.Step())
	}

	var s strings.Builder
	logger.Write(&s)
	test.ExpectEquality(t, strings.Count(s.String(), "executing from RAM at 0xc800"), 1)
}

func TestAttachErrors(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)

	vec, err := hardware.NewVectrex(p)
	test.DemandSuccess(t, err)

	err = vec.AttachBIOS(romloader.NewLoaderFromData("short", make([]uint8, 100)))
	test.ExpectEquality(t, curated.Is(err, memory.BIOSSize), true)

	err = vec.AttachCartridge(romloader.NewLoaderFromData("long", make([]uint8, 0x8001)))
	test.ExpectEquality(t, curated.Is(err, memory.CartridgeTooLarge), true)
}

func TestReset(t *testing.T) {
	vec, _ := newVectrex(t, lineProgram, nil)
	runTo(t, vec, lineProgramEnd)

	vec.Reset()
	test.ExpectEquality(t, vec.CPU.PC.Address(), uint16(0xe000))
	test.ExpectEquality(t, vec.Cycles, uint64(0))
	test.ExpectEquality(t, vec.Frame(), 0)
	test.ExpectEquality(t, len(vec.TakeSegments()), 0)
	test.ExpectEquality(t, vec.Beam.X, 0.0)
}
