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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/govern"
	"github.com/jetsetilly/govectrex/gui/sdlaudio"
	"github.com/jetsetilly/govectrex/gui/sdlvector"
	"github.com/jetsetilly/govectrex/hardware"
	"github.com/jetsetilly/govectrex/hardware/memory/addresses"
	"github.com/jetsetilly/govectrex/hardware/preferences"
	"github.com/jetsetilly/govectrex/logger"
	"github.com/jetsetilly/govectrex/modalflag"
	"github.com/jetsetilly/govectrex/paths"
	"github.com/jetsetilly/govectrex/prefs"
	"github.com/jetsetilly/govectrex/romloader"
	"github.com/jetsetilly/govectrex/statsview"
	"github.com/jetsetilly/govectrex/tracker"
	"github.com/jetsetilly/govectrex/version"
	"github.com/jetsetilly/govectrex/wavwriter"
)

// the CPU clock of the Vectrex
const clockFreq = 1500000

// help for the window controls in RUN mode
const runControls = `window controls (-display):
  a s d f       controller buttons 1 to 4
  cursor keys   joystick
  escape        quit`

// name of the preferences file in the resource directory
const preferencesFile = "preferences"

// the number of frames displayed per second
const displayRate = 50

// SDL requires that window events are handled on the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "INFO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "INFO":
		err = info(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// audioMixer is implemented by the audio outputs.
type audioMixer interface {
	SetAudio(sample float32) error
	EndMixing() error
}

// commandLinePrefs builds the preferences string for the prefs command line
// stack from the RUN mode flags.
func commandLinePrefs(trace int, nomerge bool, extra string) string {
	var s strings.Builder
	if trace > 0 {
		fmt.Fprintf(&s, "cpu.tracedepth::%d; ", trace)
	}
	if nomerge {
		s.WriteString("integrator.merge::false; ")
	}
	s.WriteString(extra)
	return strings.TrimSpace(s.String())
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	bios := md.AddString("bios", "", "BIOS image (4K or 8K)")
	display := md.AddBool("display", false, "draw the beam in a window")
	scale := md.AddInt("scale", 2, "window scaling (only valid if -display=true)")
	useAudio := md.AddBool("audio", false, "play PSG output")
	wav := md.AddString("wav", "", "record PSG output to wav file")
	frames := md.AddInt("frames", 0, "number of frames to run for. zero runs until the window is closed or interrupted")
	trace := md.AddInt("trace", 0, "number of instructions to keep in the CPU trace")
	nomerge := md.AddBool("nomerge", false, "do not merge beam segments")
	memvizFile := md.AddString("memviz", "", "write a graphviz view of the hardware to file after the run")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))
	track := md.AddInt("tracker", 0, "print the last n PSG register writes after the run")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsOverride := md.AddString("prefs", "", "preference overrides. eg. \"vectrex.framecycles::25000\"")
	savePrefs := md.AddBool("saveprefs", false, "save the preferences (including overrides) to disk before running")
	md.AdditionalHelp(runControls)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	if *bios == "" {
		return curated.Errorf("govectrex: a BIOS image must be specified with -bios")
	}

	prefs.PushCommandLineStack(commandLinePrefs(*trace, *nomerge, *prefsOverride))
	pth, err := paths.ResourcePath("", preferencesFile)
	if err != nil {
		return err
	}
	hwPrefs, err := preferences.NewPreferences(pth)
	if err != nil {
		return err
	}
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "govectrex", "unused preferences: %s", unused)
	}
	if *savePrefs {
		if err := hwPrefs.Save(); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "govectrex", "preferences saved to %s", pth)
	}

	vec, err := hardware.NewVectrex(hwPrefs)
	if err != nil {
		return err
	}

	err = vec.AttachBIOS(romloader.NewLoader(*bios))
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		// the BIOS runs its built-in game without a cartridge
	case 1:
		err = vec.AttachCartridge(romloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}
	default:
		return curated.Errorf("govectrex: too many arguments for %s mode", md.String())
	}

	var tr *tracker.Tracker
	var mixers []audioMixer
	sampleFreq := sdlaudio.SampleFreq

	if *wav != "" {
		aw, err := wavwriter.New(*wav, sampleFreq)
		if err != nil {
			return err
		}
		mixers = append(mixers, aw)
	}

	if *useAudio {
		aud, err := sdlaudio.NewAudio()
		if err != nil {
			return err
		}
		mixers = append(mixers, aud)
	}

	if *track > 0 {
		tr = tracker.NewTracker(vec)
		vec.PSG.SetTracker(tr)
	}

	var dsp *sdlvector.Display
	if *display {
		dsp, err = sdlvector.NewDisplay(float32(*scale), displayRate)
		if err != nil {
			return err
		}
		defer dsp.Destroy()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Reset(os.Interrupt)

	cyclesPerSample := float64(clockFreq) / float64(sampleFreq)
	nextSample := cyclesPerSample

	frame := vec.Frame()
	targetFrame := frame + *frames
	performanceFilter := 0

	err = vec.Run(func() (govern.State, error) {
		if len(mixers) > 0 {
			for float64(vec.Cycles) >= nextSample {
				s := vec.AudioSample()
				for _, m := range mixers {
					if err := m.SetAudio(s); err != nil {
						return govern.Ending, err
					}
				}
				nextSample += cyclesPerSample
			}
		}

		if vec.Frame() != frame {
			frame = vec.Frame()

			if dsp != nil {
				if err := dsp.Draw(vec.TakeSegments()); err != nil {
					return govern.Ending, err
				}
				if !dsp.Service() {
					return govern.Ending, nil
				}
				vec.SetButtons(dsp.Buttons())
				x, y := dsp.Joystick()
				vec.SetJoystick(0, x, y)
			} else {
				// segments are not needed without a display
				_ = vec.TakeSegments()
			}

			if *frames > 0 && frame >= targetFrame {
				return govern.Ending, nil
			}
		}

		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-intChan:
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})

	for _, m := range mixers {
		if err := m.EndMixing(); err != nil {
			logger.Log(logger.Allow, "govectrex", err)
		}
	}

	if err != nil {
		if vec.CPU.Trace != nil {
			fmt.Println(vec.CPU.Trace)
		}
		return err
	}

	fmt.Printf("ran for %d frames (%d cycles)\n", vec.Frame(), vec.Cycles)

	if tr != nil {
		tr.Write(os.Stdout, *track)
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, vec.VIA, vec.Beam, vec.PSG, &vec.CPU.CC)
	}

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("govectrex: a single cartridge file is required for %s mode", md.String())
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	fmt.Printf("%s\n", ld.ShortName())
	fmt.Printf("  size: %d bytes (maximum %d)\n", len(ld.Data), addresses.CartridgeSize)
	fmt.Printf("  sha1: %s\n", ld.Hash)

	h, err := romloader.ParseHeader(ld.Data)
	if err != nil {
		fmt.Printf("  header: %v\n", err)
		return nil
	}

	fmt.Printf("  copyright: %s\n", h.Copyright)
	fmt.Printf("  music: %#04x\n", h.MusicAddress)
	for _, t := range h.Title {
		fmt.Printf("  title: %s\n", t)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		fmt.Println(version.String())
		return nil
	}

	v, _, _ := version.Version()
	fmt.Println(v)
	return nil
}
