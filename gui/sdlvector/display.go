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

package sdlvector

import (
	"time"

	"github.com/jetsetilly/govectrex/curated"
	"github.com/jetsetilly/govectrex/hardware/integrator"
	"github.com/jetsetilly/govectrex/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Display is an SDL window showing the beam segments.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	proj     projection

	// regulates how often the screen is updated
	limiter *time.Ticker

	// input state gathered from the keyboard
	buttons uint8
	left    bool
	right   bool
	up      bool
	down    bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
// The frames argument is the number of frames displayed per second.
func NewDisplay(scale float32, frames int) (*Display, error) {
	if frames <= 0 {
		return nil, curated.Errorf("sdlvector: %v", "frame rate must be positive")
	}

	err := sdl.InitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlvector: %v", err)
	}

	dsp := &Display{
		proj: projection{
			width:  int32(baseWidth * scale),
			height: int32(baseHeight * scale),
		},
		limiter: time.NewTicker(time.Second / time.Duration(frames)),
	}

	dsp.window, err = sdl.CreateWindow("Govectrex",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		dsp.proj.width, dsp.proj.height,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("sdlvector: %v", err)
	}

	dsp.renderer, err = sdl.CreateRenderer(dsp.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, curated.Errorf("sdlvector: %v", err)
	}

	logger.Logf(logger.Allow, "sdlvector", "window size %dx%d", dsp.proj.width, dsp.proj.height)

	return dsp, nil
}

// Destroy the window.
func (dsp *Display) Destroy() {
	dsp.limiter.Stop()
	if err := dsp.renderer.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlvector", err)
	}
	if err := dsp.window.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlvector", err)
	}
}

// Draw the segments and present the frame. The function blocks until it is
// time for the next frame.
func (dsp *Display) Draw(segs []integrator.Segment) error {
	<-dsp.limiter.C

	if err := dsp.renderer.SetDrawColor(0, 0, 0, 0xff); err != nil {
		return curated.Errorf("sdlvector: %v", err)
	}
	if err := dsp.renderer.Clear(); err != nil {
		return curated.Errorf("sdlvector: %v", err)
	}

	for _, s := range segs {
		b := brightness(s.Intensity)
		if err := dsp.renderer.SetDrawColor(b, b, b, 0xff); err != nil {
			return curated.Errorf("sdlvector: %v", err)
		}

		x0, y0 := dsp.proj.point(s.X0, s.Y0)
		x1, y1 := dsp.proj.point(s.X1, s.Y1)
		if err := dsp.renderer.DrawLine(x0, y0, x1, y1); err != nil {
			return curated.Errorf("sdlvector: %v", err)
		}
	}

	dsp.renderer.Present()

	return nil
}

// Service the SDL event queue. Returns false if the window has been closed.
func (dsp *Display) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			down := ev.Type == sdl.KEYDOWN

			if b, ok := buttonKeys[ev.Keysym.Sym]; ok {
				if down {
					dsp.buttons |= b
				} else {
					dsp.buttons &^= b
				}
				continue
			}

			switch ev.Keysym.Sym {
			case sdl.K_LEFT:
				dsp.left = down
			case sdl.K_RIGHT:
				dsp.right = down
			case sdl.K_UP:
				dsp.up = down
			case sdl.K_DOWN:
				dsp.down = down
			case sdl.K_ESCAPE:
				return false
			}
		}
	}

	return true
}

// Buttons returns the state of the buttons. A set bit means the button is
// pressed.
func (dsp *Display) Buttons() uint8 {
	return dsp.buttons
}

// Joystick returns the position of the joystick.
func (dsp *Display) Joystick() (int8, int8) {
	var x, y int8
	if dsp.left {
		x -= deflection
	}
	if dsp.right {
		x += deflection
	}
	if dsp.up {
		y += deflection
	}
	if dsp.down {
		y -= deflection
	}
	return x, y
}
