package sdl2

import (
	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
	"github.com/veandco/go-sdl2/sdl"
)

var keyboardMap = map[sdl.Scancode]constants.Key{
	sdl.SCANCODE_A:         constants.KeyA,
	sdl.SCANCODE_RETURN:    constants.KeyA,
	sdl.SCANCODE_B:         constants.KeyB,
	sdl.SCANCODE_BACKSPACE: constants.KeyB,
	sdl.SCANCODE_X:         constants.KeyX,
	sdl.SCANCODE_Y:         constants.KeyY,
	sdl.SCANCODE_Q:         constants.KeyL,
	sdl.SCANCODE_W:         constants.KeyR,
	sdl.SCANCODE_SPACE:     constants.KeyStart,
	sdl.SCANCODE_RSHIFT:    constants.KeySelect,
	sdl.SCANCODE_UP:        constants.KeyDUp,
	sdl.SCANCODE_DOWN:      constants.KeyDDown,
	sdl.SCANCODE_LEFT:      constants.KeyDLeft,
	sdl.SCANCODE_RIGHT:     constants.KeyDRight,
}

var controllerMap = map[sdl.GameControllerButton]constants.Key{
	sdl.CONTROLLER_BUTTON_A:             constants.KeyA,
	sdl.CONTROLLER_BUTTON_B:             constants.KeyB,
	sdl.CONTROLLER_BUTTON_X:             constants.KeyX,
	sdl.CONTROLLER_BUTTON_Y:             constants.KeyY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.KeyL,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.KeyR,
	sdl.CONTROLLER_BUTTON_START:         constants.KeyStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.KeySelect,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.KeyDUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.KeyDDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.KeyDLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.KeyDRight,
}

// flipFace swaps A/B and X/Y.
func flipFace(k constants.Key) constants.Key {
	switch k {
	case constants.KeyA:
		return constants.KeyB
	case constants.KeyB:
		return constants.KeyA
	case constants.KeyX:
		return constants.KeyY
	case constants.KeyY:
		return constants.KeyX
	}
	return k
}

// Source drains the SDL event queue once per frame and reports the result
// as an input.Snapshot. The left mouse button on the bottom display is the
// stylus.
type Source struct {
	tracker     *input.Tracker
	flip        bool
	keys        constants.Key
	buttons     constants.Key
	touch       *input.Touch
	controllers map[sdl.JoystickID]*sdl.GameController
	closed      bool
}

func newSource(flip bool) *Source {
	return &Source{
		tracker:     input.NewTracker(),
		flip:        flip,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}
}

func (s *Source) Poll() (input.Snapshot, bool) {
	if s.closed {
		return input.Snapshot{}, false
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			internal.GetInternalLogger().Debug("Window closed")
			s.closed = true
			return input.Snapshot{}, false

		case *sdl.KeyboardEvent:
			if k, ok := keyboardMap[e.Keysym.Scancode]; ok {
				s.keys = setKey(s.keys, k, e.Type == sdl.KEYDOWN)
			}

		case *sdl.ControllerDeviceEvent:
			s.handleDevice(e)

		case *sdl.ControllerButtonEvent:
			if k, ok := controllerMap[sdl.GameControllerButton(e.Button)]; ok {
				if s.flip {
					k = flipFace(k)
				}
				s.buttons = setKey(s.buttons, k, e.State == sdl.PRESSED)
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.State == sdl.PRESSED {
				s.touchAt(e.X, e.Y)
			} else {
				s.touch = nil
			}

		case *sdl.MouseMotionEvent:
			if e.State&sdl.ButtonLMask() != 0 {
				s.touchAt(e.X, e.Y)
			}
		}
	}

	return s.tracker.Next(s.keys|s.buttons, s.touch), true
}

// touchAt converts window coordinates to bottom-display coordinates. Drags
// that leave the bottom display lift the stylus.
func (s *Source) touchAt(x, y int32) {
	tx, ty := int(x)-bottomOffsetX, int(y)-constants.ScreenHeight
	if tx < 0 || tx >= constants.BottomWidth || ty < 0 || ty >= constants.ScreenHeight {
		s.touch = nil
		return
	}
	s.touch = &input.Touch{X: tx, Y: ty}
}

func (s *Source) handleDevice(e *sdl.ControllerDeviceEvent) {
	logger := internal.GetInternalLogger()
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		c := sdl.GameControllerOpen(int(e.Which))
		if c == nil {
			logger.Warn("Failed to open controller", "index", e.Which, "error", sdl.GetError())
			return
		}
		s.controllers[c.Joystick().InstanceID()] = c
		logger.Debug("Controller connected", "name", c.Name())
	case sdl.CONTROLLERDEVICEREMOVED:
		if c, ok := s.controllers[e.Which]; ok {
			c.Close()
			delete(s.controllers, e.Which)
			s.buttons = constants.KeyNone
			logger.Debug("Controller disconnected")
		}
	}
}

func (s *Source) Close() error {
	for id, c := range s.controllers {
		c.Close()
		delete(s.controllers, id)
	}
	s.closed = true
	return nil
}

func setKey(set, k constants.Key, down bool) constants.Key {
	if down {
		return set | k
	}
	return set &^ k
}
