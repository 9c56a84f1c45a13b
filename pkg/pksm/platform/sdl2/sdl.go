// Package sdl2 is the SDL2 backend: a window showing both displays and an
// input source reading the keyboard, game controllers and the mouse, which
// stands in for the touch screen on the bottom display.
package sdl2

import (
	"fmt"

	"github.com/flagbrew/pksm/pkg/pksm/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Options configures Init.
type Options struct {
	Title         string
	WindowOptions WindowOptions
	Theme         internal.Theme
	// FlipFaceButtons swaps A/B and X/Y on game controllers, for pads
	// with the Xbox button layout.
	FlipFaceButtons bool
}

// Init starts SDL and opens the window. The returned Window is the
// Renderer; the Source reads input for the same window. Call Cleanup when
// done.
func Init(opts Options) (*Window, *Source, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, nil, fmt.Errorf("init sdl: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, nil, fmt.Errorf("init ttf: %w", err)
	}

	window, err := initWindow(opts.Title, opts.WindowOptions.resolve(), opts.Theme)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, nil, err
	}

	return window, newSource(opts.FlipFaceButtons), nil
}

// Cleanup releases the window and shuts SDL down.
func Cleanup(window *Window, source *Source) {
	if source != nil {
		source.Close()
	}
	if window != nil {
		window.closeWindow()
	}
	ttf.Quit()
	sdl.Quit()
}
