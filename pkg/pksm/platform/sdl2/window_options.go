package sdl2

import (
	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects how the window holding both displays is created.
// The zero value means "pick for the environment": a resizable window in
// dev mode, a borderless fullscreen one on the device.
type WindowOptions struct {
	Borderless        bool // No window decorations
	Resizable         bool // Let the desktop resize the window; the displays scale with it
	Fullscreen        bool // Exclusive fullscreen
	FullscreenDesktop bool // Fullscreen at the desktop resolution, the usual choice on handhelds
	AlwaysOnTop       bool
	Hidden            bool // Create the window without showing it
}

// IsZero reports whether no option is set.
func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

// resolve fills in the environment defaults for the zero value.
func (wo WindowOptions) resolve() WindowOptions {
	if !wo.IsZero() {
		return wo
	}
	if constants.IsDevMode() {
		return WindowOptions{Resizable: true}
	}
	return WindowOptions{Borderless: true, FullscreenDesktop: true}
}

// flags converts the options to SDL_CreateWindow flags.
func (wo WindowOptions) flags() uint32 {
	var flags uint32
	for _, f := range []struct {
		set  bool
		flag uint32
	}{
		{!wo.Hidden, sdl.WINDOW_SHOWN},
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.Fullscreen, sdl.WINDOW_FULLSCREEN},
		{wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP},
		{wo.AlwaysOnTop, sdl.WINDOW_ALWAYS_ON_TOP},
	} {
		if f.set {
			flags |= f.flag
		}
	}
	return flags
}
