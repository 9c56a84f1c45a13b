package sdl2

import (
	"testing"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptionsResolve(t *testing.T) {
	t.Setenv(constants.EnvironmentEnvVar, constants.Development)
	if got := (WindowOptions{}).resolve(); got != (WindowOptions{Resizable: true}) {
		t.Fatalf("expected a resizable window in dev mode, got %+v", got)
	}

	t.Setenv(constants.EnvironmentEnvVar, "")
	if got := (WindowOptions{}).resolve(); got != (WindowOptions{Borderless: true, FullscreenDesktop: true}) {
		t.Fatalf("expected borderless fullscreen on the device, got %+v", got)
	}

	set := WindowOptions{Hidden: true}
	if got := set.resolve(); got != set {
		t.Fatalf("explicit options were replaced: %+v", got)
	}
}

func TestWindowOptionsFlags(t *testing.T) {
	if got := (WindowOptions{Resizable: true}).flags(); got != sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE {
		t.Fatalf("unexpected flags %#x", got)
	}
	if got := (WindowOptions{Hidden: true, AlwaysOnTop: true}).flags(); got != sdl.WINDOW_ALWAYS_ON_TOP {
		t.Fatalf("hidden window must not be shown, got %#x", got)
	}
}
