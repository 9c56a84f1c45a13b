package pksm

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
)

func TestAppRunSavesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pksm.toml")
	cfg := DefaultConfig()

	app, err := NewApp(cfg, path, scriptFS())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	src := &scriptedSource{snaps: []*input.Snapshot{
		press(constants.KeyA),
		press(constants.KeyDDown),
		press(constants.KeyA),
	}}
	if err := app.Run(context.Background(), src, gui.NewRecorder()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if app.Config().DefaultRegion != 3 {
		t.Fatalf("expected region 3 chosen, got %d", app.Config().DefaultRegion)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.DefaultRegion != 3 {
		t.Fatalf("expected the saved config to hold region 3, got %d", loaded.DefaultRegion)
	}
}

func TestAppRunStopsOnExit(t *testing.T) {
	app, err := NewApp(DefaultConfig(), "", scriptFS())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	down := press(constants.KeyDDown)
	src := &scriptedSource{snaps: []*input.Snapshot{down, down, down, press(constants.KeyA), idle(), idle()}}
	if err := app.Run(context.Background(), src, gui.NewRecorder()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.next != 4 {
		t.Fatalf("expected the loop to stop after the exit frame, polled %d", src.next)
	}
}

func TestAppRunCancelled(t *testing.T) {
	app, err := NewApp(DefaultConfig(), "", scriptFS())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &scriptedSource{snaps: []*input.Snapshot{idle()}}
	if err := app.Run(ctx, src, gui.NewRecorder()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.next != 0 {
		t.Fatalf("cancelled run polled input")
	}
}

func TestAppRunPresentError(t *testing.T) {
	app, err := NewApp(DefaultConfig(), "", scriptFS())
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}

	rec := gui.NewRecorder()
	rec.PresentErr = errors.New("display lost")

	err = app.Run(context.Background(), &scriptedSource{snaps: []*input.Snapshot{idle()}}, rec)
	if !IsInfrastructureError(err) {
		t.Fatalf("expected an infrastructure error, got %v", err)
	}
}

func TestNewAppUnknownLanguage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = "xx-invalid-tag-"

	if _, err := NewApp(cfg, "", scriptFS()); err == nil {
		t.Fatalf("expected an error for a malformed language")
	}
}

func TestWatchPowerButtonWithoutDevice(t *testing.T) {
	src := &scriptedSource{}

	got, err := WatchPowerButton(DefaultConfig(), src)
	if err != nil {
		t.Fatalf("WatchPowerButton: %v", err)
	}
	if got != input.Source(src) {
		t.Fatalf("expected the source unchanged")
	}
}

func TestWatchPowerButtonMissingDevice(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PowerButton.Device = filepath.Join(t.TempDir(), "event99")
	src := &scriptedSource{}

	got, err := WatchPowerButton(cfg, src)
	if !IsInfrastructureError(err) {
		t.Fatalf("expected an infrastructure error, got %v", err)
	}
	if got != input.Source(src) {
		t.Fatalf("expected the source unchanged on failure")
	}
}
