package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flagbrew/pksm/pkg/pksm"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/platform/sdl2"
	"github.com/flagbrew/pksm/pkg/pksm/platform/terminal"
)

var (
	configFlag  = flag.String("config", "pksm.toml", "Path of the TOML config file")
	backendFlag = flag.String("backend", "", "Override the configured backend: sdl, terminal")
	debugFlag   = flag.Bool("debug", false, "Log at debug level")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pksm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := pksm.LoadConfig(*configFlag)
	if err != nil {
		return err
	}
	session, err := withOverrides(cfg, *backendFlag, *debugFlag)
	if err != nil {
		return err
	}

	pksm.Init(session)
	defer pksm.Close()
	logger := pksm.GetLogger()

	app, err := pksm.NewApp(cfg, *configFlag, nil)
	if err != nil {
		return err
	}

	var (
		renderer gui.Renderer
		src      input.Source
	)
	switch session.Backend {
	case pksm.BackendTerminal:
		screen, err := terminal.Open(pksm.GetTheme())
		if err != nil {
			return err
		}
		defer screen.Close()
		renderer, src = screen, terminal.NewSource(screen.Tcell())

	default:
		window, source, err := sdl2.Init(sdl2.Options{
			Title:           "PKSM",
			Theme:           pksm.GetTheme(),
			FlipFaceButtons: session.FlipFaceButtons,
		})
		if err != nil {
			return err
		}
		defer sdl2.Cleanup(window, nil)
		renderer, src = window, source
	}

	src, err = pksm.WatchPowerButton(cfg, src)
	if err != nil {
		logger.Warn("Power button unavailable", "error", err)
	}
	defer src.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, src, renderer)
}

// withOverrides returns a copy of cfg with the command line applied. The
// copy only drives this process; cfg is what gets saved on exit.
func withOverrides(cfg *pksm.Config, backend string, debug bool) (*pksm.Config, error) {
	session := *cfg
	if backend != "" {
		session.Backend = backend
		if err := session.Validate(); err != nil {
			return nil, err
		}
	}
	if debug {
		session.LogLevel = "debug"
	}
	return &session, nil
}
