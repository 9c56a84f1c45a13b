package pksm

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/router"
)

// App is one client session: the configuration, the data it needs and the
// router holding the screens.
type App struct {
	cfg        *Config
	configPath string
	loc        *Localizer
	regions    *RegionTable
	router     *router.Router
}

// NewApp builds a session starting on the main screen. Files are chosen
// from fsys, or from cfg.FileRoot on disk when fsys is nil. The config is
// saved to configPath when the session ends, unless configPath is empty.
func NewApp(cfg *Config, configPath string, fsys fs.FS) (*App, error) {
	loc, err := NewLocalizer(cfg.Language)
	if err != nil {
		return nil, err
	}
	regions, err := LoadRegions()
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		fsys = os.DirFS(cfg.FileRoot)
	}

	return &App{
		cfg:        cfg,
		configPath: configPath,
		loc:        loc,
		regions:    regions,
		router:     router.New(NewMainScreen(cfg, loc, regions, fsys)),
	}, nil
}

// Config returns the session's configuration, as edited so far.
func (a *App) Config() *Config {
	return a.cfg
}

// Router returns the session's router.
func (a *App) Router() *router.Router {
	return a.router
}

// Localizer returns the session's message catalog.
func (a *App) Localizer() *Localizer {
	return a.loc
}

// Run drives frames until the user exits, src closes or ctx is done, then
// saves the config.
func (a *App) Run(ctx context.Context, src input.Source, r gui.Renderer) error {
	logger := GetLogger()
	logger.Info("Session started", "language", a.cfg.Language, "country", a.cfg.DefaultCountry, "region", a.cfg.DefaultRegion)

	var runErr error
	if err := a.router.Run(ctx, src, gui.New(r)); err != nil {
		runErr = NewInfrastructureError("frame_loop", err)
	}

	if a.configPath != "" {
		if err := a.cfg.Save(a.configPath); err != nil {
			return errors.Join(runErr, err)
		}
		logger.Debug("Config saved", "path", a.configPath)
	}

	logger.Info("Session ended", "scripts", len(a.cfg.Scripts))
	return runErr
}
