// Package pksm is the client side of a handheld save editor: a stack of
// screens and overlays driven one frame at a time, with a sub-region
// picker, a file chooser, an on-screen keyboard and confirmation messages.
//
// The package handles logging, theming, configuration and localization.
// Rendering and input come from a backend under platform/, chosen by the
// caller.
package pksm

import (
	"log/slog"
	"os"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
	"github.com/flagbrew/pksm/pkg/pksm/platform/terminal"
)

// Init prepares logging and the theme from cfg. It must be called before
// any logger is used and before a backend is opened.
func Init(cfg *Config) {
	internal.SetLogPath(cfg.LogPath)
	if cfg.Backend == BackendTerminal {
		// The terminal backend owns stdout.
		internal.SetConsole(nil)
	}

	internal.SetRawLogLevel(cfg.LogLevel)
	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	base := internal.DefaultTheme()
	if cfg.Backend == BackendTerminal {
		base = terminal.InitTerminalTheme()
	}
	internal.SetTheme(cfg.ApplyTheme(base))
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// GetTheme returns the theme set up by Init, for handing to a backend.
func GetTheme() internal.Theme {
	return internal.GetTheme()
}

// WatchPowerButton wraps src so that a long press of the power key ends
// the session and a short one suspends the device. Without a configured
// device src is returned unchanged.
func WatchPowerButton(cfg *Config, src input.Source) (input.Source, error) {
	settings := cfg.PowerButtonSettings()
	if settings.DevicePath == "" {
		return src, nil
	}

	button, err := internal.OpenPowerButton(settings)
	if err != nil {
		return src, NewInfrastructureError("power_button", err)
	}
	return button.Wrap(src), nil
}
