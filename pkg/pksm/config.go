package pksm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
)

// Backend names accepted in Config.Backend.
const (
	BackendSDL      = "sdl"
	BackendTerminal = "terminal"
)

// PowerButtonConfig is the [power_button] table.
type PowerButtonConfig struct {
	Device      string `toml:"device"`        // evdev node, empty disables the handler
	LongPressMS int    `toml:"long_press_ms"` // Hold time that exits instead of suspending
	SuspendPath string `toml:"suspend_path"`  // Written with "mem" on a short press
}

// ThemeConfig is the [theme] table. Colors are "#RRGGBB"; empty keeps the
// backend's default.
type ThemeConfig struct {
	TopBackground    string `toml:"top_background"`
	BottomBackground string `toml:"bottom_background"`
	FontPath         string `toml:"font_path"`
}

// Config is the persistent client configuration, stored as TOML.
type Config struct {
	Language        string            `toml:"language"`
	DefaultCountry  int               `toml:"default_country"`
	DefaultRegion   int               `toml:"default_region"`
	FileRoot        string            `toml:"file_root"`
	Scripts         []string          `toml:"scripts"`
	Backend         string            `toml:"backend"`
	LogLevel        string            `toml:"log_level"`
	LogPath         string            `toml:"log_path"`
	FlipFaceButtons bool              `toml:"flip_face_buttons"`
	PowerButton     PowerButtonConfig `toml:"power_button"`
	Theme           ThemeConfig       `toml:"theme"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Language:       "en",
		DefaultCountry: CountryUSA,
		DefaultRegion:  2,
		FileRoot:       ".",
		Backend:        BackendSDL,
		LogLevel:       "info",
		PowerButton: PowerButtonConfig{
			LongPressMS: 2000,
		},
	}
}

// LoadConfig reads path over the defaults. A missing file is not an
// error: the defaults are returned as they are.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			internal.GetInternalLogger().Debug("No config file, using defaults", "path", path)
			return cfg, nil
		}
		return nil, NewInfrastructureError("load_config", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		internal.GetLogger().Warn("Ignoring unknown config keys", "path", path, "keys", keys)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the client cannot start with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSDL, BackendTerminal:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.PowerButton.LongPressMS < 0 {
		return fmt.Errorf("config: power_button.long_press_ms must not be negative")
	}
	for name, v := range map[string]string{
		"theme.top_background":    c.Theme.TopBackground,
		"theme.bottom_background": c.Theme.BottomBackground,
	} {
		if v == "" {
			continue
		}
		if _, err := internal.ParseHexColor(v); err != nil {
			return fmt.Errorf("config: %s: %w", name, err)
		}
	}
	return nil
}

// Save writes the config to path atomically: a temporary file in the same
// directory is renamed over the old one.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewInfrastructureError("save_config", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.toml")
	if err != nil {
		return NewInfrastructureError("save_config", err)
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(c); err != nil {
		tmp.Close()
		return NewInfrastructureError("save_config", err)
	}
	if err := tmp.Close(); err != nil {
		return NewInfrastructureError("save_config", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return NewInfrastructureError("save_config", err)
	}
	return nil
}

// PowerButtonSettings converts the [power_button] table for the handler.
func (c *Config) PowerButtonSettings() internal.PowerButtonConfig {
	return internal.PowerButtonConfig{
		DevicePath:  c.PowerButton.Device,
		LongPress:   time.Duration(c.PowerButton.LongPressMS) * time.Millisecond,
		SuspendPath: c.PowerButton.SuspendPath,
	}
}

// ApplyTheme overlays the [theme] table on base. Validate has already
// checked the colors.
func (c *Config) ApplyTheme(base internal.Theme) internal.Theme {
	if col, err := internal.ParseHexColor(c.Theme.TopBackground); err == nil {
		base.TopBackground = col
	}
	if col, err := internal.ParseHexColor(c.Theme.BottomBackground); err == nil {
		base.BottomBackground = col
	}
	if c.Theme.FontPath != "" {
		base.FontPath = c.Theme.FontPath
	}
	return base
}
