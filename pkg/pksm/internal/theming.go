package internal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
)

// Theme defines the visual appearance of both displays. Backends read it
// once at startup; screens use the constants palette directly.
type Theme struct {
	TopBackground    color.RGBA // Clear color of the top display
	BottomBackground color.RGBA // Clear color of the bottom display
	TextColor        color.RGBA // Default text color
	HighlightColor   color.RGBA // Cursor outline
	TitleBarColor    color.RGBA // Title bar fill
	FontPath         string     // Path to the TTF font used by the SDL backend
}

// DefaultTheme is the stock PKSM palette.
func DefaultTheme() Theme {
	return Theme{
		TopBackground:    constants.ColorDarkBlue,
		BottomBackground: constants.ColorDarkBlue,
		TextColor:        constants.ColorWhite,
		HighlightColor:   constants.ColorYellow,
		TitleBarColor:    constants.ColorLightBlue,
	}
}

var currentTheme = DefaultTheme()

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// ParseHexColor parses "#RRGGBB" or "RRGGBB", as found in theme files.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexToColor(uint32(v)), nil
}
