package terminal

import (
	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
)

// InitTerminalTheme creates a theme for terminal previews. Terminals have
// no fonts to load, and the bottom display gets a slightly lighter
// background so the two displays stay apart.
func InitTerminalTheme() internal.Theme {
	return internal.Theme{
		TopBackground:    constants.ColorDarkBlue,
		BottomBackground: internal.HexToColor(0x1A2470),
		TextColor:        constants.ColorWhite,
		HighlightColor:   constants.ColorYellow,
		TitleBarColor:    constants.ColorLightBlue,
	}
}
