// Package constants defines shared constants, types, and configuration values
// used throughout the pksm client.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read at startup.
const (
	EnvironmentEnvVar = "ENVIRONMENT"  // ENVIRONMENT=DEV enables windowed, scaled output
	WindowScaleEnvVar = "WINDOW_SCALE" // Integer scale factor for the dev-mode window
	DebugEnvVar       = "PKSM_DEBUG"   // Any value enables debug logging for internals
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Key is a bit set of console buttons. A single flag names one button; an
// input snapshot carries several flags OR'd together.
type Key uint32

const (
	KeyA Key = 1 << iota
	KeyB
	KeySelect
	KeyStart
	KeyDRight
	KeyDLeft
	KeyDUp
	KeyDDown
	KeyR
	KeyL
	KeyX
	KeyY
	KeyTouch

	KeyNone Key = 0
)

// KeyDirections is every D-pad flag.
const KeyDirections = KeyDUp | KeyDDown | KeyDLeft | KeyDRight

// Has reports whether every flag in other is set in k.
func (k Key) Has(other Key) bool {
	return other != 0 && k&other == other
}

// Any reports whether at least one flag in other is set in k.
func (k Key) Any(other Key) bool {
	return k&other != 0
}

func (k Key) GetName() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeySelect:
		return "Select"
	case KeyStart:
		return "Start"
	case KeyDRight:
		return "Right"
	case KeyDLeft:
		return "Left"
	case KeyDUp:
		return "Up"
	case KeyDDown:
		return "Down"
	case KeyR:
		return "R"
	case KeyL:
		return "L"
	case KeyX:
		return "X"
	case KeyY:
		return "Y"
	case KeyTouch:
		return "Touch"
	default:
		return "Unknown"
	}
}

// Display identifies one of the two physical screens.
type Display int

const (
	DisplayTop Display = iota
	DisplayBottom
)

// Screen geometry in pixels.
const (
	TopWidth     = 400
	BottomWidth  = 320
	ScreenHeight = 240
)

// TextPosX specifies horizontal text alignment relative to the x coordinate.
type TextPosX int

const (
	TextPosLeft   TextPosX = iota // x is the left edge
	TextPosCenter                 // x is the horizontal center
	TextPosRight                  // x is the right edge
)

// TextPosY specifies vertical text alignment relative to the y coordinate.
type TextPosY int

const (
	TextPosTop    TextPosY = iota // y is the top edge
	TextPosMiddle                 // y is the vertical center
	TextPosBottom                 // y is the bottom edge
)

// Default timing constants.
const (
	DefaultRepeatDelay    = 300 * time.Millisecond // Held direction delay before the first repeat
	DefaultRepeatInterval = 50 * time.Millisecond  // Delay between subsequent repeats
	FrameDuration         = 16 * time.Millisecond  // ~60fps frame pacing
)
