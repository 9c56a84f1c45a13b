// Package gui is the drawing facade every screen and overlay renders
// through. It wraps a backend Renderer with the layout helpers the
// screens share: aligned text, dimming, highlight boxes and tiling.
package gui

import (
	"image/color"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
)

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Size  constants.FontSize
	Color color.RGBA
}

// Renderer is the platform drawing surface. Coordinates are pixels
// relative to the current target display.
type Renderer interface {
	// Target selects the display subsequent draw calls go to.
	Target(d constants.Display)
	// Clear fills the current target with c.
	Clear(c color.RGBA)
	DrawSprite(id constants.SpriteID, x, y int)
	// DrawText draws s with its top-left corner at x, y.
	DrawText(s string, x, y int, style TextStyle)
	DrawRect(x, y, w, h int, c color.RGBA)
	// MeasureText returns the size of s drawn at the given font size.
	MeasureText(s string, size constants.FontSize) (w, h int)
	// Present shows the finished frame.
	Present() error
}
