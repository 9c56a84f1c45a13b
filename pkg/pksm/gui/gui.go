package gui

import (
	"image/color"
	"strings"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
)

// Gui wraps a Renderer with the helpers shared by screens and overlays.
type Gui struct {
	r      Renderer
	target constants.Display
}

// New creates a Gui drawing through r.
func New(r Renderer) *Gui {
	return &Gui{r: r}
}

// Renderer returns the wrapped backend.
func (g *Gui) Renderer() Renderer {
	return g.r
}

// Target selects the display subsequent draw calls go to.
func (g *Gui) Target(d constants.Display) {
	g.target = d
	g.r.Target(d)
}

// CurrentTarget returns the display selected by the last Target call.
func (g *Gui) CurrentTarget() constants.Display {
	return g.target
}

// Width returns the width of the current target display.
func (g *Gui) Width() int {
	if g.target == constants.DisplayTop {
		return constants.TopWidth
	}
	return constants.BottomWidth
}

// ClearScreen clears display d to black.
func (g *Gui) ClearScreen(d constants.Display) {
	g.Target(d)
	g.r.Clear(constants.ColorBlack)
}

// Present shows the finished frame.
func (g *Gui) Present() error {
	return g.r.Present()
}

// Sprite draws a sprite sheet entry.
func (g *Gui) Sprite(id constants.SpriteID, x, y int) {
	g.r.DrawSprite(id, x, y)
}

// TileSprite repeats a square tile of size step over the current display.
func (g *Gui) TileSprite(id constants.SpriteID, step int) {
	for x := 0; x < g.Width(); x += step {
		for y := 0; y < constants.ScreenHeight; y += step {
			g.r.DrawSprite(id, x, y)
		}
	}
}

// SolidRect fills a rectangle.
func (g *Gui) SolidRect(x, y, w, h int, c color.RGBA) {
	g.r.DrawRect(x, y, w, h, c)
}

// Dim darkens the whole current display so an overlay stands out from the
// layers beneath it.
func (g *Gui) Dim() {
	g.r.DrawRect(0, 0, g.Width(), constants.ScreenHeight, constants.ColorMaskBlack)
}

// Highlight draws a masked box with a one-pixel outline.
func (g *Gui) Highlight(x, y, w, h int, outline color.RGBA) {
	g.r.DrawRect(x, y, w, h, constants.ColorMaskBlack)
	g.r.DrawRect(x, y, w, 1, outline)
	g.r.DrawRect(x, y, 1, h, outline)
	g.r.DrawRect(x, y+h-1, w, 1, outline)
	g.r.DrawRect(x+w-1, y, 1, h, outline)
}

// Text draws str aligned relative to x, y. Multi-line strings are drawn
// line by line, each line aligned on its own.
func (g *Gui) Text(str string, x, y int, size constants.FontSize, c color.RGBA, posX constants.TextPosX, posY constants.TextPosY) {
	lines := strings.Split(str, "\n")
	lineHeight := size.Pixels()

	total := lineHeight * len(lines)
	switch posY {
	case constants.TextPosMiddle:
		y -= total / 2
	case constants.TextPosBottom:
		y -= total
	}

	style := TextStyle{Size: size, Color: c}
	for i, line := range lines {
		if line == "" {
			continue
		}
		lx := x
		if posX != constants.TextPosLeft {
			w, _ := g.r.MeasureText(line, size)
			if posX == constants.TextPosCenter {
				lx -= w / 2
			} else {
				lx -= w
			}
		}
		g.r.DrawText(line, lx, y+i*lineHeight, style)
	}
}

// TextWidth returns the width of the widest line of str.
func (g *Gui) TextWidth(str string, size constants.FontSize) int {
	widest := 0
	for _, line := range strings.Split(str, "\n") {
		if w, _ := g.r.MeasureText(line, size); w > widest {
			widest = w
		}
	}
	return widest
}

// Ellipsize shortens str with a trailing "..." so it fits maxWidth.
func (g *Gui) Ellipsize(str string, size constants.FontSize, maxWidth int) string {
	if w, _ := g.r.MeasureText(str, size); w <= maxWidth {
		return str
	}
	runes := []rune(str)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if w, _ := g.r.MeasureText(candidate, size); w <= maxWidth {
			return candidate
		}
	}
	return "..."
}
