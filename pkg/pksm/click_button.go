package pksm

import (
	"image/color"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
)

// ClickButton is a rectangular touch target on the bottom display.
//
// It fires once per touch: on the first update that observes the touch, if
// the touch is inside it. A touch first observed elsewhere does not count
// when it slides in.
type ClickButton struct {
	X, Y, W, H int
	Sprite     constants.SpriteID // Drawn at X, Y when set
	Text       string
	TextColor  color.RGBA
	OnClick    func()

	// armed is false while a touch that has already been handled (or
	// started outside) is held.
	armed bool
}

// NewClickButton creates a button over the given rectangle.
func NewClickButton(x, y, w, h int, onClick func()) *ClickButton {
	return &ClickButton{X: x, Y: y, W: w, H: h, TextColor: constants.ColorWhite, OnClick: onClick, armed: true}
}

// Update reports whether the button fired this frame.
func (b *ClickButton) Update(in *input.Snapshot) bool {
	if in.Touch == nil {
		b.armed = true
		return false
	}
	if !b.armed {
		return false
	}
	b.armed = false

	if !in.TouchIn(b.X, b.Y, b.W, b.H) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw renders the button sprite and its centered label.
func (b *ClickButton) Draw(g *gui.Gui) {
	if b.Sprite != constants.SpriteNone {
		g.Sprite(b.Sprite, b.X, b.Y)
	}
	if b.Text != "" {
		g.Text(b.Text, b.X+b.W/2, b.Y+b.H/2, constants.FontSize12, b.TextColor, constants.TextPosCenter, constants.TextPosMiddle)
	}
}
