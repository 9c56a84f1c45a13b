package pksm

import (
	"fmt"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/router"
)

// ChoiceSettings configures a choice message.
type ChoiceSettings struct {
	// Lines are the two message lines shown on the top display.
	Lines [2]string
	// DelayFrames keeps A from being accepted until that many frames have
	// been updated. B always works.
	DelayFrames int
	// OnChoice receives the answer after the overlay has removed itself,
	// so it may push further overlays or remove the one beneath.
	OnChoice func(ChoiceAction)
}

// ChoiceOverlay asks a yes/no question. It is the frame-driven form of a
// blocking confirmation dialog.
type ChoiceOverlay struct {
	handle   *router.Overlay
	loc      *Localizer
	settings ChoiceSettings
	frames   int
}

// ShowChoice pushes a choice message above everything on screen.
func ShowChoice(screen *router.Screen, loc *Localizer, settings ChoiceSettings) *ChoiceOverlay {
	var c *ChoiceOverlay
	screen.PushOverlay(func(o *router.Overlay) router.Layer {
		c = &ChoiceOverlay{handle: o, loc: loc, settings: settings}
		return c
	})
	return c
}

// Remaining returns the frames left before A is accepted.
func (c *ChoiceOverlay) Remaining() int {
	return max(c.settings.DelayFrames-c.frames, 0)
}

func (c *ChoiceOverlay) Update(in *input.Snapshot) {
	c.frames++

	switch {
	case in.Pressed(constants.KeyA) && c.frames > c.settings.DelayFrames:
		c.finish(ChoiceConfirmed)
	case in.Pressed(constants.KeyB):
		c.finish(ChoiceCancelled)
	}
}

func (c *ChoiceOverlay) finish(action ChoiceAction) {
	c.handle.Remove()
	GetLogger().Debug("Choice answered", "message", c.settings.Lines[0], "action", action.String())
	if c.settings.OnChoice != nil {
		c.settings.OnChoice(action)
	}
}

func (c *ChoiceOverlay) DrawTop(g *gui.Gui) {
	g.Dim()
	g.SolidRect(0, 80, constants.TopWidth, 80, constants.ColorDarkBlue)
	g.Text(c.settings.Lines[0], constants.TopWidth/2, 95, constants.FontSize15, constants.ColorWhite, constants.TextPosCenter, constants.TextPosTop)
	g.Text(c.settings.Lines[1], constants.TopWidth/2, 125, constants.FontSize12, constants.ColorYellow, constants.TextPosCenter, constants.TextPosTop)
}

func (c *ChoiceOverlay) DrawBottom(g *gui.Gui) {
	g.Dim()

	confirm := c.loc.T("CHOICE_CONFIRM")
	if n := c.Remaining(); n > 0 {
		confirm = fmt.Sprintf("%s (%d)", confirm, (n+59)/60)
	}
	g.Text(confirm, constants.BottomWidth/2, 100, constants.FontSize15, constants.ColorWhite, constants.TextPosCenter, constants.TextPosTop)
	g.Text(c.loc.T("CHOICE_CANCEL"), constants.BottomWidth/2, 130, constants.FontSize15, constants.ColorWhite, constants.TextPosCenter, constants.TextPosTop)
}
