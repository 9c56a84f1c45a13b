package pksm

import (
	"io/fs"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/hid"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/router"
)

// Main menu button geometry on the bottom display.
const (
	menuButtonWidth  = 120
	menuButtonHeight = 30
	menuButtonX      = (constants.BottomWidth - menuButtonWidth) / 2
	menuButtonTop    = 60
	menuButtonGap    = 40
)

// MainScreen is the first screen: the current settings on the top display
// and the action menu on the bottom one.
type MainScreen struct {
	screen  *router.Screen
	cfg     *Config
	loc     *Localizer
	regions *RegionTable
	fsys    fs.FS

	items   []MenuItem
	buttons []*ClickButton
	cursor  *hid.Cursor
}

// NewMainScreen returns the builder of the main screen for a router.
func NewMainScreen(cfg *Config, loc *Localizer, regions *RegionTable, fsys fs.FS) router.ScreenFunc {
	return func(s *router.Screen) router.Layer {
		m := &MainScreen{
			screen:  s,
			cfg:     cfg,
			loc:     loc,
			regions: regions,
			fsys:    fsys,
		}
		m.items = []MenuItem{
			{Text: loc.T("MAIN_REGION"), Action: m.chooseRegion},
			{Text: loc.T("MAIN_SCRIPTS"), Action: m.chooseScript},
			{Text: loc.T("MAIN_CLEAR_SCRIPTS"), Action: m.clearScripts},
			{Text: loc.T("MAIN_EXIT"), Action: func() { s.Router().Exit() }},
		}
		m.cursor = hid.NewCursor(len(m.items), 1)
		m.cursor.Wrap = true

		for i, item := range m.items {
			b := NewClickButton(menuButtonX, menuButtonTop+i*menuButtonGap, menuButtonWidth, menuButtonHeight, nil)
			b.Sprite = constants.SpriteButtonBlue
			b.Text = item.Text
			idx := i
			b.OnClick = func() {
				m.cursor.Select(idx)
				m.items[idx].Action()
			}
			m.buttons = append(m.buttons, b)
		}
		return m
	}
}

// Items returns the menu entries.
func (m *MainScreen) Items() []MenuItem {
	return m.items
}

// Cursor returns the menu cursor.
func (m *MainScreen) Cursor() *hid.Cursor {
	return m.cursor
}

func (m *MainScreen) chooseRegion() {
	ShowRegionOverlay(m.screen, m.cfg, m.loc, m.regions)
}

func (m *MainScreen) chooseScript() {
	ShowFileChooser(m.screen, m.loc, m.fsys, func(path string) {
		m.cfg.Scripts = append(m.cfg.Scripts, path)
	})
}

func (m *MainScreen) clearScripts() {
	if len(m.cfg.Scripts) == 0 {
		return
	}
	ShowChoice(m.screen, m.loc, ChoiceSettings{
		Lines:       [2]string{m.loc.T("MAIN_CLEAR_SCRIPTS"), m.loc.Plural("SCRIPTS_CHOSEN", len(m.cfg.Scripts))},
		DelayFrames: 30,
		OnChoice: func(action ChoiceAction) {
			if action == ChoiceConfirmed {
				m.cfg.Scripts = nil
			}
		},
	})
}

func (m *MainScreen) Update(in *input.Snapshot) {
	for _, b := range m.buttons {
		if b.Update(in) {
			return
		}
	}

	m.cursor.Navigate(in, len(m.items))
	if in.Pressed(constants.KeyA) {
		m.items[m.cursor.FullIndex()].Action()
	}
}

// regionLabel names the configured sub-region, or its id when the table
// does not know it.
func (m *MainScreen) regionLabel() string {
	if reg, ok := m.regions.Lookup(m.cfg.Language, m.cfg.DefaultCountry, m.cfg.DefaultRegion); ok {
		return m.loc.Tf("CURRENT_REGION", map[string]any{"Name": reg.Name})
	}
	return m.loc.Tf("UNKNOWN_REGION", map[string]any{"ID": m.cfg.DefaultRegion})
}

func (m *MainScreen) DrawTop(g *gui.Gui) {
	g.TileSprite(constants.SpriteBgStripeTop, stripeTile)
	g.SolidRect(0, 0, constants.TopWidth, fileTitleBar, constants.ColorDarkBlue)
	g.Text(m.loc.T("MAIN_TITLE"), constants.TopWidth/2, 2, constants.FontSize11, constants.ColorYellow, constants.TextPosCenter, constants.TextPosTop)

	g.Text(m.regionLabel(), 10, 30, constants.FontSize14, constants.ColorWhite, constants.TextPosLeft, constants.TextPosTop)
	g.Text(m.loc.Plural("SCRIPTS_CHOSEN", len(m.cfg.Scripts)), 10, 55, constants.FontSize14, constants.ColorWhite, constants.TextPosLeft, constants.TextPosTop)

	y := 80
	for _, path := range m.cfg.Scripts {
		if y+fileRowHeight > constants.ScreenHeight {
			g.Text("...", 30, y, constants.FontSize11, constants.ColorGrey, constants.TextPosLeft, constants.TextPosTop)
			break
		}
		g.Sprite(constants.SpriteIconScript, 6, y)
		g.Text(g.Ellipsize(path, constants.FontSize11, constants.TopWidth-40), 30, y+1, constants.FontSize11, constants.ColorWhite, constants.TextPosLeft, constants.TextPosTop)
		y += fileRowHeight
	}
}

func (m *MainScreen) DrawBottom(g *gui.Gui) {
	g.TileSprite(constants.SpriteBgStripeBottom, stripeTile)
	for i, b := range m.buttons {
		b.Draw(g)
		if i == m.cursor.FullIndex() {
			g.Sprite(constants.SpritePointer, b.X-16, b.Y+(b.H-12)/2)
		}
	}
}
