package pksm

import (
	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/filter"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/hid"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/router"
)

// Region picker geometry: two columns of twenty rows on the top display.
const (
	regionPageSize   = 40
	regionColumns    = 2
	regionRowHeight  = 12
	regionCellWidth  = 198
	regionCellHeight = 11
)

// RegionOverlay lets the user pick the default sub-region of the
// configured country, with a prefix search typed on the keyboard.
type RegionOverlay struct {
	handle  *router.Overlay
	cfg     *Config
	loc     *Localizer
	regions *filter.Collection[Region]
	cursor  *hid.Cursor
	search  *ClickButton

	// query is the last confirmed keyboard text; it is applied to the
	// collection on the next update.
	query string
}

// ShowRegionOverlay pushes the region picker onto screen.
func ShowRegionOverlay(screen *router.Screen, cfg *Config, loc *Localizer, table *RegionTable) *RegionOverlay {
	var r *RegionOverlay
	screen.PushOverlay(func(o *router.Overlay) router.Layer {
		r = newRegionOverlay(o, cfg, loc, table)
		return r
	})
	return r
}

func newRegionOverlay(o *router.Overlay, cfg *Config, loc *Localizer, table *RegionTable) *RegionOverlay {
	logger := GetLogger()

	r := &RegionOverlay{
		handle: o,
		cfg:    cfg,
		loc:    loc,
		cursor: hid.NewCursor(regionPageSize, regionColumns),
	}
	r.regions = filter.New(
		table.Subregions(cfg.Language, cfg.DefaultCountry),
		func(reg Region) string { return reg.Name },
		filter.WithRebuildHook[Region](func(query string, matches int) {
			logger.Debug("Sub-regions filtered", "query", query, "matches", matches)
		}),
	)

	r.search = NewClickButton(75, 30, 170, 23, r.openKeyboard)
	r.search.Sprite = constants.SpriteBoxSearch

	r.cursor.Update(r.regions.Len())
	if i := r.regions.Index(func(reg Region) bool { return reg.ID == cfg.DefaultRegion }); i >= 0 {
		r.cursor.Select(i)
	}
	return r
}

// Collection returns the filtered sub-regions.
func (r *RegionOverlay) Collection() *filter.Collection[Region] {
	return r.regions
}

// Cursor returns the selection cursor.
func (r *RegionOverlay) Cursor() *hid.Cursor {
	return r.cursor
}

// SetQuery changes the search text as if it had been typed.
func (r *RegionOverlay) SetQuery(q string) {
	r.query = q
}

func (r *RegionOverlay) openKeyboard() {
	ShowKeyboard(r.handle.Screen(), r.loc, KeyboardSettings{
		Hint:      r.loc.T("SUBREGION"),
		MaxLength: filter.MaxQueryLength,
		OnDone: func(res KeyboardResult) {
			if res.Err == nil {
				r.query = res.Text
			}
		},
	})
}

func (r *RegionOverlay) Update(in *input.Snapshot) {
	if in.Pressed(constants.KeyX) {
		r.openKeyboard()
		return
	}
	if r.search.Update(in) {
		return
	}

	r.regions.SetQuery(r.query)
	if r.cursor.FullIndex() >= r.regions.Len() {
		r.cursor.Select(0)
	}
	r.cursor.Navigate(in, r.regions.Len())

	switch {
	case in.Pressed(constants.KeyA):
		if r.regions.Len() > 0 {
			reg := r.regions.At(r.cursor.FullIndex())
			r.cfg.DefaultRegion = reg.ID
			GetLogger().Info("Default sub-region changed", "id", reg.ID, "name", reg.Name)
		}
		r.handle.Remove()
	case in.Pressed(constants.KeyB):
		r.handle.Remove()
	}
}

func (r *RegionOverlay) DrawTop(g *gui.Gui) {
	g.Sprite(constants.SpritePartEditor20x2, 0, 0)

	rows := r.cursor.VisibleRows()
	x := 2
	if r.cursor.Index() >= rows {
		x = 200
	}
	g.Highlight(x, (r.cursor.Index()%rows)*regionRowHeight, regionCellWidth, regionCellHeight, constants.ColorYellow)

	start := r.cursor.PageStart()
	for i := 0; i < r.cursor.PageSize() && start+i < r.regions.Len(); i++ {
		x := 4
		if i >= rows {
			x = 203
		}
		g.Text(r.regions.At(start+i).String(), x, (i%rows)*regionRowHeight, constants.FontSize9, constants.ColorWhite, constants.TextPosLeft, constants.TextPosTop)
	}
}

func (r *RegionOverlay) DrawBottom(g *gui.Gui) {
	g.Dim()
	g.Text(r.loc.T("A_SELECT")+"\n"+r.loc.T("B_BACK"), constants.BottomWidth/2, 200, constants.FontSize11, constants.ColorGrey, constants.TextPosCenter, constants.TextPosTop)
	g.Text(r.loc.T("EDITOR_INST"), constants.BottomWidth/2, 115, constants.FontSize18, constants.ColorWhite, constants.TextPosCenter, constants.TextPosTop)

	r.search.Draw(g)
	g.Sprite(constants.SpriteIconSearch, 79, 33)
	if q := r.regions.Query(); q != "" {
		g.Text(q, 95, 32, constants.FontSize12, constants.ColorWhite, constants.TextPosLeft, constants.TextPosTop)
	} else {
		g.Text(r.loc.T("SEARCH"), 95, 32, constants.FontSize12, constants.ColorGrey, constants.TextPosLeft, constants.TextPosTop)
	}
}
