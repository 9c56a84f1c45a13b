// Package terminal previews the client in a terminal through tcell. Each
// character cell stands for a block of display pixels, the two displays are
// stacked vertically and a left mouse click on the bottom display is a touch.
package terminal

import (
	"image"
	"image/color"
	"time"
	"unicode/utf8"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
	"github.com/gdamore/tcell/v2"
)

// Pixels per character cell.
const (
	CellWidth  = 5
	CellHeight = 10
)

// Grid geometry in cells.
const (
	Columns      = constants.TopWidth / CellWidth
	DisplayRows  = constants.ScreenHeight / CellHeight
	Rows         = DisplayRows*2 + 1
	bottomRow    = DisplayRows + 1
	bottomColumn = (constants.TopWidth - constants.BottomWidth) / 2 / CellWidth
)

type cell struct {
	r      rune
	fg, bg color.RGBA
}

// Screen is the terminal Renderer. Draw calls go to an off-screen cell
// buffer which Present copies to the terminal.
type Screen struct {
	screen    tcell.Screen
	theme     internal.Theme
	cells     []cell
	target    constants.Display
	sprites   *internal.TextureCache[*image.RGBA]
	lastFrame time.Time
	now       func() time.Time
	sleep     func(time.Duration)
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen, theme internal.Theme) *Screen {
	return &Screen{
		screen:  s,
		theme:   theme,
		cells:   make([]cell, Columns*Rows),
		sprites: internal.NewTextureCache[*image.RGBA](nil),
		now:     time.Now,
		sleep:   time.Sleep,
	}
}

// Open creates, initializes and wraps the real terminal.
func Open(theme internal.Theme) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse()
	s.HideCursor()
	return NewScreen(s, theme), nil
}

// Tcell returns the wrapped tcell screen.
func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

func (s *Screen) origin() (int, int) {
	if s.target == constants.DisplayBottom {
		return bottomColumn, bottomRow
	}
	return 0, 0
}

func (s *Screen) displayWidth() int {
	if s.target == constants.DisplayBottom {
		return constants.BottomWidth
	}
	return constants.TopWidth
}

// at returns the cell under display pixel x, y, or nil when it lies
// outside the current display.
func (s *Screen) at(x, y int) *cell {
	if x < 0 || y < 0 {
		return nil
	}
	cx, cy := x/CellWidth, y/CellHeight
	if cx >= s.displayWidth()/CellWidth || cy >= DisplayRows {
		return nil
	}
	ox, oy := s.origin()
	return &s.cells[(oy+cy)*Columns+ox+cx]
}

func (s *Screen) Target(d constants.Display) {
	s.target = d
}

func (s *Screen) Clear(c color.RGBA) {
	if c == constants.ColorBlack {
		c = s.theme.TopBackground
		if s.target == constants.DisplayBottom {
			c = s.theme.BottomBackground
		}
	}
	for y := 0; y < constants.ScreenHeight; y += CellHeight {
		for x := 0; x < s.displayWidth(); x += CellWidth {
			if p := s.at(x, y); p != nil {
				*p = cell{r: ' ', fg: s.theme.TextColor, bg: c}
			}
		}
	}
}

// DrawRect blends c into every cell the rectangle covers. Rectangles
// thinner than half a cell are outlines and are drawn as line glyphs.
func (s *Screen) DrawRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}

	switch {
	case h < CellHeight/2 && w >= h:
		for px := x; px < x+w; px += CellWidth {
			if p := s.at(px, y); p != nil {
				p.r, p.fg = '─', c
			}
		}
	case w < CellWidth/2+1:
		for py := y; py < y+h; py += CellHeight {
			if p := s.at(x, py); p != nil {
				p.r, p.fg = '│', c
			}
		}
	default:
		for py := y; py < y+h; py += CellHeight {
			for px := x; px < x+w; px += CellWidth {
				if p := s.at(px, py); p != nil {
					p.bg = blend(p.bg, c)
				}
			}
		}
	}
}

func (s *Screen) DrawSprite(id constants.SpriteID, x, y int) {
	name := constants.SpriteNames[id]
	img, ok := s.sprites.Get(name)
	if !ok {
		var err error
		img, err = internal.RasterizeSprite(id)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load sprite", "sprite", id, "error", err)
			return
		}
		s.sprites.Set(name, img)
	}

	b := img.Bounds()
	for py := 0; py < b.Dy(); py += CellHeight {
		for px := 0; px < b.Dx(); px += CellWidth {
			p := s.at(x+px, y+py)
			if p == nil {
				continue
			}
			block := image.Rect(px, py, px+CellWidth, py+CellHeight).Intersect(b)
			p.bg = blend(p.bg, average(img, block))
		}
	}
}

func (s *Screen) DrawText(str string, x, y int, style gui.TextStyle) {
	px := x
	for _, r := range str {
		if p := s.at(px, y); p != nil {
			p.r, p.fg = r, style.Color
		}
		px += CellWidth
	}
}

// MeasureText reports every rune as one cell, whatever the font size.
func (s *Screen) MeasureText(str string, size constants.FontSize) (int, int) {
	return utf8.RuneCountInString(str) * CellWidth, CellHeight
}

// Present copies the buffer to the terminal and paces frames to
// constants.FrameDuration.
func (s *Screen) Present() error {
	for i, c := range s.cells {
		r := c.r
		if r == 0 {
			r = ' '
		}
		style := tcell.StyleDefault.Foreground(toTcell(c.fg)).Background(toTcell(c.bg))
		s.screen.SetContent(i%Columns, i/Columns, r, nil, style)
	}
	s.screen.Show()

	now := s.now()
	if elapsed := now.Sub(s.lastFrame); elapsed < constants.FrameDuration {
		s.sleep(constants.FrameDuration - elapsed)
	}
	s.lastFrame = s.now()
	return nil
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// blend draws src over dst using src's alpha.
func blend(dst, src color.RGBA) color.RGBA {
	a := uint32(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// average returns the mean color of r with the mean alpha, so a cell half
// covered by a sprite is tinted half way. img holds premultiplied colors.
func average(img *image.RGBA, r image.Rectangle) color.RGBA {
	var sr, sg, sb, sa, n uint32
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			sr += uint32(c.R)
			sg += uint32(c.G)
			sb += uint32(c.B)
			sa += uint32(c.A)
			n++
		}
	}
	if n == 0 || sa == 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: uint8(sr * 255 / sa), G: uint8(sg * 255 / sa), B: uint8(sb * 255 / sa), A: uint8(sa / n)}
}
