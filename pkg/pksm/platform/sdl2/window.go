package sdl2

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"unsafe"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Both displays share one window: the top display fills the first
// ScreenHeight rows, the bottom display is centered below it.
const (
	logicalWidth  = constants.TopWidth
	logicalHeight = constants.ScreenHeight * 2
	bottomOffsetX = (constants.TopWidth - constants.BottomWidth) / 2
)

type textTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// Window is the SDL2 Renderer. It draws both displays into one window
// with a fixed logical size, so any window size scales uniformly.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	theme    internal.Theme
	fonts    map[constants.FontSize]*ttf.Font
	text     *internal.TextureCache[textTexture]
	sprites  map[constants.SpriteID]textTexture
	target   constants.Display
	hasVSync bool

	lastPresentTime uint64
}

func initWindow(title string, winOpts WindowOptions, theme internal.Theme) (*Window, error) {
	scale := int32(1)
	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		scale = 2
		if v := os.Getenv(constants.WindowScaleEnvVar); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
				scale = int32(n)
			} else {
				internal.GetInternalLogger().Warn("Invalid WINDOW_SCALE; using default", "value", v, "error", err)
			}
		}
	}

	width, height := logicalWidth*scale, logicalHeight*scale
	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.flags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	renderer.SetLogicalSize(logicalWidth, logicalHeight)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	win := &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		theme:    theme,
		fonts:    make(map[constants.FontSize]*ttf.Font),
		sprites:  make(map[constants.SpriteID]textTexture),
		hasVSync: vsync,
	}
	win.text = internal.NewTextureCache(func(t textTexture) { t.texture.Destroy() })

	return win, nil
}

func (window *Window) closeWindow() {
	window.text.Destroy()
	for _, s := range window.sprites {
		s.texture.Destroy()
	}
	for _, f := range window.fonts {
		f.Close()
	}
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func (window *Window) origin() (int32, int32) {
	if window.target == constants.DisplayBottom {
		return bottomOffsetX, constants.ScreenHeight
	}
	return 0, 0
}

func (window *Window) displayRect() sdl.Rect {
	x, y := window.origin()
	w := int32(constants.TopWidth)
	if window.target == constants.DisplayBottom {
		w = constants.BottomWidth
	}
	return sdl.Rect{X: x, Y: y, W: w, H: constants.ScreenHeight}
}

func (window *Window) Target(d constants.Display) {
	window.target = d
	clip := window.displayRect()
	window.Renderer.SetClipRect(&clip)
}

func (window *Window) Clear(c color.RGBA) {
	if c == constants.ColorBlack {
		c = window.theme.TopBackground
		if window.target == constants.DisplayBottom {
			c = window.theme.BottomBackground
		}
	}
	rect := window.displayRect()
	window.fill(&rect, c)
}

func (window *Window) DrawRect(x, y, w, h int, c color.RGBA) {
	ox, oy := window.origin()
	window.fill(&sdl.Rect{X: ox + int32(x), Y: oy + int32(y), W: int32(w), H: int32(h)}, c)
}

func (window *Window) fill(rect *sdl.Rect, c color.RGBA) {
	window.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	window.Renderer.FillRect(rect)
}

func (window *Window) DrawSprite(id constants.SpriteID, x, y int) {
	s, err := window.sprite(id)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load sprite", "sprite", id, "error", err)
		return
	}
	ox, oy := window.origin()
	window.Renderer.Copy(s.texture, nil, &sdl.Rect{X: ox + int32(x), Y: oy + int32(y), W: s.w, H: s.h})
}

func (window *Window) sprite(id constants.SpriteID) (textTexture, error) {
	if s, ok := window.sprites[id]; ok {
		return s, nil
	}

	img, err := internal.RasterizeSprite(id)
	if err != nil {
		return textTexture{}, err
	}

	w, h := int32(img.Bounds().Dx()), int32(img.Bounds().Dy())
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&img.Pix[0]), w, h, 32, int32(img.Stride), sdl.PIXELFORMAT_RGBA32)
	if err != nil {
		return textTexture{}, fmt.Errorf("sprite surface: %w", err)
	}
	defer surface.Free()

	texture, err := window.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return textTexture{}, fmt.Errorf("sprite texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	s := textTexture{texture: texture, w: w, h: h}
	window.sprites[id] = s
	return s, nil
}

func (window *Window) font(size constants.FontSize) (*ttf.Font, error) {
	if f, ok := window.fonts[size]; ok {
		return f, nil
	}
	f, err := ttf.OpenFont(window.theme.FontPath, size.Pixels())
	if err != nil {
		return nil, fmt.Errorf("open font %s: %w", window.theme.FontPath, err)
	}
	window.fonts[size] = f
	return f, nil
}

func (window *Window) DrawText(s string, x, y int, style gui.TextStyle) {
	if s == "" {
		return
	}

	key := fmt.Sprintf("%v|%02x%02x%02x%02x|%s", style.Size, style.Color.R, style.Color.G, style.Color.B, style.Color.A, s)
	t, ok := window.text.Get(key)
	if !ok {
		font, err := window.font(style.Size)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to load font", "error", err)
			return
		}

		surface, err := font.RenderUTF8Blended(s, sdl.Color{R: style.Color.R, G: style.Color.G, B: style.Color.B, A: style.Color.A})
		if err != nil {
			internal.GetInternalLogger().Error("Failed to render text", "text", s, "error", err)
			return
		}
		texture, err := window.Renderer.CreateTextureFromSurface(surface)
		w, h := surface.W, surface.H
		surface.Free()
		if err != nil {
			internal.GetInternalLogger().Error("Failed to create text texture", "error", err)
			return
		}

		t = textTexture{texture: texture, w: w, h: h}
		window.text.Set(key, t)
	}

	ox, oy := window.origin()
	window.Renderer.Copy(t.texture, nil, &sdl.Rect{X: ox + int32(x), Y: oy + int32(y), W: t.w, H: t.h})
}

func (window *Window) MeasureText(s string, size constants.FontSize) (int, int) {
	font, err := window.font(size)
	if err != nil {
		return 0, size.Pixels()
	}
	w, h, err := font.SizeUTF8(s)
	if err != nil {
		return 0, size.Pixels()
	}
	return w, h
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (window *Window) Present() error {
	window.Renderer.SetClipRect(nil)
	window.Renderer.Present()
	if !window.hasVSync {
		frame := uint64(constants.FrameDuration.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
	window.Renderer.SetDrawColor(0, 0, 0, 255)
	return window.Renderer.Clear()
}
