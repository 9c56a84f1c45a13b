package gui

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
)

// Op is one recorded draw call.
type Op struct {
	Display constants.Display
	Kind    string // "clear", "sprite", "text", "rect"
	Sprite  constants.SpriteID
	Text    string
	X, Y    int
	W, H    int
	Color   color.RGBA
}

func (o Op) String() string {
	switch o.Kind {
	case "text":
		return fmt.Sprintf("%d text %q @%d,%d", o.Display, o.Text, o.X, o.Y)
	case "sprite":
		return fmt.Sprintf("%d sprite %d @%d,%d", o.Display, o.Sprite, o.X, o.Y)
	case "rect":
		return fmt.Sprintf("%d rect %dx%d @%d,%d", o.Display, o.W, o.H, o.X, o.Y)
	default:
		return fmt.Sprintf("%d %s", o.Display, o.Kind)
	}
}

// Recorder is a headless Renderer that records the draw calls of each
// frame. Text is measured as a fixed-width font: every rune is half the
// font height wide, rounded down.
type Recorder struct {
	target     constants.Display
	ops        []Op
	frames     int
	PresentErr error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Target(d constants.Display) { r.target = d }

func (r *Recorder) Clear(c color.RGBA) {
	r.ops = append(r.ops, Op{Display: r.target, Kind: "clear", Color: c})
}

func (r *Recorder) DrawSprite(id constants.SpriteID, x, y int) {
	r.ops = append(r.ops, Op{Display: r.target, Kind: "sprite", Sprite: id, X: x, Y: y})
}

func (r *Recorder) DrawText(s string, x, y int, style TextStyle) {
	r.ops = append(r.ops, Op{Display: r.target, Kind: "text", Text: s, X: x, Y: y, Color: style.Color})
}

func (r *Recorder) DrawRect(x, y, w, h int, c color.RGBA) {
	r.ops = append(r.ops, Op{Display: r.target, Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) MeasureText(s string, size constants.FontSize) (int, int) {
	px := size.Pixels()
	return utf8.RuneCountInString(s) * (px / 2), px
}

// Present ends the frame. Recorded ops are kept until Reset.
func (r *Recorder) Present() error {
	r.frames++
	return r.PresentErr
}

// Ops returns every draw call recorded since the last Reset.
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

// Texts returns the strings drawn on display d, in draw order.
func (r *Recorder) Texts(d constants.Display) []string {
	var out []string
	for _, op := range r.ops {
		if op.Kind == "text" && op.Display == d {
			out = append(out, op.Text)
		}
	}
	return out
}

// Frames returns the number of presented frames.
func (r *Recorder) Frames() int { return r.frames }

// Reset discards recorded ops.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }
