package router

import (
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
)

// Layer is anything the router can draw and feed input to: the content of
// a screen or an overlay stacked above it.
type Layer interface {
	// Update consumes the frame's input. Only the topmost layer of the
	// active screen is updated.
	Update(in *input.Snapshot)
	// DrawTop renders to the top display. It must not act on input.
	DrawTop(g *gui.Gui)
	// DrawBottom renders to the bottom (touch) display.
	DrawBottom(g *gui.Gui)
}

// ScreenFunc builds the content of a new screen. It receives the screen so
// the content can keep it for pushing overlays and navigating.
type ScreenFunc func(s *Screen) Layer

// OverlayFunc builds an overlay. It receives the overlay's handle, the only
// way for the overlay to reach its screen.
type OverlayFunc func(o *Overlay) Layer

// State is the overlay state of a screen.
type State int

const (
	// Inactive means no overlay is open; the screen content receives input.
	Inactive State = iota
	// OverlayActive means at least one overlay is open; the topmost receives input.
	OverlayActive
)

func (s State) String() string {
	if s == OverlayActive {
		return "overlay_active"
	}
	return "inactive"
}

// Screen is a top-level view with zero or more overlays stacked on it.
// The screen owns its overlays; they live no longer than it does.
type Screen struct {
	router   *Router
	content  Layer
	overlays []*Overlay

	// justSwitched is set whenever the input recipient changes and cleared
	// by the next update.
	justSwitched bool
}

func newScreen(r *Router, build ScreenFunc) *Screen {
	s := &Screen{router: r, justSwitched: true}
	s.content = build(s)
	return s
}

// Router returns the router holding this screen.
func (s *Screen) Router() *Router {
	return s.router
}

// Content returns the layer the screen was built with.
func (s *Screen) Content() Layer {
	return s.content
}

// State reports whether an overlay is open.
func (s *Screen) State() State {
	if len(s.overlays) == 0 {
		return Inactive
	}
	return OverlayActive
}

// Depth returns the number of open overlays.
func (s *Screen) Depth() int {
	return len(s.overlays)
}

// Top returns the layer that receives input: the topmost overlay, or the
// content when no overlay is open.
func (s *Screen) Top() Layer {
	if n := len(s.overlays); n > 0 {
		return s.overlays[n-1].layer
	}
	return s.content
}

// PushOverlay opens an overlay above everything on this screen. It becomes
// the only layer receiving input until it is removed.
func (s *Screen) PushOverlay(build OverlayFunc) *Overlay {
	o := &Overlay{screen: s}
	o.layer = build(o)
	s.overlays = append(s.overlays, o)
	s.justSwitched = true

	internal.GetInternalLogger().Debug("Overlay pushed", "depth", len(s.overlays))
	return o
}

// RemoveOverlay closes the topmost overlay and gives input back to the
// layer beneath it.
//
// Precondition: it is called on behalf of the topmost overlay. Overlays
// should prefer Overlay.Remove, which checks this. Calling it on a screen
// without overlays panics with ErrNoOverlay.
func (s *Screen) RemoveOverlay() {
	if len(s.overlays) == 0 {
		panic(ErrNoOverlay)
	}
	s.pop()
}

func (s *Screen) pop() {
	n := len(s.overlays)
	top := s.overlays[n-1]
	top.removed = true
	s.overlays[n-1] = nil
	s.overlays = s.overlays[:n-1]
	s.justSwitched = true

	internal.GetInternalLogger().Debug("Overlay removed", "depth", len(s.overlays))
}

// update feeds the frame to the topmost layer. On the first frame after the
// recipient changed, a touch already in progress is hidden from it so a
// press aimed at the previous layer does not land on the new one.
func (s *Screen) update(in *input.Snapshot) {
	target := s.Top()

	if s.justSwitched {
		s.justSwitched = false
		if in.Touching() {
			masked := in.WithoutTouch()
			in = &masked
		}
	}

	target.Update(in)
}

func (s *Screen) drawTop(g *gui.Gui) {
	s.content.DrawTop(g)
	for _, o := range s.overlays {
		o.layer.DrawTop(g)
	}
}

func (s *Screen) drawBottom(g *gui.Gui) {
	s.content.DrawBottom(g)
	for _, o := range s.overlays {
		o.layer.DrawBottom(g)
	}
}

// Overlay is the handle of an open overlay: a non-owning reference to the
// screen it sits on.
type Overlay struct {
	screen  *Screen
	layer   Layer
	removed bool
}

// Screen returns the screen the overlay sits on, e.g. to stack another
// overlay above this one.
func (o *Overlay) Screen() *Screen {
	return o.screen
}

// Layer returns the overlay's layer.
func (o *Overlay) Layer() Layer {
	return o.layer
}

// IsTopmost reports whether this overlay currently receives input.
func (o *Overlay) IsTopmost() bool {
	n := len(o.screen.overlays)
	return !o.removed && n > 0 && o.screen.overlays[n-1] == o
}

// Removed reports whether the overlay has been closed.
func (o *Overlay) Removed() bool {
	return o.removed
}

// Remove closes this overlay. It must be the topmost overlay of its screen:
// removing any other panics with ErrNotTopmost, and removing it twice
// panics with ErrOverlayRemoved.
func (o *Overlay) Remove() {
	if o.removed {
		panic(ErrOverlayRemoved)
	}
	if !o.IsTopmost() {
		panic(ErrNotTopmost)
	}
	o.screen.pop()
}
