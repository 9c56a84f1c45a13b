package router

import (
	"context"
	"fmt"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
)

// Router owns the screen stack for a session. It always holds exactly one
// active screen; previously active screens wait below it in the history.
// A Router is created at session start, driven once per frame by Update
// and Draw (or Run), and discarded at session end.
type Router struct {
	stack *Stack
	exit  bool
}

// New creates a Router whose first active screen is built by first.
func New(first ScreenFunc) *Router {
	r := &Router{stack: NewStack()}
	r.stack.Push(newScreen(r, first))
	return r
}

// Active returns the active screen.
func (r *Router) Active() *Screen {
	return r.stack.Peek()
}

// Stack returns the navigation history. The top entry is the active screen.
func (r *Router) Stack() *Stack {
	return r.stack
}

// Push navigates forward to a new screen. The current screen, with its
// overlays, is kept for GoBack.
func (r *Router) Push(build ScreenFunc) *Screen {
	s := newScreen(r, build)
	r.stack.Push(s)
	internal.GetInternalLogger().Debug("Screen pushed", "history", r.stack.Len())
	return s
}

// SetActive replaces the active screen entirely, discarding it and its
// overlays. The history below it is kept.
func (r *Router) SetActive(build ScreenFunc) *Screen {
	s := newScreen(r, build)
	r.stack.Replace(s)
	internal.GetInternalLogger().Debug("Screen replaced", "history", r.stack.Len())
	return s
}

// GoBack discards the active screen and restores the previous one. With no
// history it does nothing and returns false.
func (r *Router) GoBack() bool {
	if r.stack.Len() < 2 {
		return false
	}
	r.stack.Pop()
	r.Active().justSwitched = true
	internal.GetInternalLogger().Debug("Screen restored", "history", r.stack.Len())
	return true
}

// Exit asks Run to return after the current frame.
func (r *Router) Exit() {
	r.exit = true
}

// Exiting reports whether Exit was called.
func (r *Router) Exiting() bool {
	return r.exit
}

// Update delivers the frame's input to the topmost layer of the active
// screen: its topmost overlay if one is open, otherwise the screen itself.
func (r *Router) Update(in *input.Snapshot) {
	r.Active().update(in)
}

// Draw renders the active screen and all its overlays, bottom to top, on
// both displays.
func (r *Router) Draw(g *gui.Gui) {
	s := r.Active()

	g.ClearScreen(constants.DisplayTop)
	s.drawTop(g)

	g.ClearScreen(constants.DisplayBottom)
	s.drawBottom(g)
}

// Run drives the frame loop: poll one snapshot, update, draw, present. It
// returns nil when Exit is called, the source closes or ctx is done, and
// the renderer's error if presenting a frame fails.
func (r *Router) Run(ctx context.Context, src input.Source, g *gui.Gui) error {
	logger := internal.GetInternalLogger()

	for !r.exit {
		if err := ctx.Err(); err != nil {
			logger.Debug("Frame loop cancelled", "error", err)
			return nil
		}

		snap, ok := src.Poll()
		if !ok {
			logger.Debug("Input source closed")
			return nil
		}

		r.Update(&snap)
		r.Draw(g)

		if err := g.Present(); err != nil {
			return fmt.Errorf("router: present frame %d: %w", snap.Frame, err)
		}
	}

	return nil
}
