// Package router composes screens and overlays and drives them frame by
// frame.
//
// A Router holds a stack of screens. Only the top screen is active. Each
// screen holds its content layer and a stack of overlays; the topmost
// overlay, or the content when there is none, is the only layer that
// receives input. Every layer of the active screen is drawn, bottom to top,
// so translucent overlays show what lies beneath them.
//
// # Basic Usage
//
//	r := router.New(func(s *router.Screen) router.Layer {
//	    return newMainScreen(s)
//	})
//
//	// Inside the main screen's Update:
//	m.screen.PushOverlay(func(o *router.Overlay) router.Layer {
//	    return newPickerOverlay(o)
//	})
//
//	// Inside the picker's Update, when the user is done:
//	p.handle.Remove()
//
//	_ = r.Run(ctx, source, gui.New(renderer))
//
// # Input Hand-over
//
// Whenever the layer receiving input changes (an overlay opens or closes,
// or another screen becomes active), the new recipient's first update sees
// the frame with any touch in progress removed. A tap that opened an
// overlay therefore cannot also press a button inside it. From the next
// frame on, input is delivered unchanged.
//
// # Contract Violations
//
// Removing an overlay that is not the topmost, or removing from a screen
// with no overlays, is a programming error. The router panics with
// ErrNotTopmost, ErrOverlayRemoved or ErrNoOverlay rather than ignoring it.
package router
