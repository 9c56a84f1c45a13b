package router

import "errors"

// Navigation contract violations. They indicate a programming error and are
// raised with panic; correct callers never trigger them.
var (
	// ErrNoOverlay is raised when removing an overlay from a screen that has none.
	ErrNoOverlay = errors.New("router: remove overlay: screen has no overlay")

	// ErrNotTopmost is raised when an overlay that is not the topmost tries to remove itself.
	ErrNotTopmost = errors.New("router: remove overlay: overlay is not the topmost")

	// ErrOverlayRemoved is raised when an overlay handle is removed twice.
	ErrOverlayRemoved = errors.New("router: remove overlay: overlay already removed")
)
