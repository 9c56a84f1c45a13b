// Package input samples console buttons and the touch screen once per frame
// into an immutable Snapshot that the whole update chain shares.
package input

import "github.com/flagbrew/pksm/pkg/pksm/constants"

// Touch is a touch-screen coordinate in bottom-display pixels.
type Touch struct {
	X, Y int
}

// Snapshot is the input state for a single frame. Every layer updated in a
// frame observes the same snapshot; receivers must treat it as read-only.
type Snapshot struct {
	Frame  uint64
	Held   constants.Key // Buttons currently held
	Down   constants.Key // Buttons pressed this frame
	Up     constants.Key // Buttons released this frame
	Repeat constants.Key // Down plus auto-repeat of held directions and shoulders
	Touch  *Touch        // Non-nil while the bottom display is touched
}

// Pressed reports whether any of keys went down this frame.
func (s *Snapshot) Pressed(keys constants.Key) bool {
	return s.Down.Any(keys)
}

// Repeated reports whether any of keys went down or auto-repeated this frame.
func (s *Snapshot) Repeated(keys constants.Key) bool {
	return s.Repeat.Any(keys)
}

// Touching reports whether a touch is in progress, held over from a previous
// frame or starting in this one.
func (s *Snapshot) Touching() bool {
	return s.Touch != nil || (s.Held | s.Down).Any(constants.KeyTouch)
}

// TouchIn reports whether the current touch lies inside the rectangle.
func (s *Snapshot) TouchIn(x, y, w, h int) bool {
	if s.Touch == nil {
		return false
	}
	return s.Touch.X >= x && s.Touch.X < x+w && s.Touch.Y >= y && s.Touch.Y < y+h
}

// WithoutTouch returns a copy of the snapshot with every trace of the touch
// screen removed.
func (s Snapshot) WithoutTouch() Snapshot {
	s.Held &^= constants.KeyTouch
	s.Down &^= constants.KeyTouch
	s.Up &^= constants.KeyTouch
	s.Repeat &^= constants.KeyTouch
	s.Touch = nil
	return s
}

// Source produces one snapshot per frame.
type Source interface {
	// Poll returns the next frame's snapshot. ok is false once the source
	// has been closed, for example by the window manager.
	Poll() (snap Snapshot, ok bool)
	Close() error
}
