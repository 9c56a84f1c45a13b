package input

import (
	"time"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
)

// Tracker turns the raw set of held buttons reported by a backend into
// snapshots with per-frame edges and auto-repeat.
type Tracker struct {
	prev   constants.Key
	frame  uint64
	repeat DirectionalInput
}

// NewTracker creates a Tracker with the default repeat timing.
func NewTracker() *Tracker {
	return &Tracker{repeat: NewDirectionalInput()}
}

// NewTrackerWithClock creates a Tracker with custom repeat timing and clock.
func NewTrackerWithClock(delay, interval time.Duration, now func() time.Time) *Tracker {
	d := NewDirectionalInputWithTiming(delay, interval)
	d.now = now
	d.lastRepeatTime = now()
	return &Tracker{repeat: d}
}

// Next builds the snapshot for a new frame from the buttons held now and
// the touch position, if any.
func (t *Tracker) Next(held constants.Key, touch *Touch) Snapshot {
	if touch != nil {
		held |= constants.KeyTouch
	} else {
		held &^= constants.KeyTouch
	}

	down := held &^ t.prev
	up := t.prev &^ held

	t.repeat.SetHeld(held & RepeatableKeys)
	repeat := down | t.repeat.Update()

	t.prev = held
	t.frame++

	var tp *Touch
	if touch != nil {
		c := *touch
		tp = &c
	}

	return Snapshot{
		Frame:  t.frame,
		Held:   held,
		Down:   down,
		Up:     up,
		Repeat: repeat,
		Touch:  tp,
	}
}

// Reset forgets held buttons, e.g. after the window lost focus.
func (t *Tracker) Reset() {
	t.prev = constants.KeyNone
	t.repeat.Reset()
}
