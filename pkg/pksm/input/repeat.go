package input

import (
	"time"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
)

// RepeatableKeys are the buttons that auto-repeat while held.
const RepeatableKeys = constants.KeyDirections | constants.KeyL | constants.KeyR

// DirectionalInput tracks held repeatable buttons and handles repeat timing.
// The Tracker embeds one so every backend gets the same repeat behaviour.
type DirectionalInput struct {
	held           constants.Key
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(constants.DefaultRepeatDelay, constants.DefaultRepeatInterval)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetHeld replaces the set of held repeatable buttons. Pressing a button
// that was not held before restarts the initial delay.
func (d *DirectionalInput) SetHeld(keys constants.Key) {
	keys &= RepeatableKeys
	if keys&^d.held != 0 {
		d.lastRepeatTime = d.now()
		d.hasRepeated = false
	}
	d.held = keys
}

// IsHeld returns true if any repeatable button is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held != constants.KeyNone
}

// Update checks if a repeat event should fire based on timing.
// Call this every frame. It returns the held buttons that repeat this frame,
// or KeyNone.
//
// The first repeat occurs after repeatDelay, subsequent repeats after repeatInterval.
func (d *DirectionalInput) Update() constants.Key {
	if !d.IsHeld() {
		d.lastRepeatTime = d.now()
		d.hasRepeated = false
		return constants.KeyNone
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	if d.now().Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = d.now()
		d.hasRepeated = true
		return d.held
	}

	return constants.KeyNone
}

// Reset clears all held buttons and timing state.
func (d *DirectionalInput) Reset() {
	d.held = constants.KeyNone
	d.hasRepeated = false
	d.lastRepeatTime = d.now()
}
