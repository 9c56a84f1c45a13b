package pksm

import (
	"testing"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/router"
)

func TestChoiceConfirm(t *testing.T) {
	r, h := newHostRouter()
	screen := r.Active()

	var got []ChoiceAction
	var depthInCallback int
	ShowChoice(screen, testLocalizer(t), ChoiceSettings{
		Lines: [2]string{"Delete?", "'save.bin'"},
		OnChoice: func(a ChoiceAction) {
			got = append(got, a)
			depthInCallback = screen.Depth()
		},
	})

	updates(r, idle(), press(constants.KeyA))

	if len(got) != 1 || got[0] != ChoiceConfirmed {
		t.Fatalf("expected one confirmation, got %v", got)
	}
	if depthInCallback != 0 {
		t.Fatalf("expected the overlay to be gone before the callback, depth %d", depthInCallback)
	}
	if h.updates != 0 {
		t.Fatalf("screen was updated while the choice was open")
	}
}

func TestChoiceCancel(t *testing.T) {
	r, _ := newHostRouter()

	var got ChoiceAction = -1
	ShowChoice(r.Active(), testLocalizer(t), ChoiceSettings{
		OnChoice: func(a ChoiceAction) { got = a },
	})
	updates(r, press(constants.KeyB))

	if got != ChoiceCancelled {
		t.Fatalf("expected cancel, got %v", got)
	}
	if r.Active().State() != router.Inactive {
		t.Fatalf("expected the screen to be inactive again")
	}
}

func TestChoiceDelay(t *testing.T) {
	r, _ := newHostRouter()

	answered := false
	c := ShowChoice(r.Active(), testLocalizer(t), ChoiceSettings{
		DelayFrames: 3,
		OnChoice:    func(ChoiceAction) { answered = true },
	})

	updates(r, press(constants.KeyA), press(constants.KeyA), press(constants.KeyA))
	if answered {
		t.Fatalf("A accepted before the delay ran out")
	}
	if c.Remaining() != 0 {
		t.Fatalf("expected no frames remaining, got %d", c.Remaining())
	}

	updates(r, press(constants.KeyA))
	if !answered {
		t.Fatalf("A not accepted after the delay")
	}
}

func TestChoiceDraw(t *testing.T) {
	r, _ := newHostRouter()
	ShowChoice(r.Active(), testLocalizer(t), ChoiceSettings{
		Lines:       [2]string{"Do you want to choose this file?", "'a.py'"},
		DelayFrames: 120,
	})

	top := drawn(r, constants.DisplayTop)
	if !contains(top, "'a.py'") {
		t.Fatalf("expected the second line on the top display, got %v", top)
	}
	bottom := drawn(r, constants.DisplayBottom)
	if !contains(bottom, "A: Yes (2)") || !contains(bottom, "B: No") {
		t.Fatalf("unexpected bottom texts %v", bottom)
	}
}
