package pksm

import (
	"strings"
	"testing"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/router"
)

func openKeyboard(t *testing.T, settings KeyboardSettings) (*router.Router, *SearchKeyboard) {
	t.Helper()
	r, _ := newHostRouter()
	kb := ShowKeyboard(r.Active(), testLocalizer(t), settings)
	return r, kb
}

func TestKeyboardTyping(t *testing.T) {
	r, kb := openKeyboard(t, KeyboardSettings{})

	// The "1" key is highlighted first.
	updates(r,
		press(constants.KeyA),
		press(constants.KeyDRight), press(constants.KeyA),
		press(constants.KeyDDown), press(constants.KeyA),
		press(constants.KeySelect), press(constants.KeyA),
		press(constants.KeyX),
	)

	if got := kb.Text(); got != "12wW " {
		t.Fatalf("expected %q, got %q", "12wW ", got)
	}
}

func TestKeyboardEditing(t *testing.T) {
	r, kb := openKeyboard(t, KeyboardSettings{InitialText: "tex"})

	updates(r, press(constants.KeyL), press(constants.KeyB))
	if kb.Text() != "tx" || kb.Cursor() != 1 {
		t.Fatalf("expected %q at 1, got %q at %d", "tx", kb.Text(), kb.Cursor())
	}

	updates(r, press(constants.KeyR), press(constants.KeyR), press(constants.KeyR))
	if kb.Cursor() != 2 {
		t.Fatalf("cursor moved past the end: %d", kb.Cursor())
	}
}

func TestKeyboardMaxLength(t *testing.T) {
	r, kb := openKeyboard(t, KeyboardSettings{InitialText: strings.Repeat("a", 30)})
	if len(kb.Text()) != 20 {
		t.Fatalf("expected initial text truncated to 20, got %d", len(kb.Text()))
	}

	updates(r, press(constants.KeyA))
	if len(kb.Text()) != 20 {
		t.Fatalf("typed past the limit: %q", kb.Text())
	}
}

func TestKeyboardConfirmAndCancel(t *testing.T) {
	var results []KeyboardResult
	done := func(res KeyboardResult) { results = append(results, res) }

	r, _ := openKeyboard(t, KeyboardSettings{InitialText: "new", OnDone: done})
	updates(r, press(constants.KeyStart))
	if r.Active().Depth() != 0 {
		t.Fatalf("keyboard still open after Start")
	}

	r, _ = openKeyboard(t, KeyboardSettings{InitialText: "new", OnDone: done})
	updates(r, press(constants.KeyY))

	if len(results) != 2 {
		t.Fatalf("expected two results, got %v", results)
	}
	if results[0].Text != "new" || results[0].Err != nil {
		t.Fatalf("unexpected confirm result %+v", results[0])
	}
	if !IsCancelled(results[1].Err) || results[1].Text != "" {
		t.Fatalf("unexpected cancel result %+v", results[1])
	}
}

func TestKeyboardNavigationWraps(t *testing.T) {
	r, kb := openKeyboard(t, KeyboardSettings{})

	updates(r, press(constants.KeyDLeft))
	if kb.selectedSpecial != specialBackspace {
		t.Fatalf("expected left from the first key to wrap to backspace, got %v", kb.selectedSpecial)
	}

	updates(r, press(constants.KeyDUp))
	if kb.selectedSpecial != specialSpace {
		t.Fatalf("expected up from the first row to wrap to space, got %v", kb.selectedSpecial)
	}

	updates(r, press(constants.KeyA))
	if kb.Text() != " " {
		t.Fatalf("expected the space key to type a space, got %q", kb.Text())
	}
}

func TestKeyboardEnterKeyConfirms(t *testing.T) {
	var got *KeyboardResult
	r, kb := openKeyboard(t, KeyboardSettings{InitialText: "ab", OnDone: func(res KeyboardResult) { got = &res }})

	// Row 3 ends with enter.
	updates(r, press(constants.KeyDDown), press(constants.KeyDDown), press(constants.KeyDLeft))
	if kb.selectedSpecial != specialEnter {
		t.Fatalf("expected enter highlighted, got %v", kb.selectedSpecial)
	}
	updates(r, press(constants.KeyA))

	if got == nil || got.Text != "ab" {
		t.Fatalf("expected confirmation with %q, got %+v", "ab", got)
	}
}

func TestKeyboardTouch(t *testing.T) {
	r, kb := openKeyboard(t, KeyboardSettings{})

	q := kb.keys[10].Rect
	center := q.Min.Add(q.Size().Div(2))

	// The first frame after opening hides a touch already in progress.
	updates(r, tap(center.X, center.Y))
	if kb.Text() != "" {
		t.Fatalf("touch leaked into a freshly opened keyboard: %q", kb.Text())
	}

	updates(r, idle(), tap(center.X, center.Y), hold(center.X, center.Y))
	if kb.Text() != "q" {
		t.Fatalf("expected one q from the tap, got %q", kb.Text())
	}
}

func TestKeyboardLayoutFitsBottomDisplay(t *testing.T) {
	_, kb := openKeyboard(t, KeyboardSettings{})

	for i, k := range kb.keys {
		if k.Rect.Empty() || k.Rect.Max.X > constants.BottomWidth || k.Rect.Max.Y > constants.ScreenHeight {
			t.Fatalf("key %d (%s) has bad rect %v", i, k.LowerValue, k.Rect)
		}
	}
	if kb.spaceRect.Min.Y <= kb.shiftRect.Min.Y {
		t.Fatalf("space row is not below the shift row")
	}
}

func TestKeyboardDraw(t *testing.T) {
	r, _ := openKeyboard(t, KeyboardSettings{Hint: "Sub-region"})

	bottom := drawn(r, constants.DisplayBottom)
	if !contains(bottom, "Sub-region") || !contains(bottom, "q") || !contains(bottom, "OK") {
		t.Fatalf("unexpected bottom texts %v", bottom)
	}
}
