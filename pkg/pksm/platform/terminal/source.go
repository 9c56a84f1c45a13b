package terminal

import (
	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/internal"
	"github.com/gdamore/tcell/v2"
)

var runeMap = map[rune]constants.Key{
	'a': constants.KeyA,
	'b': constants.KeyB,
	'x': constants.KeyX,
	'y': constants.KeyY,
	'q': constants.KeyL,
	'w': constants.KeyR,
	' ': constants.KeyStart,
}

var keyMap = map[tcell.Key]constants.Key{
	tcell.KeyEnter:      constants.KeyA,
	tcell.KeyBackspace:  constants.KeyB,
	tcell.KeyBackspace2: constants.KeyB,
	tcell.KeyTab:        constants.KeySelect,
	tcell.KeyUp:         constants.KeyDUp,
	tcell.KeyDown:       constants.KeyDDown,
	tcell.KeyLeft:       constants.KeyDLeft,
	tcell.KeyRight:      constants.KeyDRight,
}

// Source turns terminal events into snapshots. Terminals report key
// presses but no releases, so a key counts as held for the frame its
// press arrives in.
type Source struct {
	screen  tcell.Screen
	events  chan tcell.Event
	tracker *input.Tracker
	touch   *input.Touch
	closed  bool
}

// NewSource starts reading events from s.
func NewSource(s tcell.Screen) *Source {
	src := &Source{
		screen:  s,
		events:  make(chan tcell.Event, 100),
		tracker: input.NewTracker(),
	}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(src.events)
				return
			}
			src.events <- ev
		}
	}()
	return src
}

func (s *Source) Poll() (input.Snapshot, bool) {
	if s.closed {
		return input.Snapshot{}, false
	}

	var held constants.Key
	for drained := false; !drained; {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.closed = true
				return input.Snapshot{}, false
			}
			held |= s.handle(ev)
		default:
			drained = true
		}
		if s.closed {
			return input.Snapshot{}, false
		}
	}

	return s.tracker.Next(held, s.touch), true
}

// handle applies one event and returns the keys it pressed.
func (s *Source) handle(ev tcell.Event) constants.Key {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			internal.GetInternalLogger().Debug("Terminal quit requested")
			s.closed = true
			return constants.KeyNone
		}
		if ev.Key() == tcell.KeyRune {
			return runeMap[ev.Rune()]
		}
		return keyMap[ev.Key()]

	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button1 == 0 {
			s.touch = nil
			return constants.KeyNone
		}
		s.touch = touchAt(x, y)

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return constants.KeyNone
}

// touchAt maps a cell to the bottom-display pixel at its center, or nil
// when the cell is not on the bottom display.
func touchAt(col, row int) *input.Touch {
	cx, cy := col-bottomColumn, row-bottomRow
	if cx < 0 || cy < 0 || cx >= constants.BottomWidth/CellWidth || cy >= DisplayRows {
		return nil
	}
	return &input.Touch{X: cx*CellWidth + CellWidth/2, Y: cy*CellHeight + CellHeight/2}
}

// Close stops delivering snapshots. The reader goroutine ends when the
// screen is finalized.
func (s *Source) Close() error {
	s.closed = true
	return nil
}
