package pksm

import (
	"testing"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
	"github.com/flagbrew/pksm/pkg/pksm/router"
)

// host is a bare screen for overlays under test.
type host struct {
	updates int
}

func (h *host) Update(in *input.Snapshot) { h.updates++ }
func (h *host) DrawTop(g *gui.Gui)        {}
func (h *host) DrawBottom(g *gui.Gui)     {}

func newHostRouter() (*router.Router, *host) {
	h := &host{}
	r := router.New(func(s *router.Screen) router.Layer { return h })
	return r, h
}

func testLocalizer(t *testing.T) *Localizer {
	t.Helper()
	loc, err := NewLocalizer("en")
	if err != nil {
		t.Fatalf("NewLocalizer: %v", err)
	}
	return loc
}

func testRegions(t *testing.T) *RegionTable {
	t.Helper()
	table, err := LoadRegions()
	if err != nil {
		t.Fatalf("LoadRegions: %v", err)
	}
	return table
}

func press(k constants.Key) *input.Snapshot {
	return &input.Snapshot{Held: k, Down: k, Repeat: k}
}

func idle() *input.Snapshot {
	return &input.Snapshot{}
}

// tap starts a touch at x, y.
func tap(x, y int) *input.Snapshot {
	return &input.Snapshot{
		Held:  constants.KeyTouch,
		Down:  constants.KeyTouch,
		Touch: &input.Touch{X: x, Y: y},
	}
}

// hold continues a touch at x, y.
func hold(x, y int) *input.Snapshot {
	return &input.Snapshot{
		Held:  constants.KeyTouch,
		Touch: &input.Touch{X: x, Y: y},
	}
}

func updates(r *router.Router, snaps ...*input.Snapshot) {
	for _, s := range snaps {
		r.Update(s)
	}
}

// drawn renders one frame and returns the texts drawn on d.
func drawn(r *router.Router, d constants.Display) []string {
	rec := gui.NewRecorder()
	r.Draw(gui.New(rec))
	return rec.Texts(d)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// scriptedSource replays snapshots and then closes.
type scriptedSource struct {
	snaps []*input.Snapshot
	next  int
}

func (s *scriptedSource) Poll() (input.Snapshot, bool) {
	if s.next >= len(s.snaps) {
		return input.Snapshot{}, false
	}
	snap := *s.snaps[s.next]
	s.next++
	snap.Frame = uint64(s.next)
	return snap, true
}

func (s *scriptedSource) Close() error { return nil }
