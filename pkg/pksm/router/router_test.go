package router

import (
	"context"
	"errors"
	"testing"

	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/gui"
	"github.com/flagbrew/pksm/pkg/pksm/input"
)

// probe records every call it receives into a shared log.
type probe struct {
	name    string
	log     *[]string
	updates []input.Snapshot
}

func (p *probe) Update(in *input.Snapshot) {
	p.updates = append(p.updates, *in)
	*p.log = append(*p.log, "update "+p.name)
}

func (p *probe) DrawTop(g *gui.Gui) {
	*p.log = append(*p.log, "top "+p.name)
}

func (p *probe) DrawBottom(g *gui.Gui) {
	*p.log = append(*p.log, "bottom "+p.name)
}

func (p *probe) touched() []bool {
	out := make([]bool, len(p.updates))
	for i, u := range p.updates {
		out[i] = u.Touching()
	}
	return out
}

func newProbeRouter(log *[]string) (*Router, *probe) {
	var root *probe
	r := New(func(s *Screen) Layer {
		root = &probe{name: "S", log: log}
		return root
	})
	return r, root
}

func pushProbe(s *Screen, name string, log *[]string) (*Overlay, *probe) {
	var p *probe
	o := s.PushOverlay(func(o *Overlay) Layer {
		p = &probe{name: name, log: log}
		return p
	})
	return o, p
}

func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("expected panic with %v, got %v", want, rec)
		}
	}()
	fn()
}

func TestOnlyTopmostUpdates(t *testing.T) {
	var log []string
	r, root := newProbeRouter(&log)
	s := r.Active()

	a, pa := pushProbe(s, "A", &log)
	b, pb := pushProbe(a.Screen(), "B", &log)

	if s.State() != OverlayActive || s.Depth() != 2 {
		t.Fatalf("expected two overlays, got state %v depth %d", s.State(), s.Depth())
	}

	r.Update(&input.Snapshot{})
	r.Update(&input.Snapshot{})
	if len(pb.updates) != 2 || len(pa.updates) != 0 || len(root.updates) != 0 {
		t.Fatalf("expected only B updated, got S=%d A=%d B=%d", len(root.updates), len(pa.updates), len(pb.updates))
	}

	b.Remove()
	r.Update(&input.Snapshot{})
	if len(pa.updates) != 1 || len(root.updates) != 0 {
		t.Fatalf("expected A to become the target, got S=%d A=%d", len(root.updates), len(pa.updates))
	}

	a.Remove()
	if s.State() != Inactive {
		t.Fatalf("expected inactive screen after removing all overlays")
	}
	r.Update(&input.Snapshot{})
	if len(root.updates) != 1 {
		t.Fatalf("expected screen updated once overlays closed, got %d", len(root.updates))
	}
}

func TestDrawOrder(t *testing.T) {
	var log []string
	r, _ := newProbeRouter(&log)
	pushProbe(r.Active(), "A", &log)
	pushProbe(r.Active(), "B", &log)

	log = nil
	rec := gui.NewRecorder()
	r.Draw(gui.New(rec))

	want := []string{"top S", "top A", "top B", "bottom S", "bottom A", "bottom B"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}

	ops := rec.Ops()
	if ops[0].Kind != "clear" || ops[0].Display != constants.DisplayTop ||
		ops[1].Kind != "clear" || ops[1].Display != constants.DisplayBottom {
		t.Fatalf("expected both displays cleared, got %v", ops)
	}
}

func TestJustSwitchedGuardOnPush(t *testing.T) {
	var log []string
	r, root := newProbeRouter(&log)
	touch := &input.Snapshot{Held: constants.KeyTouch, Touch: &input.Touch{X: 5, Y: 5}}

	// The screen's own first frame is guarded too.
	r.Update(touch)
	r.Update(touch)
	if got := root.touched(); got[0] || !got[1] {
		t.Fatalf("expected screen guard for one frame, got %v", got)
	}

	_, p := pushProbe(r.Active(), "A", &log)
	r.Update(touch)
	r.Update(touch)
	r.Update(touch)

	if got := p.touched(); got[0] || !got[1] || !got[2] {
		t.Fatalf("expected touch hidden on the first overlay frame only, got %v", got)
	}
	if p.updates[0].Held.Any(constants.KeyTouch) || p.updates[0].Touch != nil {
		t.Fatalf("expected held touch flag masked")
	}
}

func TestJustSwitchedGuardClearsWithoutTouch(t *testing.T) {
	var log []string
	r, _ := newProbeRouter(&log)
	_, p := pushProbe(r.Active(), "A", &log)

	r.Update(&input.Snapshot{})
	r.Update(&input.Snapshot{Down: constants.KeyTouch, Held: constants.KeyTouch, Touch: &input.Touch{}})

	if got := p.touched(); got[0] || !got[1] {
		t.Fatalf("expected guard cleared after an untouched frame, got %v", got)
	}
}

func TestJustSwitchedGuardOnRemove(t *testing.T) {
	var log []string
	r, root := newProbeRouter(&log)
	r.Update(&input.Snapshot{})

	a, _ := pushProbe(r.Active(), "A", &log)
	a.Remove()

	touch := &input.Snapshot{Held: constants.KeyTouch, Touch: &input.Touch{X: 1, Y: 1}}
	r.Update(touch)
	r.Update(touch)

	if got := root.touched(); got[1] || !got[2] {
		t.Fatalf("expected restored screen guarded for one frame, got %v", got)
	}
}

func TestKeysPassThroughGuard(t *testing.T) {
	var log []string
	r, _ := newProbeRouter(&log)
	_, p := pushProbe(r.Active(), "A", &log)

	r.Update(&input.Snapshot{Down: constants.KeyA | constants.KeyTouch, Touch: &input.Touch{}})
	if !p.updates[0].Pressed(constants.KeyA) {
		t.Fatalf("expected buttons delivered on the guarded frame")
	}
}

func TestRemoveContractViolations(t *testing.T) {
	var log []string
	r, _ := newProbeRouter(&log)
	s := r.Active()

	expectPanic(t, ErrNoOverlay, s.RemoveOverlay)

	a, _ := pushProbe(s, "A", &log)
	b, _ := pushProbe(s, "B", &log)

	expectPanic(t, ErrNotTopmost, a.Remove)

	b.Remove()
	expectPanic(t, ErrOverlayRemoved, b.Remove)

	s.RemoveOverlay()
	if !a.Removed() || s.Depth() != 0 {
		t.Fatalf("expected RemoveOverlay to close A")
	}
	expectPanic(t, ErrNoOverlay, s.RemoveOverlay)
}

func TestSetActiveDiscardsOverlays(t *testing.T) {
	var log []string
	r, _ := newProbeRouter(&log)
	pushProbe(r.Active(), "A", &log)

	var next *probe
	r.SetActive(func(s *Screen) Layer {
		next = &probe{name: "N", log: &log}
		return next
	})

	if r.Stack().Len() != 1 {
		t.Fatalf("expected replace to keep history length 1, got %d", r.Stack().Len())
	}
	if r.Active().Depth() != 0 || r.Active().Content() != next {
		t.Fatalf("expected fresh screen without overlays")
	}
	if r.GoBack() {
		t.Fatalf("expected no history after replacing the only screen")
	}
}

func TestPushAndGoBackKeepOverlays(t *testing.T) {
	var log []string
	r, root := newProbeRouter(&log)
	first := r.Active()
	pushProbe(first, "A", &log)

	r.Push(func(s *Screen) Layer { return &probe{name: "D", log: &log} })
	if r.Active() == first || r.Stack().Len() != 2 {
		t.Fatalf("expected a new active screen")
	}

	if !r.GoBack() {
		t.Fatalf("expected GoBack to succeed")
	}
	if r.Active() != first || first.Depth() != 1 {
		t.Fatalf("expected first screen restored with its overlay")
	}
	if r.Active().Content() != root {
		t.Fatalf("expected original content restored")
	}
}

type scriptedSource struct {
	frames []input.Snapshot
	closed bool
}

func (s *scriptedSource) Poll() (input.Snapshot, bool) {
	if len(s.frames) == 0 {
		return input.Snapshot{}, false
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f, true
}

func (s *scriptedSource) Close() error {
	s.closed = true
	return nil
}

type exitOnA struct {
	probe
	r *Router
}

func (e *exitOnA) Update(in *input.Snapshot) {
	e.probe.Update(in)
	if in.Pressed(constants.KeyA) {
		e.r.Exit()
	}
}

func TestRunStopsOnExit(t *testing.T) {
	var log []string
	var layer *exitOnA
	r := New(func(s *Screen) Layer {
		layer = &exitOnA{probe: probe{name: "S", log: &log}, r: s.Router()}
		return layer
	})

	src := &scriptedSource{frames: []input.Snapshot{{}, {Down: constants.KeyA}, {}, {}}}
	rec := gui.NewRecorder()
	if err := r.Run(context.Background(), src, gui.New(rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(layer.updates) != 2 || rec.Frames() != 2 {
		t.Fatalf("expected 2 frames, got %d updates and %d presents", len(layer.updates), rec.Frames())
	}
}

func TestRunStopsWhenSourceCloses(t *testing.T) {
	var log []string
	r, root := newProbeRouter(&log)

	src := &scriptedSource{frames: []input.Snapshot{{}, {}, {}}}
	if err := r.Run(context.Background(), src, gui.New(gui.NewRecorder())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.updates) != 3 {
		t.Fatalf("expected 3 updates, got %d", len(root.updates))
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	var log []string
	r, root := newProbeRouter(&log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &scriptedSource{frames: []input.Snapshot{{}}}
	if err := r.Run(ctx, src, gui.New(gui.NewRecorder())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.updates) != 0 {
		t.Fatalf("expected no frames after cancellation")
	}
}

func TestRunReturnsPresentError(t *testing.T) {
	var log []string
	r, _ := newProbeRouter(&log)

	boom := errors.New("boom")
	rec := gui.NewRecorder()
	rec.PresentErr = boom

	err := r.Run(context.Background(), &scriptedSource{frames: []input.Snapshot{{}}}, gui.New(rec))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped present error, got %v", err)
	}
}
