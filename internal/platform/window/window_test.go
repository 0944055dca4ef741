package window

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// stubSession plays until it has stepped lifetime times.
type stubSession struct {
	lifetime int
	ticks    int
	state    core.GameState
	frames   []core.InputFrame
}

func (s *stubSession) Reset(core.RuntimeConfig) { s.state = core.GameState{} }
func (s *stubSession) State() core.GameState   { return s.state }

func (s *stubSession) Snapshot() sim.Snapshot {
	return sim.Snapshot{Width: 800, Height: 600}
}

func (s *stubSession) Step(in core.InputFrame) core.StepResult {
	s.frames = append(s.frames, in.Clone())
	if !s.state.Active {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			s.state = core.GameState{Active: true, Level: 1}
			s.ticks = 0
		}
		return core.StepResult{State: s.state}
	}
	s.ticks++
	if s.ticks >= s.lifetime {
		s.state = core.GameState{GameOver: true, Level: 1}
	}
	return core.StepResult{State: s.state}
}

// keyboard is a fake key state.
type keyboard struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newKeyboard() *keyboard {
	return &keyboard{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (k *keyboard) pressed(key ebiten.Key) bool     { return k.down[key] }
func (k *keyboard) justPressed(key ebiten.Key) bool { return k.just[key] }

func newTestAdapter(s *stubSession, kb *keyboard) *Adapter {
	a := New(s, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, Options{})
	a.pressed = kb.pressed
	a.justPressed = kb.justPressed
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	a.now = func() time.Time { return base }
	return a
}

func TestReadFrame(t *testing.T) {
	kb := newKeyboard()
	kb.down[ebiten.KeyA] = true
	kb.down[ebiten.KeyArrowUp] = true
	kb.down[ebiten.KeySpace] = true
	kb.just[ebiten.KeyEnter] = true
	// Held-down command keys only count on the frame they go down
	kb.down[ebiten.KeyR] = true

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	frame := readFrame(kb.pressed, kb.justPressed, now)

	for _, a := range []core.Action{core.ActionLeft, core.ActionThrust, core.ActionFire, core.ActionConfirm} {
		if !frame.Has(a) {
			t.Errorf("frame missing %v", a)
		}
	}
	for _, a := range []core.Action{core.ActionRight, core.ActionRestart, core.ActionQuit} {
		if frame.Has(a) {
			t.Errorf("frame has unexpected %v", a)
		}
	}
	if !frame.Now.Equal(now) {
		t.Errorf("frame time = %v", frame.Now)
	}
}

func TestAdapterUsesWorldSize(t *testing.T) {
	a := newTestAdapter(&stubSession{lifetime: 1}, newKeyboard())
	w, h := a.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Errorf("Layout = %dx%d, expected 800x600", w, h)
	}
}

func TestAdapterTicksOnlyWhilePlaying(t *testing.T) {
	s := &stubSession{lifetime: 2}
	kb := newKeyboard()
	a := newTestAdapter(s, kb)

	// Idle title screen does not step
	kb.down[ebiten.KeyW] = true
	for range 3 {
		if err := a.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if len(s.frames) != 0 {
		t.Fatalf("title screen stepped %d times", len(s.frames))
	}

	kb.just[ebiten.KeyEnter] = true
	_ = a.Update()
	kb.just[ebiten.KeyEnter] = false
	if !a.State().Active {
		t.Fatal("Enter should start the session")
	}

	_ = a.Update()
	_ = a.Update()
	if !a.State().GameOver {
		t.Fatalf("expected game over, got %+v", a.State())
	}

	steps := len(s.frames)
	_ = a.Update()
	if len(s.frames) != steps {
		t.Error("game over screen should not step")
	}
	if !s.frames[1].Has(core.ActionThrust) {
		t.Error("held thrust should reach the session")
	}
}

func TestAdapterPausesWithoutSurface(t *testing.T) {
	s := &stubSession{lifetime: 100}
	kb := newKeyboard()
	a := newTestAdapter(s, kb)

	kb.just[ebiten.KeyEnter] = true
	_ = a.Update()
	kb.just[ebiten.KeyEnter] = false

	a.Layout(0, 0)
	steps := len(s.frames)
	_ = a.Update()
	if len(s.frames) != steps {
		t.Error("session advanced without a surface")
	}

	a.Layout(800, 600)
	_ = a.Update()
	if len(s.frames) != steps+1 {
		t.Error("session should resume once the surface is back")
	}
}

func TestAdapterQuit(t *testing.T) {
	kb := newKeyboard()
	a := newTestAdapter(&stubSession{lifetime: 1}, kb)
	kb.just[ebiten.KeyEscape] = true
	if err := a.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update = %v, expected termination", err)
	}
}

func TestClosedSegments(t *testing.T) {
	pts := []core.Vec2{core.V(0, 0), core.V(10, 0), core.V(10, 10)}
	segs := closedSegments(pts)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, expected 3", len(segs))
	}
	last := segs[2]
	if last != (segment{10, 10, 0, 0}) {
		t.Errorf("closing segment = %+v", last)
	}
	if closedSegments(pts[:1]) != nil {
		t.Error("a single point has no edges")
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	tests := []struct {
		alpha float64
		want  color.RGBA
	}{
		{1, c},
		{0, color.RGBA{}},
		{-1, color.RGBA{}},
		{2, c},
		{0.5, color.RGBA{R: 100, G: 50, B: 25, A: 127}},
	}
	for _, tt := range tests {
		if got := fade(c, tt.alpha); got != tt.want {
			t.Errorf("fade(%v) = %+v, expected %+v", tt.alpha, got, tt.want)
		}
	}
}

func TestFlame(t *testing.T) {
	ship := sim.ShipView{Pos: core.V(100, 100), Tail: core.V(85, 100), Thrusting: true}
	pts := flame(ship)
	if len(pts) != 3 {
		t.Fatalf("flame has %d points", len(pts))
	}
	if pts[1].X >= ship.Tail.X {
		t.Errorf("flame tip %v should trail behind the tail", pts[1])
	}
	if flame(sim.ShipView{}) != nil {
		t.Error("degenerate ship should have no flame")
	}
}

func TestCenteredX(t *testing.T) {
	if got := centeredX("abcd", 800); got != 400-12 {
		t.Errorf("centeredX = %d", got)
	}
	if got := centeredX("a very long line of text", 10); got != 0 {
		t.Errorf("centeredX should clamp to 0, got %d", got)
	}
}
