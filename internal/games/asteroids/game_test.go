package asteroids

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{IDWallClock, IDFixed} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestVariantSelectsLimiter(t *testing.T) {
	g := NewFixed()
	g.Reset(testRuntime())
	if g.Config().Bullets.Limiter != config.LimiterTicks {
		t.Errorf("fixed variant limiter = %q", g.Config().Bullets.Limiter)
	}

	g = New()
	g.Reset(testRuntime())
	if g.Config().Bullets.Limiter != config.LimiterWallClock {
		t.Errorf("default variant limiter = %q", g.Config().Bullets.Limiter)
	}
}

func TestStartsOnConfirm(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if s := g.State(); s.Active || s.GameOver {
		t.Fatalf("fresh game should be idle on the title screen, got %+v", s)
	}

	// Ship controls do nothing on the title screen
	res := g.Step(frame(core.ActionThrust, core.ActionFire))
	if res.State.Active {
		t.Fatal("controls should not start the game")
	}

	res = g.Step(frame(core.ActionConfirm))
	if !res.State.Active || res.State.Level != 1 || res.State.Score != 0 {
		t.Fatalf("Confirm should start level 1, got %+v", res.State)
	}
	if g.Phase() != sim.PhasePlaying {
		t.Errorf("phase = %v, expected playing", g.Phase())
	}
}

func TestStepAdvancesOnlyWhilePlaying(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Start()

	before := g.Snapshot()
	g.Step(frame(core.ActionLeft))
	after := g.Snapshot()

	if before.Ship.Hull[0] == after.Ship.Hull[0] {
		t.Error("rotating should move the ship's nose")
	}

	// Restart while playing is ignored
	g.Step(frame(core.ActionRestart))
	if !g.State().Active {
		t.Error("restart during play should not leave the session")
	}
}

func TestControlsFrom(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	in := frame(core.ActionLeft, core.ActionThrust, core.ActionFire)
	in.Now = now

	got := ControlsFrom(in)
	want := sim.Input{Left: true, Thrust: true, Fire: true, Now: now}
	if got != want {
		t.Errorf("ControlsFrom = %+v, expected %+v", got, want)
	}
}

func TestPlayUntilGameOverAndRestart(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frame(core.ActionConfirm))

	// Thrusting blindly across a field of rocks ends eventually
	over := false
	for i := 0; i < 20000; i++ {
		res := g.Step(frame(core.ActionThrust, core.ActionRight))
		if res.State.GameOver {
			over = true
			break
		}
	}
	if !over {
		t.Skip("ship survived; nothing to check")
	}

	s := g.State()
	if s.Active {
		t.Error("game over state should not be active")
	}
	frozen := g.Snapshot()
	g.Step(frame(core.ActionThrust))
	if g.Snapshot().Score != frozen.Score || len(g.Snapshot().Particles) != len(frozen.Particles) {
		t.Error("game over should freeze the simulation")
	}

	res := g.Step(frame(core.ActionRestart))
	if !res.State.Active || res.State.Score != 0 || res.State.Level != 1 {
		t.Errorf("restart should begin a fresh session, got %+v", res.State)
	}
}

func TestRenderTitleScreen(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "A S T E R O I D S") {
		t.Errorf("title screen missing title:\n%s", out)
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score, row 0 = %q", screen.Row(0))
	}
}

func TestRenderPlaying(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Start()
	g.Step(frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.ContainsRune(screen.String(), ShipChar) {
		t.Error("ship not drawn")
	}
	if !strings.ContainsRune(screen.String(), RockChar) {
		t.Error("asteroids not drawn")
	}
	if !strings.Contains(screen.Row(0), "Level: 1") {
		t.Errorf("HUD missing level, row 0 = %q", screen.Row(0))
	}
}

func TestRenderTooSmallAndEmpty(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	small := core.NewScreen(20, 6)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Errorf("expected a size warning:\n%s", small.String())
	}

	// Zero-size screens are ignored
	g.Render(core.NewScreen(0, 0))
	var nilScreen *core.Screen
	g.Render(nilScreen)
}
