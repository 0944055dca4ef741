package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestSnapshotResolvesOutlines(t *testing.T) {
	sim := newTestSim(1)
	a := Asteroid{
		Pos:      core.V(100, 200),
		Size:     Medium,
		Rotation: math.Pi / 2,
		Outline:  []core.Vec2{core.V(10, 0), core.V(0, 10)},
	}
	st := playing(sim, core.V(400, 300), a)

	snap := sim.Snapshot(st)
	if len(snap.Asteroids) != 1 {
		t.Fatalf("expected 1 asteroid, got %d", len(snap.Asteroids))
	}
	view := snap.Asteroids[0]
	if view.Radius != 25 {
		t.Errorf("radius = %f, expected 25", view.Radius)
	}

	want := []core.Vec2{core.V(100, 210), core.V(90, 200)}
	for i, p := range view.Outline {
		if math.Abs(p.X-want[i].X) > 1e-9 || math.Abs(p.Y-want[i].Y) > 1e-9 {
			t.Errorf("outline[%d] = %v, expected %v", i, p, want[i])
		}
	}

	// Writing to the view must not reach the state
	view.Outline[0] = core.V(-1, -1)
	if st.Asteroids[0].Outline[0] != core.V(10, 0) {
		t.Error("snapshot shares outline storage with the state")
	}
}

func TestSnapshotParticlesAndShip(t *testing.T) {
	sim := newTestSim(1)
	st := playing(sim, core.V(400, 300))
	st.Particles = []Particle{
		{Pos: core.V(1, 1), Life: 30, MaxLife: 60},
		{Pos: core.V(2, 2), Life: 20, MaxLife: 20},
	}
	st.Score = 150
	st.Level = 3

	snap := sim.Snapshot(st)
	if snap.Score != 150 || snap.Level != 3 || snap.Phase != PhasePlaying {
		t.Errorf("HUD fields not copied: %+v", snap)
	}
	if snap.Width != 800 || snap.Height != 600 {
		t.Errorf("surface = %fx%f, expected 800x600", snap.Width, snap.Height)
	}
	if snap.Particles[0].Alpha != 0.5 || snap.Particles[1].Alpha != 1 {
		t.Errorf("alphas = %f, %f, expected 0.5, 1", snap.Particles[0].Alpha, snap.Particles[1].Alpha)
	}

	// Ship points up, so the nose is directly above the centre
	nose := snap.Ship.Hull[0]
	if math.Abs(nose.X-400) > 1e-9 || math.Abs(nose.Y-285) > 1e-9 {
		t.Errorf("nose at %v, expected (400, 285)", nose)
	}
	if math.Abs(snap.Ship.Tail.Y-315) > 1e-9 {
		t.Errorf("tail at %v, expected y=315", snap.Ship.Tail)
	}
}

func TestParticleAlpha(t *testing.T) {
	tests := []struct {
		p    Particle
		want float64
	}{
		{Particle{Life: 60, MaxLife: 60}, 1},
		{Particle{Life: 15, MaxLife: 60}, 0.25},
		{Particle{Life: 0, MaxLife: 60}, 0},
		{Particle{Life: 5, MaxLife: 0}, 0},
	}

	for _, tc := range tests {
		if got := tc.p.Alpha(); got != tc.want {
			t.Errorf("Alpha(%d/%d) = %f, expected %f", tc.p.Life, tc.p.MaxLife, got, tc.want)
		}
	}
}
