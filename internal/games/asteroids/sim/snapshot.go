package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Snapshot is a read-only view of a State prepared for rendering.
// Outlines are resolved to world space and particles carry their alpha.
// It shares no slices with the State it was built from.
type Snapshot struct {
	Width, Height float64

	Phase Phase
	Score int
	Level int

	Ship      ShipView
	Asteroids []AsteroidView
	Bullets   []core.Vec2
	Particles []ParticleView
}

// ShipView is the ship hull in world space.
type ShipView struct {
	Pos       core.Vec2
	Hull      []core.Vec2 // closed polygon: nose, left wing, tail notch, right wing
	Tail      core.Vec2
	Thrusting bool
}

// AsteroidView is an asteroid outline in world space.
type AsteroidView struct {
	Pos     core.Vec2
	Size    Size
	Radius  float64
	Outline []core.Vec2 // closed polygon
}

// ParticleView is a particle with its fade factor.
type ParticleView struct {
	Pos   core.Vec2
	Alpha float64
}

// Snapshot builds the render view of st.
func (sim *Simulation) Snapshot(st State) Snapshot {
	snap := Snapshot{
		Width:     sim.cfg.World.Width,
		Height:    sim.cfg.World.Height,
		Phase:     st.Phase,
		Score:     st.Score,
		Level:     st.Level,
		Ship:      shipView(st.Ship, sim.cfg.Ship.Radius),
		Asteroids: make([]AsteroidView, 0, len(st.Asteroids)),
		Bullets:   make([]core.Vec2, 0, len(st.Bullets)),
		Particles: make([]ParticleView, 0, len(st.Particles)),
	}

	for _, a := range st.Asteroids {
		view := AsteroidView{
			Pos:     a.Pos,
			Size:    a.Size,
			Radius:  a.Size.Radius(sim.cfg.Asteroids),
			Outline: make([]core.Vec2, len(a.Outline)),
		}
		for i, p := range a.Outline {
			view.Outline[i] = p.Rotate(a.Rotation).Add(a.Pos)
		}
		snap.Asteroids = append(snap.Asteroids, view)
	}
	for _, b := range st.Bullets {
		snap.Bullets = append(snap.Bullets, b.Pos)
	}
	for _, p := range st.Particles {
		snap.Particles = append(snap.Particles, ParticleView{Pos: p.Pos, Alpha: p.Alpha()})
	}
	return snap
}

// Wing vertices sit 140 degrees either side of the nose.
const wingAngle = 140 * math.Pi / 180

func shipView(s Ship, radius float64) ShipView {
	at := func(offset, r float64) core.Vec2 {
		return s.Pos.Add(core.FromAngle(s.Rotation+offset, r))
	}
	return ShipView{
		Pos: s.Pos,
		Hull: []core.Vec2{
			at(0, radius),
			at(wingAngle, radius),
			at(math.Pi, radius*0.4),
			at(-wingAngle, radius),
		},
		Tail:      at(math.Pi, radius),
		Thrusting: s.Thrusting,
	}
}
