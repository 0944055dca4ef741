package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// moveShip applies friction, integrates position and wraps.
// Thrust acceleration has already been added by the controls.
func moveShip(s Ship, cfg config.AsteroidsConfig) Ship {
	s.Vel = s.Vel.Scale(cfg.Ship.Friction)
	s.Pos = core.Wrap(s.Pos.Add(s.Vel), cfg.World.Width, cfg.World.Height)
	return s
}

// moveAsteroids returns a new slice with every asteroid advanced one tick.
func moveAsteroids(in []Asteroid, world config.WorldConfig) []Asteroid {
	out := make([]Asteroid, 0, len(in))
	for _, a := range in {
		a.Pos = core.Wrap(a.Pos.Add(a.Vel), world.Width, world.Height)
		a.Rotation += a.RotationSpeed
		out = append(out, a)
	}
	return out
}

// moveBullets advances bullets and drops those whose life ran out.
func moveBullets(in []Bullet, world config.WorldConfig) []Bullet {
	out := make([]Bullet, 0, len(in))
	for _, b := range in {
		b.Pos = core.Wrap(b.Pos.Add(b.Vel), world.Width, world.Height)
		b.Life--
		if b.Life > 0 {
			out = append(out, b)
		}
	}
	return out
}

// moveParticles advances particles and drops expired ones.
func moveParticles(in []Particle, world config.WorldConfig) []Particle {
	out := make([]Particle, 0, len(in))
	for _, p := range in {
		p.Pos = core.Wrap(p.Pos.Add(p.Vel), world.Width, world.Height)
		p.Life--
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	return out
}
