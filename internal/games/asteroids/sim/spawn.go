package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Screen edges used for spawning.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// NewAsteroid creates an asteroid of the given size.
// If at is nil, the asteroid starts just outside a random screen edge,
// offset outward by its radius, so that it drifts in on the next wrap.
func NewAsteroid(rng Rand, cfg config.AsteroidsConfig, size Size, at *core.Vec2) Asteroid {
	radius := size.Radius(cfg.Asteroids)

	var pos core.Vec2
	if at != nil {
		pos = *at
	} else {
		pos = edgePosition(rng, cfg.World, radius)
	}

	a := Asteroid{
		Pos:     pos,
		Size:    size,
		Outline: outline(rng, cfg.Asteroids, radius),
	}

	a.Vel = core.FromAngle(angle(rng), between(rng, cfg.Asteroids.MinSpeed, cfg.Asteroids.MaxSpeed))
	a.RotationSpeed = between(rng, -cfg.Asteroids.MaxSpin, cfg.Asteroids.MaxSpin)
	return a
}

func edgePosition(rng Rand, world config.WorldConfig, radius float64) core.Vec2 {
	switch rng.Intn(4) {
	case edgeTop:
		return core.V(rng.Float64()*world.Width, -radius)
	case edgeRight:
		return core.V(world.Width+radius, rng.Float64()*world.Height)
	case edgeBottom:
		return core.V(rng.Float64()*world.Width, world.Height+radius)
	default:
		return core.V(-radius, rng.Float64()*world.Height)
	}
}

// outline builds an irregular polygon with evenly spaced vertex angles
// and a per-vertex radius in [MinRadiusFactor, 1) of nominal.
func outline(rng Rand, cfg config.AsteroidConfig, radius float64) []core.Vec2 {
	n := jitter(rng, cfg.OutlineMin, cfg.OutlineExtra)
	points := make([]core.Vec2, n)
	for i := range points {
		a := 2 * math.Pi * float64(i) / float64(n)
		r := radius * between(rng, cfg.MinRadiusFactor, 1)
		points[i] = core.FromAngle(a, r)
	}
	return points
}

// Wave creates count large asteroids at random screen edges.
func Wave(rng Rand, cfg config.AsteroidsConfig, count int) []Asteroid {
	asteroids := make([]Asteroid, 0, count)
	for i := 0; i < count; i++ {
		asteroids = append(asteroids, NewAsteroid(rng, cfg, Large, nil))
	}
	return asteroids
}

// Explosion emits n particles spread evenly around origin with a small
// random angular jitter.
func Explosion(rng Rand, cfg config.ParticleConfig, origin core.Vec2, n int) []Particle {
	particles := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		a := 2*math.Pi*float64(i)/float64(n) + between(rng, -cfg.ExplosionSpread, cfg.ExplosionSpread)
		speed := between(rng, cfg.ExplosionMinSpd, cfg.ExplosionMaxSpd)
		particles = append(particles, Particle{
			Pos:     origin,
			Vel:     core.FromAngle(a, speed),
			Life:    jitter(rng, cfg.ExplosionLife, cfg.ExplosionJitter),
			MaxLife: cfg.ExplosionMax,
		})
	}
	return particles
}

// ThrustExhaust returns an exhaust particle behind a thrusting ship.
// ok is false when the dice decide no particle is emitted this tick.
func ThrustExhaust(rng Rand, cfg config.AsteroidsConfig, ship Ship) (p Particle, ok bool) {
	if rng.Float64() >= cfg.Particles.ThrustChance {
		return Particle{}, false
	}
	back := ship.Heading().Scale(-1)
	speed := between(rng, cfg.Particles.ThrustMinSpd, cfg.Particles.ThrustMaxSpd)
	return Particle{
		Pos:     core.Wrap(ship.Pos.Add(back.Scale(cfg.Ship.Radius)), cfg.World.Width, cfg.World.Height),
		Vel:     back.Scale(speed).Add(ship.Vel),
		Life:    jitter(rng, cfg.Particles.ThrustLife, cfg.Particles.ThrustJitter),
		MaxLife: cfg.Particles.ThrustMax,
	}, true
}
