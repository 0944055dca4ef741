package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// hitResult is the outcome of resolving bullets against asteroids.
type hitResult struct {
	asteroids []Asteroid
	bullets   []Bullet
	particles []Particle // explosions spawned by the hits
	points    int
	destroyed int
}

// resolveBulletHits tests every live bullet against every live asteroid.
// A bullet destroys at most one asteroid; destroyed asteroids are replaced
// by their fragments, which are not hittable until the next tick.
func resolveBulletHits(rng Rand, cfg config.AsteroidsConfig, asteroids []Asteroid, bullets []Bullet) hitResult {
	res := hitResult{
		bullets: make([]Bullet, 0, len(bullets)),
	}

	destroyed := make([]bool, len(asteroids))
	var fragments []Asteroid

	for _, b := range bullets {
		hit := false
		for i, a := range asteroids {
			if destroyed[i] {
				continue
			}
			if !core.CirclesOverlap(b.Pos, cfg.Bullets.Radius, a.Pos, a.Size.Radius(cfg.Asteroids)) {
				continue
			}

			destroyed[i] = true
			hit = true
			res.destroyed++
			res.points += a.Size.Points(cfg.Asteroids)
			res.particles = append(res.particles, Explosion(rng, cfg.Particles, a.Pos, cfg.Particles.AsteroidBurst)...)

			if child, ok := a.Size.Child(); ok {
				at := a.Pos
				fragments = append(fragments,
					NewAsteroid(rng, cfg, child, &at),
					NewAsteroid(rng, cfg, child, &at),
				)
			}
			break
		}
		if !hit {
			res.bullets = append(res.bullets, b)
		}
	}

	res.asteroids = make([]Asteroid, 0, len(asteroids)+len(fragments))
	for i, a := range asteroids {
		if !destroyed[i] {
			res.asteroids = append(res.asteroids, a)
		}
	}
	res.asteroids = append(res.asteroids, fragments...)
	return res
}

// shipHit reports whether any asteroid overlaps the ship.
func shipHit(cfg config.AsteroidsConfig, ship Ship, asteroids []Asteroid) bool {
	for _, a := range asteroids {
		if core.CirclesOverlap(ship.Pos, cfg.Ship.Radius, a.Pos, a.Size.Radius(cfg.Asteroids)) {
			return true
		}
	}
	return false
}
