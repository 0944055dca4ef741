package sim

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Size is the size class of an asteroid.
type Size int

const (
	Small Size = iota + 1
	Medium
	Large
)

// String returns the lowercase name of the size.
func (s Size) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return "unknown"
	}
}

// Child returns the size of the fragments produced when an asteroid of
// size s is destroyed. ok is false for small asteroids, which leave nothing.
func (s Size) Child() (child Size, ok bool) {
	switch s {
	case Large:
		return Medium, true
	case Medium:
		return Small, true
	default:
		return 0, false
	}
}

// Radius returns the collision radius for the size.
func (s Size) Radius(cfg config.AsteroidConfig) float64 {
	switch s {
	case Large:
		return cfg.LargeRadius
	case Medium:
		return cfg.MediumRadius
	default:
		return cfg.SmallRadius
	}
}

// Points returns the score awarded for destroying an asteroid of this size.
func (s Size) Points(cfg config.AsteroidConfig) int {
	switch s {
	case Large:
		return cfg.LargePoints
	case Medium:
		return cfg.MediumPoints
	default:
		return cfg.SmallPoints
	}
}

// Ship is the player's ship.
type Ship struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Rotation float64 // heading in radians, 0 points right, -pi/2 up

	// RotationSpeed is never applied by motion; rotation changes only by
	// input steps.
	RotationSpeed float64

	Thrusting bool
}

// Heading returns the unit vector the ship points along.
func (s Ship) Heading() core.Vec2 {
	return core.FromAngle(s.Rotation, 1)
}

// Asteroid is a drifting, spinning rock.
type Asteroid struct {
	Pos           core.Vec2
	Vel           core.Vec2
	Size          Size
	Rotation      float64
	RotationSpeed float64
	Outline       []core.Vec2 // local-space polygon around the centre
}

// Bullet is a projectile fired by the ship.
type Bullet struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life int // ticks remaining
}

// Particle is a short-lived visual effect.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    int
	MaxLife int
}

// Alpha returns the remaining fraction of the particle's life in [0, 1].
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(float64(p.Life)/float64(p.MaxLife), 0, 1)
}
