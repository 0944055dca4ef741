package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Radius:       15,
			Thrust:       0.15,
			Friction:     0.99,
			RotationStep: 0.1,
			StartHeading: -math.Pi / 2,
		},
		Bullets: BulletConfig{
			Speed:         7,
			Life:          60,
			Radius:        2,
			Limiter:       LimiterWallClock,
			CooldownMs:    200,
			CooldownTicks: 12,
		},
		Asteroids: AsteroidConfig{
			LargeRadius:     40,
			MediumRadius:    25,
			SmallRadius:     15,
			LargePoints:     20,
			MediumPoints:    50,
			SmallPoints:     100,
			MinSpeed:        0.5,
			MaxSpeed:        2.0,
			MaxSpin:         0.02,
			OutlineMin:      8,
			OutlineExtra:    4,
			MinRadiusFactor: 0.5,
			BaseCount:       3,
		},
		Particles: ParticleConfig{
			AsteroidBurst:   10,
			ShipBurst:       30,
			ExplosionSpread: 0.2,
			ExplosionMinSpd: 1,
			ExplosionMaxSpd: 4,
			ExplosionLife:   30,
			ExplosionJitter: 30,
			ExplosionMax:    60,
			ThrustChance:    0.5,
			ThrustMinSpd:    1,
			ThrustMaxSpd:    3,
			ThrustLife:      10,
			ThrustJitter:    10,
			ThrustMax:       20,
		},
		Input: InputConfig{
			KeyHoldMs: 120,
		},
	}
}
