// Package config provides YAML-based tuning for the asteroids simulation.
package config

// Fire limiter modes.
const (
	LimiterWallClock = "wallclock" // cooldown measured against input timestamps
	LimiterTicks     = "ticks"     // cooldown measured in simulation ticks
)

// AsteroidsConfig contains all tunables for the asteroids simulation.
type AsteroidsConfig struct {
	World     WorldConfig    `yaml:"world"`
	Ship      ShipConfig     `yaml:"ship"`
	Bullets   BulletConfig   `yaml:"bullets"`
	Asteroids AsteroidConfig `yaml:"asteroids"`
	Particles ParticleConfig `yaml:"particles"`
	Input     InputConfig    `yaml:"input"`
}

// WorldConfig defines the logical play surface. Positions wrap on it.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Radius        float64 `yaml:"radius"`
	Thrust        float64 `yaml:"thrust"`   // velocity added per tick while thrusting
	Friction      float64 `yaml:"friction"` // velocity multiplier applied every tick
	RotationStep  float64 `yaml:"rotation_step"`
	StartHeading  float64 `yaml:"start_heading"` // radians, -pi/2 points up
	RotationSpeed float64 `yaml:"rotation_speed"`
}

// BulletConfig defines projectiles and the fire-rate limiter.
type BulletConfig struct {
	Speed         float64 `yaml:"speed"`
	Life          int     `yaml:"life"`
	Radius        float64 `yaml:"radius"`
	Limiter       string  `yaml:"limiter"`
	CooldownMs    int     `yaml:"cooldown_ms"`
	CooldownTicks int     `yaml:"cooldown_ticks"`
}

// AsteroidConfig defines asteroid sizes, scoring and spawn randomness.
type AsteroidConfig struct {
	LargeRadius  float64 `yaml:"large_radius"`
	MediumRadius float64 `yaml:"medium_radius"`
	SmallRadius  float64 `yaml:"small_radius"`

	LargePoints  int `yaml:"large_points"`
	MediumPoints int `yaml:"medium_points"`
	SmallPoints  int `yaml:"small_points"`

	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	MaxSpin  float64 `yaml:"max_spin"`

	// Outline has OutlineMin + Intn(OutlineExtra) points, each at
	// nominal radius scaled by a factor in [MinRadiusFactor, 1).
	OutlineMin      int     `yaml:"outline_min"`
	OutlineExtra    int     `yaml:"outline_extra"`
	MinRadiusFactor float64 `yaml:"min_radius_factor"`

	// Each level spawns BaseCount + level large asteroids.
	BaseCount int `yaml:"base_count"`
}

// ParticleConfig defines explosion and exhaust particle bursts.
type ParticleConfig struct {
	AsteroidBurst   int     `yaml:"asteroid_burst"`
	ShipBurst       int     `yaml:"ship_burst"`
	ExplosionSpread float64 `yaml:"explosion_spread"`
	ExplosionMinSpd float64 `yaml:"explosion_min_speed"`
	ExplosionMaxSpd float64 `yaml:"explosion_max_speed"`
	ExplosionLife   int     `yaml:"explosion_life"`
	ExplosionJitter int     `yaml:"explosion_jitter"`
	ExplosionMax    int     `yaml:"explosion_max_life"`

	ThrustChance float64 `yaml:"thrust_chance"`
	ThrustMinSpd float64 `yaml:"thrust_min_speed"`
	ThrustMaxSpd float64 `yaml:"thrust_max_speed"`
	ThrustLife   int     `yaml:"thrust_life"`
	ThrustJitter int     `yaml:"thrust_jitter"`
	ThrustMax    int     `yaml:"thrust_max_life"`
}

// InputConfig defines terminal input handling.
type InputConfig struct {
	// KeyHoldMs is how long a key counts as held after its last press.
	// Terminals report no key releases, only repeats.
	KeyHoldMs int `yaml:"key_hold_ms"`
}
