package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned (wrapped) when a configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// SourceEmbedded and SourceBuiltin name configurations that did not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadAsteroids loads the asteroids configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default.
// Files may be partial; unset keys keep their default values.
func LoadAsteroids(customPath string) (AsteroidsConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AsteroidsConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return AsteroidsConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("asteroids.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "asteroids.yaml")
	if cfg, ok := tryFile(local); ok {
		return cfg, local, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAsteroidsYAML)
	if err != nil {
		return DefaultAsteroidsConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AsteroidsConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AsteroidsConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg AsteroidsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// tryFile loads an optional config file. Unreadable or broken files are skipped.
func tryFile(path string) (AsteroidsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AsteroidsConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return AsteroidsConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks that the configuration describes a playable world.
func (c AsteroidsConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return invalid("world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.Ship.Radius <= 0:
		return invalid("ship.radius must be positive")
	case c.Ship.Friction <= 0 || c.Ship.Friction > 1:
		return invalid("ship.friction must be in (0, 1], got %g", c.Ship.Friction)
	case c.Ship.Thrust < 0:
		return invalid("ship.thrust must not be negative")
	case c.Bullets.Speed <= 0 || c.Bullets.Radius <= 0:
		return invalid("bullets.speed and bullets.radius must be positive")
	case c.Bullets.Life <= 0:
		return invalid("bullets.life must be positive")
	case c.Bullets.Limiter != LimiterWallClock && c.Bullets.Limiter != LimiterTicks:
		return invalid("bullets.limiter must be %q or %q, got %q", LimiterWallClock, LimiterTicks, c.Bullets.Limiter)
	case c.Bullets.CooldownMs < 0 || c.Bullets.CooldownTicks < 0:
		return invalid("bullet cooldowns must not be negative")
	case c.Asteroids.SmallRadius <= 0 || c.Asteroids.MediumRadius <= 0 || c.Asteroids.LargeRadius <= 0:
		return invalid("asteroid radii must be positive")
	case c.Asteroids.MinSpeed < 0 || c.Asteroids.MinSpeed > c.Asteroids.MaxSpeed:
		return invalid("asteroids speed range [%g, %g] is inverted or negative", c.Asteroids.MinSpeed, c.Asteroids.MaxSpeed)
	case c.Asteroids.MaxSpin < 0:
		return invalid("asteroids.max_spin must not be negative")
	case c.Asteroids.OutlineMin < 3 || c.Asteroids.OutlineExtra < 1:
		return invalid("asteroid outline needs at least 3 points and outline_extra >= 1")
	case c.Asteroids.MinRadiusFactor <= 0 || c.Asteroids.MinRadiusFactor > 1:
		return invalid("asteroids.min_radius_factor must be in (0, 1]")
	case c.Asteroids.BaseCount < 0:
		return invalid("asteroids.base_count must not be negative")
	case c.Particles.AsteroidBurst < 0 || c.Particles.ShipBurst < 0:
		return invalid("particle bursts must not be negative")
	case c.Particles.ExplosionMinSpd > c.Particles.ExplosionMaxSpd || c.Particles.ThrustMinSpd > c.Particles.ThrustMaxSpd:
		return invalid("particle speed ranges are inverted")
	case c.Particles.ExplosionJitter < 1 || c.Particles.ThrustJitter < 1:
		return invalid("particle life jitter must be at least 1")
	case c.Particles.ExplosionMax <= 0 || c.Particles.ThrustMax <= 0:
		return invalid("particle max life must be positive")
	case c.Particles.ThrustChance < 0 || c.Particles.ThrustChance > 1:
		return invalid("particles.thrust_chance must be in [0, 1]")
	case c.Input.KeyHoldMs <= 0:
		return invalid("input.key_hold_ms must be positive")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
