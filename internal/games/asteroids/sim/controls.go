package sim

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// Input is the set of ship controls held during one tick.
type Input struct {
	Left   bool
	Right  bool
	Thrust bool
	Fire   bool

	// Now is the wall-clock time the input was sampled at. The wall-clock
	// fire limiter measures its cooldown against it.
	Now time.Time
}

// steer applies rotation and thrust intents to the ship.
// Left and right are applied independently, so holding both cancels out.
func steer(s Ship, in Input, cfg config.ShipConfig) Ship {
	if in.Left {
		s.Rotation -= cfg.RotationStep
	}
	if in.Right {
		s.Rotation += cfg.RotationStep
	}

	s.Thrusting = in.Thrust
	if in.Thrust {
		s.Vel = s.Vel.Add(s.Heading().Scale(cfg.Thrust))
	}
	return s
}

// limiter decides whether the ship may fire this tick.
type limiter struct {
	mode     string
	cooldown time.Duration
	ticks    int
}

func newLimiter(cfg config.BulletConfig) limiter {
	return limiter{
		mode:     cfg.Limiter,
		cooldown: time.Duration(cfg.CooldownMs) * time.Millisecond,
		ticks:    cfg.CooldownTicks,
	}
}

// allow reports whether a shot is permitted given the state's shot history.
// The wall-clock mode falls back to tick counting when the input carries
// no timestamp.
func (l limiter) allow(st State, now time.Time) bool {
	if l.mode == config.LimiterWallClock && !now.IsZero() {
		return st.LastShot.IsZero() || now.Sub(st.LastShot) >= l.cooldown
	}
	return st.Cooldown <= 0
}

// fire spawns a bullet at the ship centre travelling along its heading.
func fire(s Ship, cfg config.BulletConfig) Bullet {
	return Bullet{
		Pos:  s.Pos,
		Vel:  s.Heading().Scale(cfg.Speed),
		Life: cfg.Life,
	}
}
