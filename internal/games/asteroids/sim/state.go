package sim

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Phase is the game state machine phase.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Events summarises what happened during the last tick.
type Events struct {
	AsteroidsDestroyed int
	Points             int
	LevelCleared       bool
	ShipDestroyed      bool
	Fired              bool
}

// State is the complete simulation state of one session.
// Tick never mutates the slices of the State passed in; it builds new ones.
type State struct {
	Phase     Phase
	Ship      Ship
	Asteroids []Asteroid
	Bullets   []Bullet
	Particles []Particle
	Score     int
	Level     int
	Tick      uint64

	LastShot time.Time // wall-clock time of the last shot, zero if none
	Cooldown int       // ticks until the tick-based limiter allows a shot

	Events Events // events of the most recent tick
}

// Simulation holds the immutable parameters of a session: tuning and the
// random source used by the generators.
type Simulation struct {
	cfg     config.AsteroidsConfig
	rng     Rand
	limiter limiter
}

// New creates a simulation. The config must be valid.
func New(cfg config.AsteroidsConfig, rng Rand) *Simulation {
	return &Simulation{
		cfg:     cfg,
		rng:     rng,
		limiter: newLimiter(cfg.Bullets),
	}
}

// Config returns the tuning the simulation runs with.
func (sim *Simulation) Config() config.AsteroidsConfig {
	return sim.cfg
}

// Menu returns the initial state, waiting on the title screen.
func (sim *Simulation) Menu() State {
	return State{Phase: PhaseMenu, Ship: sim.newShip()}
}

// Start begins a new session from the menu or after game over.
// Ship, bullets, particles, score and level are reset and the first
// wave is seeded. Starting while already playing restarts the session.
func (sim *Simulation) Start() State {
	st := State{
		Phase:     PhasePlaying,
		Ship:      sim.newShip(),
		Bullets:   []Bullet{},
		Particles: []Particle{},
		Level:     1,
	}
	st.Asteroids = Wave(sim.rng, sim.cfg, sim.cfg.Asteroids.BaseCount+st.Level)
	return st
}

func (sim *Simulation) newShip() Ship {
	return Ship{
		Pos:           core.V(sim.cfg.World.Width/2, sim.cfg.World.Height/2),
		Rotation:      sim.cfg.Ship.StartHeading,
		RotationSpeed: sim.cfg.Ship.RotationSpeed,
	}
}

// Tick advances a playing session by one step and returns the new state.
// Outside PhasePlaying the state is returned unchanged.
//
// Order within a tick:
//  1. controls: rotate, thrust, fire
//  2. motion: ship, asteroids, bullets, particles (wrapped, lives decremented)
//  3. bullets against asteroids: explode, split, score
//  4. ship against asteroids: explode, game over, stop
//  5. level clear: next level seeds BaseCount+level large asteroids
func (sim *Simulation) Tick(st State, in Input) State {
	if st.Phase != PhasePlaying {
		return st
	}

	next := st
	next.Tick++
	next.Events = Events{}
	if next.Cooldown > 0 {
		next.Cooldown--
	}

	// 1. Controls
	next.Ship = steer(st.Ship, in, sim.cfg.Ship)
	bullets := st.Bullets
	if in.Fire && sim.limiter.allow(next, in.Now) {
		bullets = append(append(make([]Bullet, 0, len(st.Bullets)+1), st.Bullets...), fire(next.Ship, sim.cfg.Bullets))
		next.LastShot = in.Now
		next.Cooldown = sim.cfg.Bullets.CooldownTicks
		next.Events.Fired = true
	}

	// 2. Motion
	next.Ship = moveShip(next.Ship, sim.cfg)
	next.Asteroids = moveAsteroids(st.Asteroids, sim.cfg.World)
	next.Bullets = moveBullets(bullets, sim.cfg.World)
	next.Particles = moveParticles(st.Particles, sim.cfg.World)
	if next.Ship.Thrusting {
		if p, ok := ThrustExhaust(sim.rng, sim.cfg, next.Ship); ok {
			next.Particles = append(next.Particles, p)
		}
	}

	// 3. Bullets against asteroids
	hits := resolveBulletHits(sim.rng, sim.cfg, next.Asteroids, next.Bullets)
	next.Asteroids = hits.asteroids
	next.Bullets = hits.bullets
	next.Particles = append(next.Particles, hits.particles...)
	next.Score += hits.points
	next.Events.AsteroidsDestroyed = hits.destroyed
	next.Events.Points = hits.points

	// 4. Ship against asteroids
	if shipHit(sim.cfg, next.Ship, next.Asteroids) {
		next.Particles = append(next.Particles, Explosion(sim.rng, sim.cfg.Particles, next.Ship.Pos, sim.cfg.Particles.ShipBurst)...)
		next.Phase = PhaseGameOver
		next.Events.ShipDestroyed = true
		return next
	}

	// 5. Level clear
	if len(next.Asteroids) == 0 {
		next.Level++
		next.Asteroids = Wave(sim.rng, sim.cfg, sim.cfg.Asteroids.BaseCount+next.Level)
		next.Events.LevelCleared = true
	}

	return next
}
