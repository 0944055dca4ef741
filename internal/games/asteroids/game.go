// Package asteroids adapts the asteroids simulation to the registry.Game
// interface and renders it into a character screen.
package asteroids

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Variant IDs.
const (
	IDWallClock = "asteroids"
	IDFixed     = "asteroids_fixed"
)

// configPath stores the custom config path set via CLI
var configPath string

// logger receives session events; discarded unless the CLI sets one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game on top of sim.Simulation.
type Game struct {
	limiter string // config.LimiterWallClock or config.LimiterTicks

	sim   *sim.Simulation
	state sim.State

	runtime core.RuntimeConfig
	cfg     config.AsteroidsConfig
	log     *log.Logger
}

// New creates a game whose fire rate is limited in wall-clock time.
func New() *Game {
	return &Game{limiter: config.LimiterWallClock}
}

// NewFixed creates a game whose fire rate is limited in simulation ticks.
func NewFixed() *Game {
	return &Game{limiter: config.LimiterTicks}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.limiter == config.LimiterTicks {
		return IDFixed
	}
	return IDWallClock
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.limiter == config.LimiterTicks {
		return "Asteroids (Fixed Tick)"
	}
	return "Asteroids"
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	if g.limiter == config.LimiterTicks {
		return "fire cooldown counted in ticks"
	}
	return "fire cooldown counted in milliseconds"
}

// Reset loads the configuration and shows the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.With("game", g.ID())

	cfg, source, err := config.LoadAsteroids(configPath)
	if err != nil {
		g.log.Warn("using default config", "error", err)
		cfg, source = config.DefaultAsteroidsConfig(), config.SourceBuiltin
	}
	cfg.Bullets.Limiter = g.limiter
	g.cfg = cfg

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.sim = sim.New(cfg, sim.NewRand(seed))
	g.state = g.sim.Menu()

	g.log.Debug("reset", "config", source, "seed", seed, "limiter", g.limiter)
}

// Start begins a new session. It is a no-op while one is running.
func (g *Game) Start() {
	if g.sim == nil {
		g.Reset(g.runtime)
	}
	if g.state.Phase == sim.PhasePlaying {
		return
	}
	g.state = g.sim.Start()
	g.log.Info("session started", "asteroids", len(g.state.Asteroids))
}

// Step starts a session on Confirm/Restart when idle, otherwise advances
// the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(g.runtime)
	}

	if g.state.Phase != sim.PhasePlaying {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.Start()
		}
		return core.StepResult{State: g.State()}
	}

	g.state = g.sim.Tick(g.state, ControlsFrom(in))
	g.logEvents()

	return core.StepResult{State: g.State()}
}

// ControlsFrom maps platform actions to ship controls.
func ControlsFrom(in core.InputFrame) sim.Input {
	return sim.Input{
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Thrust: in.Has(core.ActionThrust),
		Fire:   in.Has(core.ActionFire),
		Now:    in.Now,
	}
}

func (g *Game) logEvents() {
	ev := g.state.Events
	if ev.LevelCleared {
		g.log.Info("level cleared", "level", g.state.Level, "score", g.state.Score)
	}
	if ev.ShipDestroyed {
		g.log.Info("game over", "score", g.state.Score, "level", g.state.Level, "ticks", g.state.Tick)
	}
}

// Snapshot returns the render view of the current state.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		g.Reset(g.runtime)
	}
	return g.sim.Snapshot(g.state)
}

// Phase returns the current state machine phase.
func (g *Game) Phase() sim.Phase {
	return g.state.Phase
}

// Config returns the effective configuration after Reset.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		GameOver: g.state.Phase == sim.PhaseGameOver,
		Active:   g.state.Phase == sim.PhasePlaying,
	}
}

// Register the variants with the registry
func init() {
	registry.Register(IDWallClock, func() registry.Game {
		return New()
	})
	registry.Register(IDFixed, func() registry.Game {
		return NewFixed()
	})
}
